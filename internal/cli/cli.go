// Package cli parses arguments for the wellwatch terminal client.
package cli

import (
	"flag"
	"fmt"
	"strings"

	"github.com/jbonatakis/wellwatch/internal/dashboard"
	"github.com/jbonatakis/wellwatch/internal/tui"
)

// UsageError marks argument problems so main can print usage and exit 2.
type UsageError struct {
	Message string
}

func (e UsageError) Error() string {
	return e.Message
}

// Usage returns the help text.
func Usage() string {
	return strings.TrimSpace(`
wellwatch - drilling operations dashboard

Usage:
  wellwatch [flags]

Flags:
  -api URL    base URL of the data service (e.g. http://127.0.0.1:8000)
  -demo       use bundled sample wells instead of a data service
  -well ID    open this well's dashboard directly
`)
}

// Run parses args and starts the TUI.
func Run(args []string) error {
	fs := flag.NewFlagSet("wellwatch", flag.ContinueOnError)
	fs.SetOutput(discard{})
	api := fs.String("api", "", "base URL of the data service")
	demo := fs.Bool("demo", false, "use bundled sample wells")
	wellID := fs.String("well", "", "open this well directly")
	if err := fs.Parse(args); err != nil {
		return UsageError{Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return UsageError{Message: fmt.Sprintf("unexpected argument %q", fs.Arg(0))}
	}
	if *api != "" && *demo {
		return UsageError{Message: "-api and -demo are mutually exclusive"}
	}

	var repo dashboard.Repository
	switch {
	case *api != "":
		repo = dashboard.NewHTTPRepository(*api)
	case *demo:
		repo = dashboard.NewMemoryRepository()
	default:
		return UsageError{Message: "one of -api or -demo is required"}
	}

	return tui.Start(repo, *wellID)
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
