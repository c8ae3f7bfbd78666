package dashboard

import (
	"context"
	"errors"

	"github.com/jbonatakis/wellwatch/internal/maintenance"
	"github.com/jbonatakis/wellwatch/internal/well"
)

// ErrLoadFailure wraps transport or backend errors reaching a well's data.
// The UI surfaces it as a message and retries only on explicit navigation.
var ErrLoadFailure = errors.New("well data load failed")

// Payload is the raw per-well data a repository hands to Assemble.
type Payload struct {
	WellID    string
	DepthMax  float64
	Segments  []well.Segment
	Equipment []maintenance.RawRecord
}

// Repository fetches well data by id. Implementations must fall back to a
// defined default well for unknown ids rather than failing.
type Repository interface {
	Directory(ctx context.Context) ([]well.Summary, error)
	Dashboard(ctx context.Context, wellID string) (Payload, error)
}
