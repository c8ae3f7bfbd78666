package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jbonatakis/wellwatch/internal/maintenance"
	"github.com/jbonatakis/wellwatch/internal/well"
)

const defaultHTTPTimeout = 10 * time.Second

// HTTPRepository fetches well data from the collaborator service. Missing
// optional fields decode to their zero values and are defaulted downstream
// by the assembler; only transport and status failures become errors.
type HTTPRepository struct {
	base   string
	client *http.Client
}

// NewHTTPRepository builds a repository over the service base URL, e.g.
// "http://127.0.0.1:8000".
func NewHTTPRepository(base string) *HTTPRepository {
	return &HTTPRepository{
		base:   strings.TrimRight(base, "/"),
		client: &http.Client{Timeout: defaultHTTPTimeout},
	}
}

// dashboardPayload is the wire shape of GET /wells/{id}/dashboard.
type dashboardPayload struct {
	WellID    string                  `json:"well_id"`
	DepthMax  float64                 `json:"depth_max"`
	Segments  []well.Segment          `json:"segments"`
	Equipment []maintenance.RawRecord `json:"equipment"`
}

func (r *HTTPRepository) Directory(ctx context.Context) ([]well.Summary, error) {
	var out []well.Summary
	if err := r.getJSON(ctx, "/wells/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *HTTPRepository) Dashboard(ctx context.Context, wellID string) (Payload, error) {
	var body dashboardPayload
	path := "/wells/" + url.PathEscape(wellID) + "/dashboard"
	if err := r.getJSON(ctx, path, &body); err != nil {
		return Payload{}, err
	}
	id := body.WellID
	if id == "" {
		id = wellID
	}
	return Payload{
		WellID:    id,
		DepthMax:  body.DepthMax,
		Segments:  body.Segments,
		Equipment: body.Equipment,
	}, nil
}

func (r *HTTPRepository) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.base+path, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLoadFailure, err)
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLoadFailure, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: backend returned %s for %s", ErrLoadFailure, resp.Status, path)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding %s: %v", ErrLoadFailure, path, err)
	}
	return nil
}
