// Package server exposes the well data service consumed by the dashboard
// client.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jbonatakis/wellwatch/internal/dashboard"
	"github.com/jbonatakis/wellwatch/internal/maintenance"
	"github.com/jbonatakis/wellwatch/internal/store"
	"github.com/jbonatakis/wellwatch/internal/well"
)

// WellHandler serves the well directory and per-well dashboards.
type WellHandler struct {
	store *store.Store
}

// NewWellHandler creates a handler over the store.
func NewWellHandler(s *store.Store) *WellHandler {
	return &WellHandler{store: s}
}

// Router builds the service routes.
func Router(s *store.Store) *gin.Engine {
	r := gin.Default()
	h := NewWellHandler(s)
	r.GET("/wells/", h.List)
	r.POST("/wells/", h.Create)
	r.GET("/wells/:wellId/dashboard", h.Dashboard)
	r.GET("/wells/:wellId/maintenance", h.Maintenance)
	r.POST("/wells/:wellId/reports", h.IngestReport)
	return r
}

// List serves GET /wells/: the directory with a derived status per well.
func (h *WellHandler) List(c *gin.Context) {
	rows, err := h.store.ListWells(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list wells"})
		return
	}
	out := make([]well.Summary, 0, len(rows))
	for _, row := range rows {
		segments, err := h.segmentsFor(c, row.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load well data"})
			return
		}
		out = append(out, well.Summary{
			ID:       row.ID,
			Name:     row.Name,
			Location: row.Location,
			Status:   well.WorstSeverity(segments),
		})
	}
	c.JSON(http.StatusOK, out)
}

type createWellRequest struct {
	WellID   string `json:"well_id" binding:"required"`
	WellName string `json:"well_name"`
	Location string `json:"location"`
}

// Create serves POST /wells/: create-if-absent.
func (h *WellHandler) Create(c *gin.Context) {
	var req createWellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "well_id is required"})
		return
	}
	created, err := h.store.CreateWell(c.Request.Context(), req.WellID, req.WellName, req.Location)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create well"})
		return
	}
	status := "exists"
	if created {
		status = "created"
	}
	c.JSON(http.StatusOK, gin.H{"status": status, "well_id": req.WellID})
}

// Dashboard serves GET /wells/:wellId/dashboard. Unknown wells fall back
// to the default well rather than failing.
func (h *WellHandler) Dashboard(c *gin.Context) {
	wellID, err := h.resolveWell(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load well data"})
		return
	}

	segments, err := h.segmentsFor(c, wellID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load well data"})
		return
	}
	equipment, err := h.equipmentFor(c, wellID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load equipment"})
		return
	}

	segments = well.NormalizeSegments(segments)
	depthMax := well.DeepestEnd(segments)
	c.JSON(http.StatusOK, gin.H{
		"well_id":   wellID,
		"depth_max": depthMax,
		"kpis":      well.Aggregate(segments, depthMax),
		"segments":  segments,
		"equipment": equipment,
	})
}

// Maintenance serves GET /wells/:wellId/maintenance.
func (h *WellHandler) Maintenance(c *gin.Context) {
	wellID, err := h.resolveWell(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load well data"})
		return
	}
	raw, err := h.equipmentFor(c, wellID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load equipment"})
		return
	}
	records := maintenance.NormalizeAll(raw, nil)
	c.JSON(http.StatusOK, gin.H{
		"well_id":   wellID,
		"summary":   maintenance.Summarize(records),
		"equipment": records,
	})
}

func (h *WellHandler) resolveWell(c *gin.Context) (string, error) {
	wellID := c.Param("wellId")
	exists, err := h.store.HasWell(c.Request.Context(), wellID)
	if err != nil {
		return "", err
	}
	if !exists {
		// Unknown well falls back to the default well by contract.
		return dashboard.DefaultWellID, nil
	}
	return wellID, nil
}

// segmentsFor assembles wellbore segments from operation rows. Rows with
// unusable depths are skipped; everything else renders.
func (h *WellHandler) segmentsFor(c *gin.Context, wellID string) ([]well.Segment, error) {
	ops, err := h.store.OperationsForWell(c.Request.Context(), wellID)
	if err != nil {
		return nil, err
	}
	segments := make([]well.Segment, 0, len(ops))
	for _, op := range ops {
		if op.DepthFrom == nil || op.DepthTo == nil {
			continue
		}
		seg := well.Segment{
			From:          *op.DepthFrom,
			To:            *op.DepthTo,
			Level:         well.ClassifyOperation(op.Description, op.DurationHours, op.NPTHours),
			EventType:     op.OperationType,
			OperationType: op.OperationType,
			NPTHours:      op.NPTHours,
			WhyItMatters:  op.Description,
		}
		if t, err := parseReportDate(op.RecordedAt); err == nil {
			seg.RecordedAt = &t
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

func (h *WellHandler) equipmentFor(c *gin.Context, wellID string) ([]maintenance.RawRecord, error) {
	rows, err := h.store.EquipmentForWell(c.Request.Context(), wellID)
	if err != nil {
		return nil, err
	}
	out := make([]maintenance.RawRecord, 0, len(rows))
	for _, e := range rows {
		out = append(out, maintenance.RawRecord{
			ID:           e.ID,
			Name:         e.Name,
			Tag:          e.Tag,
			RiskScore:    e.RiskScore,
			HoursUsed:    e.HoursUsed,
			HoursMax:     e.HoursMax,
			StressEvents: e.StressEvents,
			Action:       e.Action,
			NextHours:    e.NextHours,
			Note:         e.Note,
		})
	}
	return out, nil
}

func parseReportDate(v string) (time.Time, error) {
	return time.Parse("2006-01-02", v)
}
