package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jbonatakis/wellwatch/internal/store"
)

type reportOperation struct {
	DepthFrom     *float64 `json:"depth_from"`
	DepthTo       *float64 `json:"depth_to"`
	OperationType string   `json:"operation_type"`
	Description   string   `json:"description"`
	DurationHours *float64 `json:"duration_hours"`
	NPTHours      *float64 `json:"npt_hours"`
}

type ingestReportRequest struct {
	ReportDate string            `json:"report_date" binding:"required"`
	Operations []reportOperation `json:"operations"`
}

// IngestReport serves POST /wells/:wellId/reports: the operation rows of
// one daily drilling report. The well must already exist. Rows are stored
// as supplied, nullable depths included; depth cleanup happens at read
// time like every other operation row.
func (h *WellHandler) IngestReport(c *gin.Context) {
	wellID := c.Param("wellId")
	exists, err := h.store.HasWell(c.Request.Context(), wellID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load well data"})
		return
	}
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown well " + wellID + "; create it first"})
		return
	}

	var req ingestReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "report_date is required"})
		return
	}
	if _, err := parseReportDate(req.ReportDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "report_date must be YYYY-MM-DD"})
		return
	}

	inserted := 0
	for _, op := range req.Operations {
		row := store.OperationRow{
			ID:            uuid.NewString(),
			WellID:        wellID,
			DepthFrom:     op.DepthFrom,
			DepthTo:       op.DepthTo,
			OperationType: op.OperationType,
			Description:   op.Description,
			DurationHours: op.DurationHours,
			NPTHours:      op.NPTHours,
			RecordedAt:    req.ReportDate,
		}
		if err := h.store.InsertOperation(c.Request.Context(), row); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store report"})
			return
		}
		inserted++
	}

	c.JSON(http.StatusOK, gin.H{
		"status":              "success",
		"well_id":             wellID,
		"report_date":         req.ReportDate,
		"operations_inserted": inserted,
	})
}
