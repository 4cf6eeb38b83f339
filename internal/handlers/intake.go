package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nutrilog/nutrilog-backend/internal/services"
	"github.com/nutrilog/nutrilog-backend/internal/types"
)

type IntakeHandler struct {
	intakeService services.IntakeService
}

func NewIntakeHandler(intakeService services.IntakeService) *IntakeHandler {
	return &IntakeHandler{intakeService: intakeService}
}

// parseTimeRange reads optional ?from= / ?to= query bounds (RFC 3339 or bare
// dates). A missing bound stays zero, which widens the window on that side.
func parseTimeRange(c *gin.Context) (time.Time, time.Time, error) {
	var from, to time.Time
	layouts := []string{time.RFC3339, "2006-01-02"}
	parse := func(raw string) (time.Time, error) {
		var lastErr error
		for _, layout := range layouts {
			t, err := time.Parse(layout, raw)
			if err == nil {
				return t, nil
			}
			lastErr = err
		}
		return time.Time{}, lastErr
	}
	if raw := c.Query("from"); raw != "" {
		t, err := parse(raw)
		if err != nil {
			return from, to, err
		}
		from = t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := parse(raw)
		if err != nil {
			return from, to, err
		}
		to = t
	}
	return from, to, nil
}

func (ih *IntakeHandler) Create(c *gin.Context) {
	var req struct {
		SupplementID string `json:"supplement_id"`
		TakenAt      string `json:"taken_at"`
		Dosage       string `json:"dosage"`
		Timing       string `json:"timing"`
		Notes        string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	supplementID, err := uuid.Parse(req.SupplementID)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_supplement_id", err)
		return
	}
	intakeLog := types.IntakeLog{
		SupplementID: supplementID,
		Dosage:       req.Dosage,
		Timing:       req.Timing,
		Notes:        req.Notes,
	}
	if req.TakenAt != "" {
		takenAt, err := time.Parse(time.RFC3339, req.TakenAt)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_taken_at", err)
			return
		}
		intakeLog.TakenAt = takenAt
	}
	created, err := ih.intakeService.LogIntake(c.Request.Context(), &intakeLog)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"intake": created})
}

func (ih *IntakeHandler) List(c *gin.Context) {
	from, to, err := parseTimeRange(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_range", err)
		return
	}
	logs, err := ih.intakeService.ListIntakes(c.Request.Context(), from, to)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "list_failed", err)
		return
	}
	RespondOK(c, gin.H{"intakes": logs})
}

func (ih *IntakeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := ih.intakeService.DeleteIntake(c.Request.Context(), id); err != nil {
		RespondError(c, http.StatusBadRequest, "delete_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": id})
}
