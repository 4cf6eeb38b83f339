package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nutrilog/nutrilog-backend/internal/services"
	"github.com/nutrilog/nutrilog-backend/internal/types"
)

type SymptomHandler struct {
	symptomService services.SymptomService
}

func NewSymptomHandler(symptomService services.SymptomService) *SymptomHandler {
	return &SymptomHandler{symptomService: symptomService}
}

func (sh *SymptomHandler) Create(c *gin.Context) {
	var req struct {
		SymptomType string `json:"symptom_type"`
		OccurredAt  string `json:"occurred_at"`
		Severity    int    `json:"severity"`
		Notes       string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	symptomLog := types.SymptomLog{
		SymptomType: req.SymptomType,
		Severity:    req.Severity,
		Notes:       req.Notes,
	}
	if req.OccurredAt != "" {
		occurredAt, err := time.Parse(time.RFC3339, req.OccurredAt)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_occurred_at", err)
			return
		}
		symptomLog.OccurredAt = occurredAt
	}
	created, err := sh.symptomService.LogSymptom(c.Request.Context(), &symptomLog)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"symptom": created})
}

func (sh *SymptomHandler) List(c *gin.Context) {
	from, to, err := parseTimeRange(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_range", err)
		return
	}
	logs, err := sh.symptomService.ListSymptoms(c.Request.Context(), from, to)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "list_failed", err)
		return
	}
	RespondOK(c, gin.H{"symptoms": logs})
}

func (sh *SymptomHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := sh.symptomService.DeleteSymptom(c.Request.Context(), id); err != nil {
		RespondError(c, http.StatusBadRequest, "delete_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": id})
}
