package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutrilog/nutrilog-backend/internal/analytics"
	"github.com/nutrilog/nutrilog-backend/internal/services"
)

type AnalyticsHandler struct {
	analyticsService services.AnalyticsService
}

func NewAnalyticsHandler(analyticsService services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

func (ah *AnalyticsHandler) GetReport(c *gin.Context) {
	from, to, err := parseTimeRange(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_range", err)
		return
	}
	report, err := ah.analyticsService.GetReport(c.Request.Context(), from, to)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "report_failed", err)
		return
	}
	RespondOK(c, gin.H{"report": report})
}

func (ah *AnalyticsHandler) GetStreaks(c *gin.Context) {
	from, to, err := parseTimeRange(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_range", err)
		return
	}
	report, err := ah.analyticsService.GetStreaks(c.Request.Context(), from, to)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "streaks_failed", err)
		return
	}
	RespondOK(c, gin.H{"streaks": report})
}

func (ah *AnalyticsHandler) GetProgress(c *gin.Context) {
	from, to, err := parseTimeRange(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_range", err)
		return
	}
	report, err := ah.analyticsService.GetProgress(c.Request.Context(), from, to)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "progress_failed", err)
		return
	}
	RespondOK(c, gin.H{"progress": report})
}

func (ah *AnalyticsHandler) GetCorrelations(c *gin.Context) {
	from, to, err := parseTimeRange(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_range", err)
		return
	}
	findings, err := ah.analyticsService.GetCorrelations(c.Request.Context(), from, to)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "correlations_failed", err)
		return
	}
	RespondOK(c, gin.H{"correlations": findings})
}

func (ah *AnalyticsHandler) GetRecommendations(c *gin.Context) {
	from, to, err := parseTimeRange(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_range", err)
		return
	}
	recommendations, err := ah.analyticsService.GetRecommendations(c.Request.Context(), from, to)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "recommendations_failed", err)
		return
	}
	RespondOK(c, gin.H{"recommendations": recommendations})
}

// CheckInteractions runs the interaction engine over the caller's logged
// intakes plus any food items named in the request body.
func (ah *AnalyticsHandler) CheckInteractions(c *gin.Context) {
	from, to, err := parseTimeRange(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_range", err)
		return
	}
	var req struct {
		FoodItems []string `json:"food_items"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_body", err)
			return
		}
	}
	alerts, err := ah.analyticsService.CheckInteractions(c.Request.Context(), req.FoodItems, from, to)
	if err != nil {
		var missing *analytics.MissingSupplementsError
		if errors.As(err, &missing) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": gin.H{
					"code":           "unresolved_supplements",
					"message":        missing.Error(),
					"supplement_ids": missing.IDs,
				},
			})
			return
		}
		RespondError(c, http.StatusInternalServerError, "interactions_failed", err)
		return
	}
	RespondOK(c, gin.H{"alerts": alerts})
}
