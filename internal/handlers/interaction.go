package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nutrilog/nutrilog-backend/internal/services"
	"github.com/nutrilog/nutrilog-backend/internal/types"
)

type InteractionHandler struct {
	interactionService services.InteractionService
}

func NewInteractionHandler(interactionService services.InteractionService) *InteractionHandler {
	return &InteractionHandler{interactionService: interactionService}
}

func (ih *InteractionHandler) ListRules(c *gin.Context) {
	rules, err := ih.interactionService.ListRules(c.Request.Context())
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "list_failed", err)
		return
	}
	RespondOK(c, gin.H{"rules": rules})
}

func (ih *InteractionHandler) CreateRule(c *gin.Context) {
	var req struct {
		InteractionType string `json:"interaction_type"`
		SupplementID1   string `json:"supplement_id_1"`
		SupplementID2   string `json:"supplement_id_2"`
		FoodItem        string `json:"food_item"`
		Severity        string `json:"severity"`
		Description     string `json:"description"`
		Recommendation  string `json:"recommendation"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	supplementID1, err := uuid.Parse(req.SupplementID1)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_supplement_id_1", err)
		return
	}
	rule := types.InteractionRule{
		InteractionType: req.InteractionType,
		SupplementID1:   supplementID1,
		FoodItem:        req.FoodItem,
		Severity:        req.Severity,
		Description:     req.Description,
		Recommendation:  req.Recommendation,
	}
	if req.SupplementID2 != "" {
		supplementID2, err := uuid.Parse(req.SupplementID2)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_supplement_id_2", err)
			return
		}
		rule.SupplementID2 = &supplementID2
	}
	created, err := ih.interactionService.CreateRule(c.Request.Context(), &rule)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"rule": created})
}
