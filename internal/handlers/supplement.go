package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nutrilog/nutrilog-backend/internal/services"
	"github.com/nutrilog/nutrilog-backend/internal/types"
)

type SupplementHandler struct {
	supplementService services.SupplementService
}

func NewSupplementHandler(supplementService services.SupplementService) *SupplementHandler {
	return &SupplementHandler{supplementService: supplementService}
}

type supplementRequest struct {
	Name          string `json:"name"`
	Brand         string `json:"brand"`
	DefaultDosage string `json:"default_dosage"`
	Notes         string `json:"notes"`
}

func (sh *SupplementHandler) Create(c *gin.Context) {
	var req supplementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	supplement := types.Supplement{
		Name:          req.Name,
		Brand:         req.Brand,
		DefaultDosage: req.DefaultDosage,
		Notes:         req.Notes,
	}
	created, err := sh.supplementService.CreateSupplement(c.Request.Context(), &supplement)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"supplement": created})
}

func (sh *SupplementHandler) List(c *gin.Context) {
	supplements, err := sh.supplementService.ListSupplements(c.Request.Context())
	if err != nil {
		RespondError(c, http.StatusBadRequest, "list_failed", err)
		return
	}
	RespondOK(c, gin.H{"supplements": supplements})
}

func (sh *SupplementHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	supplement, err := sh.supplementService.GetSupplement(c.Request.Context(), id)
	if err != nil {
		RespondError(c, http.StatusNotFound, "not_found", err)
		return
	}
	RespondOK(c, gin.H{"supplement": supplement})
}

func (sh *SupplementHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req supplementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	supplement := types.Supplement{
		ID:            id,
		Name:          req.Name,
		Brand:         req.Brand,
		DefaultDosage: req.DefaultDosage,
		Notes:         req.Notes,
	}
	updated, err := sh.supplementService.UpdateSupplement(c.Request.Context(), &supplement)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "update_failed", err)
		return
	}
	RespondOK(c, gin.H{"supplement": updated})
}

func (sh *SupplementHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := sh.supplementService.DeleteSupplement(c.Request.Context(), id); err != nil {
		RespondError(c, http.StatusBadRequest, "delete_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": id})
}
