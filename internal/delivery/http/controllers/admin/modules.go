package admin

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/julisunkan/LearnMan/internal/delivery/http/controllers"
	"github.com/julisunkan/LearnMan/internal/models"
	"github.com/julisunkan/LearnMan/pkg/logger"
)

type CatalogService interface {
	Update(ctx context.Context, id uuid.UUID, payload models.ModulePayload) (models.Module, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Reorder(ctx context.Context, ids []uuid.UUID) error
}

type ModulesHandler struct {
	log     logger.Log
	service CatalogService
}

func NewModulesHandler(l logger.Log, s CatalogService) *ModulesHandler {
	return &ModulesHandler{
		log:     l,
		service: s,
	}
}

func (h *ModulesHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("module_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid module_id"})
		return
	}

	var payload models.ModulePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	module, err := h.service.Update(c.Request.Context(), id, payload)
	if err != nil {
		controllers.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, module)
}

func (h *ModulesHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("module_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid module_id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		controllers.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

type reorderRequest struct {
	ModuleIDs []uuid.UUID `json:"module_ids" binding:"required"`
}

func (h *ModulesHandler) Reorder(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Reorder(c.Request.Context(), req.ModuleIDs); err != nil {
		controllers.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
