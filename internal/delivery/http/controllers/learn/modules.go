package learn

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
	List(ctx context.Context) ([]models.Module, error)
	Get(ctx context.Context, id uuid.UUID) (models.Module, error)
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

func (h *ModulesHandler) List(c *gin.Context) {
	modules, err := h.service.List(c.Request.Context())
	if err != nil {
		controllers.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"modules": modules})
}

func (h *ModulesHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("module_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid module_id"})
		return
	}

	module, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		controllers.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, module)
}
