package admin

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/julisunkan/LearnMan/internal/delivery/http/controllers"
	"github.com/julisunkan/LearnMan/internal/models"
	"github.com/julisunkan/LearnMan/pkg/logger"
)

type ImportService interface {
	Import(ctx context.Context, rawURL string) (models.ImportPreview, error)
	Commit(ctx context.Context, payload models.ModulePayload) (models.Module, error)
}

type ImportHandler struct {
	log     logger.Log
	service ImportService
}

func NewImportHandler(l logger.Log, s ImportService) *ImportHandler {
	return &ImportHandler{
		log:     l,
		service: s,
	}
}

type importRequest struct {
	URL string `json:"url" binding:"required"`
}

// Import runs the fetch-extract-generate pipeline and returns the preview.
// Nothing is persisted; the admin edits and commits the preview separately.
func (h *ImportHandler) Import(c *gin.Context) {
	var req importRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	preview, err := h.service.Import(c.Request.Context(), req.URL)
	if err != nil {
		controllers.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, preview)
}

// Commit persists an approved preview or a manually authored module.
func (h *ImportHandler) Commit(c *gin.Context) {
	var payload models.ModulePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	module, err := h.service.Commit(c.Request.Context(), payload)
	if err != nil {
		controllers.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, module)
}
