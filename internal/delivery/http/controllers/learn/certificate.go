package learn

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/julisunkan/LearnMan/internal/delivery/http/controllers"
	"github.com/julisunkan/LearnMan/pkg/logger"
)

type CertificateRenderer interface {
	Render(moduleTitle string, issuedAt time.Time) ([]byte, error)
}

type CertificateHandler struct {
	log      logger.Log
	catalog  CatalogService
	renderer CertificateRenderer

	defaultPassThreshold float64
}

func NewCertificateHandler(l logger.Log, catalog CatalogService, renderer CertificateRenderer, defaultPassThreshold float64) *CertificateHandler {
	return &CertificateHandler{
		log:                  l,
		catalog:              catalog,
		renderer:             renderer,
		defaultPassThreshold: defaultPassThreshold,
	}
}

// Download renders a completion certificate as PNG. The learner's score is
// passed as a query parameter and checked against the module's pass threshold.
func (h *CertificateHandler) Download(c *gin.Context) {
	id, err := uuid.Parse(c.Param("module_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid module_id"})
		return
	}

	score, err := strconv.ParseFloat(c.Query("score"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid score"})
		return
	}

	module, err := h.catalog.Get(c.Request.Context(), id)
	if err != nil {
		controllers.RespondError(c, err)
		return
	}

	threshold := h.defaultPassThreshold
	if module.Quiz != nil && module.Quiz.PassThreshold > 0 {
		threshold = module.Quiz.PassThreshold
	}
	if score < threshold {
		c.JSON(http.StatusForbidden, gin.H{"error": "passing score required"})
		return
	}

	png, err := h.renderer.Render(module.Title, time.Now().UTC())
	if err != nil {
		h.log.ErrorErr("rendering certificate", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="certificate.png"`)
	c.Data(http.StatusOK, "image/png", png)
}
