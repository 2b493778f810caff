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

type GradeService interface {
	Grade(ctx context.Context, moduleID uuid.UUID, answers map[string]any) (models.GradeResult, error)
}

type QuizHandler struct {
	log     logger.Log
	service GradeService
}

func NewQuizHandler(l logger.Log, s GradeService) *QuizHandler {
	return &QuizHandler{
		log:     l,
		service: s,
	}
}

type gradeRequest struct {
	Answers map[string]any `json:"answers"`
}

// Grade scores a learner's answers against the module's quiz. Always returns
// a result object unless the module or quiz does not exist.
func (h *QuizHandler) Grade(c *gin.Context) {
	moduleID, err := uuid.Parse(c.Param("module_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid module_id"})
		return
	}

	var req gradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Grade(c.Request.Context(), moduleID, req.Answers)
	if err != nil {
		controllers.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
