package admin

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/julisunkan/LearnMan/internal/delivery/http/controllers"
	"github.com/julisunkan/LearnMan/pkg/logger"
)

type AuthService interface {
	Login(ctx context.Context, passcode string) (string, error)
}

type LoginHandler struct {
	log     logger.Log
	service AuthService
}

func NewLoginHandler(l logger.Log, s AuthService) *LoginHandler {
	return &LoginHandler{
		log:     l,
		service: s,
	}
}

type loginRequest struct {
	Passcode string `json:"passcode" binding:"required"`
}

func (h *LoginHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Passcode)
	if err != nil {
		controllers.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
