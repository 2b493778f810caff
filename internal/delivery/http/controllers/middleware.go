package controllers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/julisunkan/LearnMan/pkg/logger"
)

func LoggingMiddleware(logger logger.Log) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		clientIP := c.ClientIP()
		method := c.Request.Method
		path := c.Request.URL.Path
		rawQuery := c.Request.URL.RawQuery
		if rawQuery != "" {
			path = fmt.Sprintf("%s?%s", path, rawQuery)
		}
		status := c.Writer.Status()

		msg := fmt.Sprintf("%s %s", method, path)

		logger.Info(msg,
			"status", status,
			"latency", latency,
			"client_ip", clientIP,
		)

		for _, ginErr := range c.Errors {

			logger.ErrorErr("HTTP request error", ginErr.Err,
				"status", status,
				"method", method,
				"path", path,
			)
		}
	}
}

type SessionVerifier interface {
	VerifyToken(ctx context.Context, token string) error
}

type AdminMiddlewareProvider struct {
	log     logger.Log
	service SessionVerifier
}

func NewAdminMiddlewareProvider(log logger.Log, s SessionVerifier) *AdminMiddlewareProvider {
	return &AdminMiddlewareProvider{
		log:     log,
		service: s,
	}
}

// RequireAdmin guards editing routes behind a valid admin session token.
func (h *AdminMiddlewareProvider) RequireAdmin(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	var token string
	if parts := strings.Split(authHeader, "Bearer "); len(parts) == 2 {
		token = parts[1]
	}
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "admin session required"})
		return
	}

	if err := h.service.VerifyToken(c.Request.Context(), token); err != nil {
		h.log.Info("rejected admin token", "reason", err.Error())
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid admin session"})
		return
	}
	c.Next()
}
