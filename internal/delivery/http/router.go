package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/julisunkan/LearnMan/internal/config"
	"github.com/julisunkan/LearnMan/internal/delivery/http/controllers"
	"github.com/julisunkan/LearnMan/internal/delivery/http/controllers/admin"
	"github.com/julisunkan/LearnMan/internal/delivery/http/controllers/learn"
	"github.com/julisunkan/LearnMan/internal/service"
	"github.com/julisunkan/LearnMan/pkg/logger"
)

func InitRoutes(l logger.Log, cfg *config.Config, u service.Collection) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsConfig := cors.Config{
		AllowOrigins:     []string{cfg.HTTPServer.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	r.Use(cors.New(corsConfig))

	statusController := controllers.NewStatusHandler()
	adminGuard := controllers.NewAdminMiddlewareProvider(l, u.Auth)
	loginController := admin.NewLoginHandler(l, u.Auth)
	importController := admin.NewImportHandler(l, u.Importer)
	adminModulesController := admin.NewModulesHandler(l, u.Catalog)
	modulesController := learn.NewModulesHandler(l, u.Catalog)
	quizController := learn.NewQuizHandler(l, u.Grader)
	certificateController := learn.NewCertificateHandler(l, u.Catalog, u.Certificate, cfg.Quiz.DefaultPassThreshold)

	v1 := r.Group("/v1", controllers.LoggingMiddleware(l))
	{
		v1.GET("/status", statusController.Status)

		adminGroup := v1.Group("/admin")
		{
			adminGroup.POST("/login", loginController.Login)

			editor := adminGroup.Group("", adminGuard.RequireAdmin)
			{
				editor.POST("/import", importController.Import)
				editor.POST("/modules", importController.Commit)
				editor.PUT("/modules/:module_id", adminModulesController.Update)
				editor.DELETE("/modules/:module_id", adminModulesController.Delete)
				editor.POST("/modules/reorder", adminModulesController.Reorder)
			}
		}

		modules := v1.Group("/modules")
		{
			modules.GET("", modulesController.List)
			modules.GET("/:module_id", modulesController.Get)
			modules.POST("/:module_id/quiz/grade", quizController.Grade)
			modules.GET("/:module_id/certificate", certificateController.Download)
		}
	}
	return r
}
