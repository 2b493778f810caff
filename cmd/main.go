package main

import (
	"github.com/gin-gonic/gin"

	"github.com/julisunkan/LearnMan/internal/app"
	"github.com/julisunkan/LearnMan/internal/config"
)

func main() {
	gin.SetMode(gin.ReleaseMode)
	cfg := config.MustLoad()
	app.Run(cfg)

}
