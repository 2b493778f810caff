package app

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/microcosm-cc/bluemonday"

	"github.com/julisunkan/LearnMan/internal/app/server"
	"github.com/julisunkan/LearnMan/internal/config"
	"github.com/julisunkan/LearnMan/internal/delivery/http"
	"github.com/julisunkan/LearnMan/internal/service"
	"github.com/julisunkan/LearnMan/internal/service/auth"
	"github.com/julisunkan/LearnMan/internal/service/catalog"
	"github.com/julisunkan/LearnMan/internal/service/certificate"
	"github.com/julisunkan/LearnMan/internal/service/grader"
	"github.com/julisunkan/LearnMan/internal/service/importer"
	"github.com/julisunkan/LearnMan/internal/storage/jsonstore"
	"github.com/julisunkan/LearnMan/pkg/logger"
)

func Run(cfg *config.Config) {

	log := logger.New(cfg.Env)
	log.Info("Starting with Env: " + cfg.Env)

	store := jsonstore.New(cfg.Store.Path)
	sanitizer := bluemonday.UGCPolicy()

	fetcher := importer.NewFetcher(cfg.Import.FetchTimeout, cfg.Import.MaxBodyBytes)
	extractor := importer.NewExtractor()
	strategies := []importer.Strategy{
		importer.NewGenerative(log, cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.Import.MaxQuestions, cfg.Import.MaxPromptChars),
		importer.NewHeuristic(cfg.Import.MaxQuestions),
	}

	authService, err := auth.NewService(log, cfg.Admin.Passcode, cfg.Admin.JWTSecret, cfg.Admin.SessionTTL)
	if err != nil {
		log.FatalErr("error preparing admin auth", err)
	}

	certificateService, err := certificate.NewService(log, cfg.Certificate.SiteTitle)
	if err != nil {
		log.FatalErr("error loading certificate fonts", err)
	}

	u := service.Collection{
		Auth:        authService,
		Importer:    importer.NewService(log, fetcher, extractor, strategies, store, sanitizer, cfg.Quiz.DefaultPassThreshold),
		Catalog:     catalog.NewService(log, store, sanitizer, cfg.Quiz.DefaultPassThreshold),
		Grader:      grader.NewService(log, store),
		Certificate: certificateService,
	}

	r := http.InitRoutes(log, cfg, u)

	srv := server.New(cfg.HTTPServer.Address, cfg.HTTPServer.Timeout, cfg.HTTPServer.IdleTimeout, r)
	srv.Start()
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app signal: " + s.String())
	case err := <-srv.Notify():
		log.ErrorErr("err", err)
	}
	err = srv.Shutdown()
	if err != nil {
		log.ErrorErr("err", err)
	}
}
