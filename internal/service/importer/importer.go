package importer

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/julisunkan/LearnMan/internal/app_errors"
	"github.com/julisunkan/LearnMan/internal/models"
	"github.com/julisunkan/LearnMan/pkg/logger"
)

type fetcher interface {
	Fetch(ctx context.Context, rawURL string) (FetchResult, error)
}

type extractor interface {
	Extract(raw []byte, contentType string) (ExtractResult, error)
}

type contentStore interface {
	Update(ctx context.Context, fn func(doc *models.StoreDocument) error) error
}

type sanitizer interface {
	Sanitize(html string) string
}

// Service sequences fetch, extract and question generation into a preview,
// and persists accepted previews (or manually authored payloads) as new
// modules.
type Service struct {
	log                  logger.Log
	fetcher              fetcher
	extractor            extractor
	strategies           []Strategy
	store                contentStore
	sanitizer            sanitizer
	defaultPassThreshold float64
}

// NewService wires the pipeline. Strategies are tried in order; a strategy
// failing with a GenerationError hands over to the next one.
func NewService(
	log logger.Log,
	f fetcher,
	e extractor,
	strategies []Strategy,
	store contentStore,
	s sanitizer,
	defaultPassThreshold float64,
) *Service {
	return &Service{
		log:                  log,
		fetcher:              f,
		extractor:            e,
		strategies:           strategies,
		store:                store,
		sanitizer:            s,
		defaultPassThreshold: defaultPassThreshold,
	}
}

// Import runs the pipeline for one URL. Fetch and extraction failures
// short-circuit with a stage-tagged error; question generation never fails
// an import.
func (s *Service) Import(ctx context.Context, rawURL string) (models.ImportPreview, error) {
	fetched, err := s.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return models.ImportPreview{}, &app_errors.ImportError{Stage: app_errors.StageFetch, Err: err}
	}

	extracted, err := s.extractor.Extract(fetched.Body, fetched.ContentType)
	if err != nil {
		return models.ImportPreview{}, &app_errors.ImportError{Stage: app_errors.StageExtract, Err: err}
	}

	questions := s.generate(ctx, extracted.Text)

	return models.ImportPreview{
		SuggestedTitle:     extracted.SuggestedTitle,
		ExtractedContent:   extracted.Text,
		GeneratedQuestions: questions,
	}, nil
}

// generate tries each strategy in order, recovering only from
// GenerationError. Any other failure stops generation and the preview ships
// without questions.
func (s *Service) generate(ctx context.Context, text string) []models.Question {
	for _, strategy := range s.strategies {
		questions, err := strategy.Generate(ctx, text)
		if err == nil {
			return questions
		}
		var ge *app_errors.GenerationError
		if errors.As(err, &ge) {
			s.log.Info("question strategy unavailable, falling back",
				"strategy", strategy.Name(), "reason", ge.Error())
			continue
		}
		s.log.ErrorErr("question generation failed", err, "strategy", strategy.Name())
		break
	}
	return []models.Question{}
}

// Commit validates and persists a module payload, whether it came from an
// import preview or manual authoring. The new module gets a fresh id and is
// appended at the end of the display order.
func (s *Service) Commit(ctx context.Context, payload models.ModulePayload) (models.Module, error) {
	if err := payload.Validate(); err != nil {
		return models.Module{}, err
	}

	now := time.Now().UTC()
	m := models.Module{
		ID:          uuid.New(),
		Title:       payload.Title,
		Description: payload.Description,
		Content:     s.sanitizer.Sanitize(payload.Content),
		VideoURL:    payload.VideoURL,
		Resources:   payload.Resources,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if payload.Quiz != nil {
		quiz := *payload.Quiz
		// A zero threshold means "not set" in submitted payloads.
		if quiz.PassThreshold == 0 {
			quiz.PassThreshold = s.defaultPassThreshold
		}
		m.Quiz = &quiz
	}

	err := s.store.Update(ctx, func(doc *models.StoreDocument) error {
		m.Order = len(doc.Modules)
		doc.Modules = append(doc.Modules, m)
		return nil
	})
	if err != nil {
		return models.Module{}, err
	}
	return m, nil
}
