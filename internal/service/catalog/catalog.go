package catalog

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/julisunkan/LearnMan/internal/app_errors"
	"github.com/julisunkan/LearnMan/internal/models"
	"github.com/julisunkan/LearnMan/pkg/logger"
)

type contentStore interface {
	Load(ctx context.Context) (models.StoreDocument, error)
	Update(ctx context.Context, fn func(doc *models.StoreDocument) error) error
}

type sanitizer interface {
	Sanitize(html string) string
}

// Service manages the module catalog: listing, editing, deletion and
// reordering. Every mutation leaves order values as a dense 0..N-1
// permutation.
type Service struct {
	log                  logger.Log
	store                contentStore
	sanitizer            sanitizer
	defaultPassThreshold float64
}

func NewService(log logger.Log, store contentStore, s sanitizer, defaultPassThreshold float64) *Service {
	return &Service{
		log:                  log,
		store:                store,
		sanitizer:            s,
		defaultPassThreshold: defaultPassThreshold,
	}
}

// List returns all modules in display order.
func (s *Service) List(ctx context.Context) ([]models.Module, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	modules := append([]models.Module(nil), doc.Modules...)
	sort.Slice(modules, func(i, j int) bool { return modules[i].Order < modules[j].Order })
	return modules, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (models.Module, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return models.Module{}, err
	}
	m := doc.ModuleByID(id)
	if m == nil {
		return models.Module{}, app_errors.ErrModuleNotFound
	}
	return *m, nil
}

// Update replaces a module's editable fields from the payload, running the
// same validation gate as commit. Id, order and creation time are immutable.
func (s *Service) Update(ctx context.Context, id uuid.UUID, payload models.ModulePayload) (models.Module, error) {
	if err := payload.Validate(); err != nil {
		return models.Module{}, err
	}

	var updated models.Module
	err := s.store.Update(ctx, func(doc *models.StoreDocument) error {
		m := doc.ModuleByID(id)
		if m == nil {
			return app_errors.ErrModuleNotFound
		}
		m.Title = payload.Title
		m.Description = payload.Description
		m.Content = s.sanitizer.Sanitize(payload.Content)
		m.VideoURL = payload.VideoURL
		m.Resources = payload.Resources
		if payload.Quiz != nil {
			quiz := *payload.Quiz
			if quiz.PassThreshold == 0 {
				quiz.PassThreshold = s.defaultPassThreshold
			}
			m.Quiz = &quiz
		} else {
			m.Quiz = nil
		}
		m.UpdatedAt = time.Now().UTC()
		updated = *m
		return nil
	})
	if err != nil {
		return models.Module{}, err
	}
	return updated, nil
}

// Delete removes a module and its quiz, then closes the gap in the display
// order.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.Update(ctx, func(doc *models.StoreDocument) error {
		kept := doc.Modules[:0]
		found := false
		for _, m := range doc.Modules {
			if m.ID == id {
				found = true
				continue
			}
			kept = append(kept, m)
		}
		if !found {
			return app_errors.ErrModuleNotFound
		}
		doc.Modules = kept
		sort.Slice(doc.Modules, func(i, j int) bool { return doc.Modules[i].Order < doc.Modules[j].Order })
		for i := range doc.Modules {
			doc.Modules[i].Order = i
		}
		return nil
	})
}

// Reorder applies a full new display order. The submitted ids must be
// exactly the current module ids, each once; anything else leaves the store
// untouched.
func (s *Service) Reorder(ctx context.Context, ids []uuid.UUID) error {
	return s.store.Update(ctx, func(doc *models.StoreDocument) error {
		if len(ids) != len(doc.Modules) {
			return &app_errors.ValidationError{Field: "module_ids", Reason: "must list every module exactly once"}
		}
		position := make(map[uuid.UUID]int, len(ids))
		for i, id := range ids {
			if _, dup := position[id]; dup {
				return &app_errors.ValidationError{Field: "module_ids", Reason: "duplicate_id"}
			}
			position[id] = i
		}
		for i := range doc.Modules {
			pos, ok := position[doc.Modules[i].ID]
			if !ok {
				return &app_errors.ValidationError{Field: "module_ids", Reason: "unknown_id"}
			}
			doc.Modules[i].Order = pos
		}
		sort.Slice(doc.Modules, func(i, j int) bool { return doc.Modules[i].Order < doc.Modules[j].Order })
		return nil
	})
}
