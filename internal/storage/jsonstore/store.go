package jsonstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/julisunkan/LearnMan/internal/models"
)

// Store keeps the whole content catalog in a single JSON file. There are no
// partial writes: every save replaces the entire document. A missing file
// reads as an empty catalog.
type Store struct {
	path string
	mu   sync.Mutex
}

func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the current document. It takes no lock: Save replaces the file
// atomically, so a concurrent reader sees either the old or the new document,
// never a torn one.
func (s *Store) Load(ctx context.Context) (models.StoreDocument, error) {
	var doc models.StoreDocument
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return doc, nil
		}
		return doc, fmt.Errorf("read store document: %w", err)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("decode store document: %w", err)
	}
	return doc, nil
}

// Save writes the whole document via a temp file and rename.
func (s *Store) Save(ctx context.Context, doc models.StoreDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(doc)
}

// Update runs fn on the current document under the store's mutation lock and
// persists the result. Commit, reorder and delete all go through here so two
// racing admin edits cannot lose each other's writes.
func (s *Store) Update(ctx context.Context, fn func(doc *models.StoreDocument) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.Load(ctx)
	if err != nil {
		return err
	}
	if err := fn(&doc); err != nil {
		return err
	}
	return s.write(doc)
}

func (s *Store) write(doc models.StoreDocument) error {
	if doc.Modules == nil {
		doc.Modules = []models.Module{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store document: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".courses-*.json")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write store document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp store file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace store document: %w", err)
	}
	return nil
}
