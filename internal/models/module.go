package models

import (
	"time"

	"github.com/google/uuid"
)

// StoreDocument is the whole content catalog as persisted on disk. It is
// always loaded and saved as a single unit.
type StoreDocument struct {
	Modules []Module `json:"modules"`
}

// ModuleByID returns a pointer into the document's module slice, or nil.
func (d *StoreDocument) ModuleByID(id uuid.UUID) *Module {
	for i := range d.Modules {
		if d.Modules[i].ID == id {
			return &d.Modules[i]
		}
	}
	return nil
}

type Module struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	VideoURL    string    `json:"video_url,omitempty"`
	Resources   []string  `json:"resources,omitempty"`
	Order       int       `json:"order"`
	Quiz        *Quiz     `json:"quiz,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Quiz struct {
	PassThreshold float64    `json:"pass_threshold"`
	Questions     []Question `json:"questions"`
}

// ModulePayload is the admin-submitted body for creating or editing a module,
// either typed by hand or carried over from an import preview.
type ModulePayload struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	VideoURL    string   `json:"video_url"`
	Resources   []string `json:"resources"`
	Quiz        *Quiz    `json:"quiz"`
}
