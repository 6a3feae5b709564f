// Package services defines the service interfaces handlers depend on,
// together with their request types.
package services

import (
	"context"

	"docshelf/internal/domain/models"
)

// CreateSectionRequest creates a top-level section.
type CreateSectionRequest struct {
	Name string `json:"name"`
}

// UpdateSectionRequest renames a section.
type UpdateSectionRequest struct {
	Name string `json:"name"`
}

// SectionService owns top-level section CRUD and section-scoped reads.
type SectionService interface {
	ListSections(ctx context.Context) []models.Section
	CreateSection(ctx context.Context, req *CreateSectionRequest) (*models.Section, error)
	UpdateSection(ctx context.Context, id string, req *UpdateSectionRequest) (*models.Section, error)
	DeleteSection(ctx context.Context, id string) error

	// GetTree returns one section's full nested tree.
	GetTree(ctx context.Context, id string) (*models.Section, error)

	// ListFiles flattens a section's files in depth-first pre-order.
	ListFiles(ctx context.Context, id string) ([]*models.File, error)
}
