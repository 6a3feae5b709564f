// Package service implements the domain service interfaces on top of
// the tree store, adding request validation and logging.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"docshelf/internal/config"
	"docshelf/internal/domain"
	"docshelf/internal/domain/models"
	"docshelf/internal/domain/services"
	"docshelf/internal/store"
)

type sectionService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewSectionService creates a section service backed by the tree store.
func NewSectionService(treeStore *store.Store, logger *slog.Logger) services.SectionService {
	return &sectionService{store: treeStore, logger: logger}
}

func (s *sectionService) ListSections(ctx context.Context) []models.Section {
	return s.store.Snapshot()
}

func (s *sectionService) CreateSection(ctx context.Context, req *services.CreateSectionRequest) (*models.Section, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, config.MaxSectionNameLength)),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	section := s.store.CreateSection(req.Name)

	s.logger.Info("section created", "id", section.ID, "name", section.Name)
	return section, nil
}

func (s *sectionService) UpdateSection(ctx context.Context, id string, req *services.UpdateSectionRequest) (*models.Section, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, config.MaxSectionNameLength)),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	section, err := s.store.UpdateSection(id, req.Name)
	if err != nil {
		return nil, err
	}

	s.logger.Info("section renamed", "id", id, "name", req.Name)
	return section, nil
}

func (s *sectionService) DeleteSection(ctx context.Context, id string) error {
	if err := s.store.DeleteSection(id); err != nil {
		return err
	}

	s.logger.Info("section deleted", "id", id)
	return nil
}

func (s *sectionService) GetTree(ctx context.Context, id string) (*models.Section, error) {
	return s.store.SectionTree(id)
}

func (s *sectionService) ListFiles(ctx context.Context, id string) ([]*models.File, error) {
	return s.store.AllFiles(id)
}
