package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"docshelf/internal/config"
	"docshelf/internal/domain"
	"docshelf/internal/domain/models"
	"docshelf/internal/domain/services"
	"docshelf/internal/store"
)

// folderNamePattern keeps names out of the path wire format: folder
// paths are /-joined id sequences, so ids and names must not carry /.
var folderNamePattern = regexp.MustCompile(`^[^/]+$`)

type folderService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewFolderService creates a folder service backed by the tree store.
func NewFolderService(treeStore *store.Store, logger *slog.Logger) services.FolderService {
	return &folderService{store: treeStore, logger: logger}
}

func (s *folderService) CreateFolder(ctx context.Context, req *services.CreateFolderRequest) (*models.Folder, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validation.ValidateStruct(req,
		validation.Field(&req.SectionID, validation.Required),
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxFolderNameLength),
			validation.Match(folderNamePattern).Error("folder name cannot contain slashes"),
		),
		validation.Field(&req.ParentPath,
			validation.Length(0, config.MaxPathDepth),
			validation.Each(validation.Required),
		),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	folder, err := s.store.CreateFolder(req.SectionID, req.Name, req.ParentPath)
	if err != nil {
		return nil, err
	}

	s.logger.Info("folder created",
		"id", folder.ID,
		"name", folder.Name,
		"section_id", req.SectionID,
		"parent_path", strings.Join(req.ParentPath, "/"),
	)
	return folder, nil
}

func (s *folderService) UpdateFolder(ctx context.Context, req *services.UpdateFolderRequest) (*models.Folder, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validation.ValidateStruct(req,
		validation.Field(&req.SectionID, validation.Required),
		validation.Field(&req.FolderPath,
			validation.Required,
			validation.Length(1, config.MaxPathDepth),
			validation.Each(validation.Required),
		),
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxFolderNameLength),
			validation.Match(folderNamePattern).Error("folder name cannot contain slashes"),
		),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	folder, err := s.store.UpdateFolder(req.SectionID, req.FolderPath, req.Name)
	if err != nil {
		return nil, err
	}

	s.logger.Info("folder renamed",
		"id", folder.ID,
		"name", folder.Name,
		"section_id", req.SectionID,
	)
	return folder, nil
}

func (s *folderService) DeleteFolder(ctx context.Context, req *services.DeleteFolderRequest) error {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.SectionID, validation.Required),
		validation.Field(&req.FolderPath,
			validation.Required,
			validation.Length(1, config.MaxPathDepth),
			validation.Each(validation.Required),
		),
	); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if err := s.store.DeleteFolder(req.SectionID, req.FolderPath); err != nil {
		return err
	}

	s.logger.Info("folder deleted",
		"section_id", req.SectionID,
		"folder_path", strings.Join(req.FolderPath, "/"),
	)
	return nil
}
