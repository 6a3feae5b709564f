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
	"docshelf/internal/filetypes"
	"docshelf/internal/httputil"
	"docshelf/internal/store"
)

// fallbackUser names mutations performed without a session identity,
// which only happens in dev with auth disabled paths.
const fallbackUser = "system"

type fileService struct {
	store     *store.Store
	fileTypes *filetypes.Registry
	logger    *slog.Logger
}

// NewFileService creates a file service backed by the tree store. The
// file-type registry validates fileType tags on metadata updates.
func NewFileService(treeStore *store.Store, registry *filetypes.Registry, logger *slog.Logger) services.FileService {
	return &fileService{store: treeStore, fileTypes: registry, logger: logger}
}

func (s *fileService) UpdateFile(ctx context.Context, id string, req *services.UpdateFileRequest) (*models.File, error) {
	if id == "" {
		return nil, &domain.ValidationError{Message: "file id is required"}
	}
	if req.Name == nil && req.Author == nil && req.FileType == nil && req.Tags == nil && req.IsStarred == nil {
		return nil, &domain.ValidationError{Message: "at least one field must be provided"}
	}
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		req.Name = &trimmed
		if err := validation.Validate(*req.Name,
			validation.Required,
			validation.Length(1, config.MaxFileNameLength),
		); err != nil {
			return nil, fmt.Errorf("%w: name: %v", domain.ErrValidation, err)
		}
	}
	if req.FileType != nil && !s.fileTypes.Known(*req.FileType) {
		return nil, &domain.ValidationError{
			Message: fmt.Sprintf("unknown file type %q (known: %s)", *req.FileType, strings.Join(s.fileTypes.Tags(), ", ")),
		}
	}

	file, err := s.store.UpdateFile(id, store.FileUpdate{
		Name:     req.Name,
		Author:   req.Author,
		FileType: req.FileType,
		Tags:     req.Tags,
		Starred:  req.IsStarred,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("file metadata updated", "id", id, "name", file.Name)
	return file, nil
}

func (s *fileService) MoveFiles(ctx context.Context, req *services.MoveFilesRequest) (*models.MoveReport, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.FileIDs,
			validation.Required,
			validation.Length(1, config.MaxMoveBatch),
			validation.Each(validation.Required),
		),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	user := httputil.UserFromContext(ctx)
	if user == "" {
		user = fallbackUser
	}

	report, err := s.store.MoveFiles(req.FileIDs, req.Destination, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("files moved",
		"moved", len(report.Moved),
		"missing", len(report.Missing),
		"destination_type", req.Destination.Type,
		"destination_id", req.Destination.ID,
		"user", user,
	)
	return report, nil
}
