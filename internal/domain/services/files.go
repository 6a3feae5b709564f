package services

import (
	"context"

	"docshelf/internal/domain/models"
)

// UpdateFileRequest is a partial metadata update; absent fields are
// left unchanged.
type UpdateFileRequest struct {
	Name      *string   `json:"name"`
	Author    *string   `json:"author"`
	FileType  *string   `json:"file_type"`
	Tags      *[]string `json:"tags"`
	IsStarred *bool     `json:"is_starred"`
}

// MoveFilesRequest relocates a batch of files into one destination.
type MoveFilesRequest struct {
	FileIDs     []string               `json:"file_ids"`
	Destination models.MoveDestination `json:"destination"`
}

// FileService owns file metadata updates and relocation.
type FileService interface {
	UpdateFile(ctx context.Context, id string, req *UpdateFileRequest) (*models.File, error)

	// MoveFiles is atomic: an unresolvable destination fails the whole
	// request with nothing mutated. Ids that match no file come back in
	// the report's Missing list.
	MoveFiles(ctx context.Context, req *MoveFilesRequest) (*models.MoveReport, error)
}
