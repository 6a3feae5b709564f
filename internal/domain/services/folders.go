package services

import (
	"context"

	"docshelf/internal/domain/models"
)

// CreateFolderRequest creates a folder under parent_path (empty =
// section root). parent_path is a sequence of folder ids walked from
// the section root.
type CreateFolderRequest struct {
	SectionID  string   `json:"section_id"`
	Name       string   `json:"name"`
	ParentPath []string `json:"parent_path"`
}

// UpdateFolderRequest renames the folder at folder_path.
type UpdateFolderRequest struct {
	SectionID  string   `json:"section_id"`
	FolderPath []string `json:"folder_path"`
	Name       string   `json:"name"`
}

// DeleteFolderRequest removes the folder at folder_path with its
// subtree.
type DeleteFolderRequest struct {
	SectionID  string   `json:"section_id"`
	FolderPath []string `json:"folder_path"`
}

// FolderService owns folder mutations. Folders are addressed by
// section id plus full id path, matching the UI's navigation state.
type FolderService interface {
	CreateFolder(ctx context.Context, req *CreateFolderRequest) (*models.Folder, error)
	UpdateFolder(ctx context.Context, req *UpdateFolderRequest) (*models.Folder, error)
	DeleteFolder(ctx context.Context, req *DeleteFolderRequest) error
}
