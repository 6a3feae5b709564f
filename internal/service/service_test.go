package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"docshelf/internal/domain"
	"docshelf/internal/domain/models"
	"docshelf/internal/domain/services"
	"docshelf/internal/filetypes"
	"docshelf/internal/httputil"
	"docshelf/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRegistry(t *testing.T) *filetypes.Registry {
	t.Helper()
	registry, err := filetypes.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	return registry
}

// serviceStore seeds a minimal tree: section sec-1 "Docs" holding
// folder fld-1 "Reports" and root file file-1 "Notes.txt".
func serviceStore(t *testing.T) *store.Store {
	t.Helper()
	created := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	s := store.New()
	err := s.Load([]models.Section{
		{
			ID:   "sec-1",
			Name: "Docs",
			Type: models.ItemTypeSection,
			Items: []models.Item{
				&models.Folder{ID: "fld-1", Name: "Reports", Type: models.ItemTypeFolder, Items: []models.Item{}},
				&models.File{
					ID: "file-1", Name: "Notes.txt", Type: models.ItemTypeFile,
					Size: "1 KB", FileType: "text",
					CreatedAt: created, LastModified: created,
					Author: "Dana Whitfield", Tags: []string{},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return s
}

func TestSectionService_CreateValidation(t *testing.T) {
	svc := NewSectionService(serviceStore(t), testLogger())
	ctx := context.Background()

	tests := []struct {
		name    string
		reqName string
		wantErr bool
	}{
		{"valid", "Finance", false},
		{"trims whitespace", "  Finance  ", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"too long", strings.Repeat("x", 256), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			section, err := svc.CreateSection(ctx, &services.CreateSectionRequest{Name: tt.reqName})
			if tt.wantErr {
				if !errors.Is(err, domain.ErrValidation) {
					t.Fatalf("CreateSection(%q) error = %v, want ErrValidation", tt.reqName, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateSection(%q) error = %v", tt.reqName, err)
			}
			if section.Name != strings.TrimSpace(tt.reqName) {
				t.Errorf("name = %q, want trimmed %q", section.Name, strings.TrimSpace(tt.reqName))
			}
		})
	}
}

func TestSectionService_UpdatePassesThroughNotFound(t *testing.T) {
	svc := NewSectionService(serviceStore(t), testLogger())

	_, err := svc.UpdateSection(context.Background(), "ghost", &services.UpdateSectionRequest{Name: "X"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("UpdateSection(ghost) error = %v, want ErrNotFound", err)
	}
}

func TestFolderService_CreateValidation(t *testing.T) {
	svc := NewFolderService(serviceStore(t), testLogger())
	ctx := context.Background()

	tests := []struct {
		name    string
		req     services.CreateFolderRequest
		wantErr error
	}{
		{"valid at root", services.CreateFolderRequest{SectionID: "sec-1", Name: "Drafts"}, nil},
		{"valid nested", services.CreateFolderRequest{SectionID: "sec-1", Name: "Q3", ParentPath: []string{"fld-1"}}, nil},
		{"missing section id", services.CreateFolderRequest{Name: "Drafts"}, domain.ErrValidation},
		{"empty name", services.CreateFolderRequest{SectionID: "sec-1", Name: "  "}, domain.ErrValidation},
		{"slash in name", services.CreateFolderRequest{SectionID: "sec-1", Name: "a/b"}, domain.ErrValidation},
		{"empty path segment", services.CreateFolderRequest{SectionID: "sec-1", Name: "Drafts", ParentPath: []string{""}}, domain.ErrValidation},
		{"duplicate sibling name", services.CreateFolderRequest{SectionID: "sec-1", Name: "Reports"}, domain.ErrConflict},
		{"unknown section", services.CreateFolderRequest{SectionID: "ghost", Name: "Drafts"}, domain.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			folder, err := svc.CreateFolder(ctx, &tt.req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("CreateFolder() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateFolder() error = %v", err)
			}
			if folder.ID == "" || folder.Name != tt.req.Name {
				t.Errorf("folder = %+v", folder)
			}
		})
	}
}

func TestFolderService_UpdateValidation(t *testing.T) {
	svc := NewFolderService(serviceStore(t), testLogger())
	ctx := context.Background()

	_, err := svc.UpdateFolder(ctx, &services.UpdateFolderRequest{
		SectionID: "sec-1", FolderPath: nil, Name: "X",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("UpdateFolder(empty path) error = %v, want ErrValidation", err)
	}

	folder, err := svc.UpdateFolder(ctx, &services.UpdateFolderRequest{
		SectionID: "sec-1", FolderPath: []string{"fld-1"}, Name: "Quarterly",
	})
	if err != nil {
		t.Fatalf("UpdateFolder() error = %v", err)
	}
	if folder.Name != "Quarterly" {
		t.Errorf("name = %q, want Quarterly", folder.Name)
	}
}

func TestFileService_UpdateValidation(t *testing.T) {
	treeStore := serviceStore(t)
	svc := NewFileService(treeStore, testRegistry(t), testLogger())
	ctx := context.Background()

	if _, err := svc.UpdateFile(ctx, "file-1", &services.UpdateFileRequest{}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("UpdateFile(no fields) error = %v, want ErrValidation", err)
	}

	bogus := "floppy"
	if _, err := svc.UpdateFile(ctx, "file-1", &services.UpdateFileRequest{FileType: &bogus}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("UpdateFile(unknown file type) error = %v, want ErrValidation", err)
	}

	empty := "   "
	if _, err := svc.UpdateFile(ctx, "file-1", &services.UpdateFileRequest{Name: &empty}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("UpdateFile(blank name) error = %v, want ErrValidation", err)
	}

	name, starred := "  Meeting Notes.txt  ", true
	file, err := svc.UpdateFile(ctx, "file-1", &services.UpdateFileRequest{Name: &name, IsStarred: &starred})
	if err != nil {
		t.Fatalf("UpdateFile() error = %v", err)
	}
	if file.Name != "Meeting Notes.txt" || !file.IsStarred {
		t.Errorf("file = name %q starred %v", file.Name, file.IsStarred)
	}
}

func TestFileService_MoveUsesSessionUser(t *testing.T) {
	treeStore := serviceStore(t)
	svc := NewFileService(treeStore, testRegistry(t), testLogger())

	req := httputil.WithUserID(httptest.NewRequest(http.MethodPost, "/api/files/move", nil), "casey")
	report, err := svc.MoveFiles(req.Context(), &services.MoveFilesRequest{
		FileIDs: []string{"file-1"},
		Destination: models.MoveDestination{
			Type: models.ItemTypeFolder,
			ID:   "fld-1",
			Path: []string{"sec-1", "fld-1"},
		},
	})
	if err != nil {
		t.Fatalf("MoveFiles() error = %v", err)
	}
	if len(report.Moved) != 1 || len(report.Missing) != 0 {
		t.Fatalf("report = %+v", report)
	}

	item, err := treeStore.FindItemByPath([]string{"sec-1", "fld-1", "file-1"})
	if err != nil {
		t.Fatalf("FindItemByPath() after move error = %v", err)
	}
	file := item.(*models.File)
	if len(file.AuditLog) == 0 || file.AuditLog[0].User != "casey" {
		t.Errorf("audit log = %+v, want newest entry by casey", file.AuditLog)
	}
}

func TestFileService_MoveFallbackUser(t *testing.T) {
	treeStore := serviceStore(t)
	svc := NewFileService(treeStore, testRegistry(t), testLogger())

	_, err := svc.MoveFiles(context.Background(), &services.MoveFilesRequest{
		FileIDs: []string{"file-1"},
		Destination: models.MoveDestination{
			Type: models.ItemTypeFolder,
			ID:   "fld-1",
			Path: []string{"sec-1", "fld-1"},
		},
	})
	if err != nil {
		t.Fatalf("MoveFiles() error = %v", err)
	}

	item, err := treeStore.FindItemByPath([]string{"sec-1", "fld-1", "file-1"})
	if err != nil {
		t.Fatalf("FindItemByPath() after move error = %v", err)
	}
	if file := item.(*models.File); file.AuditLog[0].User != "system" {
		t.Errorf("audit user = %q, want system", file.AuditLog[0].User)
	}
}

func TestFileService_MoveValidation(t *testing.T) {
	svc := NewFileService(serviceStore(t), testRegistry(t), testLogger())

	_, err := svc.MoveFiles(context.Background(), &services.MoveFilesRequest{
		FileIDs: nil,
		Destination: models.MoveDestination{
			Type: models.ItemTypeSection, ID: "sec-1", Path: []string{"sec-1"},
		},
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("MoveFiles(no ids) error = %v, want ErrValidation", err)
	}
}
