package store

import (
	"errors"
	"testing"

	"docshelf/internal/domain"
	"docshelf/internal/domain/models"
)

func TestCreateFolder(t *testing.T) {
	tests := []struct {
		name       string
		sectionID  string
		folderName string
		parentPath []string
		wantErr    error
	}{
		{
			name:       "at section root",
			sectionID:  "s1",
			folderName: "Drafts",
			parentPath: []string{},
		},
		{
			name:       "nested two levels deep",
			sectionID:  "s1",
			folderName: "Old",
			parentPath: []string{"f1", "f2"},
		},
		{
			name:       "unknown section",
			sectionID:  "nope",
			folderName: "Drafts",
			wantErr:    domain.ErrNotFound,
		},
		{
			name:       "unresolved middle segment drops the whole operation",
			sectionID:  "s1",
			folderName: "Drafts",
			parentPath: []string{"f1", "nope"},
			wantErr:    domain.ErrNotFound,
		},
		{
			name:       "file id in the path is not a folder",
			sectionID:  "s1",
			folderName: "Drafts",
			parentPath: []string{"f1", "doc2"},
			wantErr:    domain.ErrNotFound,
		},
		{
			name:       "segment that exists but is not a child of the previous one",
			sectionID:  "s1",
			folderName: "Drafts",
			parentPath: []string{"f2"}, // f2 is under f1, not at the root
			wantErr:    domain.ErrNotFound,
		},
		{
			name:       "duplicate sibling name",
			sectionID:  "s1",
			folderName: "Specs",
			parentPath: []string{},
			wantErr:    domain.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testStore(t)

			folder, err := s.CreateFolder(tt.sectionID, tt.folderName, tt.parentPath)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("CreateFolder() error = %v, want %v", err, tt.wantErr)
				}
				// Failed creation must not mutate the tree.
				fresh := testStore(t)
				if len(s.Snapshot()) != len(fresh.Snapshot()) {
					t.Error("tree mutated despite failed CreateFolder")
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateFolder() error = %v", err)
			}

			// Existence after creation: the new folder's path resolves.
			path := append(append([]string{tt.sectionID}, tt.parentPath...), folder.ID)
			found, err := s.FindItemByPath(path)
			if err != nil {
				t.Fatalf("FindItemByPath(%v) after create error = %v", path, err)
			}
			if found.ItemName() != tt.folderName {
				t.Errorf("found folder name = %q, want %q", found.ItemName(), tt.folderName)
			}
		})
	}
}

func TestCreateFolder_AppendsToEnd(t *testing.T) {
	s := testStore(t)

	folder, err := s.CreateFolder("s1", "Drafts", nil)
	if err != nil {
		t.Fatalf("CreateFolder() error = %v", err)
	}

	tree, err := s.SectionTree("s1")
	if err != nil {
		t.Fatalf("SectionTree() error = %v", err)
	}
	last := tree.Items[len(tree.Items)-1]
	if last.ItemID() != folder.ID {
		t.Errorf("new folder at id %q, want appended last (%q)", last.ItemID(), folder.ID)
	}
}

func TestUpdateFolder(t *testing.T) {
	s := testStore(t)

	updated, err := s.UpdateFolder("s1", []string{"f1", "f2"}, "Cold Storage")
	if err != nil {
		t.Fatalf("UpdateFolder() error = %v", err)
	}

	// Targeted mutation: only the name changed.
	if updated.ID != "f2" {
		t.Errorf("UpdateFolder() id = %q, want f2", updated.ID)
	}
	if updated.Name != "Cold Storage" {
		t.Errorf("UpdateFolder() name = %q, want %q", updated.Name, "Cold Storage")
	}
	if len(updated.Items) != 1 || updated.Items[0].ItemID() != "doc1" {
		t.Errorf("UpdateFolder() children changed: %+v", updated.Items)
	}
}

func TestUpdateFolder_Errors(t *testing.T) {
	tests := []struct {
		name       string
		sectionID  string
		folderPath []string
		newName    string
		wantErr    error
	}{
		{"unknown section", "nope", []string{"f1"}, "X", domain.ErrNotFound},
		{"empty path", "s1", nil, "X", domain.ErrValidation},
		{"unresolved segment", "s1", []string{"f1", "nope"}, "X", domain.ErrNotFound},
		{"duplicate sibling name", "s2", []string{"f3"}, "Assets2", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testStore(t)
			_, err := s.UpdateFolder(tt.sectionID, tt.folderPath, tt.newName)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("UpdateFolder() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("UpdateFolder() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdateFolder_SiblingConflict(t *testing.T) {
	s := testStore(t)
	if _, err := s.CreateFolder("s1", "Drafts", nil); err != nil {
		t.Fatalf("CreateFolder() error = %v", err)
	}
	if _, err := s.UpdateFolder("s1", []string{"f1"}, "Drafts"); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("UpdateFolder() to sibling name error = %v, want ErrConflict", err)
	}
	// Renaming to its own current name is fine.
	if _, err := s.UpdateFolder("s1", []string{"f1"}, "Specs"); err != nil {
		t.Errorf("UpdateFolder() to own name error = %v", err)
	}
}

func TestDeleteFolder(t *testing.T) {
	s := testStore(t)

	if err := s.DeleteFolder("s1", []string{"f1"}); err != nil {
		t.Fatalf("DeleteFolder() error = %v", err)
	}

	// The folder and its whole subtree are gone.
	if _, err := s.FindItemByPath([]string{"s1", "f1"}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("FindItemByPath(deleted folder) error = %v, want ErrNotFound", err)
	}
	files, err := s.AllFiles("s1")
	if err != nil {
		t.Fatalf("AllFiles() error = %v", err)
	}
	if len(files) != 1 || files[0].ID != "doc3" {
		t.Errorf("AllFiles() after delete = %+v, want only doc3", fileIDs(files))
	}
}

func fileIDs(files []*models.File) []string {
	ids := make([]string, len(files))
	for i, f := range files {
		ids[i] = f.ID
	}
	return ids
}
