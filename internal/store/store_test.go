package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"docshelf/internal/domain"
	"docshelf/internal/domain/models"
)

var fixedNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

// testStore builds a store with a deterministic clock and id sequence,
// seeded with two sections:
//
//	s1 "Engineering"
//	├── f1 "Specs"
//	│   ├── f2 "Archive"
//	│   │   └── doc1 "Budget Analysis.xlsx"
//	│   └── doc2 "BudgetReport.pdf"
//	└── doc3 "MyBudgetFile.pdf"
//	s2 "Design"
//	├── f3 "Assets"
//	└── doc4 "Logo.png"
func testStore(t *testing.T) *Store {
	t.Helper()

	counter := 0
	s := New(
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() string {
			counter++
			return fmt.Sprintf("gen-%d", counter)
		}),
	)
	if err := s.Load(testSections()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return s
}

func testSections() []models.Section {
	created := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	modified := time.Date(2026, 8, 15, 9, 30, 0, 0, time.UTC)

	file := func(id, name, author string, tags ...string) *models.File {
		return &models.File{
			ID:           id,
			Name:         name,
			Type:         models.ItemTypeFile,
			Size:         "1.0 MB",
			FileType:     "pdf",
			LastModified: modified,
			CreatedAt:    created,
			Author:       author,
			Tags:         tags,
			AuditLog: []models.AuditEntry{
				{Time: created, User: author, Action: "Uploaded file"},
			},
		}
	}

	return []models.Section{
		{
			ID: "s1", Name: "Engineering", Type: models.ItemTypeSection,
			Items: []models.Item{
				&models.Folder{
					ID: "f1", Name: "Specs", Type: models.ItemTypeFolder,
					Items: []models.Item{
						&models.Folder{
							ID: "f2", Name: "Archive", Type: models.ItemTypeFolder,
							Items: []models.Item{
								file("doc1", "Budget Analysis.xlsx", "Dana Whitfield", "finance", "q3"),
							},
						},
						file("doc2", "BudgetReport.pdf", "Dana Whitfield", "finance"),
					},
				},
				file("doc3", "MyBudgetFile.pdf", "Priya Natarajan"),
			},
		},
		{
			ID: "s2", Name: "Design", Type: models.ItemTypeSection,
			Items: []models.Item{
				&models.Folder{ID: "f3", Name: "Assets", Type: models.ItemTypeFolder, Items: []models.Item{}},
				file("doc4", "Logo.png", "Marco Ellis", "brand"),
			},
		},
	}
}

func TestLoad_RejectsDuplicateIDs(t *testing.T) {
	s := New()
	err := s.Load([]models.Section{
		{
			ID: "s1", Name: "A", Type: models.ItemTypeSection,
			Items: []models.Item{
				&models.Folder{ID: "dup", Name: "X", Type: models.ItemTypeFolder},
				&models.Folder{ID: "dup", Name: "Y", Type: models.ItemTypeFolder},
			},
		},
	})
	if err == nil {
		t.Fatal("Load() expected error for duplicate item ids")
	}
}

func TestLoad_LeavesStoreUnchangedOnError(t *testing.T) {
	s := testStore(t)
	err := s.Load([]models.Section{{Name: "missing id", Type: models.ItemTypeSection}})
	if err == nil {
		t.Fatal("Load() expected error for section without id")
	}
	if got := len(s.Snapshot()); got != 2 {
		t.Fatalf("Snapshot() after failed Load = %d sections, want 2", got)
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	s := testStore(t)

	fresh := New()
	if err := fresh.Load(s.Snapshot()); err != nil {
		t.Fatalf("Load(Snapshot()) error = %v", err)
	}

	// Structural identity: paths, names and metadata survive the trip.
	for _, path := range [][]string{
		{"s1"},
		{"s1", "f1", "f2", "doc1"},
		{"s2", "f3"},
	} {
		orig, err := s.FindItemByPath(path)
		if err != nil {
			t.Fatalf("original FindItemByPath(%v) error = %v", path, err)
		}
		copied, err := fresh.FindItemByPath(path)
		if err != nil {
			t.Fatalf("reloaded FindItemByPath(%v) error = %v", path, err)
		}
		if orig.ItemID() != copied.ItemID() || orig.ItemName() != copied.ItemName() || orig.ItemKind() != copied.ItemKind() {
			t.Errorf("round-trip mismatch at %v: %v vs %v", path, orig, copied)
		}
	}

	origFile, _ := s.FindItemByPath([]string{"s1", "f1", "f2", "doc1"})
	copyFile, _ := fresh.FindItemByPath([]string{"s1", "f1", "f2", "doc1"})
	of, cf := origFile.(*models.File), copyFile.(*models.File)
	if of.Author != cf.Author || of.Size != cf.Size || !of.LastModified.Equal(cf.LastModified) ||
		len(of.Tags) != len(cf.Tags) || len(of.AuditLog) != len(cf.AuditLog) {
		t.Errorf("file metadata lost in round-trip: %+v vs %+v", of, cf)
	}
}

func TestCreateSection(t *testing.T) {
	s := testStore(t)

	created := s.CreateSection("Legal")
	if created.ID == "" {
		t.Fatal("CreateSection() returned empty id")
	}
	if created.Name != "Legal" {
		t.Errorf("CreateSection() name = %q, want %q", created.Name, "Legal")
	}
	if len(created.Items) != 0 {
		t.Errorf("CreateSection() items = %d, want 0", len(created.Items))
	}

	// Appended to the end of the section list.
	snapshot := s.Snapshot()
	if got := snapshot[len(snapshot)-1].ID; got != created.ID {
		t.Errorf("new section at position %q, want last", got)
	}
}

func TestUpdateSection(t *testing.T) {
	s := testStore(t)

	updated, err := s.UpdateSection("s1", "Platform")
	if err != nil {
		t.Fatalf("UpdateSection() error = %v", err)
	}
	if updated.Name != "Platform" {
		t.Errorf("UpdateSection() name = %q, want %q", updated.Name, "Platform")
	}

	// Idempotent under the same name.
	if _, err := s.UpdateSection("s1", "Platform"); err != nil {
		t.Fatalf("UpdateSection() second rename error = %v", err)
	}

	if _, err := s.UpdateSection("nope", "X"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("UpdateSection(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestDeleteSection(t *testing.T) {
	s := testStore(t)

	if err := s.DeleteSection("s1"); err != nil {
		t.Fatalf("DeleteSection() error = %v", err)
	}
	if _, err := s.SectionTree("s1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("SectionTree(deleted) error = %v, want ErrNotFound", err)
	}
	// The whole subtree is gone from aggregation.
	if _, err := s.AllFiles("s1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("AllFiles(deleted) error = %v, want ErrNotFound", err)
	}
	if got := len(s.Snapshot()); got != 1 {
		t.Errorf("Snapshot() = %d sections, want 1", got)
	}

	if err := s.DeleteSection("s1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("DeleteSection(twice) error = %v, want ErrNotFound", err)
	}
}
