// Command seed generates a starter seed file for the tree store, or
// validates an existing one against the seed shape.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"docshelf/internal/config"
	"docshelf/internal/domain/models"
	"docshelf/internal/filetypes"
	"docshelf/internal/seed"
	"docshelf/internal/store"
)

func main() {
	out := flag.String("out", "", "Write a starter seed file to this path")
	validate := flag.String("validate", "", "Validate an existing seed file")
	force := flag.Bool("force", false, "Overwrite the output file if it exists")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	switch {
	case *validate != "":
		validateFile(*validate)
	case *out != "":
		writeStarter(*out, *force)
	default:
		// No flags: validate the configured seed file.
		validateFile(cfg.SeedFile)
	}
}

func validateFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", path, err)
	}
	sections, err := seed.Parse(data)
	if err != nil {
		log.Fatalf("Seed file %s is malformed: %v", path, err)
	}

	// Loading into a store also catches duplicate ids within a section.
	if err := store.New().Load(sections); err != nil {
		log.Fatalf("Seed file %s is inconsistent: %v", path, err)
	}

	files := 0
	for _, sec := range sections {
		files += countFiles(sec.Items)
	}
	fmt.Printf("ok: %d sections, %d files\n", len(sections), files)
}

func countFiles(items []models.Item) int {
	n := 0
	for _, item := range items {
		switch it := item.(type) {
		case *models.File:
			n++
		case *models.Folder:
			n += countFiles(it.Items)
		}
	}
	return n
}

func writeStarter(path string, force bool) {
	if _, err := os.Stat(path); err == nil && !force {
		log.Fatalf("Refusing to overwrite %s (use -force)", path)
	}

	registry, err := filetypes.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load file-type catalog: %v", err)
	}

	data, err := seed.Serialize(starterSections(registry))
	if err != nil {
		log.Fatalf("Failed to serialize seed data: %v", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", path, err)
	}
	fmt.Printf("wrote %s\n", path)
}

// starterSections builds a small but representative forest: nested
// folders, tagged files, and an audit trail.
func starterSections(registry *filetypes.Registry) []models.Section {
	now := time.Now().UTC().Truncate(time.Second)

	file := func(name, size, author string, tags ...string) *models.File {
		return &models.File{
			ID:           uuid.NewString(),
			Name:         name,
			Type:         models.ItemTypeFile,
			Size:         size,
			FileType:     registry.Detect(name),
			LastModified: now,
			CreatedAt:    now.Add(-30 * 24 * time.Hour),
			Author:       author,
			Tags:         tags,
			IsStarred:    false,
			AuditLog: []models.AuditEntry{
				{Time: now.Add(-30 * 24 * time.Hour), User: author, Action: "Uploaded file"},
			},
		}
	}

	reports := &models.Folder{
		ID:   uuid.NewString(),
		Name: "Quarterly Reports",
		Type: models.ItemTypeFolder,
		Items: []models.Item{
			file("Budget Analysis.xlsx", "1.2 MB", "Dana Whitfield", "finance", "q3"),
			file("Revenue Summary.pdf", "840 KB", "Dana Whitfield", "finance"),
		},
	}
	archive := &models.Folder{
		ID:    uuid.NewString(),
		Name:  "Archive",
		Type:  models.ItemTypeFolder,
		Items: []models.Item{reports},
	}

	return []models.Section{
		{
			ID:   uuid.NewString(),
			Name: "Finance",
			Type: models.ItemTypeSection,
			Items: []models.Item{
				archive,
				file("Expense Policy.docx", "260 KB", "Priya Natarajan", "policy"),
			},
		},
		{
			ID:   uuid.NewString(),
			Name: "Design",
			Type: models.ItemTypeSection,
			Items: []models.Item{
				file("Brand Guidelines.pdf", "4.8 MB", "Marco Ellis", "brand"),
				file("Homepage Mock.png", "2.1 MB", "Marco Ellis", "web", "draft"),
			},
		},
	}
}
