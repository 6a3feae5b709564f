// Package seed reads and writes the JSON snapshot format the store is
// initialized from.
package seed

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"docshelf/internal/domain/models"
)

// Document is the top-level seed shape.
type Document struct {
	Sections []models.Section `json:"sections"`
}

// Parse decodes and shape-checks a seed document. Unlike Load it
// surfaces errors, which is what the seed tool wants.
func Parse(data []byte) ([]models.Section, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	for i := range doc.Sections {
		sec := &doc.Sections[i]
		if sec.ID == "" {
			return nil, fmt.Errorf("section %d: missing id", i)
		}
		if sec.Type != models.ItemTypeSection {
			return nil, fmt.Errorf("section %q: type must be %q, got %q", sec.ID, models.ItemTypeSection, sec.Type)
		}
		if sec.Items == nil {
			sec.Items = []models.Item{}
		}
	}
	return doc.Sections, nil
}

// Load parses seed data for server startup. Malformed data degrades to
// an empty section list rather than an error; the server starts with an
// empty forest and the problem is logged.
func Load(data []byte, logger *slog.Logger) []models.Section {
	sections, err := Parse(data)
	if err != nil {
		logger.Warn("seed data malformed, starting with empty section list", "error", err)
		return []models.Section{}
	}
	return sections
}

// LoadFile loads a seed file with the same fallback semantics as Load.
// A missing file is also treated as an empty forest.
func LoadFile(path string, logger *slog.Logger) []models.Section {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("seed file unreadable, starting with empty section list", "path", path, "error", err)
		return []models.Section{}
	}
	return Load(data, logger)
}

// Serialize renders sections back into the seed document shape. The
// output round-trips through Parse into a structurally identical tree.
func Serialize(sections []models.Section) ([]byte, error) {
	doc := Document{Sections: sections}
	if doc.Sections == nil {
		doc.Sections = []models.Section{}
	}
	return json.MarshalIndent(doc, "", "  ")
}
