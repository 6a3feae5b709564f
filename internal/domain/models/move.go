package models

import "fmt"

// MoveDestination addresses the container files are moved into.
// Path always begins with the owning section's id; for a folder
// destination the final path element is the folder's id.
type MoveDestination struct {
	Type ItemType `json:"type"` // section or folder
	ID   string   `json:"id"`
	Path []string `json:"path"`
}

// Validate checks the destination contract before any mutation happens.
func (d *MoveDestination) Validate() error {
	switch d.Type {
	case ItemTypeSection, ItemTypeFolder:
	default:
		return fmt.Errorf("destination type must be %q or %q, got %q", ItemTypeSection, ItemTypeFolder, d.Type)
	}
	if d.ID == "" {
		return fmt.Errorf("destination id is required")
	}
	if len(d.Path) == 0 {
		return fmt.Errorf("destination path is required")
	}
	if d.Type == ItemTypeSection && d.Path[0] != d.ID {
		return fmt.Errorf("section destination path must begin with the section id")
	}
	if d.Type == ItemTypeFolder && d.Path[len(d.Path)-1] != d.ID {
		return fmt.Errorf("folder destination path must end with the folder id")
	}
	return nil
}

// MovedFile records one relocated file with its old and new full paths.
type MovedFile struct {
	FileID string   `json:"file_id"`
	From   []string `json:"from"`
	To     []string `json:"to"`
}

// MoveReport is the per-item outcome of a bulk move. A file id that
// matched nothing ends up in Missing; it is never dropped from the tree.
type MoveReport struct {
	Moved   []MovedFile `json:"moved"`
	Missing []string    `json:"missing"`
}
