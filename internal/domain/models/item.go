package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// ItemType discriminates the three node kinds in the document tree.
type ItemType string

const (
	ItemTypeSection ItemType = "section"
	ItemTypeFolder  ItemType = "folder"
	ItemTypeFile    ItemType = "file"
)

// Item is a node in a section's tree: a Folder or a File.
// Section itself also implements Item so path lookups can return any node kind.
type Item interface {
	ItemID() string
	ItemName() string
	ItemKind() ItemType
}

// Section is a top-level named tree root. Child order is insertion order
// and is display-significant.
type Section struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Type  ItemType `json:"type"`
	Items []Item   `json:"items"`
}

// Folder is a nestable container of folders and files.
type Folder struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Type  ItemType `json:"type"`
	Items []Item   `json:"items"`
}

// File is a leaf document record. Content is out of scope; only metadata
// and the append-only audit log are kept.
type File struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Type         ItemType     `json:"type"`
	Size         string       `json:"size"` // human-readable, e.g. "2.4 MB"
	FileType     string       `json:"fileType"`
	LastModified time.Time    `json:"lastModified"`
	CreatedAt    time.Time    `json:"createdAt"`
	Author       string       `json:"author"`
	Tags         []string     `json:"tags"`
	IsStarred    bool         `json:"isStarred"`
	AuditLog     []AuditEntry `json:"auditLog,omitempty"`
}

// AuditEntry is one recorded action on a file. The audit log is ordered
// newest-first; new entries are prepended.
type AuditEntry struct {
	Time   time.Time `json:"time"`
	User   string    `json:"user"`
	Action string    `json:"action"`
}

func (s *Section) ItemID() string     { return s.ID }
func (s *Section) ItemName() string   { return s.Name }
func (s *Section) ItemKind() ItemType { return ItemTypeSection }

func (f *Folder) ItemID() string     { return f.ID }
func (f *Folder) ItemName() string   { return f.Name }
func (f *Folder) ItemKind() ItemType { return ItemTypeFolder }

func (f *File) ItemID() string     { return f.ID }
func (f *File) ItemName() string   { return f.Name }
func (f *File) ItemKind() ItemType { return ItemTypeFile }

// sectionAlias avoids UnmarshalJSON recursion.
type sectionAlias struct {
	ID    string            `json:"id"`
	Name  string            `json:"name"`
	Type  ItemType          `json:"type"`
	Items []json.RawMessage `json:"items"`
}

type folderAlias struct {
	ID    string            `json:"id"`
	Name  string            `json:"name"`
	Type  ItemType          `json:"type"`
	Items []json.RawMessage `json:"items"`
}

// UnmarshalJSON decodes a section and its item union by the "type" tag.
func (s *Section) UnmarshalJSON(data []byte) error {
	var raw sectionAlias
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	items, err := decodeItems(raw.Items)
	if err != nil {
		return err
	}
	s.ID = raw.ID
	s.Name = raw.Name
	s.Type = raw.Type
	s.Items = items
	return nil
}

// UnmarshalJSON decodes a folder and its item union by the "type" tag.
func (f *Folder) UnmarshalJSON(data []byte) error {
	var raw folderAlias
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	items, err := decodeItems(raw.Items)
	if err != nil {
		return err
	}
	f.ID = raw.ID
	f.Name = raw.Name
	f.Type = raw.Type
	f.Items = items
	return nil
}

// decodeItems resolves the Folder|File union for each child element.
func decodeItems(raw []json.RawMessage) ([]Item, error) {
	items := make([]Item, 0, len(raw))
	for _, msg := range raw {
		var probe struct {
			Type ItemType `json:"type"`
		}
		if err := json.Unmarshal(msg, &probe); err != nil {
			return nil, err
		}
		switch probe.Type {
		case ItemTypeFolder:
			var folder Folder
			if err := json.Unmarshal(msg, &folder); err != nil {
				return nil, err
			}
			items = append(items, &folder)
		case ItemTypeFile:
			var file File
			if err := json.Unmarshal(msg, &file); err != nil {
				return nil, err
			}
			if file.Tags == nil {
				file.Tags = []string{}
			}
			items = append(items, &file)
		default:
			return nil, fmt.Errorf("unknown item type %q", probe.Type)
		}
	}
	return items, nil
}
