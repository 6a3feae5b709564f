// Package store owns the authoritative in-memory forest of sections.
//
// The tree is held in an arena: every section keeps its nodes in a flat
// map keyed by id, with child order stored as ordered id lists. Queries
// present the same nested tree shape as the seed format, but mutations
// never rebuild the tree; they splice id lists and update map entries.
// Paths are always recomputed from parent links, never cached.
package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"docshelf/internal/domain/models"
)

type nodeKind uint8

const (
	kindFolder nodeKind = iota
	kindFile
)

// node is one arena entry. parent is the owning folder id, or "" when
// the node sits directly under the section root. children is ordered
// and only populated for folders.
type node struct {
	id       string
	kind     nodeKind
	name     string
	parent   string
	children []string
	file     *fileMeta
}

type fileMeta struct {
	size       string
	fileType   string
	author     string
	tags       []string
	starred    bool
	createdAt  time.Time
	modifiedAt time.Time
	audit      []models.AuditEntry // newest-first
}

// section is one top-level tree root with its private arena. Ids are
// unique within a section's subtree; the arena enforces that on load
// and on every insert.
type section struct {
	id    string
	name  string
	root  []string // ordered child ids at the section root
	nodes map[string]*node
}

// Store is the tree store. All operations take the single mutex, so
// every mutation, including the two-phase move, is atomic with respect
// to concurrent requests.
type Store struct {
	mu       sync.RWMutex
	order    []string // section display order (insertion order)
	sections map[string]*section

	now   func() time.Time
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the timestamp source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides fresh-id generation. Used by tests.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		sections: make(map[string]*section),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the store contents with the given seed forest. On any
// error the store is left unchanged.
func (s *Store) Load(seed []models.Section) error {
	order := make([]string, 0, len(seed))
	sections := make(map[string]*section, len(seed))

	for i := range seed {
		src := &seed[i]
		if src.ID == "" {
			return fmt.Errorf("section %d: missing id", i)
		}
		if _, dup := sections[src.ID]; dup {
			return fmt.Errorf("duplicate section id %q", src.ID)
		}
		sec := &section{
			id:    src.ID,
			name:  src.Name,
			nodes: make(map[string]*node),
		}
		ids, err := registerItems(sec, "", src.Items)
		if err != nil {
			return fmt.Errorf("section %q: %w", src.ID, err)
		}
		sec.root = ids
		order = append(order, src.ID)
		sections[src.ID] = sec
	}

	s.mu.Lock()
	s.order = order
	s.sections = sections
	s.mu.Unlock()
	return nil
}

// registerItems walks a nested item list into the arena, preserving
// child order and rejecting duplicate ids within the section subtree.
func registerItems(sec *section, parent string, items []models.Item) ([]string, error) {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		id := item.ItemID()
		if id == "" {
			return nil, fmt.Errorf("item under %q: missing id", parentLabel(sec, parent))
		}
		if _, dup := sec.nodes[id]; dup {
			return nil, fmt.Errorf("duplicate item id %q", id)
		}
		switch it := item.(type) {
		case *models.Folder:
			n := &node{id: id, kind: kindFolder, name: it.Name, parent: parent}
			sec.nodes[id] = n
			children, err := registerItems(sec, id, it.Items)
			if err != nil {
				return nil, err
			}
			n.children = children
		case *models.File:
			sec.nodes[id] = &node{
				id:     id,
				kind:   kindFile,
				name:   it.Name,
				parent: parent,
				file: &fileMeta{
					size:       it.Size,
					fileType:   it.FileType,
					author:     it.Author,
					tags:       append([]string(nil), it.Tags...),
					starred:    it.IsStarred,
					createdAt:  it.CreatedAt,
					modifiedAt: it.LastModified,
					audit:      append([]models.AuditEntry(nil), it.AuditLog...),
				},
			}
		default:
			return nil, fmt.Errorf("item %q: unsupported kind %q", id, item.ItemKind())
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parentLabel(sec *section, parent string) string {
	if parent == "" {
		return sec.id
	}
	return parent
}

// Snapshot returns the whole forest in the nested seed shape, in
// section display order.
func (s *Store) Snapshot() []models.Section {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Section, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.sectionSnapshot(s.sections[id]))
	}
	return out
}

// childList returns the ordered child ids of a container ("" = root).
func (sec *section) childList(parent string) []string {
	if parent == "" {
		return sec.root
	}
	if n, ok := sec.nodes[parent]; ok {
		return n.children
	}
	return nil
}

func (sec *section) setChildList(parent string, ids []string) {
	if parent == "" {
		sec.root = ids
		return
	}
	if n, ok := sec.nodes[parent]; ok {
		n.children = ids
	}
}

// splice removes id from a container's child list.
func (sec *section) splice(parent, id string) {
	list := sec.childList(parent)
	for i, child := range list {
		if child == id {
			sec.setChildList(parent, append(list[:i], list[i+1:]...))
			return
		}
	}
}

// sectionSnapshot builds the nested tree for one section.
func (s *Store) sectionSnapshot(sec *section) *models.Section {
	return &models.Section{
		ID:    sec.id,
		Name:  sec.name,
		Type:  models.ItemTypeSection,
		Items: s.itemsSnapshot(sec, sec.root),
	}
}

func (s *Store) itemsSnapshot(sec *section, ids []string) []models.Item {
	items := make([]models.Item, 0, len(ids))
	for _, id := range ids {
		n := sec.nodes[id]
		if n == nil {
			continue
		}
		switch n.kind {
		case kindFolder:
			items = append(items, &models.Folder{
				ID:    n.id,
				Name:  n.name,
				Type:  models.ItemTypeFolder,
				Items: s.itemsSnapshot(sec, n.children),
			})
		case kindFile:
			items = append(items, fileSnapshot(n))
		}
	}
	return items
}

func fileSnapshot(n *node) *models.File {
	meta := n.file
	return &models.File{
		ID:           n.id,
		Name:         n.name,
		Type:         models.ItemTypeFile,
		Size:         meta.size,
		FileType:     meta.fileType,
		LastModified: meta.modifiedAt,
		CreatedAt:    meta.createdAt,
		Author:       meta.author,
		Tags:         append([]string{}, meta.tags...),
		IsStarred:    meta.starred,
		AuditLog:     append([]models.AuditEntry(nil), meta.audit...),
	}
}
