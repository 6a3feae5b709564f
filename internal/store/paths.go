package store

import (
	"fmt"

	"docshelf/internal/domain"
	"docshelf/internal/domain/models"
)

// pathIDs rebuilds the full id path from the owning section down to a
// node by walking parent links. Paths are never cached, so this is the
// single source of truth for an item's location.
func pathIDs(sec *section, n *node) []string {
	ids := []string{n.id}
	for parent := n.parent; parent != ""; {
		p := sec.nodes[parent]
		if p == nil {
			break
		}
		ids = append([]string{p.id}, ids...)
		parent = p.parent
	}
	return append([]string{sec.id}, ids...)
}

// FindItemByPath resolves a path (section id followed by zero or more
// descendant ids) to the section, folder, or file it names. Read-only.
func (s *Store) FindItemByPath(path []string) (models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(path) == 0 {
		return nil, &domain.ValidationError{Message: "path cannot be empty"}
	}
	sec, ok := s.sections[path[0]]
	if !ok {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("section %q not found", path[0])}
	}
	if len(path) == 1 {
		return s.sectionSnapshot(sec), nil
	}

	parent := ""
	rest := path[1:]
	for i, seg := range rest {
		n, ok := sec.nodes[seg]
		if !ok || n.parent != parent {
			return nil, &domain.NotFoundError{Message: fmt.Sprintf("path segment %q not found", seg)}
		}
		last := i == len(rest)-1
		if !last {
			if n.kind != kindFolder {
				return nil, &domain.NotFoundError{Message: fmt.Sprintf("path segment %q is not a folder", seg)}
			}
			parent = seg
			continue
		}
		if n.kind == kindFile {
			return fileSnapshot(n), nil
		}
		return &models.Folder{
			ID:    n.id,
			Name:  n.name,
			Type:  models.ItemTypeFolder,
			Items: s.itemsSnapshot(sec, n.children),
		}, nil
	}
	return nil, &domain.NotFoundError{Message: "path did not resolve"}
}

// PathTo returns the breadcrumb from a section down to an item, both
// inclusive. The id sequence of the returned segments is the item's
// path in the FindItemByPath sense.
func (s *Store) PathTo(sectionID, itemID string) ([]models.PathSegment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sec, ok := s.sections[sectionID]
	if !ok {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("section %q not found", sectionID)}
	}
	if itemID == sectionID {
		return []models.PathSegment{{ID: sec.id, Name: sec.name, Type: models.ItemTypeSection}}, nil
	}
	n, ok := sec.nodes[itemID]
	if !ok {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("item %q not found in section %q", itemID, sectionID)}
	}

	segs := make([]models.PathSegment, 0, 4)
	for cur := n; cur != nil; {
		kind := models.ItemTypeFolder
		if cur.kind == kindFile {
			kind = models.ItemTypeFile
		}
		segs = append([]models.PathSegment{{ID: cur.id, Name: cur.name, Type: kind}}, segs...)
		if cur.parent == "" {
			break
		}
		cur = sec.nodes[cur.parent]
	}
	return append([]models.PathSegment{{ID: sec.id, Name: sec.name, Type: models.ItemTypeSection}}, segs...), nil
}
