package store

import (
	"fmt"

	"docshelf/internal/domain"
	"docshelf/internal/domain/models"
)

// resolveFolderPath walks a sequence of folder ids from the section
// root, descending one level per segment. It returns the final folder
// node, or nil for the empty path (the section root). Every segment
// must name a folder that is a direct child of the previous container;
// any unresolved segment fails the whole walk before anything mutates.
func resolveFolderPath(sec *section, path []string) (*node, error) {
	parent := ""
	var cur *node
	for _, seg := range path {
		n, ok := sec.nodes[seg]
		if !ok || n.kind != kindFolder || n.parent != parent {
			return nil, &domain.NotFoundError{
				Message: fmt.Sprintf("folder path segment %q not found in section %q", seg, sec.id),
			}
		}
		parent = seg
		cur = n
	}
	return cur, nil
}

// siblingNameTaken reports whether a folder named name already exists
// among a container's children, ignoring selfID.
func siblingNameTaken(sec *section, parent, name, selfID string) (string, bool) {
	for _, id := range sec.childList(parent) {
		n := sec.nodes[id]
		if n != nil && n.kind == kindFolder && n.id != selfID && n.name == name {
			return n.id, true
		}
	}
	return "", false
}

// CreateFolder appends a new folder under parentPath (empty = section
// root). The whole path is resolved before the tree is touched.
func (s *Store) CreateFolder(sectionID, name string, parentPath []string) (*models.Folder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sec, ok := s.sections[sectionID]
	if !ok {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("section %q not found", sectionID)}
	}
	parent, err := resolveFolderPath(sec, parentPath)
	if err != nil {
		return nil, err
	}
	parentID := ""
	if parent != nil {
		parentID = parent.id
	}
	if existingID, taken := siblingNameTaken(sec, parentID, name, ""); taken {
		return nil, &domain.ConflictError{
			Message:      fmt.Sprintf("a folder named %q already exists in this location", name),
			ResourceType: "folder",
			ResourceID:   existingID,
		}
	}

	n := &node{id: s.newID(), kind: kindFolder, name: name, parent: parentID}
	sec.nodes[n.id] = n
	sec.setChildList(parentID, append(sec.childList(parentID), n.id))

	return &models.Folder{ID: n.id, Name: n.name, Type: models.ItemTypeFolder, Items: []models.Item{}}, nil
}

// UpdateFolder renames the folder at the end of folderPath. Only the
// name changes; id and child list are untouched.
func (s *Store) UpdateFolder(sectionID string, folderPath []string, name string) (*models.Folder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sec, ok := s.sections[sectionID]
	if !ok {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("section %q not found", sectionID)}
	}
	if len(folderPath) == 0 {
		return nil, &domain.ValidationError{Message: "folder path cannot be empty"}
	}
	target, err := resolveFolderPath(sec, folderPath)
	if err != nil {
		return nil, err
	}
	if existingID, taken := siblingNameTaken(sec, target.parent, name, target.id); taken {
		return nil, &domain.ConflictError{
			Message:      fmt.Sprintf("a folder named %q already exists in this location", name),
			ResourceType: "folder",
			ResourceID:   existingID,
		}
	}
	target.name = name

	return &models.Folder{
		ID:    target.id,
		Name:  target.name,
		Type:  models.ItemTypeFolder,
		Items: s.itemsSnapshot(sec, target.children),
	}, nil
}

// DeleteFolder removes the folder at folderPath together with its
// entire subtree.
func (s *Store) DeleteFolder(sectionID string, folderPath []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sec, ok := s.sections[sectionID]
	if !ok {
		return &domain.NotFoundError{Message: fmt.Sprintf("section %q not found", sectionID)}
	}
	if len(folderPath) == 0 {
		return &domain.ValidationError{Message: "folder path cannot be empty"}
	}
	target, err := resolveFolderPath(sec, folderPath)
	if err != nil {
		return err
	}

	sec.splice(target.parent, target.id)
	dropSubtree(sec, target)
	return nil
}

// dropSubtree deletes a node and all descendants from the arena.
func dropSubtree(sec *section, n *node) {
	for _, id := range n.children {
		if child := sec.nodes[id]; child != nil {
			dropSubtree(sec, child)
		}
	}
	delete(sec.nodes, n.id)
}
