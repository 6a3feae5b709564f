package store

import (
	"fmt"

	"docshelf/internal/domain"
	"docshelf/internal/domain/models"
)

// CreateSection appends a new empty section to the end of the section
// list and returns it.
func (s *Store) CreateSection(name string) *models.Section {
	s.mu.Lock()
	defer s.mu.Unlock()

	sec := &section{
		id:    s.newID(),
		name:  name,
		nodes: make(map[string]*node),
	}
	s.order = append(s.order, sec.id)
	s.sections[sec.id] = sec

	return s.sectionSnapshot(sec)
}

// UpdateSection renames a section. Renaming to the current name is a
// no-op that still succeeds.
func (s *Store) UpdateSection(id, name string) (*models.Section, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sec, ok := s.sections[id]
	if !ok {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("section %q not found", id)}
	}
	sec.name = name
	return s.sectionSnapshot(sec), nil
}

// DeleteSection removes a section and its entire subtree. There is no
// orphan re-parenting; children are discarded with the section.
func (s *Store) DeleteSection(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sections[id]; !ok {
		return &domain.NotFoundError{Message: fmt.Sprintf("section %q not found", id)}
	}
	delete(s.sections, id)
	for i, sid := range s.order {
		if sid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// SectionTree returns one section's nested tree.
func (s *Store) SectionTree(id string) (*models.Section, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sec, ok := s.sections[id]
	if !ok {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("section %q not found", id)}
	}
	return s.sectionSnapshot(sec), nil
}
