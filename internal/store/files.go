package store

import (
	"fmt"

	"docshelf/internal/domain"
	"docshelf/internal/domain/models"
)

// FileUpdate is a partial metadata update; nil fields are left alone.
type FileUpdate struct {
	Name     *string
	Author   *string
	FileType *string
	Tags     *[]string
	Starred  *bool
}

// findFile locates a file node by id, scanning sections in display
// order. Ids are assumed effectively unique across sections; the first
// match wins.
func (s *Store) findFile(id string) (*section, *node) {
	for _, sid := range s.order {
		sec := s.sections[sid]
		if n, ok := sec.nodes[id]; ok && n.kind == kindFile {
			return sec, n
		}
	}
	return nil, nil
}

// UpdateFile applies a partial metadata update to a file and bumps its
// last-modified timestamp.
func (s *Store) UpdateFile(id string, upd FileUpdate) (*models.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, n := s.findFile(id)
	if n == nil {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("file %q not found", id)}
	}
	if upd.Name != nil {
		n.name = *upd.Name
	}
	if upd.Author != nil {
		n.file.author = *upd.Author
	}
	if upd.FileType != nil {
		n.file.fileType = *upd.FileType
	}
	if upd.Tags != nil {
		n.file.tags = append([]string{}, (*upd.Tags)...)
	}
	if upd.Starred != nil {
		n.file.starred = *upd.Starred
	}
	n.file.modifiedAt = s.now()

	return fileSnapshot(n), nil
}

// AllFiles returns every file reachable from a section's root as a
// flattened depth-first pre-order list. Folders are traversed but not
// included.
func (s *Store) AllFiles(sectionID string) ([]*models.File, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sec, ok := s.sections[sectionID]
	if !ok {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("section %q not found", sectionID)}
	}
	files := make([]*models.File, 0)
	collectFiles(sec, sec.root, &files)
	return files, nil
}

func collectFiles(sec *section, ids []string, out *[]*models.File) {
	for _, id := range ids {
		n := sec.nodes[id]
		if n == nil {
			continue
		}
		switch n.kind {
		case kindFile:
			*out = append(*out, fileSnapshot(n))
		case kindFolder:
			collectFiles(sec, n.children, out)
		}
	}
}

// MoveFiles relocates every file whose id is in fileIDs into the given
// destination as one atomic operation. The destination is resolved
// before any file is removed; if it cannot be resolved the move fails
// with nothing mutated. File ids that match no file are reported in the
// result's Missing list rather than being dropped. Each moved file gets
// an audit entry recording its provenance, prepended newest-first.
func (s *Store) MoveFiles(fileIDs []string, dest models.MoveDestination, user string) (*models.MoveReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := dest.Validate(); err != nil {
		return nil, &domain.ValidationError{Message: err.Error()}
	}

	destSec, ok := s.sections[dest.Path[0]]
	if !ok {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("destination section %q not found", dest.Path[0])}
	}
	destParent := "" // section root
	destName := destSec.name
	if dest.Type == models.ItemTypeFolder {
		folder, err := resolveFolderPath(destSec, dest.Path[1:])
		if err != nil {
			return nil, err
		}
		if folder == nil {
			return nil, &domain.NotFoundError{Message: "destination folder path is empty"}
		}
		destParent = folder.id
		destName = folder.name
	} else if destSec.id != dest.ID {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("destination section %q not found", dest.ID)}
	}

	// Match files across all sections in display order, keeping the
	// requested ids that resolve and which ones do not.
	type match struct {
		sec *section
		n   *node
	}
	matches := make([]match, 0, len(fileIDs))
	missing := make([]string, 0)
	for _, id := range fileIDs {
		sec, n := s.findFile(id)
		if n == nil {
			missing = append(missing, id)
			continue
		}
		matches = append(matches, match{sec: sec, n: n})
	}

	// Cross-section id collisions would corrupt the destination arena;
	// reject the whole move before mutating anything.
	for _, m := range matches {
		if m.sec != destSec {
			if _, exists := destSec.nodes[m.n.id]; exists {
				return nil, &domain.ConflictError{
					Message:      fmt.Sprintf("an item with id %q already exists in the destination section", m.n.id),
					ResourceType: "file",
					ResourceID:   m.n.id,
				}
			}
		}
	}

	moved := make([]models.MovedFile, 0, len(matches))
	now := s.now()
	for _, m := range matches {
		from := pathIDs(m.sec, m.n)
		sourceName := m.sec.name

		// Phase 1: splice out of the old parent.
		m.sec.splice(m.n.parent, m.n.id)
		if m.sec != destSec {
			delete(m.sec.nodes, m.n.id)
			destSec.nodes[m.n.id] = m.n
		}

		// Phase 2: append to the destination container.
		m.n.parent = destParent
		destSec.setChildList(destParent, append(destSec.childList(destParent), m.n.id))

		m.n.file.audit = append([]models.AuditEntry{{
			Time:   now,
			User:   user,
			Action: fmt.Sprintf("Moved file from %s to %s", sourceName, destName),
		}}, m.n.file.audit...)

		moved = append(moved, models.MovedFile{
			FileID: m.n.id,
			From:   from,
			To:     pathIDs(destSec, m.n),
		})
	}

	return &models.MoveReport{Moved: moved, Missing: missing}, nil
}
