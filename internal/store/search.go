package store

import (
	"sort"
	"strings"
	"unicode"

	"docshelf/internal/domain"
	"docshelf/internal/domain/models"
)

// Search performs a full recursive scan of the selected sections'
// subtrees and scores every folder or file against the term. An item
// matching on several criteria keeps only its maximum score. Results
// are ordered by score descending, ties in traversal order.
func (s *Store) Search(opts models.SearchOptions) ([]models.SearchResult, error) {
	opts.ApplyDefaults()
	if err := opts.Validate(); err != nil {
		return nil, &domain.ValidationError{Message: err.Error()}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	sectionIDs := s.order
	if opts.SectionID != "" {
		if _, ok := s.sections[opts.SectionID]; !ok {
			return nil, &domain.NotFoundError{Message: "section " + opts.SectionID + " not found"}
		}
		sectionIDs = []string{opts.SectionID}
	}

	term := strings.ToLower(opts.Term)
	results := make([]models.SearchResult, 0)
	for _, sid := range sectionIDs {
		sec := s.sections[sid]
		s.searchLevel(sec, sec.root, []string{sec.id}, term, opts.Scope, &results)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > opts.Limit {
		results = results[:opts.Limit]
	}
	return results, nil
}

// searchLevel recurses through one child list, carrying the id path
// from the section root down to the current level.
func (s *Store) searchLevel(sec *section, ids []string, prefix []string, term string, scope models.SearchScope, out *[]models.SearchResult) {
	for _, id := range ids {
		n := sec.nodes[id]
		if n == nil {
			continue
		}
		path := append(append([]string{}, prefix...), n.id)

		if score, field := scoreNode(n, term, scope); score > 0 {
			var item models.Item
			if n.kind == kindFile {
				item = fileSnapshot(n)
			} else {
				item = &models.Folder{
					ID:    n.id,
					Name:  n.name,
					Type:  models.ItemTypeFolder,
					Items: s.itemsSnapshot(sec, n.children),
				}
			}
			*out = append(*out, models.SearchResult{
				SectionID: sec.id,
				Path:      path,
				Score:     score,
				Field:     field,
				Item:      item,
			})
		}

		if n.kind == kindFolder {
			s.searchLevel(sec, n.children, path, term, scope, out)
		}
	}
}

// scoreNode computes the best relevance score for one node. term must
// already be lower-cased.
func scoreNode(n *node, term string, scope models.SearchScope) (int, models.SearchField) {
	best := scoreName(strings.ToLower(n.name), term)
	field := models.SearchFieldName
	if best == 0 {
		field = ""
	}

	if n.kind != kindFile {
		return best, field
	}

	if scope == models.SearchScopeMetadata || scope == models.SearchScopeAll {
		if best < models.ScoreTag {
			for _, tag := range n.file.tags {
				if strings.Contains(strings.ToLower(tag), term) {
					best, field = models.ScoreTag, models.SearchFieldTag
					break
				}
			}
		}
		if best < models.ScoreAuthor && strings.Contains(strings.ToLower(n.file.author), term) {
			best, field = models.ScoreAuthor, models.SearchFieldAuthor
		}
	}
	if scope == models.SearchScopeAll && best < models.ScoreAuditText {
		for _, entry := range n.file.audit {
			if strings.Contains(strings.ToLower(entry.Action), term) {
				best, field = models.ScoreAuditText, models.SearchFieldAudit
				break
			}
		}
	}
	return best, field
}

// scoreName grades a case-insensitive name match: exact > prefix >
// substring. Exact means the term equals the whole name or a whole
// word of it, so "budget" is an exact hit on "Budget Analysis.xlsx"
// but only a prefix hit on "BudgetReport.pdf". Both arguments must be
// lower-cased.
func scoreName(name, term string) int {
	if name == term {
		return models.ScoreExactName
	}
	for _, word := range strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		if word == term {
			return models.ScoreExactName
		}
	}
	switch {
	case strings.HasPrefix(name, term):
		return models.ScorePrefixName
	case strings.Contains(name, term):
		return models.ScoreSubstringName
	default:
		return 0
	}
}
