package models

import "fmt"

// SearchScope selects which fields a search term is matched against.
type SearchScope string

const (
	// SearchScopeName matches folder and file names only.
	SearchScopeName SearchScope = "name"

	// SearchScopeMetadata matches names plus file tags and author.
	SearchScopeMetadata SearchScope = "metadata"

	// SearchScopeAll additionally matches audit-log action text.
	SearchScopeAll SearchScope = "all"
)

// Relevance scores per match kind. When an item matches on several
// criteria only the maximum score is kept.
const (
	ScoreExactName     = 100
	ScorePrefixName    = 80
	ScoreSubstringName = 60
	ScoreTag           = 50
	ScoreAuthor        = 40
	ScoreAuditText     = 30
)

// SearchField identifies which field produced an item's best match.
type SearchField string

const (
	SearchFieldName   SearchField = "name"
	SearchFieldTag    SearchField = "tag"
	SearchFieldAuthor SearchField = "author"
	SearchFieldAudit  SearchField = "audit"
)

const DefaultSearchLimit = 50

// SearchOptions configures a full-tree recursive search.
type SearchOptions struct {
	// Term is matched case-insensitively. Required.
	Term string

	// Scope defaults to SearchScopeAll.
	Scope SearchScope

	// SectionID optionally restricts the scan to one section.
	// Empty = all sections.
	SectionID string

	// Limit caps the number of results. Defaults to DefaultSearchLimit.
	Limit int
}

// ApplyDefaults fills in defaults for unset fields.
func (o *SearchOptions) ApplyDefaults() {
	if o.Scope == "" {
		o.Scope = SearchScopeAll
	}
	if o.Limit <= 0 {
		o.Limit = DefaultSearchLimit
	}
}

// Validate checks that required fields are set and values are known.
func (o *SearchOptions) Validate() error {
	if o.Term == "" {
		return fmt.Errorf("search term cannot be empty")
	}
	switch o.Scope {
	case SearchScopeName, SearchScopeMetadata, SearchScopeAll, "":
	default:
		return fmt.Errorf("unknown search scope %q (supported: name, metadata, all)", o.Scope)
	}
	if o.Limit < 0 {
		return fmt.Errorf("limit cannot be negative")
	}
	return nil
}

// SearchResult is one matched folder or file with its relevance score.
type SearchResult struct {
	SectionID string      `json:"section_id"`
	Path      []string    `json:"path"` // section id down to the item id
	Score     int         `json:"score"`
	Field     SearchField `json:"field"` // field behind the winning score
	Item      Item        `json:"item"`
}
