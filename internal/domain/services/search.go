package services

import (
	"context"

	"docshelf/internal/domain/models"
)

// SearchService answers scored full-tree searches and path lookups.
type SearchService interface {
	Search(ctx context.Context, opts models.SearchOptions) ([]models.SearchResult, error)

	// FindItemByPath resolves a path (section id plus descendant ids)
	// to the item it names.
	FindItemByPath(ctx context.Context, path []string) (models.Item, error)

	// Breadcrumb returns the named path segments from a section down to
	// an item.
	Breadcrumb(ctx context.Context, sectionID, itemID string) ([]models.PathSegment, error)
}
