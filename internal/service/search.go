package service

import (
	"context"
	"log/slog"

	"docshelf/internal/domain/models"
	"docshelf/internal/domain/services"
	"docshelf/internal/store"
)

type searchService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewSearchService creates a search service backed by the tree store.
func NewSearchService(treeStore *store.Store, logger *slog.Logger) services.SearchService {
	return &searchService{store: treeStore, logger: logger}
}

func (s *searchService) Search(ctx context.Context, opts models.SearchOptions) ([]models.SearchResult, error) {
	results, err := s.store.Search(opts)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("search executed",
		"term", opts.Term,
		"scope", opts.Scope,
		"results", len(results),
	)
	return results, nil
}

func (s *searchService) FindItemByPath(ctx context.Context, path []string) (models.Item, error) {
	return s.store.FindItemByPath(path)
}

func (s *searchService) Breadcrumb(ctx context.Context, sectionID, itemID string) ([]models.PathSegment, error) {
	return s.store.PathTo(sectionID, itemID)
}
