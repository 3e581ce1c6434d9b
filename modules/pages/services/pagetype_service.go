package services

import (
	"context"
	"strings"

	"github.com/iota-uz/commerce-admin/modules/pages/domain/pagetype"
)

const DefaultSearchPageSize = 20

type PageTypeService struct {
	repo pagetype.Repository
}

func NewPageTypeService(repo pagetype.Repository) *PageTypeService {
	return &PageTypeService{repo: repo}
}

// SearchPageTypes returns one page of page types matching query. first is
// clamped to DefaultSearchPageSize when unset.
func (s *PageTypeService) SearchPageTypes(ctx context.Context, query string, first int, after string) (*pagetype.SearchResult, error) {
	if first <= 0 {
		first = DefaultSearchPageSize
	}
	return s.repo.Search(ctx, &pagetype.SearchParams{
		Query: strings.TrimSpace(query),
		First: first,
		After: after,
	})
}

// GetPageTypes resolves ids to page types, e.g. to label selected filter
// values that are not on the current search page.
func (s *PageTypeService) GetPageTypes(ctx context.Context, ids []string) ([]pagetype.PageType, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	result, err := s.repo.Search(ctx, &pagetype.SearchParams{First: len(ids), IDs: ids})
	if err != nil {
		return nil, err
	}
	return result.Nodes, nil
}
