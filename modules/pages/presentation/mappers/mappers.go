package mappers

import (
	"github.com/iota-uz/commerce-admin/modules/pages/domain/page"
	"github.com/iota-uz/commerce-admin/modules/pages/presentation/urls"
	"github.com/iota-uz/commerce-admin/modules/pages/presentation/viewmodels"
)

func PageToViewModel(p page.Page) *viewmodels.Page {
	return &viewmodels.Page{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		PageType:    p.PageType.Name,
		IsPublished: p.IsPublished,
		URL:         urls.PageURL(p.ID),
	}
}

func PagesToViewModels(pages []page.Page) []*viewmodels.Page {
	out := make([]*viewmodels.Page, 0, len(pages))
	for _, p := range pages {
		out = append(out, PageToViewModel(p))
	}
	return out
}

var sortFields = map[urls.PageListURLSortField]page.SortField{
	urls.SortTitle:     page.SortByTitle,
	urls.SortSlug:      page.SortBySlug,
	urls.SortVisible:   page.SortByVisibility,
	urls.SortCreated:   page.SortByCreationDate,
	urls.SortPublished: page.SortByPublicationDate,
}

// FindParamsFromURL maps list URL parameters to repository parameters. An
// unknown sort field falls back to the service default.
func FindParamsFromURL(params urls.PageListURLQueryParams) *page.FindParams {
	return &page.FindParams{
		Query:     params.Query,
		PageTypes: params.PageTypes,
		SortBy:    sortFields[params.Sort],
		Asc:       params.Asc,
		After:     params.After,
		Before:    params.Before,
	}
}

// PagerFromResult builds previous/next links that keep every other parameter.
func PagerFromResult(params urls.PageListURLQueryParams, result *page.ListResult) viewmodels.Pager {
	pager := viewmodels.Pager{TotalCount: result.TotalCount}
	if result.PageInfo.HasPreviousPage && result.PageInfo.StartCursor != "" {
		prev := params
		prev.Pagination = urls.Pagination{Before: result.PageInfo.StartCursor}
		pager.PreviousURL = urls.PageListURL(prev)
	}
	if result.PageInfo.HasNextPage && result.PageInfo.EndCursor != "" {
		next := params
		next.Pagination = urls.Pagination{After: result.PageInfo.EndCursor}
		pager.NextURL = urls.PageListURL(next)
	}
	return pager
}
