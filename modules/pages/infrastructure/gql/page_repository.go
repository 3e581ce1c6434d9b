package gql

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/iota-uz/commerce-admin/modules/pages/domain/page"
	"github.com/iota-uz/commerce-admin/pkg/graphql"
)

type pageListData struct {
	Pages *struct {
		Edges []struct {
			Node struct {
				ID          string       `json:"id"`
				Title       string       `json:"title"`
				Slug        string       `json:"slug"`
				IsPublished bool         `json:"isPublished"`
				PageType    pageTypeNode `json:"pageType"`
			} `json:"node"`
		} `json:"edges"`
		PageInfo struct {
			HasNextPage     bool    `json:"hasNextPage"`
			HasPreviousPage bool    `json:"hasPreviousPage"`
			StartCursor     *string `json:"startCursor"`
			EndCursor       *string `json:"endCursor"`
		} `json:"pageInfo"`
		TotalCount *int `json:"totalCount"`
	} `json:"pages"`
}

type PageRepository struct {
	client graphql.Doer
}

func NewPageRepository(client graphql.Doer) page.Repository {
	return &PageRepository{client: client}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func pageListVariables(params *page.FindParams) map[string]interface{} {
	vars := map[string]interface{}{}
	if params.Last > 0 || params.Before != "" {
		vars["last"] = params.Last
		vars["before"] = params.Before
	} else {
		vars["first"] = params.First
		if params.After != "" {
			vars["after"] = params.After
		}
	}
	filter := map[string]interface{}{}
	if params.Query != "" {
		filter["search"] = params.Query
	}
	if len(params.PageTypes) > 0 {
		filter["pageTypes"] = params.PageTypes
	}
	if len(filter) > 0 {
		vars["filter"] = filter
	}
	if params.SortBy != "" {
		direction := "DESC"
		if params.Asc {
			direction = "ASC"
		}
		vars["sort"] = map[string]interface{}{
			"field":     string(params.SortBy),
			"direction": direction,
		}
	}
	return vars
}

func (r *PageRepository) List(ctx context.Context, params *page.FindParams) (*page.ListResult, error) {
	var data pageListData
	if err := r.client.Do(ctx, &graphql.Request{
		Query:         pageListQuery,
		OperationName: "PageList",
		Variables:     pageListVariables(params),
	}, &data); err != nil {
		return nil, errors.Wrap(err, "list pages")
	}
	result := &page.ListResult{Pages: []page.Page{}}
	if data.Pages == nil {
		return result, nil
	}
	for _, e := range data.Pages.Edges {
		result.Pages = append(result.Pages, page.Page{
			ID:          e.Node.ID,
			Title:       e.Node.Title,
			Slug:        e.Node.Slug,
			IsPublished: e.Node.IsPublished,
			PageType:    toDomainPageType(e.Node.PageType),
		})
	}
	pi := data.Pages.PageInfo
	result.PageInfo = page.PageInfo{
		HasNextPage:     pi.HasNextPage,
		HasPreviousPage: pi.HasPreviousPage,
		StartCursor:     deref(pi.StartCursor),
		EndCursor:       deref(pi.EndCursor),
	}
	if data.Pages.TotalCount != nil {
		result.TotalCount = *data.Pages.TotalCount
	}
	return result, nil
}
