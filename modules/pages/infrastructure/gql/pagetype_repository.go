package gql

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/iota-uz/commerce-admin/modules/pages/domain/pagetype"
	"github.com/iota-uz/commerce-admin/pkg/graphql"
)

type pageTypeNode struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type searchPageTypesData struct {
	Search *struct {
		Edges []struct {
			Node pageTypeNode `json:"node"`
		} `json:"edges"`
		PageInfo struct {
			EndCursor   *string `json:"endCursor"`
			HasNextPage bool    `json:"hasNextPage"`
		} `json:"pageInfo"`
	} `json:"search"`
}

type PageTypeRepository struct {
	client graphql.Doer
}

func NewPageTypeRepository(client graphql.Doer) pagetype.Repository {
	return &PageTypeRepository{client: client}
}

func toDomainPageType(n pageTypeNode) pagetype.PageType {
	return pagetype.PageType{ID: n.ID, Name: n.Name, Slug: n.Slug}
}

func (r *PageTypeRepository) Search(ctx context.Context, params *pagetype.SearchParams) (*pagetype.SearchResult, error) {
	vars := map[string]interface{}{
		"first": params.First,
		"query": params.Query,
	}
	if params.After != "" {
		vars["after"] = params.After
	}
	if len(params.IDs) > 0 {
		vars["ids"] = params.IDs
	}
	var data searchPageTypesData
	if err := r.client.Do(ctx, &graphql.Request{
		Query:         searchPageTypesQuery,
		OperationName: "SearchPageTypes",
		Variables:     vars,
	}, &data); err != nil {
		return nil, errors.Wrap(err, "search page types")
	}
	result := &pagetype.SearchResult{Nodes: []pagetype.PageType{}}
	if data.Search == nil {
		return result, nil
	}
	for _, e := range data.Search.Edges {
		result.Nodes = append(result.Nodes, toDomainPageType(e.Node))
	}
	result.PageInfo.HasNextPage = data.Search.PageInfo.HasNextPage
	if data.Search.PageInfo.EndCursor != nil {
		result.PageInfo.EndCursor = *data.Search.PageInfo.EndCursor
	}
	return result, nil
}
