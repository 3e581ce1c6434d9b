package pagetype

import "context"

type PageType struct {
	ID   string
	Name string
	Slug string
}

func (p PageType) GetID() string   { return p.ID }
func (p PageType) GetName() string { return p.Name }

type PageInfo struct {
	HasNextPage bool
	EndCursor   string
}

type SearchParams struct {
	Query string
	First int
	After string
	IDs   []string
}

type SearchResult struct {
	Nodes    []PageType
	PageInfo PageInfo
}

type Repository interface {
	Search(ctx context.Context, params *SearchParams) (*SearchResult, error)
}
