package page

import (
	"context"

	"github.com/iota-uz/commerce-admin/modules/pages/domain/pagetype"
)

type Page struct {
	ID          string
	Title       string
	Slug        string
	IsPublished bool
	PageType    pagetype.PageType
}

type SortField string

const (
	SortByTitle           SortField = "TITLE"
	SortBySlug            SortField = "SLUG"
	SortByVisibility      SortField = "VISIBILITY"
	SortByCreationDate    SortField = "CREATION_DATE"
	SortByPublicationDate SortField = "PUBLICATION_DATE"
)

type FindParams struct {
	Query     string
	PageTypes []string
	SortBy    SortField
	Asc       bool
	First     int
	After     string
	Last      int
	Before    string
}

type PageInfo struct {
	HasNextPage     bool
	HasPreviousPage bool
	StartCursor     string
	EndCursor       string
}

type ListResult struct {
	Pages      []Page
	PageInfo   PageInfo
	TotalCount int
}

type Repository interface {
	List(ctx context.Context, params *FindParams) (*ListResult, error)
}
