package gql

import (
	"embed"
)

//go:embed operations/*.graphql
var Operations embed.FS

var (
	//go:embed operations/search_page_types.graphql
	searchPageTypesQuery string
	//go:embed operations/page_list.graphql
	pageListQuery string
)
