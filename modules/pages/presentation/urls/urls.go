package urls

import (
	"net/url"
	"strconv"

	"github.com/iota-uz/commerce-admin/pkg/shared"
)

const (
	PageListPath    = "/pages"
	PageFiltersPath = "/pages/filters"
	PagePresetsPath = "/pages/presets"
	PageTypesPath   = "/pages/page-types"
)

type Pagination struct {
	After  string `form:"after,omitempty"`
	Before string `form:"before,omitempty"`
}

// PageListURLFilters holds the filter parameters of the page list. A nil
// slice means the parameter is absent.
type PageListURLFilters struct {
	PageTypes []string `form:"pageTypes,omitempty"`
}

type PageListURLSortField string

const (
	SortTitle     PageListURLSortField = "title"
	SortSlug      PageListURLSortField = "slug"
	SortVisible   PageListURLSortField = "visible"
	SortCreated   PageListURLSortField = "created"
	SortPublished PageListURLSortField = "published"
)

type PageListURLSort struct {
	Sort PageListURLSortField `form:"sort,omitempty"`
	Asc  bool                 `form:"asc,omitempty"`
}

type ActiveTab struct {
	ActiveTab string `form:"activeTab,omitempty"`
}

type Search struct {
	Query string `form:"query,omitempty"`
}

type PageListURLQueryParams struct {
	Pagination
	PageListURLFilters
	PageListURLSort
	ActiveTab
	Search
}

func ParsePageListURLQueryParams(q url.Values) (PageListURLQueryParams, error) {
	var p PageListURLQueryParams
	if err := shared.Decoder.Decode(&p, q); err != nil {
		return PageListURLQueryParams{}, err
	}
	return p, nil
}

func (p PageListURLQueryParams) Values() url.Values {
	v, err := shared.Encoder.Encode(p)
	if err != nil {
		return url.Values{}
	}
	return v
}

func PageListURL(params PageListURLQueryParams) string {
	return shared.WithQuery(PageListPath, params.Values())
}

func PageURL(id string) string {
	return PageListPath + "/" + url.PathEscape(id)
}

func DeletePresetURL(tab int) string {
	return PagePresetsPath + "/" + strconv.Itoa(tab) + "/delete"
}
