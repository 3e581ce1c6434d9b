// Package filters builds the filter panel of the page list from fetched
// page types and the current URL, and turns submitted filter elements back
// into URL parameters.
package filters

import (
	"github.com/iota-uz/go-i18n/v2/i18n"

	"github.com/iota-uz/commerce-admin/modules/pages/domain/pagetype"
	"github.com/iota-uz/commerce-admin/modules/pages/presentation/urls"
	"github.com/iota-uz/commerce-admin/pkg/filters"
	"github.com/iota-uz/commerce-admin/pkg/intl"
)

type PageListFilterKey string

const PageTypesKey PageListFilterKey = "pageTypes"

// PagesFiltersKey names the saved presets of the page list.
const PagesFiltersKey = "pagesFilters"

type PageListFilterOpts struct {
	PageType filters.FilterOpts[[]string]
}

type PageListFilterOptsProps struct {
	Params         *urls.PageListURLFilters
	PageTypes      []pagetype.PageType
	PageTypesProps filters.SearchWithFetchMoreProps
}

// GetFilterOpts never fails: absent params or page types yield an inactive,
// empty filter.
func GetFilterOpts(props PageListFilterOptsProps) PageListFilterOpts {
	var value []string
	if props.Params != nil {
		value = props.Params.PageTypes
	}
	return PageListFilterOpts{
		PageType: filters.FilterOpts[[]string]{
			Active:        value != nil,
			Value:         value,
			Choices:       filters.MapNodeToChoice(props.PageTypes),
			DisplayValues: filters.MapSingleValueNodeToChoice(props.PageTypes),
			AutocompleteFilterOpts: filters.AutocompleteFilterOpts{
				InitialSearch: "",
				HasMore:       props.PageTypesProps.HasMore,
				Loading:       props.PageTypesProps.Loading,
				SearchURL:     props.PageTypesProps.SearchURL,
				FetchMoreURL:  props.PageTypesProps.FetchMoreURL,
				SearchParam:   props.PageTypesProps.SearchParam,
			},
		},
	}
}

func CreateFilterStructure(l *i18n.Localizer, opts PageListFilterOpts) []filters.FilterElement[PageListFilterKey] {
	pageType := filters.CreateAutocompleteField(
		PageTypesKey,
		intl.T(l, "Pages.Filters.PageType"),
		opts.PageType.Value,
		filters.SelectedChoices(opts.PageType.DisplayValues, opts.PageType.Value),
		true,
		opts.PageType.Choices,
		filters.AutocompleteFilterOpts{
			HasMore:       opts.PageType.HasMore,
			InitialSearch: "",
			Loading:       opts.PageType.Loading,
			SearchURL:     opts.PageType.SearchURL,
			FetchMoreURL:  opts.PageType.FetchMoreURL,
			SearchParam:   opts.PageType.SearchParam,
		},
	)
	pageType.Active = opts.PageType.Active
	return []filters.FilterElement[PageListFilterKey]{pageType}
}

// GetFilterQueryParam converts one submitted element into URL filters.
// Unknown keys contribute nothing.
func GetFilterQueryParam(el filters.FilterElement[PageListFilterKey]) urls.PageListURLFilters {
	switch el.Name {
	case PageTypesKey:
		return urls.PageListURLFilters{PageTypes: filters.GetMultipleValueQueryParam(el)}
	}
	return urls.PageListURLFilters{}
}

// Utils answers filter questions about page list URLs.
var Utils = filters.NewUtils(string(PageTypesKey))

func NewStorageUtils(store filters.TabStore) *filters.TabUtils {
	return filters.NewTabUtils(PagesFiltersKey, store)
}
