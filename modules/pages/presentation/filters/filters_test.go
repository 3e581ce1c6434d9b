package filters

import (
	"net/url"
	"testing"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/iota-uz/commerce-admin/modules/pages/domain/pagetype"
	"github.com/iota-uz/commerce-admin/modules/pages/presentation/urls"
	"github.com/iota-uz/commerce-admin/pkg/filters"
)

var pageTypes = []pagetype.PageType{
	{ID: "t1", Name: "Blog", Slug: "blog"},
	{ID: "t2", Name: "Docs", Slug: "docs"},
	{ID: "t3", Name: "Landing", Slug: "landing"},
}

func TestGetFilterOpts_Active(t *testing.T) {
	t.Run("unset params", func(t *testing.T) {
		opts := GetFilterOpts(PageListFilterOptsProps{})
		require.False(t, opts.PageType.Active)
		require.Nil(t, opts.PageType.Value)
		require.Empty(t, opts.PageType.Choices)
		require.False(t, opts.PageType.HasMore)
		require.False(t, opts.PageType.Loading)
	})

	t.Run("params without page types", func(t *testing.T) {
		opts := GetFilterOpts(PageListFilterOptsProps{Params: &urls.PageListURLFilters{}})
		require.False(t, opts.PageType.Active)
	})

	t.Run("page types set", func(t *testing.T) {
		opts := GetFilterOpts(PageListFilterOptsProps{
			Params:         &urls.PageListURLFilters{PageTypes: []string{"t2"}},
			PageTypes:      pageTypes,
			PageTypesProps: filters.SearchWithFetchMoreProps{HasMore: true, Loading: true},
		})
		require.True(t, opts.PageType.Active)
		require.Equal(t, []string{"t2"}, opts.PageType.Value)
		require.Len(t, opts.PageType.Choices, 3)
		require.Equal(t, filters.Choice{Label: "Docs", Value: "t2"}, opts.PageType.Choices[1])
		require.Len(t, opts.PageType.DisplayValues, 3)
		require.True(t, opts.PageType.HasMore)
		require.True(t, opts.PageType.Loading)
		require.Empty(t, opts.PageType.InitialSearch)
	})
}

func TestCreateFilterStructure(t *testing.T) {
	bundle := i18n.NewBundle(language.English)
	bundle.MustAddMessages(language.English, &i18n.Message{ID: "Pages.Filters.PageType", Other: "Model types"})
	l := i18n.NewLocalizer(bundle, "en")

	opts := GetFilterOpts(PageListFilterOptsProps{
		Params:    &urls.PageListURLFilters{PageTypes: []string{"t3", "t1"}},
		PageTypes: pageTypes,
	})
	elements := CreateFilterStructure(l, opts)
	require.Len(t, elements, 1)

	el := elements[0]
	require.Equal(t, PageTypesKey, el.Name)
	require.Equal(t, "Model types", el.Label)
	require.True(t, el.Active)
	require.True(t, el.Multiple)
	require.Equal(t, filters.FieldTypeAutocomplete, el.Type)
	require.Equal(t, []filters.Choice{
		{Label: "Landing", Value: "t3"},
		{Label: "Blog", Value: "t1"},
	}, el.DisplayValues)

	inactive := CreateFilterStructure(nil, GetFilterOpts(PageListFilterOptsProps{PageTypes: pageTypes}))
	require.False(t, inactive[0].Active)
	require.Equal(t, "Pages.Filters.PageType", inactive[0].Label)
}

func TestGetFilterQueryParam_RoundTrip(t *testing.T) {
	selections := [][]string{
		{"t1"},
		{"t2", "t1", "t3"},
		{},
	}
	for _, selected := range selections {
		el := filters.FilterElement[PageListFilterKey]{
			Name:   PageTypesKey,
			Active: true,
			Value:  selected,
		}
		encoded := urls.PageListURLQueryParams{PageListURLFilters: GetFilterQueryParam(el)}.Values()

		decoded, err := urls.ParsePageListURLQueryParams(encoded)
		require.NoError(t, err)

		require.ElementsMatch(t, selected, decoded.PageTypes)
	}
}

func TestGetFilterQueryParam_InactiveAndUnknown(t *testing.T) {
	inactive := GetFilterQueryParam(filters.FilterElement[PageListFilterKey]{Name: PageTypesKey, Value: []string{"t1"}})
	require.Nil(t, inactive.PageTypes)

	unknown := GetFilterQueryParam(filters.FilterElement[PageListFilterKey]{Name: "collections", Active: true, Value: []string{"c1"}})
	require.Equal(t, urls.PageListURLFilters{}, unknown)
}

func TestUtils(t *testing.T) {
	q := url.Values{"pageTypes": {"t1"}, "query": {"faq"}}
	require.True(t, Utils.AreFiltersApplied(q))
	require.Equal(t, url.Values{"pageTypes": {"t1"}}, Utils.GetActiveFilters(q))
	require.Equal(t, 1, Utils.GetFiltersCurrentTab(q, nil))
	require.Equal(t, PagesFiltersKey, NewStorageUtils(filters.NewMemoryTabStore()).Key())
}
