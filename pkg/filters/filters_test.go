package filters

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

type testKey string

type node struct {
	id, name string
}

func (n node) GetID() string   { return n.id }
func (n node) GetName() string { return n.name }

func TestCreateAutocompleteField(t *testing.T) {
	el := CreateAutocompleteField(testKey("pageTypes"), "Model types", nil, nil, true, []Choice{{Label: "Blog", Value: "1"}}, AutocompleteFilterOpts{HasMore: true})
	require.Equal(t, FieldTypeAutocomplete, el.Type)
	require.False(t, el.Active)
	require.NotNil(t, el.Value)
	require.True(t, el.Multiple)
	require.True(t, el.HasMore)
}

func TestGetMultipleValueQueryParam(t *testing.T) {
	el := FilterElement[testKey]{Name: "pageTypes", Value: []string{"a", "b"}}
	require.Nil(t, GetMultipleValueQueryParam(el))

	el.Active = true
	got := GetMultipleValueQueryParam(el)
	require.Equal(t, []string{"a", "b"}, got)
	got[0] = "mutated"
	require.Equal(t, "a", el.Value[0])

	el.Value = nil
	require.NotNil(t, GetMultipleValueQueryParam(el))
	require.Empty(t, GetMultipleValueQueryParam(el))
}

func TestGetSingleValueQueryParam(t *testing.T) {
	_, ok := GetSingleValueQueryParam(FilterElement[testKey]{Active: true})
	require.False(t, ok)
	v, ok := GetSingleValueQueryParam(FilterElement[testKey]{Active: true, Value: []string{"x", "y"}})
	require.True(t, ok)
	require.Equal(t, "x", v)
}

func TestUtils(t *testing.T) {
	u := NewUtils("pageTypes")

	q := url.Values{"pageTypes": {"a"}, "query": {"foo"}, "after": {"c"}}
	require.Equal(t, url.Values{"pageTypes": {"a"}}, u.GetActiveFilters(q))
	require.True(t, u.AreFiltersApplied(q))
	require.False(t, u.AreFiltersApplied(url.Values{"query": {"foo"}}))
	require.False(t, u.AreFiltersApplied(url.Values{"pageTypes": {""}}))

	tabs := []Tab{{Name: "Blog"}, {Name: "Docs"}}
	require.Equal(t, 0, u.GetFiltersCurrentTab(url.Values{}, tabs))
	require.Equal(t, 3, u.GetFiltersCurrentTab(q, tabs))
	q.Set(ActiveTabParam, "2")
	require.Equal(t, 2, u.GetFiltersCurrentTab(q, tabs))
	q.Set(ActiveTabParam, "nope")
	require.Equal(t, 0, u.GetFiltersCurrentTab(q, tabs))
}

func TestTabUtils_Memory(t *testing.T) {
	ctx := context.Background()
	utils := NewTabUtils("pagesFilters", NewMemoryTabStore())

	tabs, err := utils.GetFilterTabs(ctx)
	require.NoError(t, err)
	require.Empty(t, tabs)

	require.NoError(t, utils.SaveFilterTab(ctx, "Blog", "pageTypes=1"))
	require.NoError(t, utils.SaveFilterTab(ctx, "Docs", "pageTypes=2"))
	require.NoError(t, utils.SaveFilterTab(ctx, "Both", "pageTypes=1&pageTypes=2"))

	require.NoError(t, utils.DeleteFilterTab(ctx, 2))
	tabs, err = utils.GetFilterTabs(ctx)
	require.NoError(t, err)
	require.Equal(t, []Tab{
		{Name: "Blog", Data: "pageTypes=1"},
		{Name: "Both", Data: "pageTypes=1&pageTypes=2"},
	}, tabs)

	require.ErrorIs(t, utils.DeleteFilterTab(ctx, 0), ErrTabNotFound)
	require.ErrorIs(t, utils.DeleteFilterTab(ctx, 3), ErrTabNotFound)

	other := NewTabUtils("productsFilters", NewMemoryTabStore())
	tabs, err = other.GetFilterTabs(ctx)
	require.NoError(t, err)
	require.Empty(t, tabs)
}

func TestMapNodeToChoice(t *testing.T) {
	nodes := []node{{"1", "Blog"}, {"2", "Docs"}, {"1", "Blog"}}
	require.Equal(t, []Choice{
		{Label: "Blog", Value: "1"},
		{Label: "Docs", Value: "2"},
		{Label: "Blog", Value: "1"},
	}, MapNodeToChoice(nodes))
	require.Equal(t, []Choice{
		{Label: "Blog", Value: "1"},
		{Label: "Docs", Value: "2"},
	}, MapSingleValueNodeToChoice(nodes))
	require.Empty(t, MapNodeToChoice[node](nil))
}

func TestSelectedChoices(t *testing.T) {
	choices := []Choice{{Label: "Blog", Value: "1"}, {Label: "Docs", Value: "2"}}
	require.Equal(t, []Choice{
		{Label: "Docs", Value: "2"},
		{Label: "9", Value: "9"},
	}, SelectedChoices(choices, []string{"2", "9"}))
}

func TestRankChoices(t *testing.T) {
	choices := []Choice{
		{Label: "Landing page", Value: "1"},
		{Label: "Blog", Value: "2"},
		{Label: "Blog post", Value: "3"},
	}
	require.Equal(t, choices, RankChoices(choices, ""))

	ranked := RankChoices(choices, "blog")
	require.Len(t, ranked, 2)
	require.Equal(t, "2", ranked[0].Value)
	require.Equal(t, "3", ranked[1].Value)
}
