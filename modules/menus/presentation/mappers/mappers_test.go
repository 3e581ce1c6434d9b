package mappers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iota-uz/commerce-admin/modules/menus/domain/menu"
	"github.com/iota-uz/commerce-admin/modules/menus/presentation/urls"
)

func sample() *menu.Menu {
	return &menu.Menu{
		ID:   "m1",
		Name: "Footer",
		Items: []*menu.MenuItem{
			{ID: "a", Name: "Shoes", Link: menu.CategoryLink{ID: "c1", Name: "Shoes"}, Children: []*menu.MenuItem{
				{ID: "a1", Name: "Blog", Link: menu.URLLink{URL: "https://example.com"}},
			}},
			{ID: "b", Name: "Empty"},
		},
	}
}

func TestMenuName(t *testing.T) {
	require.Equal(t, "...", MenuName(nil))
	require.Equal(t, "...", MenuName(&menu.Menu{}))
	require.Equal(t, "Footer", MenuName(sample()))
}

func TestMenuToViewModel(t *testing.T) {
	vm, err := MenuToViewModel(sample())
	require.NoError(t, err)
	require.Len(t, vm.Items, 2)

	shoes := vm.Items[0]
	require.Equal(t, "category", shoes.Type)
	require.Equal(t, "/navigation/m1/items/a/open", shoes.OpenURL)
	require.Equal(t, "/navigation/m1?action=edit-item&id=a", shoes.EditURL)
	require.False(t, shoes.External)
	require.True(t, shoes.Children[0].External)

	require.Empty(t, vm.Items[1].Type)
	require.Empty(t, vm.Items[1].OpenURL)
	require.Contains(t, vm.Tree, `"id":"a1"`)
}

func TestMenuToViewModel_Rows(t *testing.T) {
	vm, err := MenuToViewModel(sample())
	require.NoError(t, err)

	blog := vm.Items[0].Children[0]
	require.Equal(t, 1, blog.Row)
	require.Equal(t, "a", blog.ParentID)
	require.Equal(t, 0, blog.Position)
	require.Equal(t, 2, vm.Items[1].Row)
	require.Equal(t, 1, vm.Items[1].Position)
	require.Empty(t, vm.Items[1].ParentID)

	require.Len(t, vm.Parents, 3)
	require.Equal(t, []string{"a", "a1"}, vm.Parents[1].Path)
	require.Equal(t, 1, vm.Parents[1].Depth)
}

func TestEditItemDialog(t *testing.T) {
	state := urls.Reduce(urls.UIState{}, urls.OpenEditItem{ID: "a"})
	d := EditItemDialog("m1", sample(), state)
	require.True(t, d.Open)
	require.Equal(t, "Shoes", d.Name)
	require.Equal(t, "category", d.LinkType)
	require.Equal(t, "c1", d.LinkValue)
	require.Equal(t, "Shoes", d.LinkLabel)
	require.Equal(t, "/navigation/m1/items/a", d.ActionURL)
	require.Equal(t, "/navigation/m1/close?action=edit-item&id=a", d.CloseURL)

	missing := EditItemDialog("m1", nil, urls.UIState{Dialog: urls.DialogEditItem, TargetID: "zz"})
	require.Equal(t, "...", missing.Name)
	require.Equal(t, "category", missing.LinkType)
	require.Empty(t, missing.LinkValue)
}

func TestListToViewModel(t *testing.T) {
	vm := ListToViewModel(&menu.ListResult{
		Menus:       []menu.Summary{{ID: "m1", Name: "Footer", ItemCount: 3}},
		HasNextPage: true,
		EndCursor:   "c",
		TotalCount:  4,
	})
	require.Equal(t, "/navigation/m1", vm.Menus[0].URL)
	require.Equal(t, "/navigation?after=c", vm.NextURL)

	last := ListToViewModel(&menu.ListResult{HasNextPage: false, EndCursor: "c"})
	require.Empty(t, last.NextURL)
	require.NotNil(t, last.Menus)
}

func TestMessages(t *testing.T) {
	require.Equal(t, []string{"name: This field is required.", "NOT_FOUND"}, Messages([]menu.MutationError{
		{Field: "name", Message: "This field is required.", Code: menu.CodeRequired},
		{Code: menu.CodeNotFound},
	}))
}
