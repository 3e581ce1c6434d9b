package menu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetMenuItemInputData(t *testing.T) {
	cases := []struct {
		linkType MenuItemType
		want     MenuItemInput
	}{
		{TypeCategory, MenuItemInput{Name: "Shoes", Category: "v"}},
		{TypeCollection, MenuItemInput{Name: "Shoes", Collection: "v"}},
		{TypePage, MenuItemInput{Name: "Shoes", Page: "v"}},
		{TypeLink, MenuItemInput{Name: "Shoes", URL: "v"}},
	}
	for _, tc := range cases {
		got, err := GetMenuItemInputData(MenuItemDialogFormData{Name: "Shoes", LinkType: tc.linkType, LinkValue: "v"})
		require.NoError(t, err)
		require.Equal(t, &tc.want, got)
	}

	_, err := GetMenuItemInputData(MenuItemDialogFormData{Name: "x", LinkType: "product"})
	require.ErrorIs(t, err, ErrUnknownMenuItemType)
}

func TestGetMenuItemCreateInputData(t *testing.T) {
	got, err := GetMenuItemCreateInputData("m1", MenuItemDialogFormData{Name: "Blog", LinkType: TypePage, LinkValue: "p1"})
	require.NoError(t, err)
	require.Equal(t, &MenuItemCreateInput{
		MenuItemInput: MenuItemInput{Name: "Blog", Page: "p1"},
		Menu:          "m1",
	}, got)
}

func TestInitialFormData(t *testing.T) {
	it := &MenuItem{ID: "i1", Name: "Summer", Link: CollectionLink{ID: "col1", Name: "Summer sale"}}
	require.Equal(t, MenuItemDialogFormData{
		ID:        "col1",
		Name:      "Summer",
		LinkType:  TypeCollection,
		LinkValue: "col1",
	}, InitialFormData(it, true))
	require.Equal(t, "Summer sale", InitialMenuItemLabel(it))

	require.Equal(t, MenuItemDialogFormData{Name: "...", LinkType: TypeCategory}, InitialFormData(nil, false))
	require.Empty(t, InitialMenuItemLabel(nil))
	require.Empty(t, InitialMenuItemValue(nil))

	bare := &MenuItem{ID: "i2", Name: "Nowhere"}
	require.Equal(t, MenuItemDialogFormData{Name: "Nowhere", LinkType: TypeCategory}, InitialFormData(bare, true))
}
