package pages

import (
	icons "github.com/iota-uz/icons/phosphor"

	"github.com/iota-uz/commerce-admin/modules/pages/presentation/urls"
	"github.com/iota-uz/commerce-admin/pkg/types"
)

var PagesLink = types.NavigationItem{
	Name: "NavigationLinks.Pages",
	Href: urls.PageListPath,
}

var NavItems = []types.NavigationItem{
	{
		Name:     "NavigationLinks.Modeling",
		Icon:     icons.PuzzlePiece(icons.Props{Size: "20"}),
		Children: []types.NavigationItem{PagesLink},
	},
}
