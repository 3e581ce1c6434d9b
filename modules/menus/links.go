package menus

import (
	icons "github.com/iota-uz/icons/phosphor"

	"github.com/iota-uz/commerce-admin/modules/menus/presentation/urls"
	"github.com/iota-uz/commerce-admin/pkg/types"
)

var NavigationLink = types.NavigationItem{
	Name: "NavigationLinks.Navigation",
	Href: urls.MenuListPath,
}

var NavItems = []types.NavigationItem{
	{
		Name:     "NavigationLinks.Structure",
		Icon:     icons.TreeStructure(icons.Props{Size: "20"}),
		Children: []types.NavigationItem{NavigationLink},
	},
}
