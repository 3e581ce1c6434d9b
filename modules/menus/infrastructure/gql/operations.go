package gql

import (
	"embed"
)

//go:embed operations/*.graphql
var Operations embed.FS

var (
	//go:embed operations/menu_details.graphql
	menuDetailsQuery string
	//go:embed operations/menu_list.graphql
	menuListQuery string
	//go:embed operations/menu_delete.graphql
	menuDeleteMutation string
	//go:embed operations/menu_update.graphql
	menuUpdateMutation string
	//go:embed operations/menu_item_create.graphql
	menuItemCreateMutation string
	//go:embed operations/menu_item_update.graphql
	menuItemUpdateMutation string
)
