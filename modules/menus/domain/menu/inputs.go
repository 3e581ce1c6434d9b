package menu

// MenuItemDialogFormData is what the add and edit item dialogs submit.
type MenuItemDialogFormData struct {
	ID        string
	Name      string
	LinkType  MenuItemType
	LinkValue string
}

// MenuItemInput sets the name and exactly one link target of an item.
type MenuItemInput struct {
	Name       string
	Category   string
	Collection string
	Page       string
	URL        string
}

type MenuItemCreateInput struct {
	MenuItemInput
	Menu   string
	Parent string
}

func GetMenuItemInputData(data MenuItemDialogFormData) (*MenuItemInput, error) {
	link, err := NewLink(data.LinkType, data.LinkValue)
	if err != nil {
		return nil, err
	}
	input := MatchLink(link, LinkCases[MenuItemInput]{
		Category:   func(l CategoryLink) MenuItemInput { return MenuItemInput{Category: l.ID} },
		Collection: func(l CollectionLink) MenuItemInput { return MenuItemInput{Collection: l.ID} },
		Page:       func(l PageLink) MenuItemInput { return MenuItemInput{Page: l.ID} },
		URL:        func(l URLLink) MenuItemInput { return MenuItemInput{URL: l.URL} },
	})
	input.Name = data.Name
	return &input, nil
}

func GetMenuItemCreateInputData(menuID string, data MenuItemDialogFormData) (*MenuItemCreateInput, error) {
	input, err := GetMenuItemInputData(data)
	if err != nil {
		return nil, err
	}
	return &MenuItemCreateInput{MenuItemInput: *input, Menu: menuID}, nil
}

// InitialMenuItemValue is the link value the edit dialog starts with, or ""
// when there is no item or it links nowhere.
func InitialMenuItemValue(item *MenuItem) string {
	if item == nil || item.Link == nil {
		return ""
	}
	return item.Link.Value()
}

// InitialMenuItemLabel is the display label of the preselected link target.
func InitialMenuItemLabel(item *MenuItem) string {
	if item == nil || item.Link == nil {
		return ""
	}
	return item.Link.Label()
}

// InitialFormData pre-populates the edit dialog. A missing item yields the
// placeholder name "..." and the category link type.
func InitialFormData(item *MenuItem, found bool) MenuItemDialogFormData {
	data := MenuItemDialogFormData{
		Name:      "...",
		LinkType:  TypeCategory,
		LinkValue: InitialMenuItemValue(item),
	}
	if !found || item == nil {
		return data
	}
	data.Name = item.Name
	if item.Link != nil {
		data.ID = item.Link.Value()
		data.LinkType = item.Link.Type()
	}
	return data
}
