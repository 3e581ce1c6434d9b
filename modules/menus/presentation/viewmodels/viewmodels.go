package viewmodels

type MenuSummary struct {
	ID        string
	Name      string
	Slug      string
	ItemCount int
	URL       string
}

type MenuList struct {
	Menus      []*MenuSummary
	NextURL    string
	TotalCount int
}

type MenuItem struct {
	ID   string
	Name string
	// Type is empty for items that link nowhere.
	Type     string
	Value    string
	Label    string
	OpenURL  string
	External bool
	EditURL  string
	Children []*MenuItem
	// Row numbers the item's placement inputs in the editor form.
	Row      int
	ParentID string
	Position int
}

// ParentOption is an item offered as a parent in the editor.
type ParentOption struct {
	ID    string
	Name  string
	Depth int
	// Path holds the ids from the top level down to this item.
	Path []string
}

type Menu struct {
	ID      string
	Name    string
	Slug    string
	Items   []*MenuItem
	Parents []*ParentOption
	// Tree is the saved tree as JSON, for scripts that post the edited tree
	// back whole.
	Tree string
}

// ItemDialog is the add or edit item form.
type ItemDialog struct {
	Open      bool
	Edit      bool
	ActionURL string
	CloseURL  string
	Name      string
	LinkType  string
	LinkValue string
	// LinkLabel names the preselected target for display.
	LinkLabel string
	Errors    map[string]string
	Messages  []string
	Disabled  bool
}
