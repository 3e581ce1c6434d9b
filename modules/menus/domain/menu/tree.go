package menu

// Path locates an item by its index at each level of the forest.
type Path []int

// FindNode searches the forest depth first, pre-order, and returns the path
// of the first item with the given id.
func FindNode(items []*MenuItem, id string) (Path, bool) {
	for i, item := range items {
		if item == nil {
			continue
		}
		if item.ID == id {
			return Path{i}, true
		}
		if sub, ok := FindNode(item.Children, id); ok {
			return append(Path{i}, sub...), true
		}
	}
	return nil, false
}

// GetNode resolves a path. Empty and out of range paths resolve to nothing.
func GetNode(items []*MenuItem, path Path) (*MenuItem, bool) {
	if len(path) == 0 {
		return nil, false
	}
	var node *MenuItem
	level := items
	for _, idx := range path {
		if idx < 0 || idx >= len(level) || level[idx] == nil {
			return nil, false
		}
		node = level[idx]
		level = node.Children
	}
	return node, true
}

func Lookup(items []*MenuItem, id string) (*MenuItem, bool) {
	path, ok := FindNode(items, id)
	if !ok {
		return nil, false
	}
	return GetNode(items, path)
}

// Walk visits every item in pre-order with its parent (nil at the root) and
// index within the parent.
func Walk(items []*MenuItem, fn func(item, parent *MenuItem, index int)) {
	walk(items, nil, fn)
}

func walk(items []*MenuItem, parent *MenuItem, fn func(item, parent *MenuItem, index int)) {
	for i, item := range items {
		if item == nil {
			continue
		}
		fn(item, parent, i)
		walk(item.Children, item, fn)
	}
}

func Count(items []*MenuItem) int {
	n := 0
	Walk(items, func(*MenuItem, *MenuItem, int) { n++ })
	return n
}
