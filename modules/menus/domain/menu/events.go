package menu

// UpdatedEvent is published after a mutation of a menu, its items or its
// item order reached the API. Sub-mutations succeed independently, so
// Rejected counts the errors the API reported; the menu may still have
// changed in part.
type UpdatedEvent struct {
	MenuID   string
	Rejected int
}

type DeletedEvent struct {
	MenuID string
}
