package urls

// Dialog names the dialog the menu page shows. It travels as the "action"
// query parameter.
type Dialog string

const (
	DialogNone     Dialog = ""
	DialogRemove   Dialog = "remove"
	DialogAddItem  Dialog = "add-item"
	DialogEditItem Dialog = "edit-item"
)

// UIState is the dialog state of the menu page. TargetID is set only for
// DialogEditItem.
type UIState struct {
	Dialog   Dialog
	TargetID string
}

// Event is a user action that changes the dialog state.
type Event interface {
	event()
}

type OpenRemove struct{}

type OpenAddItem struct{}

type OpenEditItem struct {
	ID string
}

type Close struct{}

func (OpenRemove) event()   {}
func (OpenAddItem) event()  {}
func (OpenEditItem) event() {}
func (Close) event()        {}

// Reduce computes the next state. Opening a dialog replaces any open one.
func Reduce(state UIState, e Event) UIState {
	switch e := e.(type) {
	case OpenRemove:
		return UIState{Dialog: DialogRemove}
	case OpenAddItem:
		return UIState{Dialog: DialogAddItem}
	case OpenEditItem:
		if e.ID == "" {
			return state
		}
		return UIState{Dialog: DialogEditItem, TargetID: e.ID}
	case Close:
		return UIState{}
	}
	return state
}

// StateFromParams reads the state from the URL. Unknown actions and an edit
// without a target mean no dialog.
func StateFromParams(p MenuURLQueryParams) UIState {
	switch p.Action {
	case DialogRemove, DialogAddItem:
		return UIState{Dialog: p.Action}
	case DialogEditItem:
		if p.ID == "" {
			return UIState{}
		}
		return UIState{Dialog: DialogEditItem, TargetID: p.ID}
	}
	return UIState{}
}

func (s UIState) Params() MenuURLQueryParams {
	return MenuURLQueryParams{Action: s.Dialog, ID: s.TargetID}
}

func (s UIState) Is(d Dialog) bool {
	return s.Dialog == d
}
