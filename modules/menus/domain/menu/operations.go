package menu

type OperationType string

const (
	OperationMove   OperationType = "move"
	OperationRemove OperationType = "remove"
)

// TreeOperation is one edit recorded by the tree editor. ParentID and
// SortOrder only matter for moves; an empty ParentID means the root.
type TreeOperation struct {
	Type      OperationType
	ID        string
	ParentID  string
	SortOrder int
}

// Move places ItemID at index SortOrder among the children of ParentID.
type Move struct {
	ItemID    string
	ParentID  string
	SortOrder int
}

type SubmitData struct {
	Name       string
	Operations []TreeOperation
}

func GetMoves(data SubmitData) []Move {
	moves := make([]Move, 0, len(data.Operations))
	for _, op := range data.Operations {
		if op.Type != OperationMove {
			continue
		}
		moves = append(moves, Move{ItemID: op.ID, ParentID: op.ParentID, SortOrder: op.SortOrder})
	}
	return moves
}

func GetRemoveIDs(data SubmitData) []string {
	ids := make([]string, 0, len(data.Operations))
	for _, op := range data.Operations {
		if op.Type == OperationRemove {
			ids = append(ids, op.ID)
		}
	}
	return ids
}

// Operations turns a diff back into editor operations, moves first.
func Operations(moves []Move, removeIDs []string) []TreeOperation {
	ops := make([]TreeOperation, 0, len(moves)+len(removeIDs))
	for _, m := range moves {
		ops = append(ops, TreeOperation{Type: OperationMove, ID: m.ItemID, ParentID: m.ParentID, SortOrder: m.SortOrder})
	}
	for _, id := range removeIDs {
		ops = append(ops, TreeOperation{Type: OperationRemove, ID: id})
	}
	return ops
}
