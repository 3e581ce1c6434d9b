package menu

type ErrorCode string

const (
	CodeCannotAssignNode   ErrorCode = "CANNOT_ASSIGN_NODE"
	CodeGraphQLError       ErrorCode = "GRAPHQL_ERROR"
	CodeInvalid            ErrorCode = "INVALID"
	CodeInvalidMenuItem    ErrorCode = "INVALID_MENU_ITEM"
	CodeNoMenuItemProvided ErrorCode = "NO_MENU_ITEM_PROVIDED"
	CodeNotFound           ErrorCode = "NOT_FOUND"
	CodeRequired           ErrorCode = "REQUIRED"
	CodeTooManyMenuItems   ErrorCode = "TOO_MANY_MENU_ITEMS"
	CodeUnique             ErrorCode = "UNIQUE"
	// CodeBusy is produced locally when the same mutation is already running.
	CodeBusy ErrorCode = "BUSY"
)

// MutationError is a field error reported by a mutation. It is data to show
// on the form, not a Go error.
type MutationError struct {
	Field   string
	Message string
	Code    ErrorCode
}
