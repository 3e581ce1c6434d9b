package composables

import (
	"context"

	"github.com/iota-uz/commerce-admin/pkg/constants"
	"github.com/iota-uz/commerce-admin/pkg/notifier"
)

// UseNotifier returns the request notifier. Without one, notifications are
// dropped.
func UseNotifier(ctx context.Context) notifier.Notifier {
	if n, ok := ctx.Value(constants.NotifierKey).(notifier.Notifier); ok && n != nil {
		return n
	}
	return notifier.NotifierFunc(func(notifier.Notification) {})
}

func WithNotifier(ctx context.Context, n notifier.Notifier) context.Context {
	return context.WithValue(ctx, constants.NotifierKey, n)
}
