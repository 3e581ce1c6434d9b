package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/iota-uz/commerce-admin/pkg/composables"
	"github.com/iota-uz/commerce-admin/pkg/intl"
	"github.com/iota-uz/commerce-admin/pkg/notifier"
	"github.com/iota-uz/commerce-admin/pkg/types"
)

// WithPageContext builds the page context for templ components. Pending flash
// toasts are consumed here and a fresh flash notifier is attached for the
// handler.
func WithPageContext(flash *notifier.FlashStore) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				localizer, found := intl.UseLocalizer(r.Context())
				if !found {
					panic(intl.ErrNoLocalizer)
				}
				locale, ok := intl.UseLocale(r.Context())
				if !ok {
					panic("locale not found")
				}
				var toasts []types.Toast
				if r.Method == http.MethodGet {
					toasts = flash.Pop(w, r)
				}
				pageCtx := &types.PageContext{
					URL:       r.URL,
					Localizer: localizer,
					Locale:    locale,
					Nav:       UseNavItems(r.Context()),
					Flash:     toasts,
				}
				ctx := composables.WithPageCtx(r.Context(), pageCtx)
				ctx = composables.WithNotifier(ctx, flash.Notifier(w, r))
				next.ServeHTTP(w, r.WithContext(ctx))
			},
		)
	}
}
