package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/iota-uz/go-i18n/v2/i18n"

	"github.com/iota-uz/commerce-admin/pkg/constants"
	"github.com/iota-uz/commerce-admin/pkg/intl"
	"github.com/iota-uz/commerce-admin/pkg/types"
)

type NavProvider interface {
	NavItems(localizer *i18n.Localizer) []types.NavigationItem
}

// getEnabledNavItems drops empty groups and inlines groups with a single
// child.
func getEnabledNavItems(items []types.NavigationItem) []types.NavigationItem {
	var out []types.NavigationItem
	for _, item := range items {
		if len(item.Children) == 0 {
			if item.Href != "" {
				out = append(out, item)
			}
			continue
		}
		children := getEnabledNavItems(item.Children)
		switch len(children) {
		case 0:
		case 1:
			out = append(out, children[0])
		default:
			item.Children = children
			out = append(out, item)
		}
	}
	return out
}

func UseNavItems(ctx context.Context) []types.NavigationItem {
	items, _ := ctx.Value(constants.NavItemsKey).([]types.NavigationItem)
	return items
}

// NavItems translates the registered navigation and stores it in the
// context. Must run after ProvideLocalizer.
func NavItems(app NavProvider) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				localizer, ok := intl.UseLocalizer(r.Context())
				if !ok {
					panic(intl.ErrNoLocalizer)
				}
				items := getEnabledNavItems(app.NavItems(localizer))
				ctx := context.WithValue(r.Context(), constants.NavItemsKey, items)
				next.ServeHTTP(w, r.WithContext(ctx))
			},
		)
	}
}
