package layout

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/iota-uz/commerce-admin/components/html"
	"github.com/iota-uz/commerce-admin/internal/assets"
	"github.com/iota-uz/commerce-admin/pkg/composables"
	"github.com/iota-uz/commerce-admin/pkg/types"
)

type Props struct {
	Title string
}

func navItem(ctx context.Context, hw *html.Writer, item types.NavigationItem, path string) {
	hw.Raw("<li>")
	if item.Href != "" {
		hw.Raw("<a").Attr("href", item.Href)
		if item.IsActive(path) {
			hw.Attr("aria-current", "page")
		}
		hw.Raw(">")
	} else {
		hw.Raw("<span>")
	}
	hw.Render(ctx, item.Icon).Text(item.Name)
	if item.Href != "" {
		hw.Raw("</a>")
	} else {
		hw.Raw("</span>")
	}
	if len(item.Children) > 0 {
		hw.Raw("<ul>")
		for _, child := range item.Children {
			navItem(ctx, hw, child, path)
		}
		hw.Raw("</ul>")
	}
	hw.Raw("</li>")
}

// Toasts renders pending flash notifications.
func Toasts(toasts []types.Toast) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(toasts) == 0 {
			return nil
		}
		hw := html.New(w).Raw(`<div id="toasts" role="status">`)
		for _, t := range toasts {
			hw.Raw("<div").Class("toast", "toast-"+t.Status).Raw(">").Text(t.Text).Raw("</div>")
		}
		return hw.Raw("</div>").Err()
	})
}

// Authenticated wraps the children of ctx in the dashboard shell.
func Authenticated(props Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		path := ""
		if u := pageCtx.GetURL(); u != nil {
			path = u.Path
		}
		hw := html.New(w).
			Raw("<!DOCTYPE html><html").Attr("lang", pageCtx.GetLocale().String()).Raw("><head>").
			Raw(`<meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`).
			Raw("<title>").Text(props.Title).Raw("</title>").
			Raw(`<link rel="stylesheet"`).Attr("href", assets.Path("css/main.css")).Raw(">").
			Raw(`<script src="https://unpkg.com/htmx.org@1.9.12" defer></script>`).
			Raw("</head><body><nav><ul>")
		for _, item := range pageCtx.NavItems() {
			navItem(ctx, hw, item, path)
		}
		hw.Raw(`</ul></nav><main id="content">`).
			Render(ctx, Toasts(pageCtx.Toasts())).
			Render(ctx, templ.GetChildren(ctx)).
			Raw("</main></body></html>")
		return hw.Err()
	})
}
