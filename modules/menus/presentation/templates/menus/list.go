package menus

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/iota-uz/commerce-admin/components/html"
	"github.com/iota-uz/commerce-admin/components/layout"
	"github.com/iota-uz/commerce-admin/modules/menus/presentation/viewmodels"
	"github.com/iota-uz/commerce-admin/pkg/composables"
)

type ListPageProps struct {
	List *viewmodels.MenuList
}

func listContent(props *ListPageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		hw := html.New(w).Raw("<h1>").Text(pageCtx.T("Menus.List.Title")).Raw("</h1>")
		if len(props.List.Menus) == 0 {
			return hw.Raw(`<p class="empty">`).Text(pageCtx.T("Menus.List.Empty")).Raw("</p>").Err()
		}
		hw.Raw(`<table id="menus-table"><thead><tr>`).
			Raw("<th>").Text(pageCtx.T("Menus.List.Columns.Name")).Raw("</th>").
			Raw("<th>").Text(pageCtx.T("Menus.List.Columns.Items")).Raw("</th>").
			Raw("</tr></thead><tbody>")
		for _, m := range props.List.Menus {
			hw.Raw("<tr").Attr("data-id", m.ID).Raw(">").
				Raw("<td><a").Attr("href", m.URL).Raw(">").Text(m.Name).Raw("</a></td>").
				Raw("<td>").Text(strconv.Itoa(m.ItemCount)).Raw("</td>").
				Raw("</tr>")
		}
		hw.Raw("</tbody></table>").
			Raw(`<nav class="pager"><span>`).
			Text(pageCtx.T("Menus.List.Total", map[string]interface{}{"Count": props.List.TotalCount})).
			Raw("</span>")
		if props.List.NextURL != "" {
			hw.Raw(`<a rel="next"`).Attr("href", props.List.NextURL).Raw(">").Text(pageCtx.T("Menus.List.Next")).Raw("</a>")
		}
		return hw.Raw("</nav>").Err()
	})
}

func List(props *ListPageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		return layout.Authenticated(layout.Props{Title: pageCtx.T("Menus.List.Title")}).
			Render(templ.WithChildren(ctx, listContent(props)), w)
	})
}
