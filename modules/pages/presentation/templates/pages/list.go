package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/iota-uz/commerce-admin/components/filter"
	"github.com/iota-uz/commerce-admin/components/html"
	"github.com/iota-uz/commerce-admin/components/layout"
	pagefilters "github.com/iota-uz/commerce-admin/modules/pages/presentation/filters"
	"github.com/iota-uz/commerce-admin/modules/pages/presentation/urls"
	"github.com/iota-uz/commerce-admin/modules/pages/presentation/viewmodels"
	"github.com/iota-uz/commerce-admin/pkg/composables"
	"github.com/iota-uz/commerce-admin/pkg/filters"
	"github.com/iota-uz/commerce-admin/pkg/types"
)

type IndexPageProps struct {
	Params urls.PageListURLQueryParams
	Pages  []*viewmodels.Page
	Pager  viewmodels.Pager
	Filter filter.PanelProps[pagefilters.PageListFilterKey]
}

type column struct {
	label string
	field urls.PageListURLSortField
}

// FilterLabels localizes the filter panel chrome.
func FilterLabels(pageCtx types.PageContextProvider) filter.Labels {
	return filter.Labels{
		All:        pageCtx.T("Pages.Filters.All"),
		Custom:     pageCtx.T("Pages.Filters.Custom"),
		Apply:      pageCtx.T("Pages.Filters.Apply"),
		Reset:      pageCtx.T("Pages.Filters.Reset"),
		SavePreset: pageCtx.T("Pages.Filters.SavePreset"),
		PresetName: pageCtx.T("Pages.Filters.PresetName"),
		Delete:     pageCtx.T("Pages.Filters.Delete"),
		LoadMore:   pageCtx.T("Pages.Filters.LoadMore"),
		Search:     pageCtx.T("Pages.Filters.Search"),
	}
}

func sortURL(params urls.PageListURLQueryParams, field urls.PageListURLSortField) string {
	next := params
	next.Pagination = urls.Pagination{}
	next.Asc = !(params.Sort == field && params.Asc)
	next.Sort = field
	return urls.PageListURL(next)
}

func table(ctx context.Context, hw *html.Writer, props *IndexPageProps) {
	pageCtx := composables.UsePageCtx(ctx)
	if len(props.Pages) == 0 {
		hw.Raw(`<p class="empty">`).Text(pageCtx.T("Pages.List.Empty")).Raw("</p>")
		return
	}
	columns := []column{
		{label: "Pages.List.Columns.Title", field: urls.SortTitle},
		{label: "Pages.List.Columns.Slug", field: urls.SortSlug},
		{label: "Pages.List.Columns.PageType"},
		{label: "Pages.List.Columns.Visibility", field: urls.SortVisible},
	}
	hw.Raw(`<table id="pages-table"><thead><tr>`)
	for _, c := range columns {
		hw.Raw("<th>")
		if c.field == "" {
			hw.Text(pageCtx.T(c.label))
		} else {
			hw.Raw("<a").Attr("href", sortURL(props.Params, c.field)).Raw(">").Text(pageCtx.T(c.label)).Raw("</a>")
		}
		hw.Raw("</th>")
	}
	hw.Raw("</tr></thead><tbody>")
	for _, p := range props.Pages {
		visibility := pageCtx.T("Pages.List.Hidden")
		if p.IsPublished {
			visibility = pageCtx.T("Pages.List.Published")
		}
		hw.Raw("<tr").Attr("data-id", p.ID).Raw(">").
			Raw("<td><a").Attr("href", p.URL).Raw(">").Text(p.Title).Raw("</a></td>").
			Raw("<td>").Text(p.Slug).Raw("</td>").
			Raw("<td>").Text(p.PageType).Raw("</td>").
			Raw("<td>").Text(visibility).Raw("</td>").
			Raw("</tr>")
	}
	hw.Raw("</tbody></table>")
}

func pager(ctx context.Context, hw *html.Writer, p viewmodels.Pager) {
	pageCtx := composables.UsePageCtx(ctx)
	hw.Raw(`<nav class="pager"><span>`).
		Text(pageCtx.T("Pages.List.Total", map[string]interface{}{"Count": p.TotalCount})).
		Raw("</span>")
	if p.PreviousURL != "" {
		hw.Raw(`<a rel="prev"`).Attr("href", p.PreviousURL).Raw(">").Text(pageCtx.T("Pages.List.Previous")).Raw("</a>")
	}
	if p.NextURL != "" {
		hw.Raw(`<a rel="next"`).Attr("href", p.NextURL).Raw(">").Text(pageCtx.T("Pages.List.Next")).Raw("</a>")
	}
	hw.Raw("</nav>")
}

// PagesTable is the fragment swapped in by htmx searches and sorting.
func PagesTable(props *IndexPageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := html.New(w).Raw(`<div id="pages-list">`)
		table(ctx, hw, props)
		pager(ctx, hw, props.Pager)
		return hw.Raw("</div>").Err()
	})
}

func content(props *IndexPageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		search := props.Params
		search.Pagination = urls.Pagination{}
		search.Query = ""
		hw := html.New(w).
			Raw("<h1>").Text(pageCtx.T("Pages.List.Title")).Raw("</h1>").
			Render(ctx, filter.Panel(props.Filter)).
			Raw(`<input type="search" name="query"`).
			Attr("value", props.Params.Query).
			Attr("placeholder", pageCtx.T("Pages.List.Search")).
			Attr("hx-get", urls.PageListURL(search)).
			Attr("hx-trigger", "keyup changed delay:300ms").
			Attr("hx-target", "#pages-list").
			Attr("hx-swap", "outerHTML").
			Attr("hx-push-url", "true").
			Raw(">").
			Render(ctx, PagesTable(props))
		return hw.Err()
	})
}

func Index(props *IndexPageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		return layout.Authenticated(layout.Props{Title: pageCtx.T("Pages.List.Title")}).
			Render(templ.WithChildren(ctx, content(props)), w)
	})
}

// PageTypeOptions renders one page of autocomplete options. Selected values
// come first so a search never drops them from the form.
func PageTypeOptions(index int, choices, selected []filters.Choice, nextURL string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		name := "filters[" + strconv.Itoa(index) + "].value"
		hw := html.New(w)
		seen := make(map[string]bool, len(selected))
		for _, c := range selected {
			seen[c.Value] = true
			hw.Raw(`<label><input type="checkbox" checked`).Attr("name", name).Attr("value", c.Value).
				Raw(">").Text(c.Label).Raw("</label>")
		}
		for _, c := range choices {
			if seen[c.Value] {
				continue
			}
			hw.Raw(`<label><input type="checkbox"`).Attr("name", name).Attr("value", c.Value).
				Raw(">").Text(c.Label).Raw("</label>")
		}
		if nextURL != "" {
			hw.Raw(`<button type="button" hx-swap="outerHTML"`).Attr("hx-get", nextURL).Raw(">").
				Text(pageCtx.T("Pages.Filters.LoadMore")).Raw("</button>")
		}
		return hw.Err()
	})
}
