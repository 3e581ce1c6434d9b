package menus

import (
	"context"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/iota-uz/commerce-admin/components/dialog"
	"github.com/iota-uz/commerce-admin/components/html"
	"github.com/iota-uz/commerce-admin/components/layout"
	"github.com/iota-uz/commerce-admin/modules/menus/domain/menu"
	"github.com/iota-uz/commerce-admin/modules/menus/presentation/urls"
	"github.com/iota-uz/commerce-admin/modules/menus/presentation/viewmodels"
	"github.com/iota-uz/commerce-admin/pkg/composables"
)

type DetailsPageProps struct {
	Menu  *viewmodels.Menu
	State urls.UIState
	// Item is the add or edit dialog, whichever the state opens.
	Item *viewmodels.ItemDialog
	// Errors are the messages of the last failed save.
	Errors       []string
	DeleteErrors []string
	// Busy disables the save button while a save of this menu is running.
	Busy       bool
	DeleteBusy bool
}

// treeLabels are the localized strings of the editor rows.
type treeLabels struct {
	Edit, Parent, TopLevel, Position, Remove string
}

// placement renders the inputs that move or remove one item. The parent
// select leaves out the item and its descendants.
func placement(hw *html.Writer, it *viewmodels.MenuItem, parents []*viewmodels.ParentOption, l treeLabels) {
	field := func(name string) string {
		return "items[" + strconv.Itoa(it.Row) + "]." + name
	}
	hw.Raw(`<span class="placement">`).
		Raw(`<input type="hidden"`).Attr("name", field("id")).Attr("value", it.ID).Raw(">").
		Raw("<label>").Text(l.Parent).Raw("<select").Attr("name", field("parentId")).Raw(">").
		Raw(`<option value=""`).BoolAttr("selected", it.ParentID == "").Raw(">").Text(l.TopLevel).Raw("</option>")
	for _, p := range parents {
		if slices.Contains(p.Path, it.ID) {
			continue
		}
		hw.Raw("<option").Attr("value", p.ID).BoolAttr("selected", p.ID == it.ParentID).Raw(">").
			Text(strings.Repeat("- ", p.Depth) + p.Name).Raw("</option>")
	}
	hw.Raw("</select></label>").
		Raw("<label>").Text(l.Position).
		Raw(`<input type="number" min="0"`).Attr("name", field("position")).Attr("value", strconv.Itoa(it.Position)).Raw("></label>").
		Raw(`<label><input type="checkbox" value="true"`).Attr("name", field("remove")).Raw(">").Text(l.Remove).Raw("</label>").
		Raw("</span>")
}

func tree(hw *html.Writer, items []*viewmodels.MenuItem, parents []*viewmodels.ParentOption, l treeLabels) {
	if len(items) == 0 {
		return
	}
	hw.Raw(`<ul class="menu-tree">`)
	for _, it := range items {
		hw.Raw("<li").Attr("data-id", it.ID).Attr("data-type", it.Type).Raw(">")
		if it.OpenURL != "" {
			hw.Raw("<a").Attr("href", it.OpenURL)
			if it.External {
				hw.Attr("target", "_blank").Attr("rel", "noopener")
			}
			hw.Raw(">").Text(it.Name).Raw("</a>")
		} else {
			hw.Raw("<span>").Text(it.Name).Raw("</span>")
		}
		hw.Raw(` <a class="edit"`).Attr("href", it.EditURL).Raw(">").Text(l.Edit).Raw("</a>")
		placement(hw, it, parents, l)
		tree(hw, it.Children, parents, l)
		hw.Raw("</li>")
	}
	hw.Raw("</ul>")
}

func editor(ctx context.Context, hw *html.Writer, props *DetailsPageProps) {
	pageCtx := composables.UsePageCtx(ctx)
	m := props.Menu
	submitURL := urls.MenuURL(m.ID, urls.MenuURLQueryParams{})
	hw.Raw(`<form id="menu-form" method="post"`).Attr("action", submitURL).Attr("data-tree", m.Tree).Raw(">").
		Raw("<label>").Text(pageCtx.T("Menus.Details.Name")).
		Raw(`<input type="text" name="name" required`).Attr("value", m.Name).Raw("></label>")
	dialog.ErrorList(hw, props.Errors)
	if len(m.Items) == 0 {
		hw.Raw(`<p class="empty">`).Text(pageCtx.T("Menus.Details.Empty")).Raw("</p>")
	}
	tree(hw, m.Items, m.Parents, treeLabels{
		Edit:     pageCtx.T("Menus.Details.Edit"),
		Parent:   pageCtx.T("Menus.Details.Parent"),
		TopLevel: pageCtx.T("Menus.Details.TopLevel"),
		Position: pageCtx.T("Menus.Details.Position"),
		Remove:   pageCtx.T("Menus.Details.Remove"),
	})
	addURL := urls.MenuURL(m.ID, urls.Reduce(props.State, urls.OpenAddItem{}).Params())
	removeURL := urls.MenuURL(m.ID, urls.Reduce(props.State, urls.OpenRemove{}).Params())
	hw.Raw(`<div class="actions">`).
		Raw("<a").Attr("href", addURL).Raw(">").Text(pageCtx.T("Menus.Details.AddItem")).Raw("</a>").
		Raw(`<a class="danger"`).Attr("href", removeURL).Raw(">").Text(pageCtx.T("Menus.Details.Delete")).Raw("</a>").
		Raw(`<button type="submit"`).BoolAttr("disabled", props.Busy).Raw(">").Text(pageCtx.T("Menus.Details.Save")).Raw("</button>").
		Raw("</div></form>")
}

// deleteBody is the confirmation text of the delete dialog.
func deleteBody(name string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		return html.New(w).Raw("<p>").
			Text(pageCtx.T("Menus.Delete.Body", map[string]interface{}{"MenuName": name})).
			Raw("</p>").Err()
	})
}

func DeleteDialog(props *DetailsPageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		m := props.Menu
		action := dialog.Action(dialog.ActionProps{
			ID:         "menu-delete-dialog",
			Open:       props.State.Is(urls.DialogRemove),
			Title:      pageCtx.T("Menus.Delete.Title"),
			Variant:    dialog.VariantDelete,
			ConfirmURL: urls.MenuDeleteURL(m.ID),
			CloseURL:   urls.MenuCloseURL(m.ID, props.State.Params()),
			Confirm:    pageCtx.T("Menus.Delete.Confirm"),
			Cancel:     pageCtx.T("Menus.Delete.Cancel"),
			Disabled:   props.DeleteBusy,
			Errors:     props.DeleteErrors,
		})
		return action.Render(templ.WithChildren(ctx, deleteBody(m.Name)), w)
	})
}

// ItemDialog is the add and edit item form. It is also returned alone as
// an htmx fragment when validation fails.
func ItemDialog(d *viewmodels.ItemDialog) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if d == nil || !d.Open {
			return nil
		}
		pageCtx := composables.UsePageCtx(ctx)
		title := pageCtx.T("Menus.Item.AddTitle")
		if d.Edit {
			title = pageCtx.T("Menus.Item.EditTitle")
		}
		hw := html.New(w).
			Raw(`<dialog open id="menu-item-dialog" class="dialog dialog-default">`).
			Raw("<h2>").Text(title).Raw("</h2>").
			Raw(`<form method="post" hx-target="#menu-item-dialog" hx-swap="outerHTML"`).
			Attr("action", d.ActionURL).Attr("hx-post", d.ActionURL).Raw(">")
		dialog.ErrorList(hw, d.Messages)

		hw.Raw("<label>").Text(pageCtx.T("Menus.Item.Name")).
			Raw(`<input type="text" name="name" required`).Attr("value", d.Name).Raw(">")
		fieldError(hw, d.Errors["Name"])
		hw.Raw("</label>")

		hw.Raw("<label>").Text(pageCtx.T("Menus.Item.LinkType")).Raw(`<select name="linkType">`)
		for _, t := range menu.ItemTypes() {
			hw.Raw("<option").Attr("value", string(t)).BoolAttr("selected", string(t) == d.LinkType).Raw(">").
				Text(pageCtx.T("Menus.Item.Types." + string(t))).Raw("</option>")
		}
		hw.Raw("</select>")
		fieldError(hw, d.Errors["LinkType"])
		hw.Raw("</label>")

		hw.Raw("<label>").Text(pageCtx.T("Menus.Item.LinkValue")).
			Raw(`<input type="text" name="linkValue" required`).Attr("value", d.LinkValue).Attr("placeholder", d.LinkLabel).Raw(">")
		fieldError(hw, d.Errors["LinkValue"])
		hw.Raw("</label>")

		hw.Raw("<a").Attr("href", d.CloseURL).Raw(">").Text(pageCtx.T("Menus.Item.Cancel")).Raw("</a>").
			Raw(`<button type="submit"`).BoolAttr("disabled", d.Disabled).Raw(">").Text(pageCtx.T("Menus.Item.Save")).Raw("</button>").
			Raw("</form></dialog>")
		return hw.Err()
	})
}

func fieldError(hw *html.Writer, msg string) {
	if msg != "" {
		hw.Raw(`<small class="error">`).Text(msg).Raw("</small>")
	}
}

func detailsContent(props *DetailsPageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		hw := html.New(w).
			Raw("<a").Attr("href", urls.MenuListPath).Raw(">").Text(pageCtx.T("Menus.List.Title")).Raw("</a>").
			Raw("<h1>").Text(props.Menu.Name).Raw("</h1>")
		editor(ctx, hw, props)
		return hw.
			Render(ctx, DeleteDialog(props)).
			Render(ctx, ItemDialog(props.Item)).
			Err()
	})
}

func Details(props *DetailsPageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return layout.Authenticated(layout.Props{Title: props.Menu.Name}).
			Render(templ.WithChildren(ctx, detailsContent(props)), w)
	})
}
