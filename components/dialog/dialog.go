package dialog

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/iota-uz/commerce-admin/components/html"
)

type Variant string

const (
	VariantDefault Variant = "default"
	VariantDelete  Variant = "delete"
)

type ActionProps struct {
	ID         string
	Open       bool
	Title      string
	Variant    Variant
	ConfirmURL string
	CloseURL   string
	Confirm    string
	Cancel     string
	Disabled   bool
	Errors     []string
}

// Action is a confirm dialog. Confirming POSTs to ConfirmURL, closing follows
// CloseURL. A closed dialog renders nothing.
func Action(props ActionProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if !props.Open {
			return nil
		}
		hw := html.New(w).
			Raw("<dialog open").Attr("id", props.ID).Class("dialog", "dialog-"+string(props.Variant)).Raw(">").
			Raw("<h2>").Text(props.Title).Raw("</h2>").
			Raw(`<div class="dialog-body">`).Render(ctx, templ.GetChildren(ctx)).Raw("</div>")
		ErrorList(hw, props.Errors)
		hw.Raw("<form method=\"post\"").Attr("action", props.ConfirmURL).Attr("hx-post", props.ConfirmURL).Raw(">").
			Raw("<a").Attr("href", props.CloseURL).Raw(">").Text(props.Cancel).Raw("</a>").
			Raw(`<button type="submit"`).BoolAttr("disabled", props.Disabled).Raw(">").Text(props.Confirm).Raw("</button>").
			Raw("</form></dialog>")
		return hw.Err()
	})
}

// ErrorList renders messages as an alert list.
func ErrorList(hw *html.Writer, messages []string) {
	if len(messages) == 0 {
		return
	}
	hw.Raw(`<ul class="errors" role="alert">`)
	for _, m := range messages {
		hw.Raw("<li>").Text(m).Raw("</li>")
	}
	hw.Raw("</ul>")
}
