package filter

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/iota-uz/commerce-admin/components/html"
	"github.com/iota-uz/commerce-admin/pkg/filters"
)

type TabLink struct {
	Name      string
	Href      string
	DeleteURL string
	Selected  bool
}

type PanelProps[K ~string] struct {
	ApplyURL      string
	SavePresetURL string
	ResetURL      string
	Elements      []filters.FilterElement[K]
	Tabs          []TabLink
	CurrentTab    int
	// CustomTab is true when the applied filters match no saved preset.
	CustomTab bool
	// PresetData is the encoded filter query saved by the preset form.
	PresetData string
	Hidden     map[string]string
	Labels     Labels
}

type Labels struct {
	All        string
	Custom     string
	Apply      string
	Reset      string
	SavePreset string
	PresetName string
	Delete     string
	LoadMore   string
	Search     string
}

func tabs(hw *html.Writer, props Labels, resetURL string, items []TabLink, custom bool, current int) {
	hw.Raw(`<nav class="filter-tabs">`)
	hw.Raw("<a").Attr("href", resetURL)
	if current == 0 {
		hw.Attr("aria-current", "true")
	}
	hw.Raw(">").Text(props.All).Raw("</a>")
	for _, t := range items {
		hw.Raw("<span>").Raw("<a").Attr("href", t.Href)
		if t.Selected {
			hw.Attr("aria-current", "true")
		}
		hw.Raw(">").Text(t.Name).Raw("</a>")
		hw.Raw(`<form method="post"`).Attr("action", t.DeleteURL).Raw(">").
			Raw(`<button type="submit">`).Text(props.Delete).Raw("</button></form></span>")
	}
	if custom {
		hw.Raw(`<span aria-current="true">`).Text(props.Custom).Raw("</span>")
	}
	hw.Raw("</nav>")
}

func element[K ~string](hw *html.Writer, idx int, el filters.FilterElement[K], labels Labels) {
	prefix := fmt.Sprintf("filters[%d].", idx)
	hw.Raw("<fieldset").Attr("data-filter", string(el.Name)).Raw(">").
		Raw("<legend><label>").
		Raw(`<input type="checkbox" value="true"`).Attr("name", prefix+"active").BoolAttr("checked", el.Active).Raw(">").
		Text(el.Label).Raw("</label></legend>").
		Raw(`<input type="hidden"`).Attr("name", prefix+"name").Attr("value", string(el.Name)).Raw(">")
	if el.Type == filters.FieldTypeAutocomplete && el.SearchURL != "" {
		hw.Raw(`<input type="search"`).
			Attr("name", el.SearchParam).
			Attr("value", el.InitialSearch).
			Attr("placeholder", labels.Search).
			Attr("hx-get", el.SearchURL).
			Attr("hx-trigger", "keyup changed delay:300ms").
			Attr("hx-target", "next .filter-options").
			Attr("hx-include", "closest fieldset").
			Raw(">")
	}
	inputType := "radio"
	if el.Multiple {
		inputType = "checkbox"
	}
	hw.Raw(`<div class="filter-options">`)
	seen := make(map[string]bool, len(el.Options))
	for _, c := range el.Options {
		seen[c.Value] = true
		hw.Raw("<label><input").Attr("type", inputType).Attr("name", prefix+"value").Attr("value", c.Value).
			BoolAttr("checked", el.Selected(c.Value)).Raw(">").Text(c.Label).Raw("</label>")
	}
	// Selected values outside the current page of options stay submitted.
	for _, c := range el.DisplayValues {
		if seen[c.Value] || !el.Selected(c.Value) {
			continue
		}
		hw.Raw("<label><input").Attr("type", inputType).Attr("name", prefix+"value").Attr("value", c.Value).
			Raw(" checked>").Text(c.Label).Raw("</label>")
	}
	if el.HasMore && el.FetchMoreURL != "" {
		hw.Raw(`<button type="button" hx-swap="outerHTML"`).
			Attr("hx-get", el.FetchMoreURL).
			BoolAttr("disabled", el.Loading).
			Raw(">").Text(labels.LoadMore).Raw("</button>")
	}
	hw.Raw("</div></fieldset>")
}

// Panel renders preset tabs and the filter form. Submitting posts every
// element to ApplyURL.
func Panel[K ~string](props PanelProps[K]) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := html.New(w).Raw(`<section class="filter-panel">`)
		tabs(hw, props.Labels, props.ResetURL, props.Tabs, props.CustomTab, props.CurrentTab)
		hw.Raw(`<form method="post"`).Attr("action", props.ApplyURL).Raw(">")
		for name, value := range props.Hidden {
			hw.Raw(`<input type="hidden"`).Attr("name", name).Attr("value", value).Raw(">")
		}
		for i, el := range props.Elements {
			element(hw, i, el, props.Labels)
		}
		hw.Raw(`<button type="submit">`).Text(props.Labels.Apply).Raw("</button>").
			Raw("<a").Attr("href", props.ResetURL).Raw(">").Text(props.Labels.Reset).Raw("</a>").
			Raw("</form>")
		if props.SavePresetURL != "" && props.CustomTab {
			hw.Raw(`<form method="post"`).Attr("action", props.SavePresetURL).Raw(">").
				Raw(`<input type="text" name="name" required`).Attr("placeholder", props.Labels.PresetName).Raw(">").
				Raw(`<input type="hidden" name="data"`).Attr("value", props.PresetData).Raw(">").
				Raw(`<button type="submit">`).Text(props.Labels.SavePreset).Raw("</button></form>")
		}
		return hw.Raw("</section>").Err()
	})
}
