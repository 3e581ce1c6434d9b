package dtos

import (
	"context"

	pagefilters "github.com/iota-uz/commerce-admin/modules/pages/presentation/filters"
	"github.com/iota-uz/commerce-admin/pkg/constants"
	"github.com/iota-uz/commerce-admin/pkg/filters"
	"github.com/iota-uz/commerce-admin/pkg/intl"
)

type FilterElementDTO struct {
	Name   string   `form:"name"`
	Active bool     `form:"active"`
	Value  []string `form:"value"`
}

// ApplyFiltersDTO is the submitted filter panel plus the list state it was
// rendered with.
type ApplyFiltersDTO struct {
	Filters []FilterElementDTO `form:"filters"`
	Query   string             `form:"query"`
	Sort    string             `form:"sort"`
	Asc     bool               `form:"asc"`
}

func (d *ApplyFiltersDTO) Elements() []filters.FilterElement[pagefilters.PageListFilterKey] {
	out := make([]filters.FilterElement[pagefilters.PageListFilterKey], 0, len(d.Filters))
	for _, f := range d.Filters {
		out = append(out, filters.FilterElement[pagefilters.PageListFilterKey]{
			Name:   pagefilters.PageListFilterKey(f.Name),
			Active: f.Active,
			Value:  f.Value,
		})
	}
	return out
}

type SavePresetDTO struct {
	Name string `form:"name" validate:"required,max=100"`
	Data string `form:"data"`
}

func (d *SavePresetDTO) Ok(ctx context.Context) (map[string]string, bool) {
	errs := intl.ValidationErrors(ctx, constants.Validate.Struct(d), func(field string) string {
		return "Pages.Filters.Errors.Preset" + field
	})
	return errs, len(errs) == 0
}

// PageTypeSearchDTO drives the autocomplete fragment. Index is the position
// of the page type element in the panel form.
type PageTypeSearchDTO struct {
	Search string `form:"search"`
	After  string `form:"after"`
	Index  int    `form:"index" validate:"gte=0"`
}
