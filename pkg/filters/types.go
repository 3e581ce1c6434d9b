// Package filters holds the generic pieces behind list-view filter panels:
// filter elements, their URL encoding and saved filter presets.
package filters

type Choice struct {
	Label string
	Value string
}

type FieldType string

const (
	FieldTypeAutocomplete FieldType = "autocomplete"
	FieldTypeOptions      FieldType = "options"
	FieldTypeText         FieldType = "text"
)

// AutocompleteFilterOpts configures the search box of an autocomplete field.
// The panel requests SearchURL with SearchParam set to the typed text, and
// FetchMoreURL for the page after the rendered options.
type AutocompleteFilterOpts struct {
	HasMore       bool
	InitialSearch string
	Loading       bool
	SearchURL     string
	FetchMoreURL  string
	SearchParam   string
}

// FilterOpts is the per-key state a filter panel is built from. A nil Value
// means the key is absent from the URL.
type FilterOpts[T any] struct {
	Active        bool
	Value         T
	Choices       []Choice
	DisplayValues []Choice
	AutocompleteFilterOpts
}

// SearchWithFetchMoreProps describes the paginated search that feeds an
// autocomplete field.
type SearchWithFetchMoreProps struct {
	HasMore      bool
	Loading      bool
	SearchURL    string
	FetchMoreURL string
	SearchParam  string
}

type FilterElement[K ~string] struct {
	Name          K
	Label         string
	Type          FieldType
	Multiple      bool
	Active        bool
	Value         []string
	DisplayValues []Choice
	Options       []Choice
	AutocompleteFilterOpts
}

// Selected reports whether v is one of the element's values.
func (e FilterElement[K]) Selected(v string) bool {
	for _, s := range e.Value {
		if s == v {
			return true
		}
	}
	return false
}
