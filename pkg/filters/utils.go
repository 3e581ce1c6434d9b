package filters

import (
	"net/url"
	"strconv"
)

const ActiveTabParam = "activeTab"

// Utils answers questions about the filter part of a list URL. keys are the
// URL parameter names that count as filters.
type Utils struct {
	keys []string
}

func NewUtils(keys ...string) *Utils {
	return &Utils{keys: keys}
}

func (u *Utils) isFilter(key string) bool {
	for _, k := range u.keys {
		if k == key {
			return true
		}
	}
	return false
}

// GetActiveFilters keeps only the filter parameters of q.
func (u *Utils) GetActiveFilters(q url.Values) url.Values {
	out := url.Values{}
	for key, values := range q {
		if u.isFilter(key) {
			out[key] = append([]string(nil), values...)
		}
	}
	return out
}

// AreFiltersApplied reports whether any filter parameter has a non-empty
// value.
func (u *Utils) AreFiltersApplied(q url.Values) bool {
	for _, values := range u.GetActiveFilters(q) {
		for _, v := range values {
			if v != "" {
				return true
			}
		}
	}
	return false
}

// GetFiltersCurrentTab returns the 1-based index of the selected preset, 0 for
// "all", or len(tabs)+1 for an unsaved custom filter.
func (u *Utils) GetFiltersCurrentTab(q url.Values, tabs []Tab) int {
	raw := q.Get(ActiveTabParam)
	if raw == "" {
		if u.AreFiltersApplied(q) {
			return len(tabs) + 1
		}
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
