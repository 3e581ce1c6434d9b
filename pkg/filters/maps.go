package filters

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Node is anything with an id and a display name.
type Node interface {
	GetID() string
	GetName() string
}

func MapNodeToChoice[N Node](nodes []N) []Choice {
	out := make([]Choice, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, Choice{Label: n.GetName(), Value: n.GetID()})
	}
	return out
}

// MapSingleValueNodeToChoice maps nodes the same way as MapNodeToChoice but
// yields at most one choice per id, so a value matches a single entry.
func MapSingleValueNodeToChoice[N Node](nodes []N) []Choice {
	out := make([]Choice, 0, len(nodes))
	seen := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if seen[n.GetID()] {
			continue
		}
		seen[n.GetID()] = true
		out = append(out, Choice{Label: n.GetName(), Value: n.GetID()})
	}
	return out
}

// SelectedChoices returns the choices whose value is in values, in the order
// of values. Unknown values are labelled with themselves.
func SelectedChoices(choices []Choice, values []string) []Choice {
	byValue := make(map[string]Choice, len(choices))
	for _, c := range choices {
		if _, ok := byValue[c.Value]; !ok {
			byValue[c.Value] = c
		}
	}
	out := make([]Choice, 0, len(values))
	for _, v := range values {
		if c, ok := byValue[v]; ok {
			out = append(out, c)
			continue
		}
		out = append(out, Choice{Label: v, Value: v})
	}
	return out
}

// RankChoices orders choices by how closely their label matches query.
// Choices that do not match are dropped; an empty query keeps everything.
func RankChoices(choices []Choice, query string) []Choice {
	if query == "" {
		return choices
	}
	labels := make([]string, len(choices))
	for i, c := range choices {
		labels[i] = c.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(query, labels)
	sort.Stable(ranks)
	out := make([]Choice, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, choices[r.OriginalIndex])
	}
	return out
}
