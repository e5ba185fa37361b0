package store

import (
	"strings"

	"github.com/outfitly/outfitly-server/internal/domain"
)

// FilterParams are the raw search parameters accepted by the list endpoint.
// All three are optional; empty params produce a filter that matches everything.
type FilterParams struct {
	// Tags is a comma-separated list of tag strings; a combination matches if it
	// carries any of them.
	Tags string
	// Combos is a free-text fragment matched case-insensitively against comboName.
	Combos string
	// Wardrobe is a comma-separated list of category:item pairs, each an exact
	// constraint on one garment slot. Unknown categories are dropped.
	Wardrobe string
}

// ComboFilter is a compiled query over the combination collection.
// Constraints combine with logical AND; the zero value matches every document.
type ComboFilter struct {
	TagsAny      []string
	NameContains string
	Wardrobe     map[string]string
}

// BuildComboFilter compiles raw search parameters into a ComboFilter.
// Pure function of its inputs; no store access.
func BuildComboFilter(params FilterParams) ComboFilter {
	var f ComboFilter

	if params.Tags != "" {
		for _, tag := range strings.Split(params.Tags, ",") {
			if trimmed := strings.TrimSpace(tag); trimmed != "" {
				f.TagsAny = append(f.TagsAny, trimmed)
			}
		}
	}

	f.NameContains = strings.TrimSpace(params.Combos)

	if params.Wardrobe != "" {
		for _, pair := range strings.Split(params.Wardrobe, ",") {
			category, item, found := strings.Cut(pair, ":")
			if !found {
				continue
			}
			category = strings.ToLower(strings.TrimSpace(category))
			item = strings.TrimSpace(item)
			// Silently drop pairs outside the fixed slot set.
			if !domain.ValidWardrobeCategory(category) || item == "" {
				continue
			}
			if f.Wardrobe == nil {
				f.Wardrobe = make(map[string]string)
			}
			f.Wardrobe[category] = item
		}
	}

	return f
}

// Empty reports whether the filter has no constraints at all.
func (f ComboFilter) Empty() bool {
	return len(f.TagsAny) == 0 && f.NameContains == "" && len(f.Wardrobe) == 0
}

// Matches reports whether a combination satisfies every constraint.
func (f ComboFilter) Matches(c *domain.Combination) bool {
	if len(f.TagsAny) > 0 && !containsAny(c.Tags, f.TagsAny) {
		return false
	}

	if f.NameContains != "" &&
		!strings.Contains(strings.ToLower(c.ComboName), strings.ToLower(f.NameContains)) {
		return false
	}

	for category, item := range f.Wardrobe {
		if c.Slot(category) != item {
			return false
		}
	}

	return true
}

// containsAny reports whether have contains at least one element of want.
func containsAny(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}
