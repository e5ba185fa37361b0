package domain

import (
	"strings"
	"time"
)

// Garment slot categories a combination can be filtered on.
// These are the only categories a wardrobe query accepts.
const (
	SlotTop    = "top"
	SlotBottom = "bottom"
	SlotDress  = "dress"
	SlotShoes  = "shoes"
	SlotBag    = "bag"
	SlotLayer  = "layer"
)

// Combination is a saved outfit: garment slot references plus descriptive tags.
//
// Tags hold free-form display strings after creation and resolved tag IDs after
// an update has re-validated them against the tag collection.
type Combination struct {
	ID        string    `json:"id"`
	ComboName string    `json:"combo_name"`
	Top       string    `json:"top"`
	Bottom    string    `json:"bottom"`
	Shoes     string    `json:"shoes"`
	Bag       string    `json:"bag"`
	Dress     string    `json:"dress,omitempty"`
	Layer     string    `json:"layer"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Touch updates the UpdatedAt timestamp.
func (c *Combination) Touch() {
	c.UpdatedAt = time.Now()
}

// Slot returns the value of the named garment slot, or "" for an unknown category.
func (c *Combination) Slot(category string) string {
	switch category {
	case SlotTop:
		return c.Top
	case SlotBottom:
		return c.Bottom
	case SlotDress:
		return c.Dress
	case SlotShoes:
		return c.Shoes
	case SlotBag:
		return c.Bag
	case SlotLayer:
		return c.Layer
	default:
		return ""
	}
}

// MissingFields returns the names of required fields that are empty.
// The dress slot is optional. Tag presence is only required when requireTags
// is set: the update path skips it because tags are separately re-resolved
// against the tag collection.
func (c *Combination) MissingFields(requireTags bool) []string {
	var missing []string
	if c.ComboName == "" {
		missing = append(missing, "combo_name")
	}
	if c.Top == "" {
		missing = append(missing, "top")
	}
	if c.Bottom == "" {
		missing = append(missing, "bottom")
	}
	if c.Shoes == "" {
		missing = append(missing, "shoes")
	}
	if c.Bag == "" {
		missing = append(missing, "bag")
	}
	if requireTags && len(c.Tags) == 0 {
		missing = append(missing, "tags")
	}
	if c.Layer == "" {
		missing = append(missing, "layer")
	}
	return missing
}

// NormalizeTags trims surrounding whitespace from every tag and drops entries
// that are empty after trimming, preserving order. A nil slice stays empty.
func (c *Combination) NormalizeTags() {
	normalized := make([]string, 0, len(c.Tags))
	for _, tag := range c.Tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			normalized = append(normalized, trimmed)
		}
	}
	c.Tags = normalized
}

// ValidWardrobeCategory reports whether category names a filterable garment slot.
func ValidWardrobeCategory(category string) bool {
	switch category {
	case SlotTop, SlotBottom, SlotDress, SlotShoes, SlotBag, SlotLayer:
		return true
	}
	return false
}
