package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombination_MissingFields(t *testing.T) {
	full := Combination{
		ComboName: "Beach Day",
		Top:       "linen shirt",
		Bottom:    "shorts",
		Shoes:     "sandals",
		Bag:       "straw bag",
		Layer:     "cardigan",
		Tags:      []string{"casual"},
	}

	t.Run("complete combination has nothing missing", func(t *testing.T) {
		assert.Empty(t, full.MissingFields(true))
	})

	t.Run("dress is never required", func(t *testing.T) {
		c := full
		c.Dress = ""
		assert.Empty(t, c.MissingFields(true))
	})

	t.Run("every empty slot is reported", func(t *testing.T) {
		c := full
		c.Top = ""
		c.Bag = ""
		assert.ElementsMatch(t, []string{"top", "bag"}, c.MissingFields(true))
	})

	t.Run("tags only required when asked", func(t *testing.T) {
		c := full
		c.Tags = nil
		assert.Equal(t, []string{"tags"}, c.MissingFields(true))
		assert.Empty(t, c.MissingFields(false))
	})
}

func TestCombination_NormalizeTags(t *testing.T) {
	c := Combination{Tags: []string{" casual ", "", "summer", "   "}}
	c.NormalizeTags()
	assert.Equal(t, []string{"casual", "summer"}, c.Tags)

	c = Combination{}
	c.NormalizeTags()
	assert.NotNil(t, c.Tags)
	assert.Empty(t, c.Tags)
}

func TestCombination_Slot(t *testing.T) {
	c := Combination{
		Top:    "tee",
		Bottom: "jeans",
		Dress:  "sundress",
		Shoes:  "sneakers",
		Bag:    "tote",
		Layer:  "jacket",
	}

	assert.Equal(t, "tee", c.Slot(SlotTop))
	assert.Equal(t, "jeans", c.Slot(SlotBottom))
	assert.Equal(t, "sundress", c.Slot(SlotDress))
	assert.Equal(t, "sneakers", c.Slot(SlotShoes))
	assert.Equal(t, "tote", c.Slot(SlotBag))
	assert.Equal(t, "jacket", c.Slot(SlotLayer))
	assert.Equal(t, "", c.Slot("hat"))
}

func TestValidWardrobeCategory(t *testing.T) {
	for _, category := range []string{"top", "bottom", "dress", "shoes", "bag", "layer"} {
		assert.True(t, ValidWardrobeCategory(category), category)
	}
	for _, category := range []string{"hat", "Top", "", "accessory"} {
		assert.False(t, ValidWardrobeCategory(category), category)
	}
}
