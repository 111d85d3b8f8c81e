package pantry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShelfLifeKnown(t *testing.T) {
	entry := ShelfLife("tomatoes")
	assert.Equal(t, "5-7 days", entry.Room)
	assert.Equal(t, "1-2 weeks", entry.Refrigerated)
	assert.Equal(t, "6-8 months", entry.Frozen)

	entry = ShelfLife("quinoa")
	assert.Equal(t, "2-3 years", entry.Room)
}

func TestShelfLifeUnknown(t *testing.T) {
	for _, name := range []string{"dragon fruit", "", "TOMATOES"} {
		entry := ShelfLife(name)
		assert.Equal(t, "Varies", entry.Room)
		assert.Equal(t, "Varies", entry.Refrigerated)
		assert.Equal(t, "Varies", entry.Frozen)
	}
}
