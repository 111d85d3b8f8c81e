package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterNoSelection(t *testing.T) {
	all := Catalog()
	assert.Equal(t, all, Filter(all, nil, nil))
}

func TestFilterByIngredient(t *testing.T) {
	// "carrot" 是 "2 carrots, sliced" 的子字串
	got := Filter(Catalog(), []string{"carrot"}, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "Vegetable Stir Fry", got[0].Title)
}

func TestFilterByIngredientCaseInsensitive(t *testing.T) {
	got := Filter(Catalog(), []string{"BANANA"}, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "Banana Pancakes", got[0].Title)
}

func TestFilterByTags(t *testing.T) {
	got := Filter(Catalog(), nil, []string{"vegetarian"})
	require.Len(t, got, 2)

	// 多個標籤要全部命中
	got = Filter(Catalog(), nil, []string{"vegetarian", "quick"})
	require.Len(t, got, 1)
	assert.Equal(t, "Vegetable Stir Fry", got[0].Title)
}

func TestFilterCombined(t *testing.T) {
	got := Filter(Catalog(), []string{"carrot"}, []string{"vegetarian"})
	require.Len(t, got, 1)
	assert.Equal(t, "Vegetable Stir Fry", got[0].Title)

	// 食材命中但標籤不符
	got = Filter(Catalog(), []string{"carrot"}, []string{"dessert"})
	assert.Empty(t, got)
}

func TestFilterNoMatch(t *testing.T) {
	assert.Empty(t, Filter(Catalog(), []string{"durian"}, nil))
}

func TestEstimateImpact(t *testing.T) {
	stats := EstimateImpact(3)
	assert.InDelta(t, 2.4, stats.WasteReduced, 1e-9)
	assert.InDelta(t, 15.9, stats.MoneySaved, 1e-9)
	assert.InDelta(t, 3.6, stats.CO2Prevented, 1e-9)

	zero := EstimateImpact(0)
	assert.Zero(t, zero.WasteReduced)
	assert.Zero(t, zero.MoneySaved)
	assert.Zero(t, zero.CO2Prevented)

	// 負數視為零
	assert.Equal(t, zero, EstimateImpact(-5))
}
