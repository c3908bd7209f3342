package suggestion

import (
	"testing"
	"time"

	"Menu-Planner-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namedRecipe(name string, lastUsedDaysAgo int, usageCount int, now time.Time) *entities.Recipe {
	recipe := &entities.Recipe{
		ID:         uuid.New(),
		Name:       name,
		Category:   entities.CategoryOther,
		UsageCount: usageCount,
	}
	if lastUsedDaysAgo >= 0 {
		used := now.AddDate(0, 0, -lastUsedDaysAgo)
		recipe.LastUsed = &used
	}
	return recipe
}

func names(recipes []*entities.Recipe) []string {
	result := make([]string, 0, len(recipes))
	for _, recipe := range recipes {
		result = append(result, recipe.Name)
	}
	return result
}

func TestLongGapOrdering(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	pool := []*entities.Recipe{
		namedRecipe("recent", 2, 5, now),
		namedRecipe("never", -1, 0, now),
		namedRecipe("stale", 40, 3, now),
	}

	got := LongGap(pool, nil, 3, now)
	assert.Equal(t, []string{"never", "stale", "recent"}, names(got))
}

func TestLongGapExcludesPlaced(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	placed := namedRecipe("placed", -1, 0, now)
	pool := []*entities.Recipe{placed, namedRecipe("free", 10, 0, now)}

	got := LongGap(pool, map[uuid.UUID]bool{placed.ID: true}, 5, now)
	assert.Equal(t, []string{"free"}, names(got))
}

func TestLongGapStableTies(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	pool := []*entities.Recipe{
		namedRecipe("first", 10, 0, now),
		namedRecipe("second", 10, 0, now),
	}
	got := LongGap(pool, nil, 2, now)
	assert.Equal(t, []string{"first", "second"}, names(got))
}

func TestFrequentOrdering(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	pool := []*entities.Recipe{
		namedRecipe("sometimes", 5, 3, now),
		namedRecipe("favorite", 5, 12, now),
		namedRecipe("rare", 5, 1, now),
	}

	got := Frequent(pool, nil, 2)
	assert.Equal(t, []string{"favorite", "sometimes"}, names(got))
}

func TestSearchBlankTerm(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	pool := []*entities.Recipe{namedRecipe("anything", 5, 0, now)}

	assert.Empty(t, Search(pool, nil, "", 5))
	assert.Empty(t, Search(pool, nil, "   ", 5))
}

func TestSearchMatchesNameDescriptionAndIngredients(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	byName := namedRecipe("Lemon Chicken", 5, 0, now)
	byDescription := namedRecipe("Weeknight Pasta", 5, 0, now)
	byDescription.Description = "quick lemon butter sauce"
	byIngredient := namedRecipe("Fish Parcels", 5, 0, now)
	byIngredient.Ingredients = []entities.RecipeIngredient{
		{Ingredient: &entities.Ingredient{Name: "lemon"}},
	}
	miss := namedRecipe("Beef Stew", 5, 0, now)

	got := Search([]*entities.Recipe{byName, byDescription, byIngredient, miss}, nil, "LEMON", 10)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"Fish Parcels", "Lemon Chicken", "Weeknight Pasta"}, names(got))
}

func TestSearchLimitCap(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	pool := make([]*entities.Recipe, 0, 30)
	for i := 0; i < 30; i++ {
		pool = append(pool, namedRecipe("soup", 5, 0, now))
	}

	assert.Len(t, Search(pool, nil, "soup", 100), MaxSearchLimit)
	assert.Len(t, Search(pool, nil, "soup", 0), DefaultSearchLimit)
}
