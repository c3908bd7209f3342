package planner

import (
	"testing"
	"time"

	"Menu-Planner-Backend/domain"
	"Menu-Planner-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPool(counts map[entities.RecipeCategory]int) []*entities.Recipe {
	pool := make([]*entities.Recipe, 0)
	for _, category := range []entities.RecipeCategory{
		entities.CategoryFish,
		entities.CategoryVegetarian,
		entities.CategoryChicken,
		entities.CategoryBeef,
		entities.CategoryOther,
	} {
		for i := 0; i < counts[category]; i++ {
			pool = append(pool, &entities.Recipe{
				ID:            uuid.New(),
				Name:          string(category),
				Category:      category,
				EverydayScore: 3,
				HealthScore:   3,
			})
		}
	}
	return pool
}

func categoryCounts(result []*entities.Recipe) map[entities.RecipeCategory]int {
	counts := make(map[entities.RecipeCategory]int)
	for _, recipe := range result {
		counts[recipe.Category]++
	}
	return counts
}

func TestScheduleWeekMeetsQuotas(t *testing.T) {
	weekStart := WeekStart(time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC))
	pool := buildPool(map[entities.RecipeCategory]int{
		entities.CategoryFish:       3,
		entities.CategoryVegetarian: 3,
		entities.CategoryChicken:    3,
		entities.CategoryBeef:       3,
	})
	cfg := Constraints{Fish: 2, Vegetarian: 2, Chicken: 2, Beef: 1, PreferGapDays: DefaultPreferGapDays}

	result, err := ScheduleWeek(pool, cfg, weekStart)
	require.NoError(t, err)
	require.Len(t, result, DaysPerWeek)

	// Quotas sum to exactly seven days, so the plan must match them.
	counts := categoryCounts(result)
	assert.Equal(t, 2, counts[entities.CategoryFish])
	assert.Equal(t, 2, counts[entities.CategoryVegetarian])
	assert.Equal(t, 2, counts[entities.CategoryChicken])
	assert.Equal(t, 1, counts[entities.CategoryBeef])
}

func TestScheduleWeekFallsBackWhenQuotasExhausted(t *testing.T) {
	weekStart := WeekStart(time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC))
	pool := buildPool(map[entities.RecipeCategory]int{entities.CategoryFish: 2})
	cfg := Constraints{Fish: 1, PreferGapDays: DefaultPreferGapDays}

	// Only one fish day is targeted but fish is all the catalog has:
	// the scheduler degrades to the full pool instead of failing.
	result, err := ScheduleWeek(pool, cfg, weekStart)
	require.NoError(t, err)
	require.Len(t, result, DaysPerWeek)
	assert.Equal(t, DaysPerWeek, categoryCounts(result)[entities.CategoryFish])
}

func TestScheduleWeekEmptyPool(t *testing.T) {
	weekStart := WeekStart(time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC))
	_, err := ScheduleWeek(nil, DefaultConstraints(), weekStart)
	assert.ErrorIs(t, err, domain.ErrEmptyRecipePool)
}

func TestScheduleWeekOtherIsAlwaysEligible(t *testing.T) {
	weekStart := WeekStart(time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC))
	pool := buildPool(map[entities.RecipeCategory]int{entities.CategoryOther: 1})

	result, err := ScheduleWeek(pool, DefaultConstraints(), weekStart)
	require.NoError(t, err)
	require.Len(t, result, DaysPerWeek)
	assert.Equal(t, DaysPerWeek, categoryCounts(result)[entities.CategoryOther])
}
