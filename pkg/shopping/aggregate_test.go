package shopping

import (
	"testing"
	"time"

	"Menu-Planner-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qty(v float64) *float64 { return &v }

func planEntry(day int, recipe *entities.Recipe) entities.WeekPlanEntry {
	id := recipe.ID
	return entities.WeekPlanEntry{
		ID:        uuid.New(),
		DayIndex:  day,
		EntryType: entities.EntryTypeRecipe,
		RecipeID:  &id,
		Recipe:    recipe,
	}
}

func recipeUsing(name string, usages ...entities.RecipeIngredient) *entities.Recipe {
	return &entities.Recipe{
		ID:          uuid.New(),
		Name:        name,
		Category:    entities.CategoryOther,
		Ingredients: usages,
	}
}

func usageOf(ingredient *entities.Ingredient, quantity *float64, pantry bool) entities.RecipeIngredient {
	return entities.RecipeIngredient{
		IngredientID: ingredient.ID,
		Quantity:     quantity,
		PantryItem:   pantry,
		Ingredient:   ingredient,
	}
}

func TestAggregateItemsSumsPerIngredientAndUnit(t *testing.T) {
	week := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	tomato := &entities.Ingredient{ID: uuid.New(), Name: "tomato", Unit: "g"}
	rice := &entities.Ingredient{ID: uuid.New(), Name: "rice", Unit: "g"}

	weeks := []WeekEntries{{
		WeekStart: week,
		Entries: []entities.WeekPlanEntry{
			planEntry(0, recipeUsing("curry", usageOf(tomato, qty(200), false), usageOf(rice, qty(150), false))),
			planEntry(3, recipeUsing("salad", usageOf(tomato, qty(100), false))),
		},
	}}

	items := AggregateItems(weeks, nil)
	require.Len(t, items, 2)

	// Collated by name: rice before tomato.
	assert.Equal(t, "rice", items[0].Name)
	assert.Equal(t, "tomato", items[1].Name)
	require.NotNil(t, items[1].TotalQuantity)
	assert.InDelta(t, 300, *items[1].TotalQuantity, 1e-9)
	assert.Len(t, items[1].Occurrences, 2)
	assert.Len(t, items[1].Lines, 2)
	assert.False(t, items[1].Checked)
}

func TestAggregateItemsOrderIndependent(t *testing.T) {
	weekA := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	weekB := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	onion := &entities.Ingredient{ID: uuid.New(), Name: "onion", Unit: "pcs"}

	entriesA := []entities.WeekPlanEntry{planEntry(1, recipeUsing("soup", usageOf(onion, qty(2), false)))}
	entriesB := []entities.WeekPlanEntry{planEntry(4, recipeUsing("stew", usageOf(onion, qty(3), false)))}

	checks := []entities.ShoppingCheck{
		{WeekStart: weekA, IngredientID: onion.ID, Unit: "pcs", Checked: true},
		{WeekStart: weekB, IngredientID: onion.ID, Unit: "pcs", Checked: true},
	}

	forward := AggregateItems([]WeekEntries{
		{WeekStart: weekA, Entries: entriesA},
		{WeekStart: weekB, Entries: entriesB},
	}, checks)
	backward := AggregateItems([]WeekEntries{
		{WeekStart: weekB, Entries: entriesB},
		{WeekStart: weekA, Entries: entriesA},
	}, checks)

	require.Len(t, forward, 1)
	require.Len(t, backward, 1)
	assert.InDelta(t, *forward[0].TotalQuantity, *backward[0].TotalQuantity, 1e-9)
	assert.Equal(t, forward[0].Checked, backward[0].Checked)
	assert.True(t, forward[0].Checked)
}

func TestAggregateItemsNullQuantityIsNotZero(t *testing.T) {
	week := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	salt := &entities.Ingredient{ID: uuid.New(), Name: "salt", Unit: ""}

	weeks := []WeekEntries{{
		WeekStart: week,
		Entries: []entities.WeekPlanEntry{
			planEntry(0, recipeUsing("eggs", usageOf(salt, nil, true))),
		},
	}}

	items := AggregateItems(weeks, nil)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].TotalQuantity)
	assert.True(t, items[0].MissingQuantity)
	assert.True(t, items[0].PantryItem)
}

func TestAggregateItemsPartialQuantity(t *testing.T) {
	week := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	flour := &entities.Ingredient{ID: uuid.New(), Name: "flour", Unit: "g"}

	weeks := []WeekEntries{{
		WeekStart: week,
		Entries: []entities.WeekPlanEntry{
			planEntry(0, recipeUsing("bread", usageOf(flour, qty(500), false))),
			planEntry(2, recipeUsing("pancakes", usageOf(flour, nil, false))),
		},
	}}

	items := AggregateItems(weeks, nil)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].TotalQuantity)
	assert.InDelta(t, 500, *items[0].TotalQuantity, 1e-9)
	assert.True(t, items[0].MissingQuantity, "a known partial sum still flags the missing amount")
}

func TestAggregateItemsSeparateUnitsStaySeparate(t *testing.T) {
	week := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	gramTomato := &entities.Ingredient{ID: uuid.New(), Name: "tomato", Unit: "g"}
	pcsTomato := &entities.Ingredient{ID: gramTomato.ID, Name: "tomato", Unit: "pcs"}

	weeks := []WeekEntries{{
		WeekStart: week,
		Entries: []entities.WeekPlanEntry{
			planEntry(0, recipeUsing("sauce", usageOf(gramTomato, qty(400), false))),
			planEntry(1, recipeUsing("salad", usageOf(pcsTomato, qty(2), false))),
		},
	}}

	items := AggregateItems(weeks, nil)
	require.Len(t, items, 2)
	assert.Equal(t, "g", items[0].Unit)
	assert.Equal(t, "pcs", items[1].Unit)
}

func TestAggregateItemsCheckedRequiresAllOccurrences(t *testing.T) {
	weekA := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	weekB := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	milk := &entities.Ingredient{ID: uuid.New(), Name: "milk", Unit: "l"}

	weeks := []WeekEntries{
		{WeekStart: weekA, Entries: []entities.WeekPlanEntry{planEntry(0, recipeUsing("porridge", usageOf(milk, qty(1), false)))}},
		{WeekStart: weekB, Entries: []entities.WeekPlanEntry{planEntry(0, recipeUsing("porridge", usageOf(milk, qty(1), false)))}},
	}

	oneWeek := []entities.ShoppingCheck{
		{WeekStart: weekA, IngredientID: milk.ID, Unit: "l", Checked: true},
	}
	items := AggregateItems(weeks, oneWeek)
	require.Len(t, items, 1)
	assert.False(t, items[0].Checked, "one unchecked occurrence keeps the item open")

	bothWeeks := append(oneWeek, entities.ShoppingCheck{
		WeekStart: weekB, IngredientID: milk.ID, Unit: "l", Checked: true,
	})
	items = AggregateItems(weeks, bothWeeks)
	assert.True(t, items[0].Checked)
}

func TestAggregateItemsDayCheckOverridesWeekCheck(t *testing.T) {
	week := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	butter := &entities.Ingredient{ID: uuid.New(), Name: "butter", Unit: "g"}

	weeks := []WeekEntries{{
		WeekStart: week,
		Entries: []entities.WeekPlanEntry{
			planEntry(1, recipeUsing("toast", usageOf(butter, qty(20), false))),
			planEntry(5, recipeUsing("cake", usageOf(butter, qty(100), false))),
		},
	}}

	day := 5
	checks := []entities.ShoppingCheck{
		{WeekStart: week, IngredientID: butter.ID, Unit: "g", Checked: true},
		{WeekStart: week, IngredientID: butter.ID, Unit: "g", DayIndex: &day, Checked: false},
	}

	items := AggregateItems(weeks, checks)
	require.Len(t, items, 1)
	require.Len(t, items[0].Occurrences, 2)
	assert.True(t, items[0].Occurrences[0].Checked, "week-level check covers day 1")
	assert.False(t, items[0].Occurrences[1].Checked, "day-level row wins for day 5")
	assert.False(t, items[0].Checked)
}

func TestAggregateItemsFirstCheckedDay(t *testing.T) {
	weekA := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	weekB := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	eggs := &entities.Ingredient{ID: uuid.New(), Name: "eggs", Unit: "pcs"}

	weeks := []WeekEntries{
		{WeekStart: weekA, Entries: []entities.WeekPlanEntry{planEntry(3, recipeUsing("omelette", usageOf(eggs, qty(4), false)))}},
		{WeekStart: weekB, Entries: []entities.WeekPlanEntry{planEntry(1, recipeUsing("quiche", usageOf(eggs, qty(6), false)))}},
	}

	dayA, dayB := 3, 1
	checks := []entities.ShoppingCheck{
		{WeekStart: weekA, IngredientID: eggs.ID, Unit: "pcs", Checked: true, FirstCheckedDay: &dayA},
		{WeekStart: weekB, IngredientID: eggs.ID, Unit: "pcs", Checked: true, FirstCheckedDay: &dayB},
	}

	items := AggregateItems(weeks, checks)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].FirstCheckedDay)
	assert.Equal(t, 1, *items[0].FirstCheckedDay)
}
