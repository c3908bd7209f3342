package planner

import (
	"Menu-Planner-Backend/entities"

	"github.com/google/uuid"
)

// DayEntry is one resolved slot of an incoming 7-day assignment.
type DayEntry struct {
	Type     entities.EntryType
	RecipeID *uuid.UUID
}

func countOccurrences(entries []DayEntry) map[uuid.UUID]int {
	counts := make(map[uuid.UUID]int)
	for _, entry := range entries {
		if entry.Type == entities.EntryTypeRecipe && entry.RecipeID != nil {
			counts[*entry.RecipeID]++
		}
	}
	return counts
}

func entryOccurrences(rows []entities.WeekPlanEntry) map[uuid.UUID]int {
	counts := make(map[uuid.UUID]int)
	for _, row := range rows {
		if row.EntryType == entities.EntryTypeRecipe && row.RecipeID != nil {
			counts[*row.RecipeID]++
		}
	}
	return counts
}

// usageDelta returns, per recipe, how many occurrences the new assignment
// adds over the prior one. The counter is one-way: recipes whose count
// dropped get no refund, so only positive differences appear.
func usageDelta(prior, next map[uuid.UUID]int) map[uuid.UUID]int {
	delta := make(map[uuid.UUID]int)
	for recipeID, count := range next {
		if added := count - prior[recipeID]; added > 0 {
			delta[recipeID] = added
		}
	}
	return delta
}
