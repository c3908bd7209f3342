package planner

import (
	"Menu-Planner-Backend/domain"
	"Menu-Planner-Backend/entities"
	"time"

	"github.com/google/uuid"
)

// DaysPerWeek is the number of slots in every week plan.
const DaysPerWeek = 7

// ScheduleWeek greedily assigns one recipe to each of the 7 day slots.
// It is a best-effort heuristic, not a solver: when quotas cannot be met
// by the pool it degrades to the full pool rather than failing. The only
// hard failure is an empty pool.
func ScheduleWeek(pool []*entities.Recipe, cfg Constraints, weekStart time.Time) ([]*entities.Recipe, error) {
	if len(pool) == 0 {
		return nil, domain.ErrEmptyRecipePool
	}

	remaining := cfg.targets()
	usedIngredients := make(map[uuid.UUID]bool)
	result := make([]*entities.Recipe, 0, DaysPerWeek)

	for day := 0; day < DaysPerWeek; day++ {
		candidates := make([]*entities.Recipe, 0, len(pool))
		for _, recipe := range pool {
			if recipe.Category == entities.CategoryOther || remaining[recipe.Category] > 0 {
				candidates = append(candidates, recipe)
			}
		}
		// Quotas exhausted or incompatible with the catalog: keep going
		// with the whole pool so every day gets a meal.
		if len(candidates) == 0 {
			candidates = pool
		}

		winner := candidates[0]
		best := scoreRecipe(winner, day, cfg, usedIngredients, remaining, weekStart)
		for _, candidate := range candidates[1:] {
			score := scoreRecipe(candidate, day, cfg, usedIngredients, remaining, weekStart)
			if score > best {
				winner, best = candidate, score
			}
		}

		if remaining[winner.Category] > 0 {
			remaining[winner.Category]--
		}
		for _, usage := range winner.Ingredients {
			usedIngredients[usage.IngredientID] = true
		}
		result = append(result, winner)
	}

	return result, nil
}
