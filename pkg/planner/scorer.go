package planner

import (
	"Menu-Planner-Backend/entities"
	"time"

	"github.com/google/uuid"
)

const (
	overlapBonus     = 1.5
	recencyBonus     = 2.0
	recencyPenalty   = -2.0
	quotaPenalty     = -5.0
	sundayBaseline   = 1.0
	repeatWindowDays = 7
)

// scoreRecipe rates one recipe for one weekday slot. Pure: depends only on
// its arguments. Higher is better; ties are broken by pool order in the
// scheduler.
func scoreRecipe(
	recipe *entities.Recipe,
	day int,
	cfg Constraints,
	usedIngredients map[uuid.UUID]bool,
	remaining map[entities.RecipeCategory]int,
	weekStart time.Time,
) float64 {
	var score float64

	// Weekday banding. Mon-Wed favors involved, healthy meals; Thu-Sat
	// favors quick, casual ones; Sunday is a flat baseline.
	switch {
	case day <= 2:
		score += float64(6-recipe.EverydayScore) + float64(recipe.HealthScore)
	case day <= 5:
		score += float64(recipe.EverydayScore) + float64(recipe.HealthScore)/2
	default:
		score += sundayBaseline
	}

	for _, usage := range recipe.Ingredients {
		if usedIngredients[usage.IngredientID] {
			score += overlapBonus
		}
	}

	// Never used counts as an infinite gap.
	if recipe.LastUsed == nil {
		score += recencyBonus
	} else {
		daysSince := int(weekStart.Sub(*recipe.LastUsed).Hours() / 24)
		switch {
		case daysSince < repeatWindowDays:
			score += recencyPenalty
		case daysSince >= cfg.PreferGapDays:
			score += recencyBonus
		}
	}

	if recipe.Category != entities.CategoryOther && remaining[recipe.Category] <= 0 {
		score += quotaPenalty
	}

	return score
}
