// Package suggestion ranks the recipe pool into the buckets the planner UI
// offers alongside a week: recipes not cooked for a long time, household
// favorites, and free-text search hits.
package suggestion

import (
	"Menu-Planner-Backend/entities"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	DefaultBucketLimit = 7
	DefaultSearchLimit = 6
	MaxSearchLimit     = 20
)

// LongGap returns up to limit recipes ordered by days since last use,
// longest gap first. Never-used recipes sort as an infinite gap. Recipes
// in exclude (normally the ones already placed this week) are skipped.
func LongGap(pool []*entities.Recipe, exclude map[uuid.UUID]bool, limit int, now time.Time) []*entities.Recipe {
	if limit <= 0 {
		limit = DefaultBucketLimit
	}
	candidates := filter(pool, exclude)
	sort.SliceStable(candidates, func(i, j int) bool {
		return gapDays(candidates[i], now) > gapDays(candidates[j], now)
	})
	return top(candidates, limit)
}

// Frequent returns up to limit recipes ordered by usage count, descending.
func Frequent(pool []*entities.Recipe, exclude map[uuid.UUID]bool, limit int) []*entities.Recipe {
	if limit <= 0 {
		limit = DefaultBucketLimit
	}
	candidates := filter(pool, exclude)
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].UsageCount > candidates[j].UsageCount
	})
	return top(candidates, limit)
}

// Search matches term case-insensitively against recipe name, description
// and ingredient names, returning hits in collated alphabetical order. A
// blank term yields no results rather than the whole pool.
func Search(pool []*entities.Recipe, exclude map[uuid.UUID]bool, term string, limit int) []*entities.Recipe {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return []*entities.Recipe{}
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}

	hits := make([]*entities.Recipe, 0)
	for _, recipe := range filter(pool, exclude) {
		if matches(recipe, term) {
			hits = append(hits, recipe)
		}
	}

	collator := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(hits, func(i, j int) bool {
		return collator.CompareString(hits[i].Name, hits[j].Name) < 0
	})
	return top(hits, limit)
}

func filter(pool []*entities.Recipe, exclude map[uuid.UUID]bool) []*entities.Recipe {
	result := make([]*entities.Recipe, 0, len(pool))
	for _, recipe := range pool {
		if !exclude[recipe.ID] {
			result = append(result, recipe)
		}
	}
	return result
}

func gapDays(recipe *entities.Recipe, now time.Time) int {
	if recipe.LastUsed == nil {
		return int(^uint(0) >> 1) // never used sorts first
	}
	return int(now.Sub(*recipe.LastUsed).Hours() / 24)
}

func matches(recipe *entities.Recipe, term string) bool {
	if strings.Contains(strings.ToLower(recipe.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(recipe.Description), term) {
		return true
	}
	for _, usage := range recipe.Ingredients {
		if usage.Ingredient != nil && strings.Contains(strings.ToLower(usage.Ingredient.Name), term) {
			return true
		}
	}
	return false
}

func top(recipes []*entities.Recipe, limit int) []*entities.Recipe {
	if len(recipes) > limit {
		return recipes[:limit]
	}
	return recipes
}
