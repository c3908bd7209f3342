package planner

import (
	"Menu-Planner-Backend/domain"
	"Menu-Planner-Backend/entities"
)

const (
	DefaultFishQuota       = 2
	DefaultVegetarianQuota = 3
	DefaultChickenQuota    = 1
	DefaultBeefQuota       = 1
	DefaultPreferGapDays   = 21
)

// Constraints is the resolved scheduling configuration. OTHER has an
// implicit quota of zero: always allowed, never targeted. Values are taken
// as-is; the caller owns their sanity.
type Constraints struct {
	Fish          int
	Vegetarian    int
	Chicken       int
	Beef          int
	PreferGapDays int
}

func DefaultConstraints() Constraints {
	return Constraints{
		Fish:          DefaultFishQuota,
		Vegetarian:    DefaultVegetarianQuota,
		Chicken:       DefaultChickenQuota,
		Beef:          DefaultBeefQuota,
		PreferGapDays: DefaultPreferGapDays,
	}
}

// ResolveConstraints fills missing request fields with defaults.
func ResolveConstraints(req *domain.PlanConstraintsRequest) Constraints {
	resolved := DefaultConstraints()
	if req == nil {
		return resolved
	}
	if req.Fish != nil {
		resolved.Fish = *req.Fish
	}
	if req.Vegetarian != nil {
		resolved.Vegetarian = *req.Vegetarian
	}
	if req.Chicken != nil {
		resolved.Chicken = *req.Chicken
	}
	if req.Beef != nil {
		resolved.Beef = *req.Beef
	}
	if req.PreferGapDays != nil {
		resolved.PreferGapDays = *req.PreferGapDays
	}
	return resolved
}

func (c Constraints) targets() map[entities.RecipeCategory]int {
	return map[entities.RecipeCategory]int{
		entities.CategoryFish:       c.Fish,
		entities.CategoryVegetarian: c.Vegetarian,
		entities.CategoryChicken:    c.Chicken,
		entities.CategoryBeef:       c.Beef,
		entities.CategoryOther:      0,
	}
}
