package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGenerateWeek = "week plan generated successfully"
	MessageSuccessGetWeek      = "success get week plan"
	MessageSuccessSaveWeek     = "week plan saved successfully"
	MessageSuccessSearch       = "success search recipes"

	MessageFailedGenerateWeek = "failed to generate week plan"
	MessageFailedGetWeek      = "failed to get week plan"
	MessageFailedSaveWeek     = "failed to save week plan"
	MessageFailedSearch       = "failed to search recipes"

	ErrEmptyRecipePool   = errors.New("recipe pool is empty, nothing to schedule")
	ErrDayCountMismatch  = errors.New("day count mismatch")
	ErrWeekBeyondHorizon = errors.New("week start is beyond the planning horizon")
	ErrMissingRecipeID   = errors.New("recipe day entry is missing a recipe id")
)

type (
	// PlanConstraintsRequest carries optional category quotas and the
	// recency gap preference. Missing fields fall back to defaults.
	PlanConstraintsRequest struct {
		Fish          *int `json:"fish,omitempty"`
		Vegetarian    *int `json:"vegetarian,omitempty"`
		Chicken       *int `json:"chicken,omitempty"`
		Beef          *int `json:"beef,omitempty"`
		PreferGapDays *int `json:"prefer_gap_days,omitempty"`
	}

	GenerateWeekRequest struct {
		WeekStart   string                  `json:"week_start,omitempty"`
		Constraints *PlanConstraintsRequest `json:"constraints,omitempty"`
	}

	DayEntryRequest struct {
		Type     string `json:"type" validate:"required,oneof=RECIPE TAKEAWAY EMPTY"`
		RecipeID string `json:"recipe_id,omitempty" validate:"omitempty,uuid"`
	}

	SaveWeekRequest struct {
		Days []DayEntryRequest `json:"days" validate:"required,dive"`
	}

	RecipeSummary struct {
		ID            string     `json:"id"`
		Name          string     `json:"name"`
		Category      string     `json:"category"`
		EverydayScore int        `json:"everyday_score"`
		HealthScore   int        `json:"health_score"`
		UsageCount    int        `json:"usage_count"`
		LastUsed      *time.Time `json:"last_used,omitempty"`
	}

	DayView struct {
		Day    int            `json:"day"`
		Type   string         `json:"type"`
		Recipe *RecipeSummary `json:"recipe,omitempty"`
	}

	SuggestionBuckets struct {
		LongGap  []RecipeSummary `json:"long_gap"`
		Frequent []RecipeSummary `json:"frequent"`
	}

	WeekPlanView struct {
		WeekStart   time.Time          `json:"week_start"`
		UpdatedAt   time.Time          `json:"updated_at"`
		Days        []DayView          `json:"days"`
		Suggestions *SuggestionBuckets `json:"suggestions,omitempty"`
	}
)
