package entities

import (
	"time"

	"github.com/google/uuid"
)

type EntryType string

const (
	EntryTypeRecipe   EntryType = "RECIPE"
	EntryTypeTakeaway EntryType = "TAKEAWAY"
	EntryTypeEmpty    EntryType = "EMPTY"
)

// WeekPlan is one plan per canonical week start (Monday 00:00 UTC).
// EMPTY days have no entry row; reads materialize all 7 days.
type WeekPlan struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	WeekStart time.Time `gorm:"type:timestamp;uniqueIndex;not null" json:"week_start"`

	Entries []WeekPlanEntry `gorm:"foreignKey:WeekPlanID" json:"entries"`
	Timestamp
}

type WeekPlanEntry struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	WeekPlanID uuid.UUID  `gorm:"uniqueIndex:idx_week_plan_day" json:"week_plan_id"`
	DayIndex   int        `gorm:"uniqueIndex:idx_week_plan_day" json:"day_index"`
	EntryType  EntryType  `gorm:"type:varchar(20);not null" json:"entry_type"`
	RecipeID   *uuid.UUID `json:"recipe_id,omitempty"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
}
