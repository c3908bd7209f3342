package entities

import (
	"time"

	"github.com/google/uuid"
)

// ShoppingCheck stores purchased state independent of the week plan, so it
// survives plan regeneration. DayIndex NULL means the row applies to the
// whole week; a non-NULL row overrides the week row for that day.
type ShoppingCheck struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	WeekStart       time.Time `gorm:"type:timestamp;uniqueIndex:idx_shopping_check_key;not null" json:"week_start"`
	IngredientID    uuid.UUID `gorm:"uniqueIndex:idx_shopping_check_key" json:"ingredient_id"`
	Unit            string    `gorm:"uniqueIndex:idx_shopping_check_key" json:"unit"`
	DayIndex        *int      `gorm:"uniqueIndex:idx_shopping_check_key" json:"day_index,omitempty"`
	Checked         bool      `json:"checked"`
	FirstCheckedDay *int      `json:"first_checked_day,omitempty"`

	Timestamp
}

// ExtraItem is the global catalog of free-text shopping entries,
// deduplicated by normalized name.
type ExtraItem struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name           string    `gorm:"not null" json:"name"`
	NormalizedName string    `gorm:"uniqueIndex;not null" json:"normalized_name"`

	Timestamp
}

// WeekExtraItem is the per-week presence record. Deleting it never cascades
// to the catalog entry.
type WeekExtraItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	WeekStart   time.Time `gorm:"type:timestamp;uniqueIndex:idx_week_extra;not null" json:"week_start"`
	ExtraItemID uuid.UUID `gorm:"uniqueIndex:idx_week_extra" json:"extra_item_id"`
	Checked     bool      `json:"checked"`
	CreatedAt   time.Time `gorm:"type:timestamp" json:"created_at"`

	ExtraItem *ExtraItem `gorm:"foreignKey:ExtraItemID" json:"extra_item,omitempty"`
}
