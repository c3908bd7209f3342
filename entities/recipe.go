package entities

import (
	"time"

	"github.com/google/uuid"
)

type RecipeCategory string

const (
	CategoryFish       RecipeCategory = "FISH"
	CategoryVegetarian RecipeCategory = "VEGETARIAN"
	CategoryChicken    RecipeCategory = "CHICKEN"
	CategoryBeef       RecipeCategory = "BEEF"
	CategoryOther      RecipeCategory = "OTHER"
)

type Recipe struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name          string         `gorm:"not null" json:"name"`
	Description   string         `gorm:"type:text" json:"description"`
	Category      RecipeCategory `gorm:"type:varchar(20);not null" json:"category"`
	EverydayScore int            `json:"everyday_score"`
	HealthScore   int            `json:"health_score"`
	LastUsed      *time.Time     `gorm:"type:timestamp" json:"last_used,omitempty"`
	UsageCount    int            `gorm:"default:0" json:"usage_count"`

	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID" json:"ingredients"`
	Timestamp
}
