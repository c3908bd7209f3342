package entities

import (
	"github.com/google/uuid"
)

type Ingredient struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name string    `gorm:"uniqueIndex;not null" json:"name"`
	Unit string    `json:"unit"`

	Timestamp
}

// RecipeIngredient is one ingredient usage inside a recipe. Quantity is
// nullable: a missing amount means "not specified", never zero.
type RecipeIngredient struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID     uuid.UUID `json:"recipe_id"`
	IngredientID uuid.UUID `json:"ingredient_id"`
	Quantity     *float64  `json:"quantity,omitempty"`
	Note         string    `json:"note,omitempty"`
	PantryItem   bool      `json:"pantry_item"`
	Position     int       `json:"position"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}
