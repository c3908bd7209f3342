package domain

import "errors"

var (
	MessageSuccessGetRecipes       = "success get recipes"
	MessageSuccessGetRecipe        = "success get recipe detail"
	MessageSuccessCreateRecipe     = "recipe created successfully"
	MessageSuccessUpdateRecipe     = "recipe updated successfully"
	MessageSuccessDeleteRecipe     = "recipe deleted successfully"
	MessageSuccessGetIngredients   = "success get ingredients"
	MessageSuccessCreateIngredient = "ingredient created successfully"

	MessageFailedGetRecipes       = "failed to get recipes"
	MessageFailedGetRecipe        = "failed to get recipe detail"
	MessageFailedCreateRecipe     = "failed to create recipe"
	MessageFailedUpdateRecipe     = "failed to update recipe"
	MessageFailedDeleteRecipe     = "failed to delete recipe"
	MessageFailedGetIngredients   = "failed to get ingredients"
	MessageFailedCreateIngredient = "failed to create ingredient"

	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrIngredientNotFound = errors.New("ingredient not found")
)

type (
	RecipeIngredientRequest struct {
		IngredientName string   `json:"ingredient_name" validate:"required"`
		Unit           string   `json:"unit"`
		Quantity       *float64 `json:"quantity,omitempty"`
		Note           string   `json:"note,omitempty"`
		PantryItem     bool     `json:"pantry_item"`
	}

	CreateRecipeRequest struct {
		Name          string                    `json:"name" validate:"required"`
		Description   string                    `json:"description"`
		Category      string                    `json:"category" validate:"required,oneof=FISH VEGETARIAN CHICKEN BEEF OTHER"`
		EverydayScore int                       `json:"everyday_score" validate:"required,min=1,max=5"`
		HealthScore   int                       `json:"health_score" validate:"required,min=1,max=5"`
		Ingredients   []RecipeIngredientRequest `json:"ingredients" validate:"dive"`
	}

	UpdateRecipeRequest struct {
		Name          string                    `json:"name" validate:"required"`
		Description   string                    `json:"description"`
		Category      string                    `json:"category" validate:"required,oneof=FISH VEGETARIAN CHICKEN BEEF OTHER"`
		EverydayScore int                       `json:"everyday_score" validate:"required,min=1,max=5"`
		HealthScore   int                       `json:"health_score" validate:"required,min=1,max=5"`
		Ingredients   []RecipeIngredientRequest `json:"ingredients" validate:"dive"`
	}

	IngredientUsageView struct {
		IngredientID string   `json:"ingredient_id"`
		Name         string   `json:"name"`
		Unit         string   `json:"unit,omitempty"`
		Quantity     *float64 `json:"quantity,omitempty"`
		Note         string   `json:"note,omitempty"`
		PantryItem   bool     `json:"pantry_item"`
	}

	RecipeDetail struct {
		RecipeSummary
		Description string                `json:"description"`
		Ingredients []IngredientUsageView `json:"ingredients"`
	}

	CreateIngredientRequest struct {
		Name string `json:"name" validate:"required"`
		Unit string `json:"unit"`
	}

	IngredientView struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Unit string `json:"unit,omitempty"`
	}
)
