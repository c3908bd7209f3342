package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetShoppingList = "success get shopping list"
	MessageSuccessToggleItem      = "shopping item updated successfully"
	MessageSuccessAddExtra        = "extra item added successfully"
	MessageSuccessToggleExtra     = "extra item updated successfully"
	MessageSuccessRemoveExtra     = "extra item removed successfully"
	MessageSuccessSuggestExtras   = "success get extra suggestions"

	MessageFailedGetShoppingList = "failed to get shopping list"
	MessageFailedToggleItem      = "failed to update shopping item"
	MessageFailedAddExtra        = "failed to add extra item"
	MessageFailedToggleExtra     = "failed to update extra item"
	MessageFailedRemoveExtra     = "failed to remove extra item"
	MessageFailedSuggestExtras   = "failed to get extra suggestions"

	ErrExtraNotFound   = errors.New("extra item not found")
	ErrEmptyExtraName  = errors.New("extra item name is empty")
	ErrNoWeeksSelected = errors.New("no weeks selected")
)

type (
	ShoppingOccurrenceView struct {
		WeekStart       time.Time `json:"week_start"`
		Day             int       `json:"day"`
		Quantity        *float64  `json:"quantity,omitempty"`
		MissingQuantity bool      `json:"missing_quantity"`
		Checked         bool      `json:"checked"`
	}

	ShoppingLineView struct {
		RecipeID   string    `json:"recipe_id"`
		RecipeName string    `json:"recipe_name"`
		Quantity   *float64  `json:"quantity,omitempty"`
		Unit       string    `json:"unit,omitempty"`
		Note       string    `json:"note,omitempty"`
		WeekStart  time.Time `json:"week_start"`
		Day        int       `json:"day"`
	}

	ShoppingItemView struct {
		IngredientID    string                   `json:"ingredient_id"`
		Name            string                   `json:"name"`
		Unit            string                   `json:"unit,omitempty"`
		TotalQuantity   *float64                 `json:"total_quantity"`
		MissingQuantity bool                     `json:"missing_quantity"`
		PantryItem      bool                     `json:"pantry_item"`
		Checked         bool                     `json:"checked"`
		FirstCheckedDay *int                     `json:"first_checked_day,omitempty"`
		Occurrences     []ShoppingOccurrenceView `json:"occurrences"`
		Lines           []ShoppingLineView       `json:"lines"`
	}

	ExtraItemView struct {
		ExtraItemID string    `json:"extra_item_id"`
		Name        string    `json:"name"`
		WeekStart   time.Time `json:"week_start"`
		Checked     bool      `json:"checked"`
	}

	ShoppingListView struct {
		Weeks  []time.Time        `json:"weeks"`
		Items  []ShoppingItemView `json:"items"`
		Extras []ExtraItemView    `json:"extras"`
	}

	ToggleItemRequest struct {
		IngredientID string   `json:"ingredient_id" validate:"required,uuid"`
		Unit         string   `json:"unit"`
		Weeks        []string `json:"weeks" validate:"required,min=1"`
		Day          *int     `json:"day,omitempty" validate:"omitempty,min=0,max=6"`
		Checked      bool     `json:"checked"`
	}

	AddExtraRequest struct {
		WeekStart string `json:"week_start" validate:"required"`
		Name      string `json:"name" validate:"required"`
	}

	ToggleExtraRequest struct {
		WeekStart   string `json:"week_start" validate:"required"`
		ExtraItemID string `json:"extra_item_id" validate:"required,uuid"`
		Checked     bool   `json:"checked"`
	}

	ExtraSuggestionView struct {
		ExtraItemID string `json:"extra_item_id"`
		Name        string `json:"name"`
		WeekCount   int64  `json:"week_count"`
	}
)
