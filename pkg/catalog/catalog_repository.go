package catalog

import (
	"Menu-Planner-Backend/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CatalogRepository interface {
		GetPool(ctx context.Context) ([]*entities.Recipe, error)
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		ReplaceRecipeIngredients(ctx context.Context, recipeID uuid.UUID, usages []entities.RecipeIngredient) error
		DeleteRecipe(ctx context.Context, id string) error
		ListIngredients(ctx context.Context) ([]*entities.Ingredient, error)
		GetIngredientByName(ctx context.Context, name string) (*entities.Ingredient, error)
		CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error
	}

	// UsageCounter is the one write the planner performs against the
	// catalog: bumping usage counters for recipes newly placed in a week.
	// It runs inside the caller's transaction so the counter adjustment
	// commits or rolls back together with the plan entries.
	UsageCounter interface {
		IncrementUsage(ctx context.Context, tx *gorm.DB, deltas map[uuid.UUID]int, weekStart time.Time) error
	}

	catalogRepository struct {
		db *gorm.DB
	}
)

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func NewUsageCounter(db *gorm.DB) UsageCounter {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) GetPool(ctx context.Context) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipe_ingredients.position ASC")
		}).
		Preload("Ingredients.Ingredient").
		Order("created_at ASC").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *catalogRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipe_ingredients.position ASC")
		}).
		Preload("Ingredients.Ingredient").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *catalogRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *catalogRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

func (r *catalogRepository) ReplaceRecipeIngredients(ctx context.Context, recipeID uuid.UUID, usages []entities.RecipeIngredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipeID).
			Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		for i := range usages {
			usages[i].RecipeID = recipeID
			if err := tx.Create(&usages[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *catalogRepository) DeleteRecipe(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).
			Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Recipe{}, "id = ?", id).Error
	})
}

func (r *catalogRepository) ListIngredients(ctx context.Context) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *catalogRepository) GetIngredientByName(ctx context.Context, name string) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *catalogRepository) CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *catalogRepository) IncrementUsage(ctx context.Context, tx *gorm.DB, deltas map[uuid.UUID]int, weekStart time.Time) error {
	if tx == nil {
		tx = r.db
	}
	for recipeID, delta := range deltas {
		if delta <= 0 {
			continue
		}
		if err := tx.WithContext(ctx).
			Model(&entities.Recipe{}).
			Where("id = ?", recipeID).
			Updates(map[string]interface{}{
				"usage_count": gorm.Expr("usage_count + ?", delta),
				"last_used":   weekStart,
			}).Error; err != nil {
			return err
		}
	}
	return nil
}
