package catalog

import (
	"Menu-Planner-Backend/domain"
	"Menu-Planner-Backend/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CatalogService interface {
		GetRecipes(ctx context.Context) ([]domain.RecipeDetail, error)
		GetRecipeDetail(ctx context.Context, recipeID string) (domain.RecipeDetail, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeDetail, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest) (domain.RecipeDetail, error)
		DeleteRecipe(ctx context.Context, recipeID string) error
		GetIngredients(ctx context.Context) ([]domain.IngredientView, error)
		CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (domain.IngredientView, error)
	}

	catalogService struct {
		catalogRepository CatalogRepository
	}
)

func NewCatalogService(catalogRepository CatalogRepository) CatalogService {
	return &catalogService{catalogRepository: catalogRepository}
}

func (s *catalogService) GetRecipes(ctx context.Context) ([]domain.RecipeDetail, error) {
	pool, err := s.catalogRepository.GetPool(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.RecipeDetail, 0, len(pool))
	for _, recipe := range pool {
		result = append(result, RecipeDetailView(recipe))
	}
	return result, nil
}

func (s *catalogService) GetRecipeDetail(ctx context.Context, recipeID string) (domain.RecipeDetail, error) {
	recipe, err := s.catalogRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetail{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetail{}, err
	}
	return RecipeDetailView(recipe), nil
}

func (s *catalogService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeDetail, error) {
	recipe := entities.Recipe{
		ID:            uuid.New(),
		Name:          req.Name,
		Description:   req.Description,
		Category:      entities.RecipeCategory(req.Category),
		EverydayScore: req.EverydayScore,
		HealthScore:   req.HealthScore,
	}
	if err := s.catalogRepository.CreateRecipe(ctx, &recipe); err != nil {
		return domain.RecipeDetail{}, err
	}

	usages, err := s.resolveUsages(ctx, req.Ingredients)
	if err != nil {
		return domain.RecipeDetail{}, err
	}
	if err := s.catalogRepository.ReplaceRecipeIngredients(ctx, recipe.ID, usages); err != nil {
		return domain.RecipeDetail{}, err
	}

	return s.GetRecipeDetail(ctx, recipe.ID.String())
}

func (s *catalogService) UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest) (domain.RecipeDetail, error) {
	recipe, err := s.catalogRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetail{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetail{}, err
	}

	recipe.Name = req.Name
	recipe.Description = req.Description
	recipe.Category = entities.RecipeCategory(req.Category)
	recipe.EverydayScore = req.EverydayScore
	recipe.HealthScore = req.HealthScore
	recipe.Ingredients = nil
	if err := s.catalogRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeDetail{}, err
	}

	usages, err := s.resolveUsages(ctx, req.Ingredients)
	if err != nil {
		return domain.RecipeDetail{}, err
	}
	if err := s.catalogRepository.ReplaceRecipeIngredients(ctx, recipe.ID, usages); err != nil {
		return domain.RecipeDetail{}, err
	}

	return s.GetRecipeDetail(ctx, recipeID)
}

func (s *catalogService) DeleteRecipe(ctx context.Context, recipeID string) error {
	if _, err := s.catalogRepository.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	return s.catalogRepository.DeleteRecipe(ctx, recipeID)
}

func (s *catalogService) GetIngredients(ctx context.Context) ([]domain.IngredientView, error) {
	ingredients, err := s.catalogRepository.ListIngredients(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.IngredientView, 0, len(ingredients))
	for _, ing := range ingredients {
		result = append(result, domain.IngredientView{
			ID:   ing.ID.String(),
			Name: ing.Name,
			Unit: ing.Unit,
		})
	}
	return result, nil
}

func (s *catalogService) CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (domain.IngredientView, error) {
	ingredient, err := s.findOrCreateIngredient(ctx, req.Name, req.Unit)
	if err != nil {
		return domain.IngredientView{}, err
	}
	return domain.IngredientView{
		ID:   ingredient.ID.String(),
		Name: ingredient.Name,
		Unit: ingredient.Unit,
	}, nil
}

// resolveUsages maps ingredient requests onto catalog rows, creating
// ingredients that do not exist yet.
func (s *catalogService) resolveUsages(ctx context.Context, reqs []domain.RecipeIngredientRequest) ([]entities.RecipeIngredient, error) {
	usages := make([]entities.RecipeIngredient, 0, len(reqs))
	for i, req := range reqs {
		ingredient, err := s.findOrCreateIngredient(ctx, req.IngredientName, req.Unit)
		if err != nil {
			return nil, err
		}
		usages = append(usages, entities.RecipeIngredient{
			ID:           uuid.New(),
			IngredientID: ingredient.ID,
			Quantity:     req.Quantity,
			Note:         req.Note,
			PantryItem:   req.PantryItem,
			Position:     i,
		})
	}
	return usages, nil
}

func (s *catalogService) findOrCreateIngredient(ctx context.Context, name, unit string) (*entities.Ingredient, error) {
	ingredient, err := s.catalogRepository.GetIngredientByName(ctx, name)
	if err == nil {
		return ingredient, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := entities.Ingredient{
		ID:   uuid.New(),
		Name: name,
		Unit: unit,
	}
	if err := s.catalogRepository.CreateIngredient(ctx, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// RecipeSummaryView maps a catalog recipe onto its transport summary.
func RecipeSummaryView(recipe *entities.Recipe) domain.RecipeSummary {
	return domain.RecipeSummary{
		ID:            recipe.ID.String(),
		Name:          recipe.Name,
		Category:      string(recipe.Category),
		EverydayScore: recipe.EverydayScore,
		HealthScore:   recipe.HealthScore,
		UsageCount:    recipe.UsageCount,
		LastUsed:      recipe.LastUsed,
	}
}

func RecipeDetailView(recipe *entities.Recipe) domain.RecipeDetail {
	ingredients := make([]domain.IngredientUsageView, 0, len(recipe.Ingredients))
	for _, usage := range recipe.Ingredients {
		view := domain.IngredientUsageView{
			IngredientID: usage.IngredientID.String(),
			Quantity:     usage.Quantity,
			Note:         usage.Note,
			PantryItem:   usage.PantryItem,
		}
		if usage.Ingredient != nil {
			view.Name = usage.Ingredient.Name
			view.Unit = usage.Ingredient.Unit
		}
		ingredients = append(ingredients, view)
	}

	return domain.RecipeDetail{
		RecipeSummary: RecipeSummaryView(recipe),
		Description:   recipe.Description,
		Ingredients:   ingredients,
	}
}
