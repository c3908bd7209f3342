package planner

import (
	"context"
	"testing"
	"time"

	"Menu-Planner-Backend/domain"
	"Menu-Planner-Backend/entities"
	"Menu-Planner-Backend/pkg/catalog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakePlanRepository struct {
	plans     map[int64]*entities.WeekPlan
	saveCalls int
	lastSaved []DayEntry
}

func newFakePlanRepository() *fakePlanRepository {
	return &fakePlanRepository{plans: make(map[int64]*entities.WeekPlan)}
}

func (f *fakePlanRepository) GetPlanByWeek(ctx context.Context, weekStart time.Time) (*entities.WeekPlan, error) {
	plan, ok := f.plans[weekStart.Unix()]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return plan, nil
}

func (f *fakePlanRepository) SaveWeek(ctx context.Context, weekStart time.Time, entries []DayEntry) (*entities.WeekPlan, error) {
	f.saveCalls++
	f.lastSaved = entries
	plan := &entities.WeekPlan{ID: uuid.New(), WeekStart: weekStart}
	for day, entry := range entries {
		if entry.Type == entities.EntryTypeEmpty {
			continue
		}
		plan.Entries = append(plan.Entries, entities.WeekPlanEntry{
			ID:         uuid.New(),
			WeekPlanID: plan.ID,
			DayIndex:   day,
			EntryType:  entry.Type,
			RecipeID:   entry.RecipeID,
		})
	}
	f.plans[weekStart.Unix()] = plan
	return plan, nil
}

type fakeCatalogRepository struct {
	pool []*entities.Recipe
}

func (f *fakeCatalogRepository) GetPool(ctx context.Context) ([]*entities.Recipe, error) {
	return f.pool, nil
}

func (f *fakeCatalogRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCatalogRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return nil
}

func (f *fakeCatalogRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return nil
}

func (f *fakeCatalogRepository) ReplaceRecipeIngredients(ctx context.Context, recipeID uuid.UUID, usages []entities.RecipeIngredient) error {
	return nil
}

func (f *fakeCatalogRepository) DeleteRecipe(ctx context.Context, id string) error {
	return nil
}

func (f *fakeCatalogRepository) ListIngredients(ctx context.Context) ([]*entities.Ingredient, error) {
	return nil, nil
}

func (f *fakeCatalogRepository) GetIngredientByName(ctx context.Context, name string) (*entities.Ingredient, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCatalogRepository) CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return nil
}

var _ catalog.CatalogRepository = (*fakeCatalogRepository)(nil)

func newTestService(plans *fakePlanRepository, pool []*entities.Recipe, now time.Time) *plannerService {
	return &plannerService{
		planRepository:    plans,
		catalogRepository: &fakeCatalogRepository{pool: pool},
		now:               func() time.Time { return now },
	}
}

func testPool() []*entities.Recipe {
	return buildPool(map[entities.RecipeCategory]int{
		entities.CategoryFish:       2,
		entities.CategoryVegetarian: 3,
		entities.CategoryChicken:    2,
		entities.CategoryBeef:       2,
	})
}

func TestGetWeekGeneratesLazily(t *testing.T) {
	now := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)
	plans := newFakePlanRepository()
	service := newTestService(plans, testPool(), now)

	view, err := service.GetWeek(context.Background(), "2026-09-07")
	require.NoError(t, err)

	assert.Equal(t, 1, plans.saveCalls)
	require.Len(t, view.Days, DaysPerWeek)
	for _, day := range view.Days {
		assert.Equal(t, string(entities.EntryTypeRecipe), day.Type)
	}
}

func TestGetWeekDoesNotRegenerate(t *testing.T) {
	now := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)
	plans := newFakePlanRepository()
	service := newTestService(plans, testPool(), now)

	_, err := service.GetWeek(context.Background(), "2026-09-07")
	require.NoError(t, err)
	_, err = service.GetWeek(context.Background(), "2026-09-07")
	require.NoError(t, err)

	assert.Equal(t, 1, plans.saveCalls, "an existing plan must be returned as-is")
}

func TestGetWeekClampsBeyondHorizon(t *testing.T) {
	now := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)
	plans := newFakePlanRepository()
	service := newTestService(plans, testPool(), now)

	view, err := service.GetWeek(context.Background(), "2026-12-25")
	require.NoError(t, err)

	limit := time.Date(2026, 9, 28, 0, 0, 0, 0, time.UTC)
	assert.True(t, view.WeekStart.Equal(limit))
}

func TestGenerateWeekRejectsBeyondHorizon(t *testing.T) {
	now := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)
	plans := newFakePlanRepository()
	service := newTestService(plans, testPool(), now)

	_, err := service.GenerateWeek(context.Background(), domain.GenerateWeekRequest{WeekStart: "2026-12-25"})
	assert.ErrorIs(t, err, domain.ErrWeekBeyondHorizon)
	assert.Zero(t, plans.saveCalls)
}

func TestGenerateWeekEmptyCatalog(t *testing.T) {
	now := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)
	plans := newFakePlanRepository()
	service := newTestService(plans, nil, now)

	_, err := service.GenerateWeek(context.Background(), domain.GenerateWeekRequest{})
	assert.ErrorIs(t, err, domain.ErrEmptyRecipePool)
}

func TestSaveWeekValidation(t *testing.T) {
	now := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)
	plans := newFakePlanRepository()
	service := newTestService(plans, testPool(), now)
	ctx := context.Background()

	fullWeek := func(day domain.DayEntryRequest) []domain.DayEntryRequest {
		days := make([]domain.DayEntryRequest, DaysPerWeek)
		for i := range days {
			days[i] = day
		}
		return days
	}

	_, err := service.SaveWeek(ctx, "2026-09-07", domain.SaveWeekRequest{
		Days: []domain.DayEntryRequest{{Type: "EMPTY"}},
	})
	assert.ErrorIs(t, err, domain.ErrDayCountMismatch)

	_, err = service.SaveWeek(ctx, "2026-09-07", domain.SaveWeekRequest{
		Days: fullWeek(domain.DayEntryRequest{Type: "RECIPE"}),
	})
	assert.ErrorIs(t, err, domain.ErrMissingRecipeID)

	_, err = service.SaveWeek(ctx, "2026-09-07", domain.SaveWeekRequest{
		Days: fullWeek(domain.DayEntryRequest{Type: "RECIPE", RecipeID: "not-a-uuid"}),
	})
	assert.ErrorIs(t, err, domain.ErrParseUUID)

	_, err = service.SaveWeek(ctx, "2026-12-25", domain.SaveWeekRequest{
		Days: fullWeek(domain.DayEntryRequest{Type: "EMPTY"}),
	})
	assert.ErrorIs(t, err, domain.ErrWeekBeyondHorizon)
}

func TestSaveWeekPassesResolvedEntries(t *testing.T) {
	now := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)
	plans := newFakePlanRepository()
	service := newTestService(plans, testPool(), now)

	recipeID := uuid.New()
	days := []domain.DayEntryRequest{
		{Type: "RECIPE", RecipeID: recipeID.String()},
		{Type: "TAKEAWAY"},
		{Type: "EMPTY"},
		{Type: "EMPTY"},
		{Type: "EMPTY"},
		{Type: "EMPTY"},
		{Type: "EMPTY"},
	}

	view, err := service.SaveWeek(context.Background(), "2026-09-07", domain.SaveWeekRequest{Days: days})
	require.NoError(t, err)

	require.Len(t, plans.lastSaved, DaysPerWeek)
	require.NotNil(t, plans.lastSaved[0].RecipeID)
	assert.Equal(t, recipeID, *plans.lastSaved[0].RecipeID)
	assert.Equal(t, entities.EntryTypeTakeaway, plans.lastSaved[1].Type)

	assert.Equal(t, string(entities.EntryTypeRecipe), view.Days[0].Type)
	assert.Equal(t, string(entities.EntryTypeTakeaway), view.Days[1].Type)
	assert.Equal(t, string(entities.EntryTypeEmpty), view.Days[2].Type)
}
