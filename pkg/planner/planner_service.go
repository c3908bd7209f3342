package planner

import (
	"Menu-Planner-Backend/domain"
	"Menu-Planner-Backend/entities"
	"Menu-Planner-Backend/pkg/catalog"
	"Menu-Planner-Backend/pkg/suggestion"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PlannerService interface {
		GenerateWeek(ctx context.Context, req domain.GenerateWeekRequest) (domain.WeekPlanView, error)
		GetWeek(ctx context.Context, weekStartRaw string) (domain.WeekPlanView, error)
		SaveWeek(ctx context.Context, weekStartRaw string, req domain.SaveWeekRequest) (domain.WeekPlanView, error)
		SearchRecipes(ctx context.Context, weekStartRaw, term string, limit int) ([]domain.RecipeSummary, error)
	}

	plannerService struct {
		planRepository    PlanRepository
		catalogRepository catalog.CatalogRepository
		now               func() time.Time
	}
)

func NewPlannerService(planRepository PlanRepository, catalogRepository catalog.CatalogRepository) PlannerService {
	return &plannerService{
		planRepository:    planRepository,
		catalogRepository: catalogRepository,
		now:               time.Now,
	}
}

func (s *plannerService) GenerateWeek(ctx context.Context, req domain.GenerateWeekRequest) (domain.WeekPlanView, error) {
	weekStart, err := s.resolveWeekStart(req.WeekStart)
	if err != nil {
		return domain.WeekPlanView{}, err
	}
	if err := CheckHorizon(weekStart, s.now()); err != nil {
		return domain.WeekPlanView{}, err
	}
	return s.generate(ctx, weekStart, ResolveConstraints(req.Constraints))
}

func (s *plannerService) GetWeek(ctx context.Context, weekStartRaw string) (domain.WeekPlanView, error) {
	weekStart, err := s.resolveWeekStart(weekStartRaw)
	if err != nil {
		return domain.WeekPlanView{}, err
	}
	weekStart = ClampToHorizon(weekStart, s.now())

	plan, err := s.planRepository.GetPlanByWeek(ctx, weekStart)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No plan yet: generate one lazily with defaults.
			return s.generate(ctx, weekStart, DefaultConstraints())
		}
		return domain.WeekPlanView{}, err
	}
	return s.viewWithSuggestions(ctx, plan)
}

func (s *plannerService) SaveWeek(ctx context.Context, weekStartRaw string, req domain.SaveWeekRequest) (domain.WeekPlanView, error) {
	weekStart, err := s.resolveWeekStart(weekStartRaw)
	if err != nil {
		return domain.WeekPlanView{}, err
	}
	if err := CheckHorizon(weekStart, s.now()); err != nil {
		return domain.WeekPlanView{}, err
	}

	if len(req.Days) != DaysPerWeek {
		return domain.WeekPlanView{}, domain.ErrDayCountMismatch
	}
	entries := make([]DayEntry, 0, DaysPerWeek)
	for _, day := range req.Days {
		entry := DayEntry{Type: entities.EntryType(day.Type)}
		if entry.Type == entities.EntryTypeRecipe {
			if day.RecipeID == "" {
				return domain.WeekPlanView{}, domain.ErrMissingRecipeID
			}
			recipeID, err := uuid.Parse(day.RecipeID)
			if err != nil {
				return domain.WeekPlanView{}, domain.ErrParseUUID
			}
			entry.RecipeID = &recipeID
		}
		entries = append(entries, entry)
	}

	plan, err := s.planRepository.SaveWeek(ctx, weekStart, entries)
	if err != nil {
		return domain.WeekPlanView{}, err
	}
	return s.viewWithSuggestions(ctx, plan)
}

func (s *plannerService) SearchRecipes(ctx context.Context, weekStartRaw, term string, limit int) ([]domain.RecipeSummary, error) {
	weekStart, err := s.resolveWeekStart(weekStartRaw)
	if err != nil {
		return nil, err
	}
	weekStart = ClampToHorizon(weekStart, s.now())

	exclude := make(map[uuid.UUID]bool)
	plan, err := s.planRepository.GetPlanByWeek(ctx, weekStart)
	if err == nil {
		exclude = placedRecipes(plan)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	pool, err := s.catalogRepository.GetPool(ctx)
	if err != nil {
		return nil, err
	}

	hits := suggestion.Search(pool, exclude, term, limit)
	result := make([]domain.RecipeSummary, 0, len(hits))
	for _, recipe := range hits {
		result = append(result, catalog.RecipeSummaryView(recipe))
	}
	return result, nil
}

func (s *plannerService) generate(ctx context.Context, weekStart time.Time, cfg Constraints) (domain.WeekPlanView, error) {
	pool, err := s.catalogRepository.GetPool(ctx)
	if err != nil {
		return domain.WeekPlanView{}, err
	}

	scheduled, err := ScheduleWeek(pool, cfg, weekStart)
	if err != nil {
		return domain.WeekPlanView{}, err
	}

	entries := make([]DayEntry, 0, DaysPerWeek)
	for _, recipe := range scheduled {
		recipeID := recipe.ID
		entries = append(entries, DayEntry{Type: entities.EntryTypeRecipe, RecipeID: &recipeID})
	}

	plan, err := s.planRepository.SaveWeek(ctx, weekStart, entries)
	if err != nil {
		return domain.WeekPlanView{}, err
	}
	return s.buildView(plan, pool)
}

func (s *plannerService) viewWithSuggestions(ctx context.Context, plan *entities.WeekPlan) (domain.WeekPlanView, error) {
	pool, err := s.catalogRepository.GetPool(ctx)
	if err != nil {
		return domain.WeekPlanView{}, err
	}
	return s.buildView(plan, pool)
}

func (s *plannerService) buildView(plan *entities.WeekPlan, pool []*entities.Recipe) (domain.WeekPlanView, error) {
	days := make([]domain.DayView, DaysPerWeek)
	for i := range days {
		days[i] = domain.DayView{Day: i, Type: string(entities.EntryTypeEmpty)}
	}
	for _, entry := range plan.Entries {
		if entry.DayIndex < 0 || entry.DayIndex >= DaysPerWeek {
			continue
		}
		view := domain.DayView{Day: entry.DayIndex, Type: string(entry.EntryType)}
		if entry.EntryType == entities.EntryTypeRecipe && entry.Recipe != nil {
			summary := catalog.RecipeSummaryView(entry.Recipe)
			view.Recipe = &summary
		}
		days[entry.DayIndex] = view
	}

	exclude := placedRecipes(plan)
	buckets := domain.SuggestionBuckets{
		LongGap:  summaries(suggestion.LongGap(pool, exclude, suggestion.DefaultBucketLimit, s.now())),
		Frequent: summaries(suggestion.Frequent(pool, exclude, suggestion.DefaultBucketLimit)),
	}

	return domain.WeekPlanView{
		WeekStart:   plan.WeekStart,
		UpdatedAt:   plan.UpdatedAt,
		Days:        days,
		Suggestions: &buckets,
	}, nil
}

func (s *plannerService) resolveWeekStart(raw string) (time.Time, error) {
	if raw == "" {
		return WeekStart(s.now()), nil
	}
	return ParseWeekStart(raw)
}

func placedRecipes(plan *entities.WeekPlan) map[uuid.UUID]bool {
	placed := make(map[uuid.UUID]bool)
	for _, entry := range plan.Entries {
		if entry.EntryType == entities.EntryTypeRecipe && entry.RecipeID != nil {
			placed[*entry.RecipeID] = true
		}
	}
	return placed
}

func summaries(recipes []*entities.Recipe) []domain.RecipeSummary {
	result := make([]domain.RecipeSummary, 0, len(recipes))
	for _, recipe := range recipes {
		result = append(result, catalog.RecipeSummaryView(recipe))
	}
	return result
}
