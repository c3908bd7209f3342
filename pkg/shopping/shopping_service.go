package shopping

import (
	"Menu-Planner-Backend/domain"
	"Menu-Planner-Backend/entities"
	"Menu-Planner-Backend/pkg/planner"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultSuggestLimit = 10
	maxSuggestLimit     = 20
)

type (
	ShoppingService interface {
		GetShoppingList(ctx context.Context, weekStartRaw string, includeNextWeek bool) (domain.ShoppingListView, error)
		ToggleItem(ctx context.Context, req domain.ToggleItemRequest) error
		AddExtra(ctx context.Context, req domain.AddExtraRequest) (domain.ExtraItemView, error)
		ToggleExtra(ctx context.Context, req domain.ToggleExtraRequest) error
		RemoveExtra(ctx context.Context, weekStartRaw, extraItemID string) error
		SuggestExtras(ctx context.Context, term string, limit int) ([]domain.ExtraSuggestionView, error)
	}

	shoppingService struct {
		shoppingRepository ShoppingRepository
		planRepository     planner.PlanRepository
		now                func() time.Time
	}
)

func NewShoppingService(shoppingRepository ShoppingRepository, planRepository planner.PlanRepository) ShoppingService {
	return &shoppingService{
		shoppingRepository: shoppingRepository,
		planRepository:     planRepository,
		now:                time.Now,
	}
}

func (s *shoppingService) GetShoppingList(ctx context.Context, weekStartRaw string, includeNextWeek bool) (domain.ShoppingListView, error) {
	weekStart, err := s.resolveWeekStart(weekStartRaw)
	if err != nil {
		return domain.ShoppingListView{}, err
	}
	now := s.now()
	weekStart = planner.ClampToHorizon(weekStart, now)

	weekStarts := []time.Time{weekStart}
	if includeNextWeek {
		next := planner.ClampToHorizon(weekStart.AddDate(0, 0, 7), now)
		if !next.Equal(weekStart) {
			weekStarts = append(weekStarts, next)
		}
	}

	weeks := make([]WeekEntries, 0, len(weekStarts))
	for _, ws := range weekStarts {
		week := WeekEntries{WeekStart: ws}
		plan, err := s.planRepository.GetPlanByWeek(ctx, ws)
		if err == nil {
			week.Entries = plan.Entries
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ShoppingListView{}, err
		}
		weeks = append(weeks, week)
	}

	checks, err := s.shoppingRepository.GetChecks(ctx, weekStarts)
	if err != nil {
		return domain.ShoppingListView{}, err
	}

	weekExtras, err := s.shoppingRepository.GetWeekExtras(ctx, weekStarts)
	if err != nil {
		return domain.ShoppingListView{}, err
	}
	extras := make([]domain.ExtraItemView, 0, len(weekExtras))
	for _, record := range weekExtras {
		view := domain.ExtraItemView{
			ExtraItemID: record.ExtraItemID.String(),
			WeekStart:   record.WeekStart,
			Checked:     record.Checked,
		}
		if record.ExtraItem != nil {
			view.Name = record.ExtraItem.Name
		}
		extras = append(extras, view)
	}

	return domain.ShoppingListView{
		Weeks:  weekStarts,
		Items:  AggregateItems(weeks, checks),
		Extras: extras,
	}, nil
}

func (s *shoppingService) ToggleItem(ctx context.Context, req domain.ToggleItemRequest) error {
	if len(req.Weeks) == 0 {
		return domain.ErrNoWeeksSelected
	}
	ingredientID, err := uuid.Parse(req.IngredientID)
	if err != nil {
		return domain.ErrParseUUID
	}

	for _, raw := range req.Weeks {
		weekStart, err := planner.ParseWeekStart(raw)
		if err != nil {
			return err
		}

		var firstDay *int
		if req.Checked {
			if req.Day != nil {
				day := *req.Day
				firstDay = &day
			} else {
				firstDay = s.firstOccurrenceDay(ctx, weekStart, ingredientID, req.Unit)
			}
		}

		existing, err := s.shoppingRepository.GetCheck(ctx, weekStart, ingredientID, req.Unit, req.Day)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			check := entities.ShoppingCheck{
				ID:              uuid.New(),
				WeekStart:       weekStart,
				IngredientID:    ingredientID,
				Unit:            req.Unit,
				DayIndex:        req.Day,
				Checked:         req.Checked,
				FirstCheckedDay: firstDay,
			}
			if err := s.shoppingRepository.CreateCheck(ctx, &check); err != nil {
				return err
			}
			continue
		}

		existing.Checked = req.Checked
		existing.FirstCheckedDay = firstDay
		if err := s.shoppingRepository.UpdateCheck(ctx, existing); err != nil {
			return err
		}
	}
	return nil
}

func (s *shoppingService) AddExtra(ctx context.Context, req domain.AddExtraRequest) (domain.ExtraItemView, error) {
	weekStart, err := planner.ParseWeekStart(req.WeekStart)
	if err != nil {
		return domain.ExtraItemView{}, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.ExtraItemView{}, domain.ErrEmptyExtraName
	}

	extra, err := s.shoppingRepository.GetExtraByNormalizedName(ctx, NormalizeExtraName(name))
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ExtraItemView{}, err
		}
		extra = &entities.ExtraItem{
			ID:             uuid.New(),
			Name:           name,
			NormalizedName: NormalizeExtraName(name),
		}
		if err := s.shoppingRepository.CreateExtra(ctx, extra); err != nil {
			return domain.ExtraItemView{}, err
		}
	}

	record, err := s.shoppingRepository.GetWeekExtra(ctx, weekStart, extra.ID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ExtraItemView{}, err
		}
		record = &entities.WeekExtraItem{
			ID:          uuid.New(),
			WeekStart:   weekStart,
			ExtraItemID: extra.ID,
		}
		if err := s.shoppingRepository.CreateWeekExtra(ctx, record); err != nil {
			return domain.ExtraItemView{}, err
		}
	}

	return domain.ExtraItemView{
		ExtraItemID: extra.ID.String(),
		Name:        extra.Name,
		WeekStart:   weekStart,
		Checked:     record.Checked,
	}, nil
}

func (s *shoppingService) ToggleExtra(ctx context.Context, req domain.ToggleExtraRequest) error {
	weekStart, err := planner.ParseWeekStart(req.WeekStart)
	if err != nil {
		return err
	}
	extraItemID, err := uuid.Parse(req.ExtraItemID)
	if err != nil {
		return domain.ErrParseUUID
	}

	record, err := s.shoppingRepository.GetWeekExtra(ctx, weekStart, extraItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrExtraNotFound
		}
		return err
	}
	return s.shoppingRepository.UpdateWeekExtraChecked(ctx, record.ID, req.Checked)
}

func (s *shoppingService) RemoveExtra(ctx context.Context, weekStartRaw, extraItemID string) error {
	weekStart, err := planner.ParseWeekStart(weekStartRaw)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(extraItemID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if _, err := s.shoppingRepository.GetWeekExtra(ctx, weekStart, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrExtraNotFound
		}
		return err
	}
	return s.shoppingRepository.DeleteWeekExtra(ctx, weekStart, id)
}

func (s *shoppingService) SuggestExtras(ctx context.Context, term string, limit int) ([]domain.ExtraSuggestionView, error) {
	if limit <= 0 {
		limit = defaultSuggestLimit
	}
	if limit > maxSuggestLimit {
		limit = maxSuggestLimit
	}

	rows, err := s.shoppingRepository.SuggestExtras(ctx, NormalizeExtraName(term), limit)
	if err != nil {
		return nil, err
	}

	result := make([]domain.ExtraSuggestionView, 0, len(rows))
	for _, row := range rows {
		result = append(result, domain.ExtraSuggestionView{
			ExtraItemID: row.ID.String(),
			Name:        row.Name,
			WeekCount:   row.WeekCount,
		})
	}
	return result, nil
}

// firstOccurrenceDay finds the lowest plan day containing the ingredient in
// the given week, used as the "purchased on" hint for week-level checks.
// Nil when the week has no plan or the ingredient does not occur.
func (s *shoppingService) firstOccurrenceDay(ctx context.Context, weekStart time.Time, ingredientID uuid.UUID, unit string) *int {
	plan, err := s.planRepository.GetPlanByWeek(ctx, weekStart)
	if err != nil {
		return nil
	}

	var first *int
	for _, entry := range plan.Entries {
		if entry.EntryType != entities.EntryTypeRecipe || entry.Recipe == nil {
			continue
		}
		for _, usage := range entry.Recipe.Ingredients {
			usageUnit := ""
			if usage.Ingredient != nil {
				usageUnit = usage.Ingredient.Unit
			}
			if usage.IngredientID != ingredientID || usageUnit != unit {
				continue
			}
			if first == nil || entry.DayIndex < *first {
				day := entry.DayIndex
				first = &day
			}
		}
	}
	return first
}

func (s *shoppingService) resolveWeekStart(raw string) (time.Time, error) {
	if raw == "" {
		return planner.WeekStart(s.now()), nil
	}
	return planner.ParseWeekStart(raw)
}

// NormalizeExtraName is the dedup key for the extras catalog: lowercased
// with whitespace collapsed.
func NormalizeExtraName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
