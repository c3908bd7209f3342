package planner

import (
	"Menu-Planner-Backend/domain"
	"Menu-Planner-Backend/entities"
	"Menu-Planner-Backend/pkg/catalog"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PlanRepository interface {
		GetPlanByWeek(ctx context.Context, weekStart time.Time) (*entities.WeekPlan, error)
		SaveWeek(ctx context.Context, weekStart time.Time, entries []DayEntry) (*entities.WeekPlan, error)
	}

	planRepository struct {
		db    *gorm.DB
		usage catalog.UsageCounter
	}
)

func NewPlanRepository(db *gorm.DB, usage catalog.UsageCounter) PlanRepository {
	return &planRepository{db: db, usage: usage}
}

func (r *planRepository) GetPlanByWeek(ctx context.Context, weekStart time.Time) (*entities.WeekPlan, error) {
	var plan entities.WeekPlan
	if err := r.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB {
			return db.Order("week_plan_entries.day_index ASC")
		}).
		Preload("Entries.Recipe").
		Preload("Entries.Recipe.Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipe_ingredients.position ASC")
		}).
		Preload("Entries.Recipe.Ingredients.Ingredient").
		Where("week_start = ?", weekStart).
		First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// SaveWeek persists a full 7-slot assignment in one transaction: entry
// upserts, EMPTY-slot deletes, and the usage-counter bumps for recipe
// occurrences the new assignment adds. A failure anywhere rolls the whole
// write back, so a plan is never half-updated.
func (r *planRepository) SaveWeek(ctx context.Context, weekStart time.Time, entries []DayEntry) (*entities.WeekPlan, error) {
	if len(entries) != DaysPerWeek {
		return nil, domain.ErrDayCountMismatch
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var plan entities.WeekPlan
		if err := tx.Where("week_start = ?", weekStart).First(&plan).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			plan = entities.WeekPlan{ID: uuid.New(), WeekStart: weekStart}
			if err := tx.Create(&plan).Error; err != nil {
				return err
			}
		}

		var prior []entities.WeekPlanEntry
		if err := tx.Where("week_plan_id = ?", plan.ID).Find(&prior).Error; err != nil {
			return err
		}
		priorByDay := make(map[int]entities.WeekPlanEntry, len(prior))
		for _, row := range prior {
			priorByDay[row.DayIndex] = row
		}

		for day, entry := range entries {
			existing, exists := priorByDay[day]
			switch entry.Type {
			case entities.EntryTypeEmpty:
				if exists {
					if err := tx.Delete(&entities.WeekPlanEntry{}, "id = ?", existing.ID).Error; err != nil {
						return err
					}
				}
			default:
				if exists {
					if err := tx.Model(&entities.WeekPlanEntry{}).
						Where("id = ?", existing.ID).
						Updates(map[string]interface{}{
							"entry_type": entry.Type,
							"recipe_id":  entry.RecipeID,
						}).Error; err != nil {
						return err
					}
				} else {
					row := entities.WeekPlanEntry{
						ID:         uuid.New(),
						WeekPlanID: plan.ID,
						DayIndex:   day,
						EntryType:  entry.Type,
						RecipeID:   entry.RecipeID,
					}
					if err := tx.Create(&row).Error; err != nil {
						return err
					}
				}
			}
		}

		delta := usageDelta(entryOccurrences(prior), countOccurrences(entries))
		if err := r.usage.IncrementUsage(ctx, tx, delta, weekStart); err != nil {
			return err
		}

		return tx.Model(&entities.WeekPlan{}).
			Where("id = ?", plan.ID).
			Update("updated_at", time.Now().UTC()).Error
	})
	if err != nil {
		return nil, err
	}

	return r.GetPlanByWeek(ctx, weekStart)
}
