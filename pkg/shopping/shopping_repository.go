package shopping

import (
	"Menu-Planner-Backend/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ShoppingRepository interface {
		GetChecks(ctx context.Context, weekStarts []time.Time) ([]entities.ShoppingCheck, error)
		GetCheck(ctx context.Context, weekStart time.Time, ingredientID uuid.UUID, unit string, dayIndex *int) (*entities.ShoppingCheck, error)
		CreateCheck(ctx context.Context, check *entities.ShoppingCheck) error
		UpdateCheck(ctx context.Context, check *entities.ShoppingCheck) error

		GetWeekExtras(ctx context.Context, weekStarts []time.Time) ([]*entities.WeekExtraItem, error)
		GetExtraByNormalizedName(ctx context.Context, normalizedName string) (*entities.ExtraItem, error)
		CreateExtra(ctx context.Context, extra *entities.ExtraItem) error
		GetWeekExtra(ctx context.Context, weekStart time.Time, extraItemID uuid.UUID) (*entities.WeekExtraItem, error)
		CreateWeekExtra(ctx context.Context, record *entities.WeekExtraItem) error
		UpdateWeekExtraChecked(ctx context.Context, id uuid.UUID, checked bool) error
		DeleteWeekExtra(ctx context.Context, weekStart time.Time, extraItemID uuid.UUID) error
		SuggestExtras(ctx context.Context, term string, limit int) ([]ExtraUsage, error)
	}

	// ExtraUsage is a catalog extra with how many weeks it appeared in.
	ExtraUsage struct {
		ID        uuid.UUID `json:"id"`
		Name      string    `json:"name"`
		WeekCount int64     `json:"week_count"`
	}

	shoppingRepository struct {
		db *gorm.DB
	}
)

func NewShoppingRepository(db *gorm.DB) ShoppingRepository {
	return &shoppingRepository{db: db}
}

func (r *shoppingRepository) GetChecks(ctx context.Context, weekStarts []time.Time) ([]entities.ShoppingCheck, error) {
	var checks []entities.ShoppingCheck
	if err := r.db.WithContext(ctx).
		Where("week_start IN ?", weekStarts).
		Find(&checks).Error; err != nil {
		return nil, err
	}
	return checks, nil
}

func (r *shoppingRepository) GetCheck(ctx context.Context, weekStart time.Time, ingredientID uuid.UUID, unit string, dayIndex *int) (*entities.ShoppingCheck, error) {
	query := r.db.WithContext(ctx).
		Where("week_start = ? AND ingredient_id = ? AND unit = ?", weekStart, ingredientID, unit)
	if dayIndex == nil {
		query = query.Where("day_index IS NULL")
	} else {
		query = query.Where("day_index = ?", *dayIndex)
	}

	var check entities.ShoppingCheck
	if err := query.First(&check).Error; err != nil {
		return nil, err
	}
	return &check, nil
}

func (r *shoppingRepository) CreateCheck(ctx context.Context, check *entities.ShoppingCheck) error {
	return r.db.WithContext(ctx).Create(check).Error
}

func (r *shoppingRepository) UpdateCheck(ctx context.Context, check *entities.ShoppingCheck) error {
	return r.db.WithContext(ctx).
		Model(&entities.ShoppingCheck{}).
		Where("id = ?", check.ID).
		Updates(map[string]interface{}{
			"checked":           check.Checked,
			"first_checked_day": check.FirstCheckedDay,
		}).Error
}

func (r *shoppingRepository) GetWeekExtras(ctx context.Context, weekStarts []time.Time) ([]*entities.WeekExtraItem, error) {
	var extras []*entities.WeekExtraItem
	if err := r.db.WithContext(ctx).
		Preload("ExtraItem").
		Where("week_start IN ?", weekStarts).
		Order("created_at ASC").
		Find(&extras).Error; err != nil {
		return nil, err
	}
	return extras, nil
}

func (r *shoppingRepository) GetExtraByNormalizedName(ctx context.Context, normalizedName string) (*entities.ExtraItem, error) {
	var extra entities.ExtraItem
	if err := r.db.WithContext(ctx).
		Where("normalized_name = ?", normalizedName).
		First(&extra).Error; err != nil {
		return nil, err
	}
	return &extra, nil
}

func (r *shoppingRepository) CreateExtra(ctx context.Context, extra *entities.ExtraItem) error {
	return r.db.WithContext(ctx).Create(extra).Error
}

func (r *shoppingRepository) GetWeekExtra(ctx context.Context, weekStart time.Time, extraItemID uuid.UUID) (*entities.WeekExtraItem, error) {
	var record entities.WeekExtraItem
	if err := r.db.WithContext(ctx).
		Preload("ExtraItem").
		Where("week_start = ? AND extra_item_id = ?", weekStart, extraItemID).
		First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *shoppingRepository) CreateWeekExtra(ctx context.Context, record *entities.WeekExtraItem) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *shoppingRepository) UpdateWeekExtraChecked(ctx context.Context, id uuid.UUID, checked bool) error {
	return r.db.WithContext(ctx).
		Model(&entities.WeekExtraItem{}).
		Where("id = ?", id).
		Update("checked", checked).Error
}

// DeleteWeekExtra removes only the per-week record; the catalog entry
// stays for future suggestions.
func (r *shoppingRepository) DeleteWeekExtra(ctx context.Context, weekStart time.Time, extraItemID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("week_start = ? AND extra_item_id = ?", weekStart, extraItemID).
		Delete(&entities.WeekExtraItem{}).Error
}

func (r *shoppingRepository) SuggestExtras(ctx context.Context, term string, limit int) ([]ExtraUsage, error) {
	query := r.db.WithContext(ctx).
		Model(&entities.ExtraItem{}).
		Select("extra_items.id, extra_items.name, COUNT(week_extra_items.id) AS week_count").
		Joins("LEFT JOIN week_extra_items ON week_extra_items.extra_item_id = extra_items.id").
		Group("extra_items.id, extra_items.name").
		Order("week_count DESC, extra_items.name ASC").
		Limit(limit)
	if term != "" {
		query = query.Where("extra_items.normalized_name LIKE ?", "%"+term+"%")
	}

	var rows []ExtraUsage
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
