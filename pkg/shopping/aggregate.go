package shopping

import (
	"Menu-Planner-Backend/domain"
	"Menu-Planner-Backend/entities"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// WeekEntries is one included week's plan content, as loaded by the
// repository. A week with no saved plan contributes an empty entry list.
type WeekEntries struct {
	WeekStart time.Time
	Entries   []entities.WeekPlanEntry
}

type checkKey struct {
	week       int64
	ingredient uuid.UUID
	unit       string
}

type bucketKey struct {
	ingredient uuid.UUID
	unit       string
}

type occKey struct {
	week int64
	day  int
}

type occurrence struct {
	weekStart time.Time
	day       int
	sum       float64
	hasQty    bool
	missing   bool
}

type bucket struct {
	ingredientID uuid.UUID
	name         string
	unit         string
	sum          float64
	hasQty       bool
	missing      bool
	pantry       bool
	occs         map[occKey]*occurrence
	occOrder     []occKey
	lines        []domain.ShoppingLineView
}

// AggregateItems merges ingredient usages across the included weeks into
// per-(ingredient, unit) items and resolves purchased state against the
// check rows: a day-level row wins over the week-level row for its day, and
// an item only reads as checked when every occurrence is.
func AggregateItems(weeks []WeekEntries, checks []entities.ShoppingCheck) []domain.ShoppingItemView {
	weekChecks := make(map[checkKey]entities.ShoppingCheck)
	dayChecks := make(map[checkKey]map[int]bool)
	for _, check := range checks {
		key := checkKey{
			week:       check.WeekStart.UTC().Unix(),
			ingredient: check.IngredientID,
			unit:       check.Unit,
		}
		if check.DayIndex == nil {
			weekChecks[key] = check
			continue
		}
		if dayChecks[key] == nil {
			dayChecks[key] = make(map[int]bool)
		}
		dayChecks[key][*check.DayIndex] = check.Checked
	}

	buckets := make(map[bucketKey]*bucket)
	var order []bucketKey

	for _, week := range weeks {
		weekUnix := week.WeekStart.UTC().Unix()
		for _, entry := range week.Entries {
			if entry.EntryType != entities.EntryTypeRecipe || entry.Recipe == nil {
				continue
			}
			for _, usage := range entry.Recipe.Ingredients {
				unit := ""
				name := ""
				if usage.Ingredient != nil {
					unit = usage.Ingredient.Unit
					name = usage.Ingredient.Name
				}
				key := bucketKey{ingredient: usage.IngredientID, unit: unit}

				b, ok := buckets[key]
				if !ok {
					b = &bucket{
						ingredientID: usage.IngredientID,
						name:         name,
						unit:         unit,
						pantry:       true,
						occs:         make(map[occKey]*occurrence),
					}
					buckets[key] = b
					order = append(order, key)
				}

				if usage.Quantity != nil {
					b.sum += *usage.Quantity
					b.hasQty = true
				} else {
					b.missing = true
				}
				if !usage.PantryItem {
					b.pantry = false
				}

				ok2 := occKey{week: weekUnix, day: entry.DayIndex}
				occ, exists := b.occs[ok2]
				if !exists {
					occ = &occurrence{weekStart: week.WeekStart, day: entry.DayIndex}
					b.occs[ok2] = occ
					b.occOrder = append(b.occOrder, ok2)
				}
				if usage.Quantity != nil {
					occ.sum += *usage.Quantity
					occ.hasQty = true
				} else {
					occ.missing = true
				}

				b.lines = append(b.lines, domain.ShoppingLineView{
					RecipeID:   entry.Recipe.ID.String(),
					RecipeName: entry.Recipe.Name,
					Quantity:   usage.Quantity,
					Unit:       unit,
					Note:       usage.Note,
					WeekStart:  week.WeekStart,
					Day:        entry.DayIndex,
				})
			}
		}
	}

	items := make([]domain.ShoppingItemView, 0, len(order))
	for _, key := range order {
		b := buckets[key]

		occurrences := make([]domain.ShoppingOccurrenceView, 0, len(b.occOrder))
		allChecked := true
		for _, ok2 := range b.occOrder {
			occ := b.occs[ok2]
			stateKey := checkKey{week: ok2.week, ingredient: b.ingredientID, unit: b.unit}
			checked := resolveChecked(stateKey, ok2.day, weekChecks, dayChecks)
			if !checked {
				allChecked = false
			}
			view := domain.ShoppingOccurrenceView{
				WeekStart:       occ.weekStart,
				Day:             occ.day,
				MissingQuantity: occ.missing,
				Checked:         checked,
			}
			if occ.hasQty {
				sum := occ.sum
				view.Quantity = &sum
			}
			occurrences = append(occurrences, view)
		}
		if len(b.occOrder) == 0 {
			allChecked = allWeeksChecked(b, weeks, weekChecks)
		}

		item := domain.ShoppingItemView{
			IngredientID:    b.ingredientID.String(),
			Name:            b.name,
			Unit:            b.unit,
			MissingQuantity: b.missing,
			PantryItem:      b.pantry,
			Checked:         allChecked,
			FirstCheckedDay: firstCheckedDay(b, weeks, weekChecks),
			Occurrences:     occurrences,
			Lines:           b.lines,
		}
		// Never conflate "no amount given" with zero.
		if b.hasQty {
			sum := b.sum
			item.TotalQuantity = &sum
		}
		items = append(items, item)
	}

	collator := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(items, func(i, j int) bool {
		if cmp := collator.CompareString(items[i].Name, items[j].Name); cmp != 0 {
			return cmp < 0
		}
		return items[i].Unit < items[j].Unit
	})
	return items
}

func resolveChecked(key checkKey, day int, weekChecks map[checkKey]entities.ShoppingCheck, dayChecks map[checkKey]map[int]bool) bool {
	if days, ok := dayChecks[key]; ok {
		if checked, ok := days[day]; ok {
			return checked
		}
	}
	if check, ok := weekChecks[key]; ok {
		return check.Checked
	}
	return false
}

func allWeeksChecked(b *bucket, weeks []WeekEntries, weekChecks map[checkKey]entities.ShoppingCheck) bool {
	for _, week := range weeks {
		key := checkKey{week: week.WeekStart.UTC().Unix(), ingredient: b.ingredientID, unit: b.unit}
		check, ok := weekChecks[key]
		if !ok || !check.Checked {
			return false
		}
	}
	return len(weeks) > 0
}

// firstCheckedDay reports the lowest day at which the item was first marked
// purchased across the included weeks, for "bought on <day>" hints.
func firstCheckedDay(b *bucket, weeks []WeekEntries, weekChecks map[checkKey]entities.ShoppingCheck) *int {
	var first *int
	for _, week := range weeks {
		key := checkKey{week: week.WeekStart.UTC().Unix(), ingredient: b.ingredientID, unit: b.unit}
		check, ok := weekChecks[key]
		if !ok || !check.Checked || check.FirstCheckedDay == nil {
			continue
		}
		if first == nil || *check.FirstCheckedDay < *first {
			day := *check.FirstCheckedDay
			first = &day
		}
	}
	return first
}
