package planner

import (
	"Menu-Planner-Backend/domain"
	"time"
)

// MaxWeeksAhead is the planning horizon: week starts further out are
// rejected on write paths and clamped on read paths.
const MaxWeeksAhead = 4

// WeekStart normalizes any instant to the canonical Monday 00:00 UTC of
// its ISO week. Every week lookup in the system goes through this.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	return day.AddDate(0, 0, -offset)
}

// ParseWeekStart accepts RFC3339 or plain YYYY-MM-DD and returns the
// canonical week start of the parsed date.
func ParseWeekStart(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return WeekStart(t), nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, domain.ErrParseWeekStart
	}
	return WeekStart(t), nil
}

func horizonLimit(now time.Time) time.Time {
	return WeekStart(now).AddDate(0, 0, 7*MaxWeeksAhead)
}

// ClampToHorizon pulls a week start back to the furthest plannable week.
// Used on read paths, which are permissive.
func ClampToHorizon(weekStart, now time.Time) time.Time {
	if limit := horizonLimit(now); weekStart.After(limit) {
		return limit
	}
	return weekStart
}

// CheckHorizon rejects week starts beyond the horizon. Used on write paths,
// which are strict.
func CheckHorizon(weekStart, now time.Time) error {
	if weekStart.After(horizonLimit(now)) {
		return domain.ErrWeekBeyondHorizon
	}
	return nil
}
