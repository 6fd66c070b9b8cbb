// Package calendar computes the admin month grid: for each day of the
// displayed month, padded to full weeks, which policies start or expire
// there and how urgently the day should be highlighted.
package calendar

import (
	"time"

	"policydesk/internal/model"
)

// DayState is the highlight class of a calendar day, highest priority first.
type DayState string

const (
	// StateUrgent marks a day with a policy expiry falling within the next
	// 7 days from today.
	StateUrgent DayState = "urgent"
	// StateWarning marks a day with a policy expiry inside the displayed month.
	StateWarning DayState = "warning"
	// StateToday marks the current day when nothing expires on it.
	StateToday DayState = "today"
	// StateDefault is a plain day.
	StateDefault DayState = "default"
)

// Day is one cell of the month grid.
type Day struct {
	Date        model.DateOnly `json:"date"`
	InMonth     bool           `json:"inMonth"`
	Today       bool           `json:"today"`
	Starting    int            `json:"starting"`
	Expiring    int            `json:"expiring"`
	HasActivity bool           `json:"hasActivity"`
	State       DayState       `json:"state"`
}

// Month is a full 7-column grid for one displayed month, including the
// leading and trailing days of adjacent months that complete the weeks.
type Month struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Days  []Day      `json:"days"`
}

// expiryWindowDays is how far ahead an expiry counts as urgent.
const expiryWindowDays = 7

// BuildMonth lays out the grid for the given month. Weeks run Sunday to
// Saturday. The urgency window is measured from today, not from the
// displayed month, so paging the calendar never changes which days are red.
func BuildMonth(year int, month time.Month, today model.DateOnly, policies []model.Policy) Month {
	monthStart := model.NewDate(year, month, 1)
	monthEnd := monthStart.AddDays(daysIn(year, month) - 1)
	gridStart := monthStart.AddDays(-int(monthStart.Weekday()))
	gridEnd := monthEnd.AddDays(int(time.Saturday - monthEnd.Weekday()))

	windowEnd := today.AddDays(expiryWindowDays)

	var days []Day
	for d := gridStart; !d.After(gridEnd); d = d.AddDays(1) {
		starting, expiring := 0, 0
		for _, p := range policies {
			if p.StartDate.Equal(d) {
				starting++
			}
			if p.EndDate.Equal(d) {
				expiring++
			}
		}

		inMonth := d.Month() == month && d.Year() == year
		isToday := d.Equal(today)

		state := StateDefault
		switch {
		case expiring > 0 && !d.Before(today) && !d.After(windowEnd):
			state = StateUrgent
		case expiring > 0 && inMonth:
			state = StateWarning
		case isToday:
			state = StateToday
		}

		days = append(days, Day{
			Date:        d,
			InMonth:     inMonth,
			Today:       isToday,
			Starting:    starting,
			Expiring:    expiring,
			HasActivity: starting > 0 || expiring > 0,
			State:       state,
		})
	}

	return Month{Year: year, Month: month, Days: days}
}

func daysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
