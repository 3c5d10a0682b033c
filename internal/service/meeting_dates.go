package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/noah-isme/alumni-mentorship-api/internal/models"
)

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday resolves an English weekday name, full or three-letter, ignoring case.
func ParseWeekday(raw string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if day, ok := weekdayNames[name]; ok {
		return day, nil
	}
	if len(name) == 3 {
		for full, day := range weekdayNames {
			if strings.HasPrefix(full, name) {
				return day, nil
			}
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", raw)
}

// PreferredDays lists every occurrence of weekday in [commencement, end], inclusive.
func PreferredDays(commencement, end time.Time, weekday time.Weekday) []time.Time {
	start := models.DateOnly(commencement)
	last := models.DateOnly(end)
	if last.Before(start) {
		return nil
	}
	offset := (int(weekday) - int(start.Weekday()) + 7) % 7
	days := make([]time.Time, 0)
	for day := start.AddDate(0, 0, offset); !day.After(last); day = day.AddDate(0, 0, 7) {
		days = append(days, day)
	}
	return days
}

// GenerateMeetingDates spreads count occurrences of weekday evenly across
// [commencement, end]. When the range holds count or fewer occurrences all of
// them are returned and the caller supplies the remainder.
func GenerateMeetingDates(commencement, end time.Time, weekday time.Weekday, count int) []time.Time {
	all := PreferredDays(commencement, end, weekday)
	if len(all) == 0 || count <= 0 {
		return nil
	}
	if count == 1 {
		return all[:1]
	}
	if count >= len(all) {
		return all
	}

	span, den := len(all)-1, count-1
	dates := make([]time.Time, 0, count)
	for i := 0; i < count; i++ {
		dates = append(dates, all[roundHalfEven(i*span, den)])
	}
	return dates
}

// roundHalfEven returns num/den rounded to the nearest integer, ties to even.
func roundHalfEven(num, den int) int {
	q, r := num/den, num%den
	if 2*r > den || (2*r == den && q%2 == 1) {
		q++
	}
	return q
}

// MeetingDatePlan is the outcome of combining generated and custom dates.
type MeetingDatePlan struct {
	Dates     []time.Time
	Generated int
	Shortfall int
}

// PlanMeetingDates generates dates and tops them up from custom, ignoring
// custom dates that duplicate a generated one. Shortfall counts the slots
// still empty after custom dates are used.
func PlanMeetingDates(commencement, end time.Time, weekday time.Weekday, count int, custom []time.Time) MeetingDatePlan {
	generated := GenerateMeetingDates(commencement, end, weekday, count)
	plan := MeetingDatePlan{Dates: generated, Generated: len(generated)}
	missing := count - len(generated)
	if missing <= 0 {
		return plan
	}

	seen := make(map[time.Time]struct{}, count)
	for _, day := range generated {
		seen[day] = struct{}{}
	}
	for _, raw := range custom {
		if missing == 0 {
			break
		}
		day := models.DateOnly(raw)
		if _, dup := seen[day]; dup {
			continue
		}
		seen[day] = struct{}{}
		plan.Dates = append(plan.Dates, day)
		missing--
	}
	sort.Slice(plan.Dates, func(i, j int) bool { return plan.Dates[i].Before(plan.Dates[j]) })
	plan.Shortfall = missing
	return plan
}
