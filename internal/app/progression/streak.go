package progression

import (
	"sort"
	"time"
)

const (
	// maxActivityDates bounds the stored activity calendar.
	maxActivityDates = 365

	// atRiskHours is the soft warning window: a streak is flagged at risk
	// once this many hours pass after the last activity day's midnight.
	// Separate from the hard one-day-gap break rule.
	atRiskHours = 20
)

// dateFormat is the calendar-date-string layout used throughout the record.
const dateFormat = "2006-01-02"

func dateString(t time.Time) string {
	return t.Format(dateFormat)
}

// startOfDay returns midnight of t's calendar day in t's location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Tracker maintains the activity-day calendar and the derived streak counts.
// A streak is consecutive calendar days ending today or yesterday; a gap of
// more than one whole day breaks it.
// Not safe for concurrent use; the Facade serializes access.
type Tracker struct {
	store *Store
}

// NewTracker creates a streak tracker over the shared store.
func NewTracker(store *Store) *Tracker {
	return &Tracker{store: store}
}

// RegisterActivity marks now's calendar day active and recomputes the
// streak. Same-day repeats are no-ops for the calendar but still refresh the
// derived counts. Returns the current streak.
func (t *Tracker) RegisterActivity(now time.Time) int {
	rec := t.store.Record()
	if rec == nil {
		return 0
	}

	today := dateString(now)
	streaks := &rec.Streaks

	if !containsString(streaks.ActivityDates, today) {
		streaks.ActivityDates = append(streaks.ActivityDates, today)
		if len(streaks.ActivityDates) > maxActivityDates {
			// Trim the oldest entries
			streaks.ActivityDates = streaks.ActivityDates[len(streaks.ActivityDates)-maxActivityDates:]
		}
	}

	streaks.CurrentStreak = computeStreak(streaks.ActivityDates, now)
	streaks.LastActivityDate = today
	if streaks.CurrentStreak > streaks.LongestStreak {
		streaks.LongestStreak = streaks.CurrentStreak
	}

	return streaks.CurrentStreak
}

// computeStreak counts consecutive active calendar days ending today or
// yesterday relative to now. More than one full day without activity means
// the streak is broken.
func computeStreak(activityDates []string, now time.Time) int {
	if len(activityDates) == 0 {
		return 0
	}

	// Dedupe and sort descending (most recent first).
	seen := make(map[string]bool, len(activityDates))
	dates := make([]string, 0, len(activityDates))
	for _, d := range activityDates {
		if !seen[d] {
			seen[d] = true
			dates = append(dates, d)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	today := startOfDay(now)
	mostRecent, err := time.ParseInLocation(dateFormat, dates[0], now.Location())
	if err != nil {
		return 0
	}

	daysSince := int(today.Sub(mostRecent).Hours() / 24)
	if daysSince > 1 {
		return 0 // Broken: more than one full day with no activity
	}

	// Walk backward one day at a time, starting from today or yesterday.
	check := today
	if daysSince == 1 {
		check = check.AddDate(0, 0, -1)
	}

	streak := 0
	for i := 0; i < maxActivityDates; i++ {
		if !seen[dateString(check)] {
			break
		}
		streak++
		check = check.AddDate(0, 0, -1)
	}
	return streak
}

// Current returns the current streak, 0 with no record.
func (t *Tracker) Current() int {
	if rec := t.store.Record(); rec != nil {
		return rec.Streaks.CurrentStreak
	}
	return 0
}

// Longest returns the longest streak ever held.
func (t *Tracker) Longest() int {
	if rec := t.store.Record(); rec != nil {
		return rec.Streaks.LongestStreak
	}
	return 0
}

// AtRisk reports whether the streak is in the soft warning window: more
// than atRiskHours since the last activity day's midnight with a live streak.
func (t *Tracker) AtRisk(now time.Time) bool {
	rec := t.store.Record()
	if rec == nil || rec.Streaks.LastActivityDate == "" || rec.Streaks.CurrentStreak == 0 {
		return false
	}

	last, err := time.ParseInLocation(dateFormat, rec.Streaks.LastActivityDate, now.Location())
	if err != nil {
		return false
	}
	return now.Sub(last).Hours() > atRiskHours
}

// HoursUntilLost returns whole hours until the end of the grace day — the
// midnight after which a full day has been skipped and the streak resets.
// ok is false when no activity has been recorded yet.
func (t *Tracker) HoursUntilLost(now time.Time) (hours int, ok bool) {
	rec := t.store.Record()
	if rec == nil || rec.Streaks.LastActivityDate == "" {
		return 0, false
	}

	last, err := time.ParseInLocation(dateFormat, rec.Streaks.LastActivityDate, now.Location())
	if err != nil {
		return 0, false
	}

	deadline := startOfDay(last).AddDate(0, 0, 2)
	left := int(deadline.Sub(now).Hours())
	if left < 0 {
		left = 0
	}
	return left, true
}

// StreakEmoji returns the badge for a streak length.
func StreakEmoji(streak int) string {
	switch {
	case streak >= 100:
		return "👑"
	case streak >= 30:
		return "💎"
	case streak >= 14:
		return "💪"
	case streak >= 7:
		return "⚡"
	case streak >= 3:
		return "🔥"
	}
	return "✨"
}

// StreakMessage returns the encouragement line for a streak length.
func StreakMessage(streak int) string {
	switch {
	case streak >= 100:
		return "LEGENDARY!"
	case streak >= 30:
		return "Unstoppable!"
	case streak >= 14:
		return "On Fire!"
	case streak >= 7:
		return "Crushing it!"
	case streak >= 3:
		return "Building momentum!"
	case streak >= 1:
		return "Keep going!"
	}
	return "Start your streak!"
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
