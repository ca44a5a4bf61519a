package progression

import (
	"sync"
	"time"

	"github.com/analyzeme/analyzeme/internal/domain"
	"github.com/analyzeme/analyzeme/internal/infra/sqlite"
)

// Facade composes the store, ledger, streak tracker, and achievement engine
// into the operations the rest of the application calls. Every operation
// follows the same shape: update raw counters, award XP, register streak
// activity, re-evaluate achievements, persist, and return the combined
// result.
//
// Calls are serialized with a mutex: the record is process-wide shared
// state, and interleaved read-modify-write cycles would lose updates.
type Facade struct {
	mu sync.Mutex

	store        *Store
	ledger       *Ledger
	streaks      *Tracker
	achievements *Engine
}

// New creates a facade over the given database and loads the record.
func New(db *sqlite.DB) *Facade {
	store := NewStore(db)
	store.Load()
	return newFacade(store)
}

// NewWithStore creates a facade over an existing store (the store decides
// when to load). Used by tests and by import/restore flows.
func NewWithStore(store *Store) *Facade {
	return newFacade(store)
}

func newFacade(store *Store) *Facade {
	ledger := NewLedger(store)
	return &Facade{
		store:        store,
		ledger:       ledger,
		streaks:      NewTracker(store),
		achievements: NewEngine(store, ledger),
	}
}

// RecordAnalysis handles an analysis-completed event. Canonical order:
// counters first (so bucket and size stats reflect this event), then XP
// (with bonus checks against pre-update prompt state), then streak, then
// achievement evaluation against the post-award state.
func (f *Facade) RecordAnalysis(now time.Time, documentSize int, promptID string) domain.EventResult {
	f.mu.Lock()
	defer f.mu.Unlock()

	rec := f.store.Record()
	if rec == nil {
		return domain.EventResult{}
	}

	previousLevel := rec.Profile.CurrentLevel
	xpBefore := rec.Profile.TotalXP

	rec.Stats.TotalAnalyses++
	if documentSize > rec.Stats.LargestDocument {
		rec.Stats.LargestDocument = documentSize
	}

	// The new-prompt bonus is decided against the set as it was before
	// this analysis.
	newPrompt := false
	if promptID != "" {
		newPrompt = !containsString(rec.Stats.UniquePromptsUsed, promptID)
		if newPrompt {
			rec.Stats.UniquePromptsUsed = append(rec.Stats.UniquePromptsUsed, promptID)
		}
		rec.Stats.PromptCounts[promptID]++
	}

	// Time buckets use the event's local clock.
	hour := now.Hour()
	if hour < 5 {
		rec.Stats.NightAnalyses++
	} else if hour < 7 {
		rec.Stats.EarlyAnalyses++
	}
	if wd := now.Weekday(); wd == time.Saturday || wd == time.Sunday {
		rec.Stats.WeekendAnalyses++
	}

	today := dateString(now)
	rec.Stats.AnalysesPerDay[today]++
	if rec.Stats.AnalysesPerDay[today] > rec.Stats.MaxAnalysesInDay {
		rec.Stats.MaxAnalysesInDay = rec.Stats.AnalysesPerDay[today]
	}

	f.ledger.AwardAnalysis(now, documentSize, newPrompt)
	f.streaks.RegisterActivity(now)
	unlocked := f.evaluate(now)

	f.store.Save()
	return f.result(previousLevel, xpBefore, unlocked)
}

// RecordSource handles a source-connected event. Connecting an already
// connected source is a no-op: no duplicate set entry, no second award.
func (f *Facade) RecordSource(now time.Time, sourceID string) domain.EventResult {
	f.mu.Lock()
	defer f.mu.Unlock()

	rec := f.store.Record()
	if rec == nil {
		return domain.EventResult{}
	}

	previousLevel := rec.Profile.CurrentLevel
	xpBefore := rec.Profile.TotalXP

	if containsString(rec.Stats.SourcesConnected, sourceID) {
		return f.result(previousLevel, xpBefore, nil)
	}
	rec.Stats.SourcesConnected = append(rec.Stats.SourcesConnected, sourceID)

	f.ledger.AwardSource(now, sourceID)
	unlocked := f.evaluate(now)

	f.store.Save()
	return f.result(previousLevel, xpBefore, unlocked)
}

// RecordExport handles an export-performed event.
func (f *Facade) RecordExport(now time.Time) domain.EventResult {
	f.mu.Lock()
	defer f.mu.Unlock()

	rec := f.store.Record()
	if rec == nil {
		return domain.EventResult{}
	}

	previousLevel := rec.Profile.CurrentLevel
	xpBefore := rec.Profile.TotalXP

	rec.Stats.ExportCount++
	f.ledger.AwardExport(now)
	unlocked := f.evaluate(now)

	f.store.Save()
	return f.result(previousLevel, xpBefore, unlocked)
}

// RecordCopy handles a copy-performed event.
func (f *Facade) RecordCopy(now time.Time) domain.EventResult {
	f.mu.Lock()
	defer f.mu.Unlock()

	rec := f.store.Record()
	if rec == nil {
		return domain.EventResult{}
	}

	previousLevel := rec.Profile.CurrentLevel
	xpBefore := rec.Profile.TotalXP

	rec.Stats.CopyCount++
	f.ledger.AwardCopy(now)
	unlocked := f.evaluate(now)

	f.store.Save()
	return f.result(previousLevel, xpBefore, unlocked)
}

// RecordAppOpen handles the daily-login check. The bonus is granted at most
// once per calendar day; repeat opens the same day are no-ops.
func (f *Facade) RecordAppOpen(now time.Time) domain.EventResult {
	f.mu.Lock()
	defer f.mu.Unlock()

	rec := f.store.Record()
	if rec == nil {
		return domain.EventResult{}
	}

	previousLevel := rec.Profile.CurrentLevel
	xpBefore := rec.Profile.TotalXP

	granted := f.ledger.AwardDailyLogin(now)
	var unlocked []domain.UnlockNotice
	if len(granted) > 0 {
		unlocked = f.evaluate(now)
	}

	f.store.Save()
	return f.result(previousLevel, xpBefore, unlocked)
}

// evaluate runs achievement and unlockable evaluation in order:
// achievements first, since unlockables may key off fresh unlocks.
func (f *Facade) evaluate(now time.Time) []domain.UnlockNotice {
	unlocked := f.achievements.EvaluateAll(now)
	f.achievements.EvaluateUnlockables()
	return unlocked
}

// result assembles the combined outcome after an operation's mutations.
func (f *Facade) result(previousLevel, xpBefore int, unlocked []domain.UnlockNotice) domain.EventResult {
	rec := f.store.Record()
	newLevel := rec.Profile.CurrentLevel
	return domain.EventResult{
		XPGranted:     rec.Profile.TotalXP - xpBefore,
		TotalXP:       rec.Profile.TotalXP,
		PreviousLevel: previousLevel,
		NewLevel:      newLevel,
		LeveledUp:     newLevel > previousLevel,
		Unlocked:      unlocked,
	}
}

// ─── Query Surface ───────────────────────────────────────────────────────────
//
// The record (and the notification queue) is shared mutable state, so reads
// take the same mutex as the event operations. The sub-components are never
// handed out: the facade is the only concurrency-safe surface.

// Summary returns the headline dashboard block.
func (f *Facade) Summary() domain.SummaryStats {
	f.mu.Lock()
	defer f.mu.Unlock()

	rec := f.store.Record()
	if rec == nil {
		return domain.SummaryStats{CurrentLevel: 1, LevelTitle: TitleForLevel(1)}
	}

	return domain.SummaryStats{
		TotalAnalyses:    rec.Stats.TotalAnalyses,
		TotalXP:          rec.Profile.TotalXP,
		CurrentLevel:     f.ledger.Level(),
		LevelTitle:       f.ledger.Title(),
		CurrentStreak:    rec.Streaks.CurrentStreak,
		LongestStreak:    rec.Streaks.LongestStreak,
		Achievements:     f.achievements.UnlockedCount(),
		TotalAchievement: f.achievements.TotalCount(),
		SourcesConnected: len(rec.Stats.SourcesConnected),
		ExportCount:      rec.Stats.ExportCount,
	}
}

// TotalXP returns cumulative experience.
func (f *Facade) TotalXP() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ledger.TotalXP()
}

// Level returns the current level.
func (f *Facade) Level() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ledger.Level()
}

// LevelTitle returns the display title for the current level.
func (f *Facade) LevelTitle() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ledger.Title()
}

// LevelProgress returns position within the current level.
func (f *Facade) LevelProgress() domain.LevelProgress {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ledger.Progress()
}

// IsMaxLevel reports whether the max level has been reached.
func (f *Facade) IsMaxLevel() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ledger.IsMaxLevel()
}

// XPThisWeek sums experience earned in the seven days before now.
func (f *Facade) XPThisWeek(now time.Time) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ledger.XPThisWeek(now)
}

// RecentHistory returns up to n history entries, most recent first.
func (f *Facade) RecentHistory(n int) []domain.XPEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ledger.RecentHistory(n)
}

// CurrentStreak returns the current consecutive-day streak.
func (f *Facade) CurrentStreak() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.streaks.Current()
}

// LongestStreak returns the longest streak ever held.
func (f *Facade) LongestStreak() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.streaks.Longest()
}

// StreakAtRisk reports whether the streak is in the soft warning window.
func (f *Facade) StreakAtRisk(now time.Time) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.streaks.AtRisk(now)
}

// HoursUntilStreakLost returns whole hours until the streak breaks.
// ok is false when no activity has been recorded yet.
func (f *Facade) HoursUntilStreakLost(now time.Time) (hours int, ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.streaks.HoursUntilLost(now)
}

// AchievementDefs returns the full achievement catalog.
func (f *Facade) AchievementDefs() []domain.AchievementDef {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.achievements.Definitions()
}

// HasAchievement reports whether the achievement id has been earned.
func (f *Facade) HasAchievement(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.achievements.IsUnlocked(id)
}

// UnlockedCount returns how many achievements are unlocked.
func (f *Facade) UnlockedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.achievements.UnlockedCount()
}

// TotalAchievements returns the catalog size.
func (f *Facade) TotalAchievements() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.achievements.TotalCount()
}

// CompletionPercent returns unlocked/total rounded to a whole percentage.
func (f *Facade) CompletionPercent() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.achievements.CompletionPercent()
}

// CategoryProgress summarizes unlock progress for one category.
func (f *Facade) CategoryProgress(cat domain.AchievementCategory) domain.CategoryProgress {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.achievements.CategoryProgress(cat)
}

// AchievementsByRarity returns catalog definitions of the given rarity tier.
func (f *Facade) AchievementsByRarity(r domain.Rarity) []domain.AchievementDef {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.achievements.ByRarity(r)
}

// NextClosest suggests up to n locked achievements, easiest rarity first.
func (f *Facade) NextClosest(n int) []domain.AchievementDef {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.achievements.NextClosest(n)
}

// UnlockedUnlockables returns the granted unlockable definitions.
func (f *Facade) UnlockedUnlockables() []domain.UnlockableDef {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.achievements.UnlockedUnlockables()
}

// ActivateTheme sets the active theme if it is "default" or unlocked.
func (f *Facade) ActivateTheme(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.achievements.ActivateTheme(id)
}

// DequeueNotification removes and returns the oldest pending unlock
// notification, or nil if none is queued.
func (f *Facade) DequeueNotification() *domain.UnlockNotice {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.achievements.DequeuePending()
}

// HasPendingNotifications reports whether unlock notifications are queued.
func (f *Facade) HasPendingNotifications() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.achievements.HasPending()
}

// IsNewUser reports whether no analysis has been recorded yet.
func (f *Facade) IsNewUser() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec := f.store.Record()
	return rec == nil || rec.Stats.TotalAnalyses == 0
}

// AccountAgeDays returns whole days since the profile was created.
func (f *Facade) AccountAgeDays(now time.Time) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec := f.store.Record()
	if rec == nil || rec.Profile.CreatedAt.IsZero() {
		return 0
	}
	days := int(now.Sub(rec.Profile.CreatedAt).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return days
}

// ─── Lifecycle ──────────────────────────────────────────────────────────────

// Export produces a serialized snapshot of the record for backup.
func (f *Facade) Export() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.store.Export()
}

// Import replaces the record from a serialized snapshot.
func (f *Facade) Import(data string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.store.Import(data)
}

// Reset unconditionally replaces the record with fresh defaults.
// Obtaining user confirmation is the caller's responsibility.
func (f *Facade) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.store.Reset()
	f.achievements.ClearPending()
}
