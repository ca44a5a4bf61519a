package progression

import (
	"log"
	"math"
	"sort"
	"time"

	"github.com/analyzeme/analyzeme/internal/domain"
)

// Engine evaluates the achievement catalog against a derived statistics
// snapshot. Each unlock happens exactly once for the lifetime of the record
// and queues a FIFO notification for the UI.
// Not safe for concurrent use; the Facade serializes access.
type Engine struct {
	store   *Store
	ledger  *Ledger
	defs    []domain.AchievementDef
	pending []domain.UnlockNotice
}

// NewEngine creates an achievement engine with the full catalog.
func NewEngine(store *Store, ledger *Ledger) *Engine {
	return NewEngineWithDefs(store, ledger, Catalog())
}

// NewEngineWithDefs creates an engine over a custom definition list.
func NewEngineWithDefs(store *Store, ledger *Ledger, defs []domain.AchievementDef) *Engine {
	return &Engine{
		store:  store,
		ledger: ledger,
		defs:   defs,
	}
}

// EvaluateAll checks every locked achievement against a fresh snapshot and
// unlocks those whose predicate holds, in catalog order. Each unlock awards
// its XP under the achievement reason and queues a notification. A predicate
// that panics counts as not met for this pass and is logged; the remaining
// achievements are still evaluated.
func (e *Engine) EvaluateAll(now time.Time) []domain.UnlockNotice {
	rec := e.store.Record()
	if rec == nil {
		return nil
	}

	var newlyUnlocked []domain.UnlockNotice
	snap := e.snapshot()

	for _, def := range e.defs {
		if e.IsUnlocked(def.ID) {
			continue
		}
		if def.Predicate == nil || !checkPredicate(def, snap) {
			continue
		}

		rec.Achievements.Unlocked = append(rec.Achievements.Unlocked, domain.UnlockedAchievement{
			ID:         def.ID,
			UnlockedAt: now,
		})

		if def.RewardXP > 0 {
			e.ledger.Award(now, def.RewardXP, domain.ReasonAchievement)
		}

		notice := domain.UnlockNotice{Achievement: def, UnlockedAt: now}
		e.pending = append(e.pending, notice)
		newlyUnlocked = append(newlyUnlocked, notice)
	}

	return newlyUnlocked
}

// checkPredicate isolates predicate panics: a panicking condition is
// treated as unmet so one bad definition cannot abort the pass.
func checkPredicate(def domain.AchievementDef, snap domain.StatsSnapshot) (met bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[progression] achievement %s predicate panicked: %v", def.ID, r)
			met = false
		}
	}()
	return def.Predicate(snap)
}

// snapshot builds the derived statistics view predicates run against:
// raw stats merged with streak state, unlocked ids, and the current level.
func (e *Engine) snapshot() domain.StatsSnapshot {
	rec := e.store.Record()
	return domain.StatsSnapshot{
		TotalAnalyses:     rec.Stats.TotalAnalyses,
		UniquePromptsUsed: rec.Stats.UniquePromptsUsed,
		PromptCounts:      rec.Stats.PromptCounts,
		SourcesConnected:  rec.Stats.SourcesConnected,
		NightAnalyses:     rec.Stats.NightAnalyses,
		EarlyAnalyses:     rec.Stats.EarlyAnalyses,
		WeekendAnalyses:   rec.Stats.WeekendAnalyses,
		ExportCount:       rec.Stats.ExportCount,
		CopyCount:         rec.Stats.CopyCount,
		LargestDocument:   rec.Stats.LargestDocument,
		MaxAnalysesInDay:  rec.Stats.MaxAnalysesInDay,
		CurrentStreak:     rec.Streaks.CurrentStreak,
		LongestStreak:     rec.Streaks.LongestStreak,
		UnlockedIDs:       e.UnlockedIDs(),
		CurrentLevel:      rec.Profile.CurrentLevel,
	}
}

// IsUnlocked reports whether the achievement id has been earned.
func (e *Engine) IsUnlocked(id string) bool {
	rec := e.store.Record()
	if rec == nil {
		return false
	}
	for _, u := range rec.Achievements.Unlocked {
		if u.ID == id {
			return true
		}
	}
	return false
}

// UnlockedIDs returns the earned achievement ids in unlock order.
func (e *Engine) UnlockedIDs() []string {
	rec := e.store.Record()
	if rec == nil {
		return nil
	}
	ids := make([]string, len(rec.Achievements.Unlocked))
	for i, u := range rec.Achievements.Unlocked {
		ids[i] = u.ID
	}
	return ids
}

// DequeuePending removes and returns the oldest queued unlock notification,
// or nil if none is queued. Intended for one-at-a-time toast display.
func (e *Engine) DequeuePending() *domain.UnlockNotice {
	if len(e.pending) == 0 {
		return nil
	}
	notice := e.pending[0]
	e.pending = e.pending[1:]
	return &notice
}

// HasPending reports whether unlock notifications are queued.
func (e *Engine) HasPending() bool { return len(e.pending) > 0 }

// ClearPending drops all queued unlock notifications.
func (e *Engine) ClearPending() { e.pending = nil }

// UnlockedCount returns how many achievements are unlocked.
func (e *Engine) UnlockedCount() int {
	rec := e.store.Record()
	if rec == nil {
		return 0
	}
	return len(rec.Achievements.Unlocked)
}

// TotalCount returns the catalog size.
func (e *Engine) TotalCount() int { return len(e.defs) }

// Definitions returns the full catalog (for display).
func (e *Engine) Definitions() []domain.AchievementDef { return e.defs }

// CompletionPercent returns unlocked/total rounded to a whole percentage.
func (e *Engine) CompletionPercent() int {
	if len(e.defs) == 0 {
		return 0
	}
	return int(math.Round(float64(e.UnlockedCount()) / float64(len(e.defs)) * 100))
}

// CategoryProgress summarizes unlock progress for one category, or the
// whole catalog when cat is empty.
func (e *Engine) CategoryProgress(cat domain.AchievementCategory) domain.CategoryProgress {
	total, unlocked := 0, 0
	for _, def := range e.defs {
		if cat != "" && def.Category != cat {
			continue
		}
		total++
		if e.IsUnlocked(def.ID) {
			unlocked++
		}
	}

	pct := 0
	if total > 0 {
		pct = int(math.Round(float64(unlocked) / float64(total) * 100))
	}
	return domain.CategoryProgress{Category: cat, Total: total, Unlocked: unlocked, Percentage: pct}
}

// ByRarity returns catalog definitions of the given rarity tier.
func (e *Engine) ByRarity(r domain.Rarity) []domain.AchievementDef {
	var out []domain.AchievementDef
	for _, def := range e.defs {
		if def.Rarity == r {
			out = append(out, def)
		}
	}
	return out
}

// NextClosest suggests up to n locked achievements, easiest rarity first.
// The sort is stable so catalog order breaks rarity ties.
func (e *Engine) NextClosest(n int) []domain.AchievementDef {
	var locked []domain.AchievementDef
	for _, def := range e.defs {
		if !e.IsUnlocked(def.ID) {
			locked = append(locked, def)
		}
	}
	sort.SliceStable(locked, func(i, j int) bool { return locked[i].Rarity < locked[j].Rarity })

	if n > len(locked) {
		n = len(locked)
	}
	return locked[:n]
}

// XPFromAchievements sums the reward XP of all unlocked achievements.
func (e *Engine) XPFromAchievements() int {
	total := 0
	for _, def := range e.defs {
		if e.IsUnlocked(def.ID) {
			total += def.RewardXP
		}
	}
	return total
}
