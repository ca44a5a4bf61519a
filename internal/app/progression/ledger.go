package progression

import (
	"time"

	"github.com/analyzeme/analyzeme/internal/domain"
)

// maxXPHistory bounds the experience history; oldest entries are evicted.
const maxXPHistory = 100

// Ledger manages the XP and level system. Total XP only ever increases;
// the cached level on the profile is written through on every award.
// Not safe for concurrent use; the Facade serializes access.
type Ledger struct {
	store *Store
}

// NewLedger creates a ledger over the shared store.
func NewLedger(store *Store) *Ledger {
	return &Ledger{store: store}
}

// Award grants XP and records a history entry. No-op for amount <= 0 or
// when no record is loaded.
func (l *Ledger) Award(now time.Time, amount int, reason string) *domain.AwardResult {
	rec := l.store.Record()
	if rec == nil || amount <= 0 {
		return nil
	}

	previousLevel := rec.Profile.CurrentLevel
	rec.Profile.TotalXP += amount

	// Prepend: history is most-recent-first.
	entry := domain.XPEntry{
		Amount:     amount,
		Reason:     reason,
		Timestamp:  now,
		TotalAfter: rec.Profile.TotalXP,
	}
	rec.XPHistory = append([]domain.XPEntry{entry}, rec.XPHistory...)
	if len(rec.XPHistory) > maxXPHistory {
		rec.XPHistory = rec.XPHistory[:maxXPHistory]
	}

	newLevel := LevelForXP(rec.Profile.TotalXP)
	leveledUp := newLevel > previousLevel
	if leveledUp {
		rec.Profile.CurrentLevel = newLevel
	}

	return &domain.AwardResult{
		Amount:        amount,
		TotalXP:       rec.Profile.TotalXP,
		PreviousLevel: previousLevel,
		NewLevel:      newLevel,
		LeveledUp:     leveledUp,
		Reason:        reason,
	}
}

// AwardAnalysis grants the analysis completion XP: base amount, a bonus for
// documents over the size threshold, and a bonus for a prompt type never
// used before. newPrompt must reflect the unique-prompts set as it was
// before this analysis was recorded.
func (l *Ledger) AwardAnalysis(now time.Time, documentSize int, newPrompt bool) []domain.AwardResult {
	var results []domain.AwardResult

	if r := l.Award(now, XPAnalysisCompleted, domain.ReasonAnalysisCompleted); r != nil {
		results = append(results, *r)
	}
	if documentSize > LongDocumentChars {
		if r := l.Award(now, XPLongDocumentBonus, domain.ReasonLongDocument); r != nil {
			results = append(results, *r)
		}
	}
	if newPrompt {
		if r := l.Award(now, XPNewPromptType, domain.ReasonNewPromptType); r != nil {
			results = append(results, *r)
		}
	}

	return results
}

// AwardSource grants the new-data-source XP under a source-specific reason.
func (l *Ledger) AwardSource(now time.Time, sourceID string) *domain.AwardResult {
	return l.Award(now, XPNewSource, domain.ReasonConnectedPrefix+sourceID)
}

// AwardExport grants the PDF export XP.
func (l *Ledger) AwardExport(now time.Time) *domain.AwardResult {
	return l.Award(now, XPExportPDF, domain.ReasonExportPDF)
}

// AwardCopy grants the copy-to-clipboard XP.
func (l *Ledger) AwardCopy(now time.Time) *domain.AwardResult {
	return l.Award(now, XPCopyResult, domain.ReasonCopyResult)
}

// AwardDailyLogin grants the login bonus plus a streak-scaled bonus.
// Idempotent per calendar day: the stored last-login date is compared to
// today's date string, and updated only when granting.
func (l *Ledger) AwardDailyLogin(now time.Time) []domain.AwardResult {
	rec := l.store.Record()
	if rec == nil {
		return nil
	}

	today := dateString(now)
	if rec.Profile.LastLoginDate == today {
		return nil // Already granted today
	}
	rec.Profile.LastLoginDate = today

	var results []domain.AwardResult
	if r := l.Award(now, XPDailyLogin, domain.ReasonDailyLogin); r != nil {
		results = append(results, *r)
	}

	streakDays := rec.Streaks.CurrentStreak
	if streakDays > MaxStreakBonusDays {
		streakDays = MaxStreakBonusDays
	}
	if streakDays > 0 {
		if r := l.Award(now, streakDays*XPConsecutiveDay, domain.ReasonStreakBonus); r != nil {
			results = append(results, *r)
		}
	}

	return results
}

// TotalXP returns cumulative experience, 0 with no record.
func (l *Ledger) TotalXP() int {
	if rec := l.store.Record(); rec != nil {
		return rec.Profile.TotalXP
	}
	return 0
}

// Level returns the current level, recomputed from total XP.
func (l *Ledger) Level() int {
	return LevelForXP(l.TotalXP())
}

// Title returns the display title for the current level.
func (l *Ledger) Title() string {
	return TitleForLevel(l.Level())
}

// Progress returns position within the current level.
func (l *Ledger) Progress() domain.LevelProgress {
	return ProgressForXP(l.TotalXP(), l.Level())
}

// IsMaxLevel reports whether the max level has been reached.
func (l *Ledger) IsMaxLevel() bool {
	return l.Level() >= MaxLevel()
}

// RecentHistory returns up to n history entries, most recent first.
func (l *Ledger) RecentHistory(n int) []domain.XPEntry {
	rec := l.store.Record()
	if rec == nil {
		return nil
	}
	if n > len(rec.XPHistory) {
		n = len(rec.XPHistory)
	}
	out := make([]domain.XPEntry, n)
	copy(out, rec.XPHistory[:n])
	return out
}

// XPThisWeek sums experience earned in the seven days before now.
func (l *Ledger) XPThisWeek(now time.Time) int {
	rec := l.store.Record()
	if rec == nil {
		return 0
	}
	cutoff := now.AddDate(0, 0, -7)
	total := 0
	for _, e := range rec.XPHistory {
		if e.Timestamp.After(cutoff) {
			total += e.Amount
		}
	}
	return total
}

// reasonLabels maps reason codes to display text.
var reasonLabels = map[string]string{
	domain.ReasonAnalysisCompleted: "Analysis completed",
	domain.ReasonLongDocument:      "Long document bonus",
	domain.ReasonNewPromptType:     "New prompt type",
	domain.ReasonExportPDF:         "Exported PDF",
	domain.ReasonCopyResult:        "Copied result",
	domain.ReasonDailyLogin:        "Daily login",
	domain.ReasonStreakBonus:       "Streak bonus",
	domain.ReasonAchievement:       "Achievement unlocked",
	"connected_google":             "Connected Google Docs",
	"connected_gmail":              "Connected Gmail",
	"connected_calendar":           "Connected Calendar",
	"connected_spotify":            "Connected Spotify",
	"connected_github":             "Connected GitHub",
	"connected_twitter":            "Imported Twitter",
	"connected_manual":             "Used manual input",
}

// ReasonLabel returns display text for a reason code, falling back to the
// raw code for unknown reasons.
func ReasonLabel(reason string) string {
	if label, ok := reasonLabels[reason]; ok {
		return label
	}
	return reason
}
