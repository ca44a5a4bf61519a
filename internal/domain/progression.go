// Package domain holds the progression engine types.
// The progression engine drives engagement with the analysis workflow
// through experience points, levels, achievements, and daily streaks.
package domain

import "time"

// CurrentSchemaVersion is stamped on every freshly built or migrated record.
const CurrentSchemaVersion = 1

// ─── Progression Record ─────────────────────────────────────────────────────

// ProgressionRecord is the single persisted aggregate: one per installation.
// Every field is reachable from the facade's event handlers; the record is
// loaded once at startup and written back after every mutation.
type ProgressionRecord struct {
	SchemaVersion int              `json:"schema_version"`
	Profile       Profile          `json:"profile"`
	Stats         UsageStats       `json:"stats"`
	Streaks       StreakState      `json:"streaks"`
	Achievements  AchievementState `json:"achievements"`
	Unlockables   UnlockableState  `json:"unlockables"`
	XPHistory     []XPEntry        `json:"xp_history"`
}

// Profile identifies the installation and caches level progress.
type Profile struct {
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	TotalXP       int       `json:"total_xp"`
	CurrentLevel  int       `json:"current_level"` // Write-through cache of LevelForXP(TotalXP)
	LastLoginDate string    `json:"last_login_date,omitempty"`
}

// UsageStats holds raw counters updated by the facade before XP is awarded.
type UsageStats struct {
	TotalAnalyses     int            `json:"total_analyses"`
	UniquePromptsUsed []string       `json:"unique_prompts_used"`
	PromptCounts      map[string]int `json:"prompt_counts"`
	SourcesConnected  []string       `json:"sources_connected"`
	NightAnalyses     int            `json:"night_analyses"`   // 00:00–04:59 local
	EarlyAnalyses     int            `json:"early_analyses"`   // 05:00–06:59 local
	WeekendAnalyses   int            `json:"weekend_analyses"` // Saturday or Sunday
	ExportCount       int            `json:"export_count"`
	CopyCount         int            `json:"copy_count"`
	LargestDocument   int            `json:"largest_document"`
	AnalysesPerDay    map[string]int `json:"analyses_per_day"`
	MaxAnalysesInDay  int            `json:"max_analyses_in_day"`
}

// StreakState tracks consecutive calendar days with at least one analysis.
// ActivityDates is treated as a set of "YYYY-MM-DD" strings, capped at the
// 365 most recent entries.
type StreakState struct {
	CurrentStreak    int      `json:"current_streak"`
	LongestStreak    int      `json:"longest_streak"`
	LastActivityDate string   `json:"last_activity_date,omitempty"`
	ActivityDates    []string `json:"activity_dates"`
}

// AchievementState records unlocks in unlock order, each id at most once.
type AchievementState struct {
	Unlocked []UnlockedAchievement `json:"unlocked"`
}

// UnlockedAchievement records when an achievement was earned.
type UnlockedAchievement struct {
	ID         string    `json:"id"`
	UnlockedAt time.Time `json:"unlocked_at"`
}

// UnlockableState records earned cosmetics and the active selections.
type UnlockableState struct {
	Unlocked []string          `json:"unlocked"`
	Active   ActiveUnlockables `json:"active"`
}

// ActiveUnlockables holds the cosmetic choices currently in effect.
type ActiveUnlockables struct {
	Theme        string `json:"theme"`
	ProfileFrame string `json:"profile_frame,omitempty"`
}

// XPEntry is one line in the experience history (most recent first).
type XPEntry struct {
	Amount     int       `json:"amount"`
	Reason     string    `json:"reason"`
	Timestamp  time.Time `json:"timestamp"`
	TotalAfter int       `json:"total_after"`
}

// ─── XP Reason Codes ────────────────────────────────────────────────────────

const (
	ReasonAnalysisCompleted = "analysis_completed"
	ReasonLongDocument      = "long_document"
	ReasonNewPromptType     = "new_prompt_type"
	ReasonExportPDF         = "export_pdf"
	ReasonCopyResult        = "copy_result"
	ReasonDailyLogin        = "daily_login"
	ReasonStreakBonus       = "streak_bonus"
	ReasonAchievement       = "achievement"
	// Source connections use "connected_<sourceID>".
	ReasonConnectedPrefix = "connected_"
)

// ─── Achievement Catalog Types ──────────────────────────────────────────────

// Rarity orders achievements from easiest to hardest to earn.
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
)

// String returns the lowercase rarity label.
func (r Rarity) String() string {
	switch r {
	case RarityCommon:
		return "common"
	case RarityUncommon:
		return "uncommon"
	case RarityRare:
		return "rare"
	case RarityEpic:
		return "epic"
	case RarityLegendary:
		return "legendary"
	}
	return "unknown"
}

// AchievementCategory groups achievements by theme.
type AchievementCategory string

const (
	CatAnalysis  AchievementCategory = "analysis"
	CatPrompts   AchievementCategory = "prompts"
	CatSources   AchievementCategory = "sources"
	CatStreaks   AchievementCategory = "streaks"
	CatTime      AchievementCategory = "time"
	CatExport    AchievementCategory = "export"
	CatDocuments AchievementCategory = "documents"
	CatSpecial   AchievementCategory = "special"
)

// AchievementDef defines a single achievement. The catalog is closed and
// versioned with the code; definitions are never persisted.
type AchievementDef struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	Icon        string                   `json:"icon"`
	RewardXP    int                      `json:"reward_xp"`
	Rarity      Rarity                   `json:"rarity"`
	Category    AchievementCategory      `json:"category"`
	Predicate   func(StatsSnapshot) bool `json:"-"`
}

// StatsSnapshot is the derived view fed to achievement predicates: raw stats
// merged with streak state, unlocked ids, and the current level. Built fresh
// on every evaluation pass.
type StatsSnapshot struct {
	TotalAnalyses     int
	UniquePromptsUsed []string
	PromptCounts      map[string]int
	SourcesConnected  []string
	NightAnalyses     int
	EarlyAnalyses     int
	WeekendAnalyses   int
	ExportCount       int
	CopyCount         int
	LargestDocument   int
	MaxAnalysesInDay  int
	CurrentStreak     int
	LongestStreak     int
	UnlockedIDs       []string
	CurrentLevel      int
}

// HasSource reports whether the given source id has been connected.
func (s StatsSnapshot) HasSource(id string) bool {
	for _, c := range s.SourcesConnected {
		if c == id {
			return true
		}
	}
	return false
}

// ─── Unlockable Types ───────────────────────────────────────────────────────

// UnlockableKind categorizes unlockable content.
type UnlockableKind string

const (
	UnlockTheme    UnlockableKind = "theme"
	UnlockPrompt   UnlockableKind = "prompt"
	UnlockCosmetic UnlockableKind = "cosmetic"
)

// UnlockCondition gates an unlockable on a level or an achievement.
type UnlockCondition struct {
	Level       int    // Met when CurrentLevel >= Level (if > 0)
	Achievement string // Met when the achievement id is unlocked (if set)
}

// UnlockableDef defines a piece of unlockable content (theme, prompt, cosmetic).
type UnlockableDef struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Kind        UnlockableKind  `json:"kind"`
	Condition   UnlockCondition `json:"condition"`
}

// ─── Results ────────────────────────────────────────────────────────────────

// AwardResult describes a single experience grant.
type AwardResult struct {
	Amount        int    `json:"amount"`
	TotalXP       int    `json:"total_xp"`
	PreviousLevel int    `json:"previous_level"`
	NewLevel      int    `json:"new_level"`
	LeveledUp     bool   `json:"leveled_up"`
	Reason        string `json:"reason"`
}

// LevelProgress describes position within the current level.
// Needed is 0 at max level and Percentage reads 100.
type LevelProgress struct {
	Current    int     `json:"current"`
	Needed     int     `json:"needed"`
	Percentage float64 `json:"percentage"`
}

// UnlockNotice pairs an achievement definition with its unlock time.
// Queued FIFO for one-at-a-time toast display.
type UnlockNotice struct {
	Achievement AchievementDef `json:"achievement"`
	UnlockedAt  time.Time      `json:"unlocked_at"`
}

// EventResult is the combined outcome of one facade operation.
type EventResult struct {
	XPGranted     int            `json:"xp_granted"`
	TotalXP       int            `json:"total_xp"`
	PreviousLevel int            `json:"previous_level"`
	NewLevel      int            `json:"new_level"`
	LeveledUp     bool           `json:"leveled_up"`
	Unlocked      []UnlockNotice `json:"unlocked"`
}

// CategoryProgress summarizes unlock progress within one category.
type CategoryProgress struct {
	Category   AchievementCategory `json:"category"`
	Total      int                 `json:"total"`
	Unlocked   int                 `json:"unlocked"`
	Percentage int                 `json:"percentage"`
}

// SummaryStats is the headline block shown on the dashboard.
type SummaryStats struct {
	TotalAnalyses    int    `json:"total_analyses"`
	TotalXP          int    `json:"total_xp"`
	CurrentLevel     int    `json:"current_level"`
	LevelTitle       string `json:"level_title"`
	CurrentStreak    int    `json:"current_streak"`
	LongestStreak    int    `json:"longest_streak"`
	Achievements     int    `json:"achievements_unlocked"`
	TotalAchievement int    `json:"total_achievements"`
	SourcesConnected int    `json:"sources_connected"`
	ExportCount      int    `json:"export_count"`
}
