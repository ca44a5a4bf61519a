package progression

import "github.com/analyzeme/analyzeme/internal/domain"

// XP awarded per activity.
const (
	XPAnalysisCompleted = 50
	XPLongDocumentBonus = 25 // Docs longer than LongDocumentChars
	XPNewPromptType     = 30 // First time using a prompt type
	XPNewSource         = 100
	XPDailyLogin        = 10
	XPConsecutiveDay    = 5 // Per streak day, capped at MaxStreakBonusDays
	XPExportPDF         = 15
	XPCopyResult        = 5

	// LongDocumentChars is the size threshold for the long-document bonus.
	LongDocumentChars = 5000

	// MaxStreakBonusDays caps the login streak bonus multiplier.
	MaxStreakBonusDays = 7
)

// levelThresholds is the cumulative XP required to reach each level.
// levelThresholds[0] is level 1 (0 XP); the table length is the max level.
var levelThresholds = []int{
	0,     // Level 1
	100,   // Level 2
	250,   // Level 3
	500,   // Level 4
	850,   // Level 5
	1300,  // Level 6
	1900,  // Level 7
	2700,  // Level 8
	3700,  // Level 9
	5000,  // Level 10
	6500,  // Level 11
	8200,  // Level 12
	10100, // Level 13
	12200, // Level 14
	14500, // Level 15
	17000, // Level 16
	19700, // Level 17
	22600, // Level 18
	25700, // Level 19
	29000, // Level 20
}

// levelTitles maps level-1 to a display title.
var levelTitles = []string{
	"Initiate",      // 1
	"Novice",        // 2
	"Apprentice",    // 3
	"Analyst",       // 4
	"Adept",         // 5
	"Expert",        // 6
	"Master",        // 7
	"Virtuoso",      // 8
	"Sage",          // 9
	"Enlightened",   // 10
	"Transcendent",  // 11
	"Oracle",        // 12
	"Prophet",       // 13
	"Visionary",     // 14
	"Ascended",      // 15
	"Ethereal",      // 16
	"Cosmic",        // 17
	"Divine",        // 18
	"Legendary",     // 19
	"Cyberpunk God", // 20
}

// MaxLevel is the highest reachable level.
func MaxLevel() int { return len(levelThresholds) }

// LevelForXP returns the level for a cumulative XP amount: the largest i+1
// such that xp >= levelThresholds[i], capped at the table length.
func LevelForXP(xp int) int {
	level := 1
	for i, threshold := range levelThresholds {
		if xp < threshold {
			break
		}
		level = i + 1
	}
	return level
}

// XPForNextLevel returns the cumulative XP needed for the next level.
// ok is false at max level.
func XPForNextLevel(level int) (xp int, ok bool) {
	if level >= len(levelThresholds) {
		return 0, false
	}
	return levelThresholds[level], true
}

// ProgressForXP returns position within the current level.
// Out-of-range levels clamp to the table; at max level, Needed is 0 and
// Percentage reads 100.
func ProgressForXP(totalXP, level int) domain.LevelProgress {
	if level < 1 {
		level = 1
	}
	if level > len(levelThresholds) {
		level = len(levelThresholds)
	}
	floor := levelThresholds[level-1]
	next, ok := XPForNextLevel(level)
	if !ok {
		return domain.LevelProgress{Current: totalXP - floor, Needed: 0, Percentage: 100}
	}

	needed := next - floor
	pct := float64(totalXP-floor) / float64(needed) * 100
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return domain.LevelProgress{Current: totalXP - floor, Needed: needed, Percentage: pct}
}

// TitleForLevel returns the display title for a level.
// Out-of-range levels clamp to the nearest title.
func TitleForLevel(level int) string {
	if level < 1 {
		level = 1
	}
	if level > len(levelTitles) {
		level = len(levelTitles)
	}
	return levelTitles[level-1]
}
