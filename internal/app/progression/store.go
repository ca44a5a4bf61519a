// Package progression implements the AnalyzeMe progression engine:
// experience points, levels, daily streaks, achievements, and unlockables,
// persisted as a single versioned record.
//
// The engine is additive to the analysis workflow — no operation here may
// fail the caller. Persistence is best-effort; the in-memory record stays
// authoritative for the session.
package progression

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/analyzeme/analyzeme/internal/domain"
	"github.com/analyzeme/analyzeme/internal/infra/sqlite"
)

// recordKey is the durable key the full progression record lives under.
const recordKey = "record"

// Store owns the persisted progression record: exactly one live record per
// process. Load/Save/Reset/Export/Import all operate on that single record.
type Store struct {
	db     *sqlite.DB
	record *domain.ProgressionRecord
}

// NewStore creates a store backed by the given database.
func NewStore(db *sqlite.DB) *Store {
	return &Store{db: db}
}

// Load reads the persisted record, migrating older schema versions.
// Missing or corrupt data falls back to a fresh default record — startup
// never fails on progression state.
func (s *Store) Load() *domain.ProgressionRecord {
	raw, err := s.db.GetProgression(recordKey)
	if err != nil {
		log.Printf("[progression] load failed, starting fresh: %v", err)
		s.record = defaultRecord(time.Now())
		return s.record
	}
	if raw == "" {
		// First run
		s.record = defaultRecord(time.Now())
		s.Save()
		return s.record
	}

	rec, err := migrateRecord([]byte(raw))
	if err != nil {
		log.Printf("[progression] corrupt record, starting fresh: %v", err)
		s.record = defaultRecord(time.Now())
		return s.record
	}

	s.record = rec
	return s.record
}

// Record returns the in-memory record, or nil before Load.
func (s *Store) Record() *domain.ProgressionRecord {
	return s.record
}

// Save persists the full record. Failures are logged, never propagated:
// the next mutation retries naturally.
func (s *Store) Save() {
	if s.record == nil {
		return
	}
	data, err := json.Marshal(s.record)
	if err != nil {
		log.Printf("[progression] marshal record: %v", err)
		return
	}
	if err := s.db.SetProgression(recordKey, string(data), time.Now().Unix()); err != nil {
		log.Printf("[progression] save record: %v", err)
	}
}

// Reset replaces the record with fresh defaults and persists it.
// Confirmation is the caller's concern; this is unconditional.
func (s *Store) Reset() *domain.ProgressionRecord {
	s.record = defaultRecord(time.Now())
	s.Save()
	return s.record
}

// Export produces an indented JSON snapshot of the full record for backup.
func (s *Store) Export() (string, error) {
	if s.record == nil {
		return "", fmt.Errorf("no record loaded")
	}
	data, err := json.MarshalIndent(s.record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal record: %w", err)
	}
	return string(data), nil
}

// Import parses a snapshot, migrates it if needed, replaces the in-memory
// record, and persists. Input without a recognizable schema version is
// rejected and the current record is left untouched.
func (s *Store) Import(data string) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(data), &probe); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidImport, err)
	}
	if _, ok := probe["schema_version"]; !ok {
		return fmt.Errorf("%w: missing schema_version", domain.ErrInvalidImport)
	}

	rec, err := migrateRecord([]byte(data))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidImport, err)
	}

	s.record = rec
	s.Save()
	return nil
}

// defaultRecord builds a zero-progress record with a freshly generated
// profile id.
func defaultRecord(now time.Time) *domain.ProgressionRecord {
	return &domain.ProgressionRecord{
		SchemaVersion: domain.CurrentSchemaVersion,
		Profile: domain.Profile{
			ID:           uuid.NewString(),
			CreatedAt:    now,
			TotalXP:      0,
			CurrentLevel: 1,
		},
		Stats: domain.UsageStats{
			UniquePromptsUsed: []string{},
			PromptCounts:      map[string]int{},
			SourcesConnected:  []string{},
			AnalysesPerDay:    map[string]int{},
		},
		Streaks: domain.StreakState{
			ActivityDates: []string{},
		},
		Achievements: domain.AchievementState{
			Unlocked: []domain.UnlockedAchievement{},
		},
		Unlockables: domain.UnlockableState{
			Unlocked: []string{},
			Active:   domain.ActiveUnlockables{Theme: "default"},
		},
		XPHistory: []domain.XPEntry{},
	}
}

// migrateRecord decodes raw bytes over a default record so that fields the
// old schema lacks keep their defaults, then stamps the current version and
// recomputes the level cache. XP history carries over verbatim. Unknown
// fields in the old record are dropped silently.
func migrateRecord(raw []byte) (*domain.ProgressionRecord, error) {
	rec := defaultRecord(time.Now())
	if err := json.Unmarshal(raw, rec); err != nil {
		return nil, err
	}

	rec.SchemaVersion = domain.CurrentSchemaVersion

	// The persisted level is a cache; the threshold table is the truth.
	rec.Profile.CurrentLevel = LevelForXP(rec.Profile.TotalXP)
	if rec.Profile.ID == "" {
		rec.Profile.ID = uuid.NewString()
	}

	// Re-initialize maps the old record may have nulled out.
	if rec.Stats.PromptCounts == nil {
		rec.Stats.PromptCounts = map[string]int{}
	}
	if rec.Stats.AnalysesPerDay == nil {
		rec.Stats.AnalysesPerDay = map[string]int{}
	}

	return rec, nil
}
