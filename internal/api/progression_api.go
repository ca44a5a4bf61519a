package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/analyzeme/analyzeme/internal/app/progression"
	"github.com/analyzeme/analyzeme/internal/domain"
	"github.com/analyzeme/analyzeme/internal/infra/metrics"
)

// ProgressionAPI exposes the progression facade over HTTP.
type ProgressionAPI struct {
	facade *progression.Facade
}

// NewProgressionAPI creates the progression handler set.
func NewProgressionAPI(facade *progression.Facade) *ProgressionAPI {
	return &ProgressionAPI{facade: facade}
}

// observe records metrics for one processed event.
func observe(eventType string, res domain.EventResult) {
	metrics.EventsTotal.WithLabelValues(eventType).Inc()
	metrics.XPAwarded.Add(float64(res.XPGranted))
	metrics.AchievementsUnlocked.Add(float64(len(res.Unlocked)))
	metrics.CurrentLevel.Set(float64(res.NewLevel))
	if res.LeveledUp {
		metrics.LevelUps.Inc()
	}
}

// ─── Event Handlers ──────────────────────────────────────────────────────────

type analysisEventRequest struct {
	DocumentSize int    `json:"document_size"`
	PromptID     string `json:"prompt_id"`
}

// HandleAnalysisEvent records an analysis-completed event.
func (p *ProgressionAPI) HandleAnalysisEvent(w http.ResponseWriter, r *http.Request) {
	var req analysisEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res := p.facade.RecordAnalysis(time.Now(), req.DocumentSize, req.PromptID)
	observe("analysis", res)
	metrics.CurrentStreak.Set(float64(p.facade.CurrentStreak()))
	writeJSON(w, http.StatusOK, res)
}

type sourceEventRequest struct {
	SourceID string `json:"source_id"`
}

// HandleSourceEvent records a source-connected event.
func (p *ProgressionAPI) HandleSourceEvent(w http.ResponseWriter, r *http.Request) {
	var req sourceEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.SourceID == "" {
		writeError(w, http.StatusBadRequest, "source_id is required")
		return
	}

	res := p.facade.RecordSource(time.Now(), req.SourceID)
	observe("source", res)
	writeJSON(w, http.StatusOK, res)
}

// HandleExportEvent records an export-performed event.
func (p *ProgressionAPI) HandleExportEvent(w http.ResponseWriter, r *http.Request) {
	res := p.facade.RecordExport(time.Now())
	observe("export", res)
	writeJSON(w, http.StatusOK, res)
}

// HandleCopyEvent records a copy-performed event.
func (p *ProgressionAPI) HandleCopyEvent(w http.ResponseWriter, r *http.Request) {
	res := p.facade.RecordCopy(time.Now())
	observe("copy", res)
	writeJSON(w, http.StatusOK, res)
}

// HandleOpenEvent runs the daily-login check.
func (p *ProgressionAPI) HandleOpenEvent(w http.ResponseWriter, r *http.Request) {
	res := p.facade.RecordAppOpen(time.Now())
	observe("open", res)
	writeJSON(w, http.StatusOK, res)
}

// ─── Query Handlers ──────────────────────────────────────────────────────────

// HandleSummary returns the headline dashboard block.
func (p *ProgressionAPI) HandleSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, p.facade.Summary())
}

// HandleLevel returns level, title, and progress within the level.
func (p *ProgressionAPI) HandleLevel(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total_xp":     p.facade.TotalXP(),
		"level":        p.facade.Level(),
		"title":        p.facade.LevelTitle(),
		"progress":     p.facade.LevelProgress(),
		"max_level":    p.facade.IsMaxLevel(),
		"xp_this_week": p.facade.XPThisWeek(time.Now()),
	})
}

// HandleStreak returns current/longest streak and the at-risk state.
func (p *ProgressionAPI) HandleStreak(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	current := p.facade.CurrentStreak()

	resp := map[string]interface{}{
		"current": current,
		"longest": p.facade.LongestStreak(),
		"at_risk": p.facade.StreakAtRisk(now),
		"emoji":   progression.StreakEmoji(current),
		"message": progression.StreakMessage(current),
	}
	if hours, ok := p.facade.HoursUntilStreakLost(now); ok {
		resp["hours_until_lost"] = hours
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleAchievements returns the catalog with unlock state, completion
// percentage, per-category progress, and next-closest suggestions.
func (p *ProgressionAPI) HandleAchievements(w http.ResponseWriter, r *http.Request) {
	type achievementView struct {
		domain.AchievementDef
		RarityLabel string `json:"rarity_label"`
		Unlocked    bool   `json:"unlocked"`
	}

	defs := p.facade.AchievementDefs()
	views := make([]achievementView, len(defs))
	for i, def := range defs {
		views[i] = achievementView{
			AchievementDef: def,
			RarityLabel:    def.Rarity.String(),
			Unlocked:       p.facade.HasAchievement(def.ID),
		}
	}

	categories := []domain.AchievementCategory{
		domain.CatAnalysis, domain.CatPrompts, domain.CatSources, domain.CatStreaks,
		domain.CatTime, domain.CatExport, domain.CatDocuments, domain.CatSpecial,
	}
	progress := make([]domain.CategoryProgress, len(categories))
	for i, c := range categories {
		progress[i] = p.facade.CategoryProgress(c)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"achievements":       views,
		"unlocked":           p.facade.UnlockedCount(),
		"total":              p.facade.TotalAchievements(),
		"completion_percent": p.facade.CompletionPercent(),
		"categories":         progress,
		"next":               p.facade.NextClosest(3),
		"unlockables":        p.facade.UnlockedUnlockables(),
	})
}

// HandleHistory returns recent experience history (most recent first).
func (p *ProgressionAPI) HandleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	entries := p.facade.RecentHistory(limit)
	type entryView struct {
		domain.XPEntry
		Label string `json:"label"`
	}
	views := make([]entryView, len(entries))
	for i, e := range entries {
		views[i] = entryView{XPEntry: e, Label: progression.ReasonLabel(e.Reason)}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"history": views})
}

// HandleNextNotification dequeues the oldest pending unlock notification.
// Returns 204 when the queue is empty.
func (p *ProgressionAPI) HandleNextNotification(w http.ResponseWriter, r *http.Request) {
	notice := p.facade.DequeueNotification()
	if notice == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, notice)
}

// ─── Lifecycle Handlers ──────────────────────────────────────────────────────

// HandleExportState returns a backup snapshot of the full record.
func (p *ProgressionAPI) HandleExportState(w http.ResponseWriter, r *http.Request) {
	snapshot, err := p.facade.Export()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="analyzeme-progression.json"`)
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, snapshot)
}

// HandleImportState replaces the record from an uploaded snapshot.
func (p *ProgressionAPI) HandleImportState(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 4<<20))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := p.facade.Import(string(body)); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"imported": true})
}

// HandleReset replaces the record with fresh defaults. Confirmation happens
// in the client before this endpoint is called.
func (p *ProgressionAPI) HandleReset(w http.ResponseWriter, r *http.Request) {
	p.facade.Reset()
	writeJSON(w, http.StatusOK, map[string]bool{"reset": true})
}

type themeRequest struct {
	Theme string `json:"theme"`
}

// HandleActivateTheme switches the active UI theme to an unlocked one.
func (p *ProgressionAPI) HandleActivateTheme(w http.ResponseWriter, r *http.Request) {
	var req themeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !p.facade.ActivateTheme(req.Theme) {
		writeError(w, http.StatusForbidden, "theme not unlocked")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"theme": req.Theme})
}
