// Package metrics provides Prometheus metrics for AnalyzeMe —
// counters and gauges for progression events, experience, and achievements.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Events ─────────────────────────────────────────────────────────────────

// EventsTotal tracks progression events by type (analysis, source, export,
// copy, open).
var EventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "analyzeme",
	Name:      "progression_events_total",
	Help:      "Total progression events processed.",
}, []string{"type"})

// ─── Experience ─────────────────────────────────────────────────────────────

// XPAwarded tracks total experience granted.
var XPAwarded = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "analyzeme",
	Name:      "xp_awarded_total",
	Help:      "Total experience points awarded.",
})

// CurrentLevel tracks the profile's current level.
var CurrentLevel = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "analyzeme",
	Name:      "level_current",
	Help:      "Current profile level.",
})

// LevelUps tracks level-up transitions.
var LevelUps = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "analyzeme",
	Name:      "level_ups_total",
	Help:      "Total level-up transitions.",
})

// ─── Achievements ───────────────────────────────────────────────────────────

// AchievementsUnlocked tracks achievement unlocks.
var AchievementsUnlocked = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "analyzeme",
	Name:      "achievements_unlocked_total",
	Help:      "Total achievements unlocked.",
})

// ─── Streaks ────────────────────────────────────────────────────────────────

// CurrentStreak tracks the current activity streak in days.
var CurrentStreak = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "analyzeme",
	Name:      "streak_current_days",
	Help:      "Current consecutive-day activity streak.",
})
