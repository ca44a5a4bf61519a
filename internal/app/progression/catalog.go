package progression

import "github.com/analyzeme/analyzeme/internal/domain"

// Catalog returns the full achievement catalog. The catalog is closed:
// definitions are versioned with the code, never with the data, and catalog
// order is the tiebreak for simultaneous unlocks.
func Catalog() []domain.AchievementDef {
	return []domain.AchievementDef{
		// ── Analysis ───────────────────────────────────────────────────
		{
			ID: "first_analysis", Name: "Neural Link Established",
			Description: "Complete your first analysis", Icon: "🧠",
			RewardXP: 100, Rarity: domain.RarityCommon, Category: domain.CatAnalysis,
			Predicate: func(s domain.StatsSnapshot) bool { return s.TotalAnalyses >= 1 },
		},
		{
			ID: "analysis_5", Name: "Getting Started",
			Description: "Complete 5 analyses", Icon: "📊",
			RewardXP: 100, Rarity: domain.RarityCommon, Category: domain.CatAnalysis,
			Predicate: func(s domain.StatsSnapshot) bool { return s.TotalAnalyses >= 5 },
		},
		{
			ID: "analysis_10", Name: "Data Miner",
			Description: "Complete 10 analyses", Icon: "⛏️",
			RewardXP: 200, Rarity: domain.RarityUncommon, Category: domain.CatAnalysis,
			Predicate: func(s domain.StatsSnapshot) bool { return s.TotalAnalyses >= 10 },
		},
		{
			ID: "analysis_25", Name: "Pattern Seeker",
			Description: "Complete 25 analyses", Icon: "🔍",
			RewardXP: 300, Rarity: domain.RarityUncommon, Category: domain.CatAnalysis,
			Predicate: func(s domain.StatsSnapshot) bool { return s.TotalAnalyses >= 25 },
		},
		{
			ID: "analysis_50", Name: "Pattern Recognition",
			Description: "Complete 50 analyses", Icon: "🔮",
			RewardXP: 500, Rarity: domain.RarityRare, Category: domain.CatAnalysis,
			Predicate: func(s domain.StatsSnapshot) bool { return s.TotalAnalyses >= 50 },
		},
		{
			ID: "analysis_100", Name: "Cyberpsychologist",
			Description: "Complete 100 analyses", Icon: "🤖",
			RewardXP: 1000, Rarity: domain.RarityEpic, Category: domain.CatAnalysis,
			Predicate: func(s domain.StatsSnapshot) bool { return s.TotalAnalyses >= 100 },
		},
		{
			ID: "analysis_250", Name: "Mind Reader",
			Description: "Complete 250 analyses", Icon: "👁️",
			RewardXP: 2000, Rarity: domain.RarityLegendary, Category: domain.CatAnalysis,
			Predicate: func(s domain.StatsSnapshot) bool { return s.TotalAnalyses >= 250 },
		},

		// ── Prompt Mastery ─────────────────────────────────────────────
		{
			ID: "all_prompts_used", Name: "Full Spectrum",
			Description: "Use all 5 analysis prompt types", Icon: "🌈",
			RewardXP: 150, Rarity: domain.RarityUncommon, Category: domain.CatPrompts,
			Predicate: func(s domain.StatsSnapshot) bool { return len(s.UniquePromptsUsed) >= 5 },
		},
		{
			ID: "sentiment_master", Name: "Emotional Intelligence",
			Description: "Run 10 sentiment analyses", Icon: "💭",
			RewardXP: 150, Rarity: domain.RarityUncommon, Category: domain.CatPrompts,
			Predicate: func(s domain.StatsSnapshot) bool { return s.PromptCounts["sentiment"] >= 10 },
		},
		{
			ID: "themes_master", Name: "Theme Hunter",
			Description: "Run 10 themes analyses", Icon: "🎯",
			RewardXP: 150, Rarity: domain.RarityUncommon, Category: domain.CatPrompts,
			Predicate: func(s domain.StatsSnapshot) bool { return s.PromptCounts["themes"] >= 10 },
		},
		{
			ID: "goals_master", Name: "Goal Digger",
			Description: "Run 10 goals analyses", Icon: "📈",
			RewardXP: 150, Rarity: domain.RarityUncommon, Category: domain.CatPrompts,
			Predicate: func(s domain.StatsSnapshot) bool { return s.PromptCounts["goals"] >= 10 },
		},

		// ── Data Sources ───────────────────────────────────────────────
		{
			ID: "google_connected", Name: "Chrome Runner",
			Description: "Connect Google Docs", Icon: "📄",
			RewardXP: 50, Rarity: domain.RarityCommon, Category: domain.CatSources,
			Predicate: func(s domain.StatsSnapshot) bool { return s.HasSource("google") },
		},
		{
			ID: "twitter_imported", Name: "Digital Footprint",
			Description: "Import Twitter archive", Icon: "🐦",
			RewardXP: 75, Rarity: domain.RarityCommon, Category: domain.CatSources,
			Predicate: func(s domain.StatsSnapshot) bool { return s.HasSource("twitter") },
		},
		{
			ID: "manual_used", Name: "DIY Analyst",
			Description: "Use manual text input", Icon: "✍️",
			RewardXP: 25, Rarity: domain.RarityCommon, Category: domain.CatSources,
			Predicate: func(s domain.StatsSnapshot) bool { return s.HasSource("manual") },
		},
		{
			ID: "gmail_connected", Name: "Inbox Zero Hero",
			Description: "Connect Gmail for analysis", Icon: "📧",
			RewardXP: 100, Rarity: domain.RarityUncommon, Category: domain.CatSources,
			Predicate: func(s domain.StatsSnapshot) bool { return s.HasSource("gmail") },
		},
		{
			ID: "spotify_connected", Name: "Sonic Pulse",
			Description: "Connect Spotify", Icon: "🎵",
			RewardXP: 100, Rarity: domain.RarityUncommon, Category: domain.CatSources,
			Predicate: func(s domain.StatsSnapshot) bool { return s.HasSource("spotify") },
		},
		{
			ID: "github_connected", Name: "Code Walker",
			Description: "Connect GitHub", Icon: "💻",
			RewardXP: 100, Rarity: domain.RarityUncommon, Category: domain.CatSources,
			Predicate: func(s domain.StatsSnapshot) bool { return s.HasSource("github") },
		},
		{
			ID: "calendar_connected", Name: "Time Lord",
			Description: "Connect Google Calendar", Icon: "📅",
			RewardXP: 100, Rarity: domain.RarityUncommon, Category: domain.CatSources,
			Predicate: func(s domain.StatsSnapshot) bool { return s.HasSource("calendar") },
		},
		{
			ID: "multi_source_3", Name: "Data Collector",
			Description: "Connect 3 different data sources", Icon: "🔗",
			RewardXP: 200, Rarity: domain.RarityUncommon, Category: domain.CatSources,
			Predicate: func(s domain.StatsSnapshot) bool { return len(s.SourcesConnected) >= 3 },
		},
		{
			ID: "multi_source_5", Name: "Data Fusion",
			Description: "Connect 5 different data sources", Icon: "⚡",
			RewardXP: 400, Rarity: domain.RarityRare, Category: domain.CatSources,
			Predicate: func(s domain.StatsSnapshot) bool { return len(s.SourcesConnected) >= 5 },
		},
		{
			ID: "all_sources", Name: "Omniscient",
			Description: "Connect all available data sources", Icon: "🌐",
			RewardXP: 1000, Rarity: domain.RarityLegendary, Category: domain.CatSources,
			Predicate: func(s domain.StatsSnapshot) bool { return len(s.SourcesConnected) >= 7 },
		},

		// ── Streaks ────────────────────────────────────────────────────
		{
			ID: "streak_3", Name: "Getting Serious",
			Description: "Maintain a 3-day streak", Icon: "🔥",
			RewardXP: 75, Rarity: domain.RarityCommon, Category: domain.CatStreaks,
			Predicate: func(s domain.StatsSnapshot) bool { return s.CurrentStreak >= 3 || s.LongestStreak >= 3 },
		},
		{
			ID: "streak_7", Name: "Weekly Warrior",
			Description: "Maintain a 7-day streak", Icon: "⚡",
			RewardXP: 200, Rarity: domain.RarityUncommon, Category: domain.CatStreaks,
			Predicate: func(s domain.StatsSnapshot) bool { return s.CurrentStreak >= 7 || s.LongestStreak >= 7 },
		},
		{
			ID: "streak_14", Name: "Fortnight Fighter",
			Description: "Maintain a 14-day streak", Icon: "💪",
			RewardXP: 400, Rarity: domain.RarityRare, Category: domain.CatStreaks,
			Predicate: func(s domain.StatsSnapshot) bool { return s.CurrentStreak >= 14 || s.LongestStreak >= 14 },
		},
		{
			ID: "streak_30", Name: "Self-Analysis Addict",
			Description: "Maintain a 30-day streak", Icon: "💎",
			RewardXP: 1000, Rarity: domain.RarityEpic, Category: domain.CatStreaks,
			Predicate: func(s domain.StatsSnapshot) bool { return s.CurrentStreak >= 30 || s.LongestStreak >= 30 },
		},
		{
			ID: "streak_100", Name: "Centurion",
			Description: "Maintain a 100-day streak", Icon: "👑",
			RewardXP: 3000, Rarity: domain.RarityLegendary, Category: domain.CatStreaks,
			Predicate: func(s domain.StatsSnapshot) bool { return s.CurrentStreak >= 100 || s.LongestStreak >= 100 },
		},

		// ── Time of Day ────────────────────────────────────────────────
		{
			ID: "night_owl", Name: "Night Owl",
			Description: "Complete analysis between 12am-5am", Icon: "🦉",
			RewardXP: 50, Rarity: domain.RarityCommon, Category: domain.CatTime,
			Predicate: func(s domain.StatsSnapshot) bool { return s.NightAnalyses >= 1 },
		},
		{
			ID: "early_bird", Name: "Early Bird",
			Description: "Complete analysis between 5am-7am", Icon: "🌅",
			RewardXP: 50, Rarity: domain.RarityCommon, Category: domain.CatTime,
			Predicate: func(s domain.StatsSnapshot) bool { return s.EarlyAnalyses >= 1 },
		},
		{
			ID: "weekend_warrior", Name: "Weekend Warrior",
			Description: "Complete 10 analyses on weekends", Icon: "🎉",
			RewardXP: 100, Rarity: domain.RarityUncommon, Category: domain.CatTime,
			Predicate: func(s domain.StatsSnapshot) bool { return s.WeekendAnalyses >= 10 },
		},

		// ── Export ─────────────────────────────────────────────────────
		{
			ID: "first_export", Name: "Archivist",
			Description: "Export your first PDF", Icon: "📑",
			RewardXP: 50, Rarity: domain.RarityCommon, Category: domain.CatExport,
			Predicate: func(s domain.StatsSnapshot) bool { return s.ExportCount >= 1 },
		},
		{
			ID: "export_10", Name: "Document Hoarder",
			Description: "Export 10 PDFs", Icon: "📚",
			RewardXP: 150, Rarity: domain.RarityUncommon, Category: domain.CatExport,
			Predicate: func(s domain.StatsSnapshot) bool { return s.ExportCount >= 10 },
		},

		// ── Document Size ──────────────────────────────────────────────
		{
			ID: "big_thinker", Name: "Big Thinker",
			Description: "Analyze a document over 10,000 characters", Icon: "📖",
			RewardXP: 100, Rarity: domain.RarityUncommon, Category: domain.CatDocuments,
			Predicate: func(s domain.StatsSnapshot) bool { return s.LargestDocument >= 10000 },
		},
		{
			ID: "novel_writer", Name: "Novel Writer",
			Description: "Analyze a document over 50,000 characters", Icon: "📕",
			RewardXP: 300, Rarity: domain.RarityRare, Category: domain.CatDocuments,
			Predicate: func(s domain.StatsSnapshot) bool { return s.LargestDocument >= 50000 },
		},

		// ── Special ────────────────────────────────────────────────────
		{
			ID: "first_day", Name: "Day One",
			Description: "Welcome to analyze.me!", Icon: "🎮",
			RewardXP: 50, Rarity: domain.RarityCommon, Category: domain.CatSpecial,
			Predicate: func(domain.StatsSnapshot) bool { return true }, // Unlocked on first evaluation
		},
		{
			ID: "speed_demon", Name: "Speed Demon",
			Description: "Complete 5 analyses in one day", Icon: "⚡",
			RewardXP: 150, Rarity: domain.RarityUncommon, Category: domain.CatSpecial,
			Predicate: func(s domain.StatsSnapshot) bool { return s.MaxAnalysesInDay >= 5 },
		},
		{
			ID: "marathon", Name: "Analysis Marathon",
			Description: "Complete 10 analyses in one day", Icon: "🏃",
			RewardXP: 300, Rarity: domain.RarityRare, Category: domain.CatSpecial,
			Predicate: func(s domain.StatsSnapshot) bool { return s.MaxAnalysesInDay >= 10 },
		},
	}
}

// Unlockables returns the cosmetic/theme/prompt unlockable catalog.
func Unlockables() []domain.UnlockableDef {
	return []domain.UnlockableDef{
		// Themes
		{
			ID: "theme_matrix", Name: "Matrix Mode",
			Description: "Green-on-black hacker aesthetic",
			Kind:        domain.UnlockTheme, Condition: domain.UnlockCondition{Level: 5},
		},
		{
			ID: "theme_neon_pink", Name: "Neon Pink",
			Description: "Pink-dominant synthwave vibes",
			Kind:        domain.UnlockTheme, Condition: domain.UnlockCondition{Level: 8},
		},
		{
			ID: "theme_golden", Name: "Golden Age",
			Description: "Luxurious gold and black theme",
			Kind:        domain.UnlockTheme, Condition: domain.UnlockCondition{Level: 15},
		},

		// Custom prompts
		{
			ID: "prompt_deep_dive", Name: "Deep Psychological Dive",
			Description: "Advanced prompt for deeper analysis",
			Kind:        domain.UnlockPrompt, Condition: domain.UnlockCondition{Achievement: "analysis_50"},
		},
		{
			ID: "prompt_future_self", Name: "Letter to Future Self",
			Description: "Generate insights as a letter to your future self",
			Kind:        domain.UnlockPrompt, Condition: domain.UnlockCondition{Achievement: "streak_7"},
		},
		{
			ID: "prompt_life_story", Name: "Life Story Arc",
			Description: "Analyze your documents as chapters in your life story",
			Kind:        domain.UnlockPrompt, Condition: domain.UnlockCondition{Level: 10},
		},

		// Profile cosmetics
		{
			ID: "badge_frame_cyan", Name: "Cyan Profile Frame",
			Description: "Neon cyan border for your profile",
			Kind:        domain.UnlockCosmetic, Condition: domain.UnlockCondition{Level: 3},
		},
		{
			ID: "badge_frame_pink", Name: "Pink Profile Frame",
			Description: "Hot pink border for your profile",
			Kind:        domain.UnlockCosmetic, Condition: domain.UnlockCondition{Level: 6},
		},
		{
			ID: "badge_frame_gold", Name: "Gold Profile Frame",
			Description: "Legendary gold border for your profile",
			Kind:        domain.UnlockCosmetic, Condition: domain.UnlockCondition{Level: 10},
		},
		{
			ID: "badge_frame_rainbow", Name: "Rainbow Profile Frame",
			Description: "Animated rainbow border",
			Kind:        domain.UnlockCosmetic, Condition: domain.UnlockCondition{Achievement: "all_prompts_used"},
		},
	}
}
