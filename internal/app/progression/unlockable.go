package progression

import "github.com/analyzeme/analyzeme/internal/domain"

// conditionMet reports whether an unlockable's gate is satisfied by the
// current snapshot. Conditions are level- or achievement-keyed.
func conditionMet(cond domain.UnlockCondition, snap domain.StatsSnapshot) bool {
	if cond.Level > 0 {
		return snap.CurrentLevel >= cond.Level
	}
	if cond.Achievement != "" {
		return containsString(snap.UnlockedIDs, cond.Achievement)
	}
	return false
}

// EvaluateUnlockables grants any unlockable whose condition is now met.
// Returns the newly granted definitions. Unlockables carry no XP reward.
func (e *Engine) EvaluateUnlockables() []domain.UnlockableDef {
	rec := e.store.Record()
	if rec == nil {
		return nil
	}

	var granted []domain.UnlockableDef
	snap := e.snapshot()

	for _, def := range Unlockables() {
		if containsString(rec.Unlockables.Unlocked, def.ID) {
			continue
		}
		if conditionMet(def.Condition, snap) {
			rec.Unlockables.Unlocked = append(rec.Unlockables.Unlocked, def.ID)
			granted = append(granted, def)
		}
	}

	return granted
}

// UnlockedUnlockables returns the granted unlockable definitions.
func (e *Engine) UnlockedUnlockables() []domain.UnlockableDef {
	rec := e.store.Record()
	if rec == nil {
		return nil
	}

	var out []domain.UnlockableDef
	for _, def := range Unlockables() {
		if containsString(rec.Unlockables.Unlocked, def.ID) {
			out = append(out, def)
		}
	}
	return out
}

// ActivateTheme sets the active theme. The theme must be "default" or a
// granted theme unlockable; anything else is refused.
func (e *Engine) ActivateTheme(id string) bool {
	rec := e.store.Record()
	if rec == nil {
		return false
	}
	if id != "default" && !containsString(rec.Unlockables.Unlocked, id) {
		return false
	}
	rec.Unlockables.Active.Theme = id
	e.store.Save()
	return true
}
