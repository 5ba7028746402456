package engine

import "github.com/talgya/dynastia/internal/entropy"

// AttemptDiplomaticAlliance courts a rival dynasty. Persistence pays: each
// failed attempt raises the odds of the next, up to a cap.
func (e *Engine) AttemptDiplomaticAlliance(prev *State, rivalID string) *State {
	s := prev.Clone()
	rival := s.FindRival(rivalID)
	if rival == nil {
		s.notify("Cannot attempt alliance: rival dynasty not found.")
		return s
	}
	if s.alliedWith(rivalID) {
		s.notify("You are already allied with %s.", rival.Name)
		return s
	}

	s.DiplomaticAttempts[rivalID]++
	attempts := s.DiplomaticAttempts[rivalID]

	playerStatus := EffectiveDynastyStatus(s).TotalEffectiveStatus
	chance := BaseAllianceSuccessChance
	chance += (playerStatus - rival.Status) * StatusDiffAllianceModifier
	chance += float64(min(attempts, MaxAllianceAttemptsForBonus)) * AttemptAllianceBonus
	chance = entropy.Clamp(chance, 0.05, 0.95)

	if entropy.Chance(e.src, chance) {
		s.Alliances = append(s.Alliances, rivalID)
		rival.AlliedWithPlayer = true
		s.notify("Successfully formed an alliance with %s! Relations have improved.", rival.Name)
	} else {
		s.notify("Diplomatic efforts with %s have failed this time. (Chance: %.0f%%)", rival.Name, chance*100)
	}
	return s
}

func (s *State) alliedWith(rivalID string) bool {
	for _, id := range s.Alliances {
		if id == rivalID {
			return true
		}
	}
	return false
}
