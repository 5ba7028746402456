package engine

import (
	"math"

	"github.com/talgya/dynastia/internal/economy"
)

// EffectiveDynastyStatus blends the living royal bloodline's average status
// with the boost from purchased holdings. This is the number income and
// diplomacy run on.
func EffectiveDynastyStatus(s *State) StatusBreakdown {
	var sum float64
	var n int
	for _, p := range s.AllPeople {
		if p.Alive && p.IsRoyalBlood && !p.Excommunicated {
			sum += float64(p.StatusPoints)
			n++
		}
	}
	base := 0.0
	if n > 0 {
		base = sum / float64(n)
	}

	boost := economy.TotalBoost(s.Catalog, s.OwnedItems)
	total := math.Max(0, math.Min(100, base+boost))
	return StatusBreakdown{
		BaseRoyalStatus:      base,
		ItemStatusBoost:      boost,
		TotalEffectiveStatus: total,
	}
}

// applyIncome credits the treasury with the yearly income, which scales
// superlinearly with effective status.
func (e *Engine) applyIncome(s *State) {
	total := EffectiveDynastyStatus(s).TotalEffectiveStatus
	income := IncomeBaseFlat + int(math.Floor(math.Pow(total/IncomeScalingDivisor, IncomeScalingExponent)))
	s.Treasury += income
	s.notify("Your dynasty earned %d gold this year.", income)
}
