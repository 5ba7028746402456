package engine

// AdvanceYear runs the full yearly transition. An extinct dynasty is inert:
// the previous state is returned untouched.
func (e *Engine) AdvanceYear(prev *State) *State {
	if prev.Extinct() && prev.CurrentYear > InitialYear {
		return prev
	}

	s := prev.Clone()
	s.CurrentYear++
	s.Notifications = nil

	e.updatePopulation(s)
	e.processAutonomousMarriages(s)

	playerStatus := EffectiveDynastyStatus(s).TotalEffectiveStatus
	s.PotentialSuitors = e.factory.GenerateSuitors(s.CurrentYear, s.DynastyName, s.PlayerOrigin, s.AllPeople, playerStatus)

	for i, r := range s.Rivals {
		s.Rivals[i] = e.rivalSim.ProcessYear(r, s.CurrentYear)
	}

	e.applyIncome(s)
	e.updateSuccession(s)

	final := EffectiveDynastyStatus(s).TotalEffectiveStatus
	s.HistoricalStatus = append(s.HistoricalStatus, HistoricalPoint{Year: s.CurrentYear, Value: final})
	s.HistoricalTreasury = append(s.HistoricalTreasury, HistoricalPoint{Year: s.CurrentYear, Value: float64(s.Treasury)})

	if s.Extinct() && !prev.Extinct() {
		s.notify("The %s line has ended. The dynasty is no more.", s.DynastyName)
	}
	return s
}
