package entropy

// Scripted is a deterministic Source for tests. Float draws are consumed
// from Floats in order; IntBetween draws from Ints. When a script runs out,
// the fallback values are returned (0 for floats, min for ints), which keeps
// long loops predictable without endless fixtures.
type Scripted struct {
	Floats []float64
	Ints   []int

	floatIdx int
	intIdx   int
}

// Float returns the next scripted float, or 0 once the script is exhausted.
func (s *Scripted) Float() float64 {
	if s.floatIdx >= len(s.Floats) {
		return 0
	}
	v := s.Floats[s.floatIdx]
	s.floatIdx++
	return v
}

// IntBetween returns the next scripted int clamped to [min, max], or min
// once the script is exhausted.
func (s *Scripted) IntBetween(min, max int) int {
	if s.intIdx >= len(s.Ints) {
		return min
	}
	v := s.Ints[s.intIdx]
	s.intIdx++
	return Clamp(v, min, max)
}

// FixedFloat is a Source whose Float always returns F and whose IntBetween
// always returns min. Handy for forcing every probability roll one way.
type FixedFloat struct {
	F float64
}

func (f FixedFloat) Float() float64 { return f.F }

func (f FixedFloat) IntBetween(min, max int) int { return min }
