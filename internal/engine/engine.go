package engine

import (
	"github.com/talgya/dynastia/internal/entropy"
	"github.com/talgya/dynastia/internal/people"
	"github.com/talgya/dynastia/internal/rivals"
)

// Engine evaluates state transitions. It holds no game state of its own;
// all randomness flows through the injected source.
type Engine struct {
	cfg      Config
	src      entropy.Source
	factory  *people.Factory
	rivalSim *rivals.Simulator
}

// New creates an engine with the given rules and random source.
func New(cfg Config, src entropy.Source) *Engine {
	factory := people.NewFactory(src)
	return &Engine{
		cfg:      cfg,
		src:      src,
		factory:  factory,
		rivalSim: rivals.NewSimulator(src, factory),
	}
}

// EligibleRelatedRoyalSuitors exposes the consanguine-marriage query under
// the engine's configured sibling rule.
func (e *Engine) EligibleRelatedRoyalSuitors(royal *people.Person, all map[people.ID]*people.Person, year int) []*people.Person {
	return people.EligibleRelatedRoyalSuitors(royal, all, year, e.cfg.ForbidSiblingMarriage)
}
