package engine

// Gameplay constants for the player dynasty. Rival tuning lives in the
// rivals package, demographic shared values in the people package.
const (
	InitialYear       = 0
	AverageLifespan   = 80
	LifespanVariation = 15
	ChanceRandomDeath = 0.002 // flat per-year, independent of lifespan

	InitialTreasury       = 200
	IncomeBaseFlat        = 2
	IncomeScalingDivisor  = 10
	IncomeScalingExponent = 2.1

	ChanceBirthFirstChild  = 0.30
	ChanceBirthSecondChild = 0.04
	ChanceBirthThirdChild  = 0.008
	ChanceBirthSubsequent  = 0.005

	ChanceAutonomousMarriage = 0.15
	TryForChildBaseChance    = 0.6

	BaseAllianceSuccessChance   = 0.20
	StatusDiffAllianceModifier  = 0.005
	AttemptAllianceBonus        = 0.05
	MaxAllianceAttemptsForBonus = 5
)

// multipleBirthWeights is the distribution over simultaneous births for a
// successful try-for-child roll: heavily weighted toward a single child.
var multipleBirthWeights = [3]float64{0.60, 0.15, 0.03}

// ExcomPenalty selects the excommunication status penalty formula; the two
// variants existed side by side historically, so the choice is explicit.
type ExcomPenalty uint8

const (
	// ExcomPenaltyProportional keeps 20% of the member's status.
	ExcomPenaltyProportional ExcomPenalty = iota
	// ExcomPenaltyFlat subtracts 50 points, floored at zero.
	ExcomPenaltyFlat
)

// Config carries the engine's tunable rules.
type Config struct {
	ExcomPenalty          ExcomPenalty
	ForbidSiblingMarriage bool // consanguine-suitor query excludes full siblings
	NumRivalDynasties     int
	PlayerOrigin          string
}

// DefaultConfig returns the standard rule set.
func DefaultConfig() Config {
	return Config{
		ExcomPenalty:          ExcomPenaltyProportional,
		ForbidSiblingMarriage: false,
		NumRivalDynasties:     4,
		PlayerOrigin:          "Kingdom of England",
	}
}
