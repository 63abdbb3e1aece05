package weather

import "github.com/ostland/riverwarden/internal/dice"

// BoatTestResult is a boat-handling skill test resolved against the wind.
type BoatTestResult struct {
	dice.TestResult
	Wind         WindCondition `json:"wind"`
	WindModifier int           `json:"wind_modifier"`
}

// boatTestModifiers adjusts the skill target by wind strength and
// direction. A following wind helps, a headwind punishes, dead calm makes
// sail handling trivial but pointless.
var boatTestModifiers = map[WindStrength]map[WindDirection]int{
	WindCalm: {
		WindTailwind: 20,
		WindSidewind: 20,
		WindHeadwind: 20,
	},
	WindLight: {
		WindTailwind: 10,
		WindSidewind: 10,
		WindHeadwind: 0,
	},
	WindBracing: {
		WindTailwind: 10,
		WindSidewind: 0,
		WindHeadwind: -10,
	},
	WindStrong: {
		WindTailwind: 0,
		WindSidewind: -10,
		WindHeadwind: -20,
	},
	WindVeryStrong: {
		WindTailwind: -10,
		WindSidewind: -20,
		WindHeadwind: -30,
	},
}

// BoatHandlingTest rolls a Sail or Row test against the character's skill
// adjusted for the given wind slot.
func BoatHandlingTest(src dice.Source, skill int, wind WindCondition) BoatTestResult {
	mod := boatTestModifiers[wind.Strength][wind.Direction]
	target := skill + mod
	if target < 0 {
		target = 0
	}

	return BoatTestResult{
		TestResult:   dice.ResolveTest(dice.D100(src), target),
		Wind:         wind,
		WindModifier: mod,
	}
}
