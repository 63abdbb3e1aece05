package weather

import "github.com/ostland/riverwarden/internal/dice"

// Fresh-draw buckets for a journey's first wind reading. Strength and
// direction come from two independent d10s.
func freshWind(src dice.Source) WindCondition {
	var c WindCondition

	switch roll := dice.D10(src); {
	case roll <= 2:
		c.Strength = WindCalm
	case roll <= 4:
		c.Strength = WindLight
	case roll <= 6:
		c.Strength = WindBracing
	case roll <= 8:
		c.Strength = WindStrong
	default:
		c.Strength = WindVeryStrong
	}

	c.Direction = freshDirection(src)
	return c
}

// freshDirection draws a new direction: 1–3 tailwind, 4–7 sidewind,
// 8–10 headwind.
func freshDirection(src dice.Source) WindDirection {
	switch roll := dice.D10(src); {
	case roll <= 3:
		return WindTailwind
	case roll <= 7:
		return WindSidewind
	default:
		return WindHeadwind
	}
}

// GenerateWind produces the day's four-slot timeline (dawn, midday, dusk,
// midnight). When seed is non-nil (every day after the first) dawn equals
// the seed exactly; that is the continuity rule, not a re-roll. Each later
// slot changes only on a d10 result of 1: strength steps one position up or
// down the scale (clamped at both ends) and, independently, the direction
// is re-rolled fresh half the time.
func GenerateWind(src dice.Source, seed *WindCondition) [4]WindCondition {
	var timeline [4]WindCondition

	if seed != nil {
		timeline[0] = *seed
		timeline[0].Changed = false
	} else {
		timeline[0] = freshWind(src)
		timeline[0].Changed = true
	}
	applyWindEffect(&timeline[0])

	for i := 1; i < 4; i++ {
		prev := timeline[i-1]
		next := WindCondition{
			Strength:  prev.Strength,
			Direction: prev.Direction,
		}

		if dice.D10(src) == 1 {
			next.Strength = stepStrength(src, prev.Strength)
			if src.Roll(2) == 1 {
				next.Direction = freshDirection(src)
			}
			next.Changed = true
		}

		applyWindEffect(&next)
		timeline[i] = next
	}

	return timeline
}

// stepStrength moves one position along the ordered scale, 50/50 up or
// down, clamped so calm can only rise and very strong can only fall.
func stepStrength(src dice.Source, s WindStrength) WindStrength {
	idx := 0
	for i, v := range windScale {
		if v == s {
			idx = i
			break
		}
	}

	up := src.Roll(2) == 2
	switch {
	case idx == 0:
		idx = 1
	case idx == len(windScale)-1:
		idx = len(windScale) - 2
	case up:
		idx++
	default:
		idx--
	}

	return windScale[idx]
}

// strongestWind returns the highest strength present in a timeline, used
// for the day's wind-chill adjustment.
func strongestWind(timeline [4]WindCondition) WindStrength {
	best := 0
	for _, c := range timeline {
		for i, v := range windScale {
			if v == c.Strength && i > best {
				best = i
			}
		}
	}
	return windScale[best]
}
