package weather

import "fmt"

// rollRange maps a contiguous band of percentile results to a category.
type rollRange[T any] struct {
	min, max int
	value    T
}

// lookupRange resolves a percentile roll against an ordered table. Tables
// must cover 1–100 with no gaps; a roll outside [1, 100] or a gap in the
// table is a programming error, not a user-facing condition.
func lookupRange[T any](table []rollRange[T], roll int) T {
	if roll < 1 || roll > 100 {
		panic(fmt.Sprintf("weather: table roll %d out of range [1, 100]", roll))
	}
	for _, r := range table {
		if roll >= r.min && roll <= r.max {
			return r.value
		}
	}
	panic(fmt.Sprintf("weather: no table entry for roll %d", roll))
}

// weatherTables holds the per-season weather type tables. Snow and
// blizzard appear only on the winter table.
var weatherTables = map[Season][]rollRange[WeatherType]{
	SeasonSpring: {
		{1, 30, WeatherDry},
		{31, 65, WeatherFair},
		{66, 90, WeatherRain},
		{91, 100, WeatherDownpour},
	},
	SeasonSummer: {
		{1, 50, WeatherDry},
		{51, 80, WeatherFair},
		{81, 95, WeatherRain},
		{96, 100, WeatherDownpour},
	},
	SeasonAutumn: {
		{1, 25, WeatherDry},
		{26, 55, WeatherFair},
		{56, 85, WeatherRain},
		{86, 100, WeatherDownpour},
	},
	SeasonWinter: {
		{1, 20, WeatherDry},
		{21, 40, WeatherFair},
		{41, 55, WeatherRain},
		{56, 65, WeatherDownpour},
		{66, 90, WeatherSnow},
		{91, 100, WeatherBlizzard},
	},
}

// WeatherTypeFor maps a percentile roll to the season's weather type.
func WeatherTypeFor(season Season, roll int) WeatherType {
	table, ok := weatherTables[season]
	if !ok {
		panic(fmt.Sprintf("weather: no weather table for season %q", season))
	}
	return lookupRange(table, roll)
}

// variation is one band of the shared daily temperature table.
type variation struct {
	modifier int
	category TemperatureCategory
}

// temperatureTable is the shared daily-variation table. The category here
// describes the band itself; the displayed category is recomputed from the
// final actual-minus-base difference.
var temperatureTable = []rollRange[variation]{
	{1, 1, variation{-15, TempBitterlyCold}},
	{2, 4, variation{-10, TempVeryCold}},
	{5, 14, variation{-5, TempCold}},
	{15, 85, variation{0, TempAverage}},
	{86, 95, variation{5, TempWarm}},
	{96, 99, variation{10, TempHot}},
	{100, 100, variation{15, TempSweltering}},
}

// temperatureVariation maps a percentile roll to the daily modifier.
func temperatureVariation(roll int) variation {
	return lookupRange(temperatureTable, roll)
}

// categoryForDifference recomputes the display category from the gap
// between the final actual temperature and the provincial base.
func categoryForDifference(diff int) TemperatureCategory {
	switch {
	case diff <= -15:
		return TempBitterlyCold
	case diff <= -10:
		return TempVeryCold
	case diff <= -5:
		return TempCold
	case diff < 5:
		return TempAverage
	case diff < 10:
		return TempWarm
	case diff < 15:
		return TempHot
	default:
		return TempSweltering
	}
}

// windEffect is the movement consequence of one (strength, direction) pair.
type windEffect struct {
	modifier int
	notes    string
}

// windEffects keys movement modifiers and special rules by strength and
// direction. Modifiers are percent adjustments to sailing speed.
var windEffects = map[WindStrength]map[WindDirection]windEffect{
	WindCalm: {
		WindTailwind: {0, "sails hang slack; oars or tow"},
		WindSidewind: {0, "sails hang slack; oars or tow"},
		WindHeadwind: {0, "sails hang slack; oars or tow"},
	},
	WindLight: {
		WindTailwind: {10, ""},
		WindSidewind: {0, ""},
		WindHeadwind: {-10, ""},
	},
	WindBracing: {
		WindTailwind: {25, ""},
		WindSidewind: {-10, "tacking required"},
		WindHeadwind: {-25, "tacking required"},
	},
	WindStrong: {
		WindTailwind: {40, "Sail tests at -10"},
		WindSidewind: {-20, "tacking required; Sail tests at -10"},
		WindHeadwind: {-50, "tacking required; rowing advised"},
	},
	WindVeryStrong: {
		WindTailwind: {50, "Sail tests at -20; risk of broaching"},
		WindSidewind: {-30, "risk of heeling; Sail tests at -20"},
		WindHeadwind: {-75, "sail useless; tow, row, or anchor"},
	},
}

// applyWindEffect fills in the modifier and notes for a condition.
func applyWindEffect(c *WindCondition) {
	e := windEffects[c.Strength][c.Direction]
	c.Modifier = e.modifier
	c.Notes = e.notes
}

// windChill keys perceived-temperature loss by strength, in degrees.
var windChill = map[WindStrength]int{
	WindCalm:       0,
	WindLight:      1,
	WindBracing:    2,
	WindStrong:     4,
	WindVeryStrong: 7,
}

// weatherEffects lists the mechanical consequences of each weather type.
var weatherEffects = map[WeatherType][]string{
	WeatherDry:  {},
	WeatherFair: {},
	WeatherRain: {
		"Perception tests at -10",
		"Ranged attacks at -10",
	},
	WeatherDownpour: {
		"Perception tests at -20",
		"Ranged attacks at -30",
		"Row and Sail tests at -10",
		"River runs high; mooring takes twice as long",
	},
	WeatherSnow: {
		"Perception tests at -10",
		"Exposed characters risk Exposure each watch",
		"Deck work counts as difficult terrain",
	},
	WeatherBlizzard: {
		"Perception tests at -30",
		"Navigation tests at -20",
		"Exposed characters risk Exposure each hour",
		"Travel halves; most captains moor and wait",
	},
}

// EffectsFor returns the mechanical-effect lines for a weather type.
func EffectsFor(t WeatherType) []string {
	effects := weatherEffects[t]
	out := make([]string, len(effects))
	copy(out, effects)
	return out
}
