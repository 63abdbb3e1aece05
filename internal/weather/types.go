// Package weather generates daily river-travel weather for WFRP 4e
// journeys: weather type, a four-slot wind timeline with day-to-day
// continuity, temperature with cold front / heat wave events, and the
// mechanical effects each condition imposes.
package weather

// Season of the campaign calendar.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

// Seasons lists all seasons in calendar order.
func Seasons() []Season {
	return []Season{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter}
}

// ValidSeason reports whether s names a known season.
func ValidSeason(s Season) bool {
	switch s {
	case SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter:
		return true
	}
	return false
}

// WeatherType is the day's headline condition, drawn from a per-season
// percentile table.
type WeatherType string

const (
	WeatherDry      WeatherType = "dry"
	WeatherFair     WeatherType = "fair"
	WeatherRain     WeatherType = "rain"
	WeatherDownpour WeatherType = "downpour"
	WeatherSnow     WeatherType = "snow"
	WeatherBlizzard WeatherType = "blizzard"
)

// WindStrength is an ordered five-step scale.
type WindStrength string

const (
	WindCalm       WindStrength = "calm"
	WindLight      WindStrength = "light"
	WindBracing    WindStrength = "bracing"
	WindStrong     WindStrength = "strong"
	WindVeryStrong WindStrength = "very_strong"
)

// windScale orders strengths for the step-up/step-down change rule.
var windScale = []WindStrength{WindCalm, WindLight, WindBracing, WindStrong, WindVeryStrong}

// WindDirection is relative to the boat's heading along the river.
type WindDirection string

const (
	WindTailwind WindDirection = "tailwind"
	WindSidewind WindDirection = "sidewind"
	WindHeadwind WindDirection = "headwind"
)

// TimeOfDay names the four wind timeline slots, in generation order.
type TimeOfDay string

const (
	Dawn     TimeOfDay = "dawn"
	Midday   TimeOfDay = "midday"
	Dusk     TimeOfDay = "dusk"
	Midnight TimeOfDay = "midnight"
)

// TimeSlots returns the slot names in timeline order.
func TimeSlots() [4]TimeOfDay {
	return [4]TimeOfDay{Dawn, Midday, Dusk, Midnight}
}

// WindCondition is one slot of the daily wind timeline.
type WindCondition struct {
	Strength  WindStrength  `json:"strength"`
	Direction WindDirection `json:"direction"`
	Modifier  int           `json:"modifier"` // movement speed, percent
	Notes     string        `json:"notes,omitempty"`
	Changed   bool          `json:"changed"` // wind shifted this slot
}

// TemperatureCategory labels how the day feels relative to the provincial
// norm. Recomputed from (actual − base), not from the raw variation roll,
// so an active cold front reads cold even on an average roll.
type TemperatureCategory string

const (
	TempBitterlyCold TemperatureCategory = "bitterly_cold"
	TempVeryCold     TemperatureCategory = "very_cold"
	TempCold         TemperatureCategory = "cold"
	TempAverage      TemperatureCategory = "average"
	TempWarm         TemperatureCategory = "warm"
	TempHot          TemperatureCategory = "hot"
	TempSweltering   TemperatureCategory = "sweltering"
)

// Temperature is the resolved daily temperature block.
type Temperature struct {
	Actual    int                 `json:"actual"`    // degrees Celsius
	Perceived int                 `json:"perceived"` // wind-chill adjusted
	Category  TemperatureCategory `json:"category"`
	Modifier  int                 `json:"modifier"` // daily variation, degrees
	Roll      int                 `json:"roll"`     // variation roll after substitution
}

// EventType identifies a multi-day temperature extreme.
type EventType string

const (
	EventNone      EventType = "none"
	EventColdFront EventType = "cold_front"
	EventHeatWave  EventType = "heat_wave"
)

// SpecialEvent is the event block of a daily snapshot. DaysRemaining is the
// count including the snapshot's own day, so the final day reports 1.
type SpecialEvent struct {
	Type          EventType `json:"type"`
	DaysRemaining int       `json:"days_remaining"`
	TotalDuration int       `json:"total_duration"`
}

// Active reports whether the event block describes a live event.
func (e SpecialEvent) Active() bool {
	return e.Type != EventNone && e.DaysRemaining > 0
}

// Snapshot is the immutable record of one generated day.
type Snapshot struct {
	Day         int              `json:"day"`
	Season      Season           `json:"season"`
	Province    Province         `json:"province"`
	Type        WeatherType      `json:"weather_type"`
	Wind        [4]WindCondition `json:"wind_timeline"`
	Temperature Temperature      `json:"temperature"`
	Event       SpecialEvent     `json:"special_event"`
	Effects     []string         `json:"weather_effects"`
	Description string           `json:"description"`
}
