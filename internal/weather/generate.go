package weather

import (
	"log/slog"
	"strings"

	"github.com/ostland/riverwarden/internal/dice"
)

// DayInput carries everything a single day's generation depends on. The
// caller (the journey service) assembles it from the stored journey row and
// the previous day's archived snapshot.
type DayInput struct {
	Day      int
	Season   Season
	Province Province

	// SeedWind is the previous day's midnight reading, nil on day one.
	SeedWind *WindCondition

	// Cold and Heat carry the event families into the day: the previous
	// day's reported remaining count minus one, zero when inactive.
	Cold EventState
	Heat EventState

	ColdCooldown int
	HeatCooldown int
}

// DayResult is one generated day plus the cooldown counters to persist.
type DayResult struct {
	Snapshot     Snapshot
	ColdCooldown int
	HeatCooldown int
}

// GenerateDay produces the full weather snapshot for one day. The draw
// order is fixed: wind timeline, then weather type, then event trigger,
// then event duration when one starts, then daily variation. A scripted
// source can therefore force any branch.
func GenerateDay(src dice.Source, in DayInput) DayResult {
	wind := GenerateWind(src, in.SeedWind)
	wtype := WeatherTypeFor(in.Season, dice.D100(src))

	temp := resolveTemperature(src, in.Season, in.Province, in.Cold, in.Heat, in.ColdCooldown, in.HeatCooldown)
	temp.temperature.Perceived = temp.temperature.Actual - windChill[strongestWind(wind)]

	snap := Snapshot{
		Day:         in.Day,
		Season:      in.Season,
		Province:    in.Province,
		Type:        wtype,
		Wind:        wind,
		Temperature: temp.temperature,
		Event:       temp.event,
		Effects:     EffectsFor(wtype),
		Description: describeDay(wtype, temp.description),
	}

	slog.Debug("day generated",
		"day", in.Day,
		"weather", wtype,
		"temp", snap.Temperature.Actual,
		"category", snap.Temperature.Category,
		"event", snap.Event.Type,
	)

	return DayResult{
		Snapshot:     snap,
		ColdCooldown: temp.coldCooldown,
		HeatCooldown: temp.heatCooldown,
	}
}

// describeDay joins the weather headline with any event narrative.
func describeDay(t WeatherType, event string) string {
	parts := []string{weatherDescription[t]}
	if event != "" {
		parts = append(parts, event)
	}
	return strings.Join(parts, " ")
}
