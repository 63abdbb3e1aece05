package weather

import (
	"fmt"

	"github.com/ostland/riverwarden/internal/dice"
)

// temperatureResult bundles what resolveTemperature hands back to the day
// generator: the temperature block, the day's event verdict, and the
// refreshed cooldown counters.
type temperatureResult struct {
	temperature  Temperature
	event        SpecialEvent
	coldCooldown int
	heatCooldown int
	description  string
}

// resolveTemperature combines the provincial base, the event state machine,
// and the daily variation table into the day's final temperature.
//
// Two percentile draws happen here, in order: the trigger roll that drives
// the event transition, then the variation roll for the daily modifier.
// The variation roll is substituted away from the opposing trigger value
// while an event is active. The display category comes from the difference
// between final and base temperature, so an active cold front reads cold
// even when the variation band alone was average.
func resolveTemperature(src dice.Source, season Season, province Province, cold, heat EventState, coldCd, heatCd int) temperatureResult {
	base := BaseTemperature(province, season)

	trigger := dice.D100(src)
	outcome := advanceEvents(src, trigger, cold, heat, coldCd, heatCd)

	roll := substituteTriggerRoll(dice.D100(src), outcome.event.Type)
	v := temperatureVariation(roll)

	actual := base + outcome.modifier + v.modifier

	return temperatureResult{
		temperature: Temperature{
			Actual:   actual,
			Category: categoryForDifference(actual - base),
			Modifier: v.modifier,
			Roll:     roll,
		},
		event:        outcome.event,
		coldCooldown: outcome.coldCooldown,
		heatCooldown: outcome.heatCooldown,
		description:  eventDescription(outcome.event, outcome.started),
	}
}

// eventDescription renders the narrative line for the event block: first
// day, ongoing, or final day wording. Flavor only, no mechanics.
func eventDescription(e SpecialEvent, started bool) string {
	switch e.Type {
	case EventColdFront:
		switch {
		case started:
			return "A cold front rolls in off the hills; the river air bites."
		case e.DaysRemaining == 1:
			return "The cold front is breaking; the worst of the chill lifts by nightfall."
		default:
			return fmt.Sprintf("The cold front holds (day %d of %d).", e.TotalDuration-e.DaysRemaining+1, e.TotalDuration)
		}
	case EventHeatWave:
		switch {
		case started:
			return "A heat wave settles over the valley; the air turns thick and still."
		case e.DaysRemaining == 1:
			return "The heat wave finally breaks; clouds gather upriver."
		default:
			return fmt.Sprintf("The heat wave drags on (day %d of %d).", e.TotalDuration-e.DaysRemaining+1, e.TotalDuration)
		}
	}
	return ""
}

// weatherDescription is the headline flavor line for each weather type.
var weatherDescription = map[WeatherType]string{
	WeatherDry:      "Dry skies over the river.",
	WeatherFair:     "Fair weather; scattered cloud and good visibility.",
	WeatherRain:     "Steady rain patters on the deck.",
	WeatherDownpour: "A downpour churns the water and soaks everything aboard.",
	WeatherSnow:     "Snow falls in slow, fat flakes.",
	WeatherBlizzard: "A blizzard howls down the valley; the banks vanish in white.",
}
