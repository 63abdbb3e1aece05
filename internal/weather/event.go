package weather

import "github.com/ostland/riverwarden/internal/dice"

// Trigger values on the daily percentile roll and the cooldown rule. The
// cooldown counters start journeys at the sentinel so a first event is
// never gated, and saturate there so they cannot wrap.
const (
	coldFrontTrigger = 2
	heatWaveTrigger  = 99

	// EventCooldownDays is the minimum number of event-free days before
	// the same event family may trigger again.
	EventCooldownDays = 7

	// CooldownSentinel is the "never happened" cooldown value set when a
	// journey starts, and the saturation cap for the counters.
	CooldownSentinel = 99

	coldFrontModifier = -10
	heatWaveModifier  = 10
)

// EventState is the carried-in state of one event family at the start of a
// day: how many days it still has to run, counting today.
type EventState struct {
	Remaining int
	Total     int
}

// eventOutcome is the tracker's verdict for one day.
type eventOutcome struct {
	event        SpecialEvent
	modifier     int
	coldCooldown int
	heatCooldown int
	started      bool
}

// advanceEvents runs the daily event transition. The trigger roll is the
// original percentile draw for the day, before any substitution. An active
// event reports its full remaining count for today and keeps its family's
// trigger unexamined; the other family's trigger is likewise ignored while
// any event runs, which is what keeps the two mutually exclusive. A fresh
// trigger is honored only when its cooldown counter has reached
// EventCooldownDays.
func advanceEvents(src dice.Source, trigger int, cold, heat EventState, coldCd, heatCd int) eventOutcome {
	out := eventOutcome{
		event:        SpecialEvent{Type: EventNone},
		coldCooldown: coldCd,
		heatCooldown: heatCd,
	}

	switch {
	case cold.Remaining > 0:
		out.event = SpecialEvent{Type: EventColdFront, DaysRemaining: cold.Remaining, TotalDuration: cold.Total}
		out.modifier = coldFrontModifier
		out.coldCooldown = 0
		out.heatCooldown = saturate(heatCd + 1)

	case heat.Remaining > 0:
		out.event = SpecialEvent{Type: EventHeatWave, DaysRemaining: heat.Remaining, TotalDuration: heat.Total}
		out.modifier = heatWaveModifier
		out.heatCooldown = 0
		out.coldCooldown = saturate(coldCd + 1)

	case trigger == coldFrontTrigger && coldCd >= EventCooldownDays:
		duration := src.Roll(5)
		out.event = SpecialEvent{Type: EventColdFront, DaysRemaining: duration, TotalDuration: duration}
		out.modifier = coldFrontModifier
		out.coldCooldown = 0
		out.heatCooldown = saturate(heatCd + 1)
		out.started = true

	case trigger == heatWaveTrigger && heatCd >= EventCooldownDays:
		duration := 10 + src.Roll(10)
		out.event = SpecialEvent{Type: EventHeatWave, DaysRemaining: duration, TotalDuration: duration}
		out.modifier = heatWaveModifier
		out.heatCooldown = 0
		out.coldCooldown = saturate(coldCd + 1)
		out.started = true

	default:
		out.coldCooldown = saturate(coldCd + 1)
		out.heatCooldown = saturate(heatCd + 1)
	}

	return out
}

// substituteTriggerRoll keeps the daily variation roll from landing on the
// opposing event's trigger value while an event is active. Without this, a
// variation roll of 99 during a cold front would stack a hot band on top
// of the front's fixed modifier. The roll collapses to the table midpoint.
func substituteTriggerRoll(roll int, active EventType) int {
	switch active {
	case EventColdFront:
		if roll == heatWaveTrigger {
			return 50
		}
	case EventHeatWave:
		if roll == coldFrontTrigger {
			return 50
		}
	}
	return roll
}

func saturate(cd int) int {
	if cd > CooldownSentinel {
		return CooldownSentinel
	}
	return cd
}
