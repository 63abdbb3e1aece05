package weather

import "testing"

func TestResolveTemperatureColdFrontStart(t *testing.T) {
	// Trigger roll 2 starts the front, duration draw 4, variation roll 15
	// lands in the average band (+0).
	src := newScript(map[int][]int{
		100: {coldFrontTrigger, 15},
		5:   {4},
	})

	res := resolveTemperature(src, SeasonSummer, ProvinceReikland, EventState{}, EventState{}, CooldownSentinel, CooldownSentinel)

	base := BaseTemperature(ProvinceReikland, SeasonSummer)
	if res.temperature.Actual != base-10 {
		t.Errorf("actual = %d, want base %d - 10", res.temperature.Actual, base)
	}
	if res.event.Type != EventColdFront || res.event.DaysRemaining != 4 {
		t.Errorf("event = %s remaining %d, want cold front 4", res.event.Type, res.event.DaysRemaining)
	}
	// Category reflects the -10 swing from base, not the average band the
	// variation roll landed in.
	if res.temperature.Category != TempVeryCold {
		t.Errorf("category = %s, want very_cold from actual-base difference", res.temperature.Category)
	}
	if res.temperature.Modifier != 0 {
		t.Errorf("variation modifier = %d, want 0 from roll 15", res.temperature.Modifier)
	}
}

func TestResolveTemperatureEventPlusVariation(t *testing.T) {
	// Ongoing cold front with a cold variation band stacks both modifiers.
	src := newScript(map[int][]int{
		100: {50, 10}, // trigger roll irrelevant while active; variation 10 = -5 band
	})

	res := resolveTemperature(src, SeasonWinter, ProvinceKislev, EventState{Remaining: 2, Total: 5}, EventState{}, 0, 40)

	base := BaseTemperature(ProvinceKislev, SeasonWinter)
	if res.temperature.Actual != base-15 {
		t.Errorf("actual = %d, want base %d - 10 - 5", res.temperature.Actual, base)
	}
	if res.temperature.Category != TempBitterlyCold {
		t.Errorf("category = %s, want bitterly_cold at -15 from base", res.temperature.Category)
	}
}

func TestVariationRollSubstitution(t *testing.T) {
	t.Run("heat trigger suppressed during cold front", func(t *testing.T) {
		// Variation roll 99 would be the hot band; with the front active
		// it collapses to the table midpoint.
		src := newScript(map[int][]int{
			100: {50, heatWaveTrigger},
		})

		res := resolveTemperature(src, SeasonSpring, ProvinceReikland, EventState{Remaining: 3, Total: 3}, EventState{}, 0, 30)

		if res.temperature.Roll != 50 {
			t.Errorf("stored roll = %d, want substituted 50", res.temperature.Roll)
		}
		if res.temperature.Modifier != 0 {
			t.Errorf("variation modifier = %d, want neutral 0", res.temperature.Modifier)
		}
	})

	t.Run("cold trigger suppressed during heat wave", func(t *testing.T) {
		src := newScript(map[int][]int{
			100: {50, coldFrontTrigger},
		})

		res := resolveTemperature(src, SeasonSummer, ProvinceAverland, EventState{}, EventState{Remaining: 5, Total: 12}, 30, 0)

		if res.temperature.Roll != 50 {
			t.Errorf("stored roll = %d, want substituted 50", res.temperature.Roll)
		}
	})

	t.Run("no substitution without an active event", func(t *testing.T) {
		src := newScript(map[int][]int{
			100: {50, heatWaveTrigger},
		})

		res := resolveTemperature(src, SeasonSummer, ProvinceAverland, EventState{}, EventState{}, 3, 3)

		if res.temperature.Roll != heatWaveTrigger {
			t.Errorf("stored roll = %d, want raw %d", res.temperature.Roll, heatWaveTrigger)
		}
		if res.temperature.Modifier != 10 {
			t.Errorf("variation modifier = %d, want +10 hot band", res.temperature.Modifier)
		}
	})
}

func TestEventDescriptionWording(t *testing.T) {
	tests := []struct {
		name    string
		event   SpecialEvent
		started bool
		want    string
	}{
		{
			name:    "first day",
			event:   SpecialEvent{Type: EventColdFront, DaysRemaining: 4, TotalDuration: 4},
			started: true,
			want:    "A cold front rolls in off the hills; the river air bites.",
		},
		{
			name:  "ongoing",
			event: SpecialEvent{Type: EventColdFront, DaysRemaining: 2, TotalDuration: 4},
			want:  "The cold front holds (day 3 of 4).",
		},
		{
			name:  "final day",
			event: SpecialEvent{Type: EventHeatWave, DaysRemaining: 1, TotalDuration: 12},
			want:  "The heat wave finally breaks; clouds gather upriver.",
		},
		{
			name:  "no event",
			event: SpecialEvent{Type: EventNone},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := eventDescription(tt.event, tt.started); got != tt.want {
				t.Errorf("eventDescription() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCategoryForDifference(t *testing.T) {
	tests := []struct {
		diff int
		want TemperatureCategory
	}{
		{-20, TempBitterlyCold},
		{-15, TempBitterlyCold},
		{-10, TempVeryCold},
		{-5, TempCold},
		{-4, TempAverage},
		{0, TempAverage},
		{4, TempAverage},
		{5, TempWarm},
		{10, TempHot},
		{15, TempSweltering},
		{25, TempSweltering},
	}

	for _, tt := range tests {
		if got := categoryForDifference(tt.diff); got != tt.want {
			t.Errorf("categoryForDifference(%d) = %s, want %s", tt.diff, got, tt.want)
		}
	}
}
