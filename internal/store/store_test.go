package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ostland/riverwarden/internal/weather"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func testJourney(guildID string) *Journey {
	now := time.Now().UTC()
	return &Journey{
		GuildID:            guildID,
		JourneyID:          "j-" + guildID,
		Season:             weather.SeasonSummer,
		Province:           weather.ProvinceReikland,
		CurrentDay:         1,
		CurrentStage:       1,
		StageDuration:      3,
		StageDisplayMode:   DisplaySimple,
		DaysSinceColdFront: weather.CooldownSentinel,
		DaysSinceHeatWave:  weather.CooldownSentinel,
		StartedAt:          now,
		UpdatedAt:          now,
	}
}

func testSnapshot(day int) *weather.Snapshot {
	return &weather.Snapshot{
		Day:      day,
		Season:   weather.SeasonSummer,
		Province: weather.ProvinceReikland,
		Type:     weather.WeatherFair,
		Wind: [4]weather.WindCondition{
			{Strength: weather.WindLight, Direction: weather.WindTailwind, Modifier: 10},
			{Strength: weather.WindLight, Direction: weather.WindTailwind, Modifier: 10},
			{Strength: weather.WindBracing, Direction: weather.WindSidewind, Modifier: -10, Notes: "tacking required", Changed: true},
			{Strength: weather.WindBracing, Direction: weather.WindSidewind, Modifier: -10, Notes: "tacking required"},
		},
		Temperature: weather.Temperature{Actual: 18, Perceived: 16, Category: weather.TempAverage, Roll: 40},
		Event:       weather.SpecialEvent{Type: weather.EventNone},
		Effects:     []string{},
		Description: "Fair weather; scattered cloud and good visibility.",
	}
}

func TestJourneyRoundTrip(t *testing.T) {
	st := openTestStore(t)

	if err := st.StartJourney(testJourney("g1")); err != nil {
		t.Fatalf("start journey: %v", err)
	}

	j, err := st.GetJourney("g1")
	if err != nil {
		t.Fatalf("get journey: %v", err)
	}
	if j == nil {
		t.Fatal("journey not found after start")
	}
	if j.Season != weather.SeasonSummer || j.Province != weather.ProvinceReikland {
		t.Errorf("round trip lost season/province: %s/%s", j.Season, j.Province)
	}
	if j.DaysSinceColdFront != weather.CooldownSentinel {
		t.Errorf("cold cooldown = %d, want sentinel %d", j.DaysSinceColdFront, weather.CooldownSentinel)
	}
}

func TestGetJourneyAbsent(t *testing.T) {
	st := openTestStore(t)

	j, err := st.GetJourney("nobody")
	if err != nil {
		t.Fatalf("get journey: %v", err)
	}
	if j != nil {
		t.Errorf("expected nil for unknown guild, got %+v", j)
	}
}

func TestDayRoundTrip(t *testing.T) {
	st := openTestStore(t)
	if err := st.StartJourney(testJourney("g1")); err != nil {
		t.Fatal(err)
	}

	want := testSnapshot(1)
	want.Event = weather.SpecialEvent{Type: weather.EventColdFront, DaysRemaining: 3, TotalDuration: 5}
	want.Effects = []string{"Perception tests at -10"}

	if err := st.SaveDay("g1", want); err != nil {
		t.Fatalf("save day: %v", err)
	}

	got, err := st.GetDay("g1", 1)
	if err != nil {
		t.Fatalf("get day: %v", err)
	}
	if got == nil {
		t.Fatal("day not found after save")
	}
	if got.Wind != want.Wind {
		t.Errorf("wind timeline mismatch:\n got %+v\nwant %+v", got.Wind, want.Wind)
	}
	if got.Event != want.Event {
		t.Errorf("event mismatch: got %+v want %+v", got.Event, want.Event)
	}
	if len(got.Effects) != 1 || got.Effects[0] != want.Effects[0] {
		t.Errorf("effects mismatch: %v", got.Effects)
	}
}

func TestSaveDayIdempotentOverwrite(t *testing.T) {
	st := openTestStore(t)
	if err := st.StartJourney(testJourney("g1")); err != nil {
		t.Fatal(err)
	}

	first := testSnapshot(2)
	first.Type = weather.WeatherRain
	if err := st.SaveDay("g1", first); err != nil {
		t.Fatal(err)
	}

	second := testSnapshot(2)
	second.Type = weather.WeatherDownpour
	if err := st.SaveDay("g1", second); err != nil {
		t.Fatal(err)
	}

	got, err := st.GetDay("g1", 2)
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != weather.WeatherDownpour {
		t.Errorf("weather type = %s, want the second write to win", got.Type)
	}
}

func TestCommitDayAdvancesCounters(t *testing.T) {
	st := openTestStore(t)
	if err := st.StartJourney(testJourney("g1")); err != nil {
		t.Fatal(err)
	}

	snap := testSnapshot(2)
	if err := st.CommitDay("g1", snap, 0, 42); err != nil {
		t.Fatalf("commit day: %v", err)
	}

	j, err := st.GetJourney("g1")
	if err != nil {
		t.Fatal(err)
	}
	if j.CurrentDay != 2 {
		t.Errorf("current day = %d, want 2", j.CurrentDay)
	}
	if j.DaysSinceColdFront != 0 || j.DaysSinceHeatWave != 42 {
		t.Errorf("cooldowns = %d/%d, want 0/42", j.DaysSinceColdFront, j.DaysSinceHeatWave)
	}

	if got, err := st.GetDay("g1", 2); err != nil || got == nil {
		t.Fatalf("day 2 missing after commit: %v", err)
	}
}

func TestDestructiveStart(t *testing.T) {
	st := openTestStore(t)
	if err := st.StartJourney(testJourney("g1")); err != nil {
		t.Fatal(err)
	}
	for day := 1; day <= 4; day++ {
		if err := st.SaveDay("g1", testSnapshot(day)); err != nil {
			t.Fatal(err)
		}
	}

	fresh := testJourney("g1")
	fresh.Season = weather.SeasonWinter
	if err := st.StartJourney(fresh); err != nil {
		t.Fatalf("restart: %v", err)
	}

	for day := 1; day <= 4; day++ {
		got, err := st.GetDay("g1", day)
		if err != nil {
			t.Fatal(err)
		}
		if got != nil {
			t.Errorf("day %d survived a destructive restart", day)
		}
	}

	j, err := st.GetJourney("g1")
	if err != nil {
		t.Fatal(err)
	}
	if j.Season != weather.SeasonWinter {
		t.Errorf("season = %s, want the fresh journey's winter", j.Season)
	}
}

func TestEndJourneyCascades(t *testing.T) {
	st := openTestStore(t)
	j := testJourney("g1")
	j.CurrentDay = 6
	if err := st.StartJourney(j); err != nil {
		t.Fatal(err)
	}
	for day := 1; day <= 6; day++ {
		if err := st.SaveDay("g1", testSnapshot(day)); err != nil {
			t.Fatal(err)
		}
	}

	days, err := st.EndJourney("g1")
	if err != nil {
		t.Fatalf("end journey: %v", err)
	}
	if days != 6 {
		t.Errorf("final day count = %d, want 6", days)
	}

	if got, _ := st.GetJourney("g1"); got != nil {
		t.Error("journey row survived end")
	}
	for day := 1; day <= 6; day++ {
		if got, _ := st.GetDay("g1", day); got != nil {
			t.Errorf("day %d survived end", day)
		}
	}
}

func TestGuildsAreIsolated(t *testing.T) {
	st := openTestStore(t)
	if err := st.StartJourney(testJourney("g1")); err != nil {
		t.Fatal(err)
	}
	if err := st.StartJourney(testJourney("g2")); err != nil {
		t.Fatal(err)
	}
	if err := st.SaveDay("g1", testSnapshot(1)); err != nil {
		t.Fatal(err)
	}

	if _, err := st.EndJourney("g2"); err != nil {
		t.Fatal(err)
	}

	if got, _ := st.GetJourney("g1"); got == nil {
		t.Error("ending g2 destroyed g1's journey")
	}
	if got, _ := st.GetDay("g1", 1); got == nil {
		t.Error("ending g2 destroyed g1's archive")
	}
}

func TestUpdateStageConfig(t *testing.T) {
	st := openTestStore(t)
	if err := st.StartJourney(testJourney("g1")); err != nil {
		t.Fatal(err)
	}

	if err := st.UpdateStageConfig("g1", 7, DisplayDetailed); err != nil {
		t.Fatal(err)
	}
	if err := st.IncrementStage("g1"); err != nil {
		t.Fatal(err)
	}

	j, err := st.GetJourney("g1")
	if err != nil {
		t.Fatal(err)
	}
	if j.StageDuration != 7 || j.StageDisplayMode != DisplayDetailed {
		t.Errorf("stage config = %d/%s, want 7/detailed", j.StageDuration, j.StageDisplayMode)
	}
	if j.CurrentStage != 2 {
		t.Errorf("current stage = %d, want 2", j.CurrentStage)
	}
}
