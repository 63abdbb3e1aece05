// Package journey orchestrates multi-day river journeys: it owns the
// advance-day control flow, reads and writes journey state through the
// store, and hands generated snapshots back to the command layer.
package journey

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ostland/riverwarden/internal/dice"
	"github.com/ostland/riverwarden/internal/store"
	"github.com/ostland/riverwarden/internal/weather"
)

// Default stage settings applied when a journey starts.
const (
	DefaultStageDuration = 3
	MinStageDuration     = 1
	MaxStageDuration     = 10
)

// Service coordinates journey state, weather generation, and persistence.
// All operations for the same guild are serialized through a per-guild
// mutex: the day counter and cooldown invariants assume one writer at a
// time per guild.
type Service struct {
	store *store.Store
	src   dice.Source

	mu     sync.Mutex
	guilds map[string]*sync.Mutex
}

// New creates a journey service backed by the given store and dice source.
func New(st *store.Store, src dice.Source) *Service {
	return &Service{
		store:  st,
		src:    src,
		guilds: make(map[string]*sync.Mutex),
	}
}

// guildLock returns the mutex serializing operations for one guild.
func (s *Service) guildLock(guildID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.guilds[guildID]
	if !ok {
		lock = &sync.Mutex{}
		s.guilds[guildID] = lock
	}
	return lock
}

// Start begins a fresh journey for the guild, destroying any previous one
// and its archived days. The journey opens on day 1 with default stage
// settings and both event cooldowns at the "never happened" sentinel.
func (s *Service) Start(guildID string, season weather.Season, province weather.Province) (*store.Journey, error) {
	if !weather.ValidSeason(season) {
		return nil, &ValidationError{Field: "season", Reason: fmt.Sprintf("unknown season %q", season)}
	}
	if !weather.ValidProvince(province) {
		return nil, &ValidationError{Field: "province", Reason: fmt.Sprintf("unknown province %q", province)}
	}

	lock := s.guildLock(guildID)
	lock.Lock()
	defer lock.Unlock()

	now := time.Now().UTC()
	j := &store.Journey{
		GuildID:            guildID,
		JourneyID:          uuid.NewString(),
		Season:             season,
		Province:           province,
		CurrentDay:         1,
		CurrentStage:       1,
		StageDuration:      DefaultStageDuration,
		StageDisplayMode:   store.DisplaySimple,
		DaysSinceColdFront: weather.CooldownSentinel,
		DaysSinceHeatWave:  weather.CooldownSentinel,
		StartedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.store.StartJourney(j); err != nil {
		return nil, fmt.Errorf("start journey: %w", err)
	}
	return j, nil
}

// AdvanceDay generates the next day of weather and commits it. The first
// call after Start generates day 1 in place; every later call advances the
// day counter and seeds wind continuity from the previous day's midnight
// reading.
func (s *Service) AdvanceDay(guildID string) (*weather.Snapshot, error) {
	lock := s.guildLock(guildID)
	lock.Lock()
	defer lock.Unlock()

	return s.advanceDayLocked(guildID)
}

func (s *Service) advanceDayLocked(guildID string) (*weather.Snapshot, error) {
	j, err := s.store.GetJourney(guildID)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, &NoJourneyError{GuildID: guildID}
	}

	in := weather.DayInput{
		Day:          j.CurrentDay,
		Season:       j.Season,
		Province:     j.Province,
		ColdCooldown: j.DaysSinceColdFront,
		HeatCooldown: j.DaysSinceHeatWave,
	}

	prev, err := s.store.GetDay(guildID, j.CurrentDay)
	if err != nil {
		return nil, err
	}
	if prev != nil {
		// The recorded day already has weather, so this call opens a new
		// day: continuity seeds from yesterday's last slot, and the event
		// carries over with one fewer day to run.
		in.Day = j.CurrentDay + 1
		midnight := prev.Wind[3]
		in.SeedWind = &midnight

		switch prev.Event.Type {
		case weather.EventColdFront:
			in.Cold = weather.EventState{Remaining: prev.Event.DaysRemaining - 1, Total: prev.Event.TotalDuration}
		case weather.EventHeatWave:
			in.Heat = weather.EventState{Remaining: prev.Event.DaysRemaining - 1, Total: prev.Event.TotalDuration}
		}
	}

	res := weather.GenerateDay(s.src, in)
	if err := s.store.CommitDay(guildID, &res.Snapshot, res.ColdCooldown, res.HeatCooldown); err != nil {
		return nil, fmt.Errorf("commit day %d: %w", res.Snapshot.Day, err)
	}

	slog.Info("day advanced",
		"guild", guildID,
		"day", res.Snapshot.Day,
		"weather", res.Snapshot.Type,
		"event", res.Snapshot.Event.Type,
	)
	return &res.Snapshot, nil
}

// AdvanceStage runs stage_duration sequential day advances, re-reading the
// journey between iterations so day numbers and wind continuity compound.
// There is no rollback: on a mid-stage failure the days already generated
// stay archived and are returned alongside the error.
func (s *Service) AdvanceStage(guildID string) ([]*weather.Snapshot, error) {
	lock := s.guildLock(guildID)
	lock.Lock()
	defer lock.Unlock()

	j, err := s.store.GetJourney(guildID)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, &NoJourneyError{GuildID: guildID}
	}

	days := make([]*weather.Snapshot, 0, j.StageDuration)
	for i := 0; i < j.StageDuration; i++ {
		snap, err := s.advanceDayLocked(guildID)
		if err != nil {
			return days, fmt.Errorf("stage stopped after %d of %d days: %w", i, j.StageDuration, err)
		}
		days = append(days, snap)
	}

	if err := s.store.IncrementStage(guildID); err != nil {
		return days, err
	}
	return days, nil
}

// ViewDay returns the archived snapshot for a day.
func (s *Service) ViewDay(guildID string, day int) (*weather.Snapshot, error) {
	j, err := s.store.GetJourney(guildID)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, &NoJourneyError{GuildID: guildID}
	}

	snap, err := s.store.GetDay(guildID, day)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, &DayNotFoundError{GuildID: guildID, Day: day}
	}
	return snap, nil
}

// Status returns the guild's journey summary.
func (s *Service) Status(guildID string) (*store.Journey, error) {
	j, err := s.store.GetJourney(guildID)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, &NoJourneyError{GuildID: guildID}
	}
	return j, nil
}

// ConfigureStage updates stage duration and/or display mode. Nil fields
// keep their current value. Invalid input is rejected before any write.
func (s *Service) ConfigureStage(guildID string, duration *int, mode *store.DisplayMode) (*store.Journey, error) {
	lock := s.guildLock(guildID)
	lock.Lock()
	defer lock.Unlock()

	j, err := s.store.GetJourney(guildID)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, &NoJourneyError{GuildID: guildID}
	}

	if duration != nil {
		if *duration < MinStageDuration || *duration > MaxStageDuration {
			return nil, &ValidationError{
				Field:  "stage_duration",
				Reason: fmt.Sprintf("must be between %d and %d, got %d", MinStageDuration, MaxStageDuration, *duration),
			}
		}
		j.StageDuration = *duration
	}
	if mode != nil {
		if !store.ValidDisplayMode(*mode) {
			return nil, &ValidationError{Field: "display_mode", Reason: fmt.Sprintf("unknown mode %q", *mode)}
		}
		j.StageDisplayMode = *mode
	}

	if err := s.store.UpdateStageConfig(guildID, j.StageDuration, j.StageDisplayMode); err != nil {
		return nil, err
	}
	return j, nil
}

// End tears down the guild's journey and archive, returning how many days
// it ran.
func (s *Service) End(guildID string) (int, error) {
	lock := s.guildLock(guildID)
	lock.Lock()
	defer lock.Unlock()

	j, err := s.store.GetJourney(guildID)
	if err != nil {
		return 0, err
	}
	if j == nil {
		return 0, &NoJourneyError{GuildID: guildID}
	}

	return s.store.EndJourney(guildID)
}
