// Package store provides SQLite-backed journey state and the per-day
// weather archive. Journeys are the single mutable row per guild; archived
// days are immutable snapshots, overwritten only by explicit regeneration.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/ostland/riverwarden/internal/weather"
)

// DisplayMode controls how a generated stage is presented.
type DisplayMode string

const (
	DisplaySimple   DisplayMode = "simple"
	DisplayDetailed DisplayMode = "detailed"
)

// ValidDisplayMode reports whether m is a known mode.
func ValidDisplayMode(m DisplayMode) bool {
	return m == DisplaySimple || m == DisplayDetailed
}

// Journey is the one live record per guild.
type Journey struct {
	GuildID            string           `db:"guild_id"`
	JourneyID          string           `db:"journey_id"`
	Season             weather.Season   `db:"season"`
	Province           weather.Province `db:"province"`
	CurrentDay         int              `db:"current_day"`
	CurrentStage       int              `db:"current_stage"`
	StageDuration      int              `db:"stage_duration"`
	StageDisplayMode   DisplayMode      `db:"stage_display_mode"`
	DaysSinceColdFront int              `db:"days_since_cold_front"`
	DaysSinceHeatWave  int              `db:"days_since_heat_wave"`
	StartedAt          time.Time        `db:"started_at"`
	UpdatedAt          time.Time        `db:"updated_at"`
}

// dayRow is the daily_weather table shape. Wind timeline and effects are
// JSON columns inside an otherwise relational row.
type dayRow struct {
	GuildID            string    `db:"guild_id"`
	Day                int       `db:"day"`
	Season             string    `db:"season"`
	Province           string    `db:"province"`
	WeatherType        string    `db:"weather_type"`
	WindJSON           string    `db:"wind_json"`
	TempActual         int       `db:"temp_actual"`
	TempPerceived      int       `db:"temp_perceived"`
	TempCategory       string    `db:"temp_category"`
	TempModifier       int       `db:"temp_modifier"`
	TempRoll           int       `db:"temp_roll"`
	EventType          string    `db:"event_type"`
	EventDaysRemaining int       `db:"event_days_remaining"`
	EventTotalDuration int       `db:"event_total_duration"`
	EffectsJSON        string    `db:"effects_json"`
	Description        string    `db:"description"`
	CreatedAt          time.Time `db:"created_at"`
}

// Store wraps a SQLite connection for journey persistence.
type Store struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	st := &Store{conn: conn}
	if err := st.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return st, nil
}

// Close closes the database connection.
func (st *Store) Close() error {
	return st.conn.Close()
}

func (st *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS journeys (
		guild_id TEXT PRIMARY KEY,
		journey_id TEXT NOT NULL,
		season TEXT NOT NULL,
		province TEXT NOT NULL,
		current_day INTEGER NOT NULL,
		current_stage INTEGER NOT NULL,
		stage_duration INTEGER NOT NULL,
		stage_display_mode TEXT NOT NULL,
		days_since_cold_front INTEGER NOT NULL,
		days_since_heat_wave INTEGER NOT NULL,
		started_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS daily_weather (
		guild_id TEXT NOT NULL,
		day INTEGER NOT NULL,
		season TEXT NOT NULL,
		province TEXT NOT NULL,
		weather_type TEXT NOT NULL,
		wind_json TEXT NOT NULL,
		temp_actual INTEGER NOT NULL,
		temp_perceived INTEGER NOT NULL,
		temp_category TEXT NOT NULL,
		temp_modifier INTEGER NOT NULL,
		temp_roll INTEGER NOT NULL,
		event_type TEXT NOT NULL,
		event_days_remaining INTEGER NOT NULL,
		event_total_duration INTEGER NOT NULL,
		effects_json TEXT NOT NULL,
		description TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		PRIMARY KEY (guild_id, day)
	);

	CREATE INDEX IF NOT EXISTS idx_daily_weather_guild ON daily_weather(guild_id);
	`
	_, err := st.conn.Exec(schema)
	return err
}

// StartJourney replaces any existing journey for the guild, cascading the
// delete to every archived day, and inserts the fresh day-one row.
func (st *Store) StartJourney(j *Journey) error {
	tx, err := st.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM daily_weather WHERE guild_id = ?", j.GuildID); err != nil {
		return fmt.Errorf("clear archive: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM journeys WHERE guild_id = ?", j.GuildID); err != nil {
		return fmt.Errorf("clear journey: %w", err)
	}

	_, err = tx.Exec(`INSERT INTO journeys
		(guild_id, journey_id, season, province, current_day, current_stage,
		 stage_duration, stage_display_mode, days_since_cold_front,
		 days_since_heat_wave, started_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		j.GuildID, j.JourneyID, j.Season, j.Province, j.CurrentDay,
		j.CurrentStage, j.StageDuration, j.StageDisplayMode,
		j.DaysSinceColdFront, j.DaysSinceHeatWave, j.StartedAt, j.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert journey: %w", err)
	}

	slog.Info("journey started", "guild", j.GuildID, "season", j.Season, "province", j.Province)
	return tx.Commit()
}

// GetJourney returns the guild's journey, or nil when none exists.
func (st *Store) GetJourney(guildID string) (*Journey, error) {
	var j Journey
	err := st.conn.Get(&j, "SELECT * FROM journeys WHERE guild_id = ?", guildID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get journey: %w", err)
	}
	return &j, nil
}

// GetDay returns the archived snapshot for a day, or nil when none exists.
func (st *Store) GetDay(guildID string, day int) (*weather.Snapshot, error) {
	var row dayRow
	err := st.conn.Get(&row, "SELECT * FROM daily_weather WHERE guild_id = ? AND day = ?", guildID, day)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get day: %w", err)
	}
	return row.toSnapshot()
}

// SaveDay upserts one archived day. Regenerating a day is allowed, so the
// second write for the same (guild, day) replaces the first.
func (st *Store) SaveDay(guildID string, snap *weather.Snapshot) error {
	tx, err := st.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := upsertDay(tx, guildID, snap); err != nil {
		return err
	}
	return tx.Commit()
}

// CommitDay archives a generated day and advances the journey's counters in
// one transaction: either the day is stored and the journey reflects it, or
// neither happens.
func (st *Store) CommitDay(guildID string, snap *weather.Snapshot, coldCd, heatCd int) error {
	tx, err := st.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := upsertDay(tx, guildID, snap); err != nil {
		return err
	}

	_, err = tx.Exec(`UPDATE journeys SET
		current_day = ?, days_since_cold_front = ?, days_since_heat_wave = ?, updated_at = ?
		WHERE guild_id = ?`,
		snap.Day, coldCd, heatCd, time.Now().UTC(), guildID,
	)
	if err != nil {
		return fmt.Errorf("advance day: %w", err)
	}

	return tx.Commit()
}

func upsertDay(tx *sqlx.Tx, guildID string, snap *weather.Snapshot) error {
	windJSON, err := json.Marshal(snap.Wind)
	if err != nil {
		return fmt.Errorf("marshal wind: %w", err)
	}
	effectsJSON, err := json.Marshal(snap.Effects)
	if err != nil {
		return fmt.Errorf("marshal effects: %w", err)
	}

	_, err = tx.Exec(`INSERT OR REPLACE INTO daily_weather
		(guild_id, day, season, province, weather_type, wind_json,
		 temp_actual, temp_perceived, temp_category, temp_modifier, temp_roll,
		 event_type, event_days_remaining, event_total_duration,
		 effects_json, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		guildID, snap.Day, snap.Season, snap.Province, snap.Type, string(windJSON),
		snap.Temperature.Actual, snap.Temperature.Perceived, snap.Temperature.Category,
		snap.Temperature.Modifier, snap.Temperature.Roll,
		snap.Event.Type, snap.Event.DaysRemaining, snap.Event.TotalDuration,
		string(effectsJSON), snap.Description, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("upsert day %d: %w", snap.Day, err)
	}
	return nil
}

// UpdateStageConfig sets the stage presentation settings.
func (st *Store) UpdateStageConfig(guildID string, duration int, mode DisplayMode) error {
	_, err := st.conn.Exec(`UPDATE journeys SET
		stage_duration = ?, stage_display_mode = ?, updated_at = ?
		WHERE guild_id = ?`,
		duration, mode, time.Now().UTC(), guildID,
	)
	if err != nil {
		return fmt.Errorf("update stage config: %w", err)
	}
	return nil
}

// IncrementStage bumps the stage counter after a full stage generates.
func (st *Store) IncrementStage(guildID string) error {
	_, err := st.conn.Exec(`UPDATE journeys SET
		current_stage = current_stage + 1, updated_at = ?
		WHERE guild_id = ?`,
		time.Now().UTC(), guildID,
	)
	if err != nil {
		return fmt.Errorf("increment stage: %w", err)
	}
	return nil
}

// EndJourney deletes the journey and every archived day, returning the
// final day count.
func (st *Store) EndJourney(guildID string) (int, error) {
	j, err := st.GetJourney(guildID)
	if err != nil {
		return 0, err
	}
	if j == nil {
		return 0, nil
	}

	tx, err := st.conn.Beginx()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM daily_weather WHERE guild_id = ?", guildID); err != nil {
		return 0, fmt.Errorf("delete archive: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM journeys WHERE guild_id = ?", guildID); err != nil {
		return 0, fmt.Errorf("delete journey: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	slog.Info("journey ended", "guild", guildID, "days", j.CurrentDay)
	return j.CurrentDay, nil
}

func (row *dayRow) toSnapshot() (*weather.Snapshot, error) {
	snap := &weather.Snapshot{
		Day:      row.Day,
		Season:   weather.Season(row.Season),
		Province: weather.Province(row.Province),
		Type:     weather.WeatherType(row.WeatherType),
		Temperature: weather.Temperature{
			Actual:    row.TempActual,
			Perceived: row.TempPerceived,
			Category:  weather.TemperatureCategory(row.TempCategory),
			Modifier:  row.TempModifier,
			Roll:      row.TempRoll,
		},
		Event: weather.SpecialEvent{
			Type:          weather.EventType(row.EventType),
			DaysRemaining: row.EventDaysRemaining,
			TotalDuration: row.EventTotalDuration,
		},
		Description: row.Description,
	}

	if err := json.Unmarshal([]byte(row.WindJSON), &snap.Wind); err != nil {
		return nil, fmt.Errorf("unmarshal wind for day %d: %w", row.Day, err)
	}
	if err := json.Unmarshal([]byte(row.EffectsJSON), &snap.Effects); err != nil {
		return nil, fmt.Errorf("unmarshal effects for day %d: %w", row.Day, err)
	}

	return snap, nil
}
