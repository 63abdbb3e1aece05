package journey

import "fmt"

// NoJourneyError signals that a guild has no active journey. Recoverable;
// the command layer renders it as a "start one first" message.
type NoJourneyError struct {
	GuildID string
}

func (e *NoJourneyError) Error() string {
	return fmt.Sprintf("no active journey for guild %s", e.GuildID)
}

// DayNotFoundError signals that a requested day has no archived weather.
type DayNotFoundError struct {
	GuildID string
	Day     int
}

func (e *DayNotFoundError) Error() string {
	return fmt.Sprintf("no weather archived for day %d (guild %s)", e.Day, e.GuildID)
}

// ValidationError rejects bad configuration input before any state change.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
