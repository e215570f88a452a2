// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package weekgate maps wall-clock time to week keys and voting phases.
package weekgate

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize/english"
)

// Phase is the stage of the weekly voting cycle
type Phase string

const (
	PhaseOpen     Phase = "OPEN"
	PhaseTallying Phase = "TALLYING"
	PhaseClosed   Phase = "CLOSED"
)

// Voting window on Sunday, local hours [OpenHour, CloseHour)
const (
	OpenHour  = 6
	CloseHour = 20
)

// WeekKey returns the "<ISO-year>-<ISO-week>" key for t.
// Sunday is voting day for the following week, so it maps forward one day.
func WeekKey(t time.Time) string {
	if t.Weekday() == time.Sunday {
		t = t.AddDate(0, 0, 1)
	}
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-%02d", year, week)
}

// VotingPhase returns the phase for t, using t's own location as local time
func VotingPhase(t time.Time) Phase {
	if t.Weekday() != time.Sunday {
		return PhaseClosed
	}

	hour := t.Hour()
	switch {
	case hour >= OpenHour && hour < CloseHour:
		return PhaseOpen
	case hour >= CloseHour:
		return PhaseTallying
	default:
		return PhaseClosed
	}
}

// CountdownMessage describes the distance to the next voting transition
func CountdownMessage(t time.Time) string {
	day := t.Weekday()
	hour := t.Hour()

	if day == time.Sunday && hour < OpenHour {
		return fmt.Sprintf("Voting opens in %s", english.Plural(OpenHour-hour, "hour", ""))
	}
	if day == time.Sunday && hour < CloseHour {
		return "Voting closes today at 20:00"
	}

	daysUntilSunday := (7 - int(day)) % 7
	if daysUntilSunday == 0 {
		// Sunday evening, the next window is a week away
		daysUntilSunday = 7
	}
	return fmt.Sprintf("Next voting window: Sunday (%s away)", english.Plural(daysUntilSunday, "day", ""))
}
