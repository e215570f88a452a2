package weekgate

import (
	"testing"
	"time"
)

var ist = time.FixedZone("IST", 5*60*60+30*60)

func date(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, ist)
}

func TestWeekKey(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"monday", date(2026, time.February, 9, 9), "2026-07"},
		{"saturday", date(2026, time.February, 14, 23), "2026-07"},
		{"sunday maps to next week", date(2026, time.February, 15, 10), "2026-08"},
		{"sunday before voting week", date(2026, time.February, 8, 0), "2026-07"},
		{"year boundary sunday", date(2025, time.December, 28, 12), "2026-01"},
		{"week 53", date(2027, time.January, 1, 12), "2026-53"},
		{"single digit padded", date(2026, time.January, 7, 12), "2026-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekKey(tt.at); got != tt.want {
				t.Errorf("WeekKey(%s) = %s, want %s", tt.at, got, tt.want)
			}
		})
	}
}

func TestWeekKey_SameAcrossMondayToSaturday(t *testing.T) {
	monday := date(2026, time.March, 2, 0)
	want := WeekKey(monday)

	for i := 0; i < 6*24; i++ {
		at := monday.Add(time.Duration(i) * time.Hour)
		if got := WeekKey(at); got != want {
			t.Fatalf("WeekKey(%s) = %s, want %s", at, got, want)
		}
	}
}

func TestWeekKey_SundayEqualsFollowingMonday(t *testing.T) {
	sunday := date(2026, time.January, 4, 0)
	for d := 0; d < 60; d++ {
		s := sunday.AddDate(0, 0, 7*d)
		m := s.AddDate(0, 0, 1)
		if WeekKey(s) != WeekKey(m) {
			t.Errorf("WeekKey(%s) = %s, following Monday = %s", s, WeekKey(s), WeekKey(m))
		}
	}
}

func TestVotingPhase_AllHoursOfWeek(t *testing.T) {
	// 2026-02-09 is a Monday
	start := date(2026, time.February, 9, 0)

	for i := 0; i < 168; i++ {
		at := start.Add(time.Duration(i) * time.Hour)

		want := PhaseClosed
		if at.Weekday() == time.Sunday {
			switch {
			case at.Hour() >= 6 && at.Hour() < 20:
				want = PhaseOpen
			case at.Hour() >= 20:
				want = PhaseTallying
			}
		}

		if got := VotingPhase(at); got != want {
			t.Errorf("VotingPhase(%s) = %s, want %s", at.Format(time.RFC1123), got, want)
		}
	}
}

func TestVotingPhase_Boundaries(t *testing.T) {
	tests := []struct {
		at   time.Time
		want Phase
	}{
		{time.Date(2026, time.February, 15, 5, 59, 59, 0, ist), PhaseClosed},
		{time.Date(2026, time.February, 15, 6, 0, 0, 0, ist), PhaseOpen},
		{time.Date(2026, time.February, 15, 19, 59, 59, 0, ist), PhaseOpen},
		{time.Date(2026, time.February, 15, 20, 0, 0, 0, ist), PhaseTallying},
		{time.Date(2026, time.February, 15, 23, 59, 59, 0, ist), PhaseTallying},
		{time.Date(2026, time.February, 16, 0, 0, 0, 0, ist), PhaseClosed},
	}

	for _, tt := range tests {
		if got := VotingPhase(tt.at); got != tt.want {
			t.Errorf("VotingPhase(%s) = %s, want %s", tt.at, got, tt.want)
		}
	}
}

func TestVotingPhase_UsesLocalTime(t *testing.T) {
	// Sunday 07:00 IST is Sunday 01:30 UTC
	at := date(2026, time.February, 15, 7)
	if got := VotingPhase(at); got != PhaseOpen {
		t.Errorf("IST: got %s, want OPEN", got)
	}
	if got := VotingPhase(at.UTC()); got != PhaseClosed {
		t.Errorf("UTC: got %s, want CLOSED", got)
	}
}

func TestCountdownMessage(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"sunday early", date(2026, time.February, 15, 1), "Voting opens in 5 hours"},
		{"sunday one hour before", date(2026, time.February, 15, 5), "Voting opens in 1 hour"},
		{"sunday open", date(2026, time.February, 15, 12), "Voting closes today at 20:00"},
		{"sunday tallying", date(2026, time.February, 15, 21), "Next voting window: Sunday (7 days away)"},
		{"monday", date(2026, time.February, 16, 9), "Next voting window: Sunday (6 days away)"},
		{"saturday", date(2026, time.February, 21, 9), "Next voting window: Sunday (1 day away)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountdownMessage(tt.at); got != tt.want {
				t.Errorf("CountdownMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
