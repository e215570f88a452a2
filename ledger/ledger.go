// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/kvstore"
)

var (
	ErrAlreadyVoted       = errors.New("you have already voted this week")
	ErrStorageWriteFailed = errors.New("failed to save vote")
	ErrUserRequired       = errors.New("user id is required")
)

// Ledger is the stored vote record for one week
type Ledger struct {
	WeekKey string           `json:"weekKey"`
	Voters  map[string]bool  `json:"voters"`
	Votes   map[string]Tally `json:"votes"`
}

// Empty returns a ledger with no voters for weekKey
func Empty(weekKey string) *Ledger {
	return &Ledger{
		WeekKey: weekKey,
		Voters:  make(map[string]bool),
		Votes:   make(map[string]Tally),
	}
}

// VoterCount returns the number of users who submitted a ballot
func (l *Ledger) VoterCount() int {
	return len(l.Voters)
}

// Tally returns the counts for one slot, empty if it has no votes
func (l *Ledger) Tally(slotKey string) Tally {
	return l.Votes[slotKey]
}

// Key returns the storage key for a week's ledger
func Key(weekKey string) string {
	return "votes:" + weekKey
}

// Service records ballots and reads tallies from a kvstore.Store
type Service struct {
	store kvstore.Store
}

func NewService(store kvstore.Store) *Service {
	return &Service{store: store}
}

// Get reads the ledger for weekKey. A missing or unreadable entry yields an
// empty ledger; only storage failures are returned as errors.
func (s *Service) Get(ctx context.Context, weekKey string) (*Ledger, error) {
	raw, found, err := s.store.Get(ctx, Key(weekKey))
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}
	return decode(weekKey, raw, found), nil
}

func (s *Service) HasVoted(ctx context.Context, weekKey, userID string) (bool, error) {
	l, err := s.Get(ctx, weekKey)
	if err != nil {
		return false, err
	}
	return l.Voters[userID], nil
}

func (s *Service) VoterCount(ctx context.Context, weekKey string) (int, error) {
	l, err := s.Get(ctx, weekKey)
	if err != nil {
		return 0, err
	}
	return l.VoterCount(), nil
}

func (s *Service) SlotTally(ctx context.Context, weekKey, slotKey string) (Tally, error) {
	l, err := s.Get(ctx, weekKey)
	if err != nil {
		return nil, err
	}
	return l.Tally(slotKey), nil
}

// SaveVotes records userID as a voter and adds one vote per selection.
// A second ballot from the same user is rejected with ErrAlreadyVoted and
// changes nothing. Completeness of selections is the caller's concern.
func (s *Service) SaveVotes(ctx context.Context, weekKey, userID string, selections map[string]string) error {
	if userID == "" {
		return ErrUserRequired
	}

	// Stable order keeps stored documents deterministic
	slots := make([]string, 0, len(selections))
	for slot := range selections {
		slots = append(slots, slot)
	}
	sort.Strings(slots)

	err := s.store.Update(ctx, Key(weekKey), func(cur []byte, found bool) ([]byte, error) {
		l := decode(weekKey, cur, found)

		if l.Voters[userID] {
			return nil, ErrAlreadyVoted
		}
		l.Voters[userID] = true

		for _, slot := range slots {
			tally := l.Votes[slot]
			tally.Increment(selections[slot])
			l.Votes[slot] = tally
		}

		return json.Marshal(l)
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrAlreadyVoted):
		return err
	case errors.Is(err, kvstore.ErrWrite):
		slog.Error("failed to persist ballot", "error", err, "week_key", weekKey)
		return fmt.Errorf("%w: %w", ErrStorageWriteFailed, err)
	default:
		return fmt.Errorf("failed to save votes: %w", err)
	}
}

func decode(weekKey string, raw []byte, found bool) *Ledger {
	if !found || len(raw) == 0 {
		return Empty(weekKey)
	}

	var l Ledger
	if err := json.Unmarshal(raw, &l); err != nil {
		slog.Warn("discarding unreadable ledger", "week_key", weekKey, "error", err)
		return Empty(weekKey)
	}

	if l.WeekKey == "" {
		l.WeekKey = weekKey
	}
	if l.Voters == nil {
		l.Voters = make(map[string]bool)
	}
	if l.Votes == nil {
		l.Votes = make(map[string]Tally)
	}
	return &l
}
