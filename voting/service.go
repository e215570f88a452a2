// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/finalizer"
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/kvstore"
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/ledger"
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/menuopts"
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/metrics"
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/models"
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/weekgate"
)

var (
	ErrVotingClosed     = errors.New("voting is not open")
	ErrInvalidSelection = errors.New("invalid selection")
)

// Rejection reasons reported to metrics
const (
	reasonVotingClosed     = "voting_closed"
	reasonIncomplete       = "incomplete_ballot"
	reasonInvalidSelection = "invalid_selection"
	reasonAlreadyVoted     = "already_voted"
	reasonStorage          = "storage_write_failed"
	reasonOther            = "other"
)

// Receipt identifies an accepted ballot
type Receipt struct {
	WeekKey   string
	ReceiptID string
}

// Service is the caller-facing voting API. All wall-clock decisions use the
// mess timezone.
type Service struct {
	ledger  *ledger.Service
	source  *menuopts.Source
	loc     *time.Location
	now     func() time.Time
	metrics metrics.Recorder
}

func NewService(store kvstore.Store, source *menuopts.Source, loc *time.Location, rec metrics.Recorder) *Service {
	if loc == nil {
		loc = time.Local
	}
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Service{
		ledger:  ledger.NewService(store),
		source:  source,
		loc:     loc,
		now:     time.Now,
		metrics: rec,
	}
}

// WithClock replaces the service clock
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) local() time.Time {
	return s.now().In(s.loc)
}

// WeekKey returns the week key for t in the mess timezone
func (s *Service) WeekKey(t time.Time) string {
	return weekgate.WeekKey(t.In(s.loc))
}

func (s *Service) CurrentWeekKey() string {
	return weekgate.WeekKey(s.local())
}

func (s *Service) Status() weekgate.Phase {
	return weekgate.VotingPhase(s.local())
}

func (s *Service) Countdown() string {
	return weekgate.CountdownMessage(s.local())
}

// FetchMealOptions loads the menu-option document, falling back to the cache
func (s *Service) FetchMealOptions(ctx context.Context) (menuopts.Result, error) {
	return s.source.Load(ctx)
}

func (s *Service) HasUserVoted(ctx context.Context, weekKey, userID string) (bool, error) {
	return s.ledger.HasVoted(ctx, weekKey, userID)
}

// SaveVotes records a ballot for weekKey without phase or completeness checks
func (s *Service) SaveVotes(ctx context.Context, weekKey, userID string, selections map[string]string) error {
	err := s.ledger.SaveVotes(ctx, weekKey, userID, selections)
	s.recordOutcome(err)
	return err
}

// SubmitBallot accepts a complete ballot for the current week while voting
// is open. Choices are checked against the menu options when they can be
// loaded (live or cached).
func (s *Service) SubmitBallot(ctx context.Context, userID string, selections map[string]string) (Receipt, error) {
	now := s.local()
	weekKey := weekgate.WeekKey(now)

	if phase := weekgate.VotingPhase(now); phase != weekgate.PhaseOpen {
		s.metrics.RecordBallotRejected(reasonVotingClosed)
		return Receipt{}, ErrVotingClosed
	}

	if err := ValidateBallot(selections); err != nil {
		s.metrics.RecordBallotRejected(reasonIncomplete)
		return Receipt{}, err
	}

	var options models.MenuOptions
	if res, err := s.source.Load(ctx); err != nil {
		slog.Warn("submitting ballot without option check", "error", err, "week_key", weekKey)
	} else {
		options = res.Options
	}

	if err := checkSelections(selections, options); err != nil {
		s.metrics.RecordBallotRejected(reasonInvalidSelection)
		return Receipt{}, err
	}

	if err := s.SaveVotes(ctx, weekKey, userID, selections); err != nil {
		return Receipt{}, err
	}

	receipt := Receipt{WeekKey: weekKey, ReceiptID: uuid.NewString()}
	slog.Info("ballot accepted", "week_key", weekKey, "receipt_id", receipt.ReceiptID)
	return receipt, nil
}

// FinalizedMenu resolves all 21 slots for weekKey against options
func (s *Service) FinalizedMenu(ctx context.Context, weekKey string, options models.MenuOptions) (models.FinalizedMenu, error) {
	l, err := s.ledger.Get(ctx, weekKey)
	if err != nil {
		return nil, err
	}

	menu := finalizer.Finalize(l, options)
	for _, slot := range menu {
		s.metrics.RecordFinalizedSlot(slot.Provenance)
	}
	return menu, nil
}

func (s *Service) VoterCount(ctx context.Context, weekKey string) (int, error) {
	return s.ledger.VoterCount(ctx, weekKey)
}

// SlotVoteCounts returns a slot's tally in first-recorded order
func (s *Service) SlotVoteCounts(ctx context.Context, weekKey, slotKey string) (ledger.Tally, error) {
	return s.ledger.SlotTally(ctx, weekKey, slotKey)
}

// Ledger returns the raw stored ledger for weekKey
func (s *Service) Ledger(ctx context.Context, weekKey string) (*ledger.Ledger, error) {
	return s.ledger.Get(ctx, weekKey)
}

func (s *Service) recordOutcome(err error) {
	switch {
	case err == nil:
		s.metrics.RecordBallotAccepted()
	case errors.Is(err, ledger.ErrAlreadyVoted):
		s.metrics.RecordBallotRejected(reasonAlreadyVoted)
	case errors.Is(err, ledger.ErrStorageWriteFailed):
		s.metrics.RecordBallotRejected(reasonStorage)
	default:
		s.metrics.RecordBallotRejected(reasonOther)
	}
}
