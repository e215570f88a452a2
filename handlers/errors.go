// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/ledger"
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/menuopts"
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/middleware"
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/voting"
)

// Error codes returned in ErrorResponse.Code
const (
	CodeAlreadyVoted       = "ALREADY_VOTED"
	CodeVotingClosed       = "VOTING_CLOSED"
	CodeIncompleteBallot   = "INCOMPLETE_BALLOT"
	CodeInvalidSelection   = "INVALID_SELECTION"
	CodeStorageWriteFailed = "STORAGE_WRITE_FAILED"
	CodeMenuUnavailable    = "MENU_UNAVAILABLE"
	CodeUserRequired       = "USER_REQUIRED"
	CodeInvalidWeek        = "INVALID_WEEK"
	CodeInvalidSlot        = "INVALID_SLOT"
	CodeInvalidJSON        = "INVALID_JSON"
	CodeInvalidAdminKey    = "INVALID_ADMIN_KEY"
	CodeInternal           = "INTERNAL"
)

// currentWeek is accepted in place of a week key in paths
const currentWeek = "current"

// ISO weeks run 01 to 53
var weekKeyPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|[1-4]\d|5[0-3])$`)

// weekFromPath reads {week}, resolving the current alias. It writes a 400
// and returns false for malformed keys.
func weekFromPath(w http.ResponseWriter, r *http.Request, svc *voting.Service) (string, bool) {
	week := r.PathValue("week")
	if week == currentWeek {
		return svc.CurrentWeekKey(), true
	}
	if !weekKeyPattern.MatchString(week) {
		middleware.ErrorResponse(w, http.StatusBadRequest, CodeInvalidWeek, "week must look like 2026-07 or be 'current'")
		return "", false
	}
	return week, true
}

// writeServiceError maps voting, ledger and menu option errors to a status
// and error code
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var incomplete *voting.IncompleteBallotError

	switch {
	case errors.As(err, &incomplete):
		middleware.ErrorResponse(w, http.StatusBadRequest, CodeIncompleteBallot, incomplete.Error(), incomplete.Missing...)
	case errors.Is(err, voting.ErrVotingClosed):
		middleware.ErrorResponse(w, http.StatusConflict, CodeVotingClosed, "voting is open on Sundays from 06:00 to 20:00")
	case errors.Is(err, voting.ErrInvalidSelection):
		middleware.ErrorResponse(w, http.StatusBadRequest, CodeInvalidSelection, err.Error())
	case errors.Is(err, ledger.ErrAlreadyVoted):
		middleware.ErrorResponse(w, http.StatusConflict, CodeAlreadyVoted, ledger.ErrAlreadyVoted.Error())
	case errors.Is(err, ledger.ErrUserRequired):
		middleware.ErrorResponse(w, http.StatusUnauthorized, CodeUserRequired, "X-User-ID header required")
	case errors.Is(err, ledger.ErrStorageWriteFailed):
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, CodeStorageWriteFailed, ledger.ErrStorageWriteFailed.Error())
	case errors.Is(err, menuopts.ErrFetchFailed), errors.Is(err, menuopts.ErrParseFailed):
		middleware.ErrorResponse(w, http.StatusBadGateway, CodeMenuUnavailable, "menu options are unavailable")
	default:
		slog.Error("request failed",
			"request_id", middleware.RequestIDFromContext(r.Context()),
			"path", r.URL.Path,
			"error", err,
		)
		middleware.ErrorResponse(w, http.StatusInternalServerError, CodeInternal, "Database error")
	}
}
