// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/auth"
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/cliparse"
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/middleware"
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/models"
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/voting"
)

type VotingHandler struct {
	svc *voting.Service
	cfg cliparse.Config
}

func NewVotingHandler(svc *voting.Service, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{svc: svc, cfg: cfg}
}

// GetStatus handles GET /voting/status
func (h *VotingHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	weekKey := h.svc.CurrentWeekKey()

	count, err := h.svc.VoterCount(r.Context(), weekKey)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VotingStatusResponse{
		WeekKey:    weekKey,
		Status:     string(h.svc.Status()),
		Countdown:  h.svc.Countdown(),
		VoterCount: count,
	})
}

// SubmitBallot handles POST /ballots
func (h *VotingHandler) SubmitBallot(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.NormalizeUserID(r.Header.Get(middleware.HeaderUserID))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, CodeUserRequired, "X-User-ID header required")
		return
	}

	// Parse request
	var req models.SubmitBallotRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, CodeInvalidJSON, "Invalid JSON")
		return
	}

	receipt, err := h.svc.SubmitBallot(r.Context(), userID, req.Selections)
	if err != nil {
		slog.Info("ballot rejected",
			"request_id", middleware.RequestIDFromContext(r.Context()),
			"user_hash", auth.HashIdentifier(userID, h.cfg.AdminKey),
			"reason", err,
		)
		writeServiceError(w, r, err)
		return
	}

	slog.Info("ballot submitted",
		"request_id", middleware.RequestIDFromContext(r.Context()),
		"week_key", receipt.WeekKey,
		"user_hash", auth.HashIdentifier(userID, h.cfg.AdminKey),
		"ip_hash", auth.HashIdentifier(middleware.GetClientIP(r), h.cfg.AdminKey),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitBallotResponse{
		Success:   true,
		WeekKey:   receipt.WeekKey,
		ReceiptID: receipt.ReceiptID,
		Message:   "Votes submitted successfully",
	})
}

// HasVoted handles GET /weeks/{week}/voters/{user}
func (h *VotingHandler) HasVoted(w http.ResponseWriter, r *http.Request) {
	weekKey, ok := weekFromPath(w, r, h.svc)
	if !ok {
		return
	}

	userID, err := auth.NormalizeUserID(r.PathValue("user"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, CodeUserRequired, "user is required")
		return
	}

	voted, err := h.svc.HasUserVoted(r.Context(), weekKey, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.HasVotedResponse{
		WeekKey:  weekKey,
		UserID:   userID,
		HasVoted: voted,
	})
}

// GetVoterCount handles GET /weeks/{week}/voters/count
func (h *VotingHandler) GetVoterCount(w http.ResponseWriter, r *http.Request) {
	weekKey, ok := weekFromPath(w, r, h.svc)
	if !ok {
		return
	}

	count, err := h.svc.VoterCount(r.Context(), weekKey)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoterCountResponse{
		WeekKey:    weekKey,
		VoterCount: count,
	})
}
