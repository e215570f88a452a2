// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/cliparse"
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/middleware"
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/models"
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/voting"
)

type ResultsHandler struct {
	svc *voting.Service
	cfg cliparse.Config
}

func NewResultsHandler(svc *voting.Service, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{svc: svc, cfg: cfg}
}

// GetMealOptions handles GET /meal-options
// Serves the live document, or the cached copy with from_cache set
func (h *ResultsHandler) GetMealOptions(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.FetchMealOptions(r.Context())
	if err != nil {
		slog.Error("menu options unavailable",
			"request_id", middleware.RequestIDFromContext(r.Context()),
			"error", err,
		)
		middleware.JSONResponse(w, http.StatusBadGateway, models.MealOptionsResponse{
			Success: false,
			Code:    CodeMenuUnavailable,
			Error:   "menu options are unavailable and nothing is cached",
		})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MealOptionsResponse{
		Success:   true,
		Data:      res.Options,
		FromCache: res.FromCache,
	})
}

// GetSlotVotes handles GET /weeks/{week}/slots/{slot}/votes
// Counts are listed in the order each option first received a vote
func (h *ResultsHandler) GetSlotVotes(w http.ResponseWriter, r *http.Request) {
	weekKey, ok := weekFromPath(w, r, h.svc)
	if !ok {
		return
	}

	slotKey := r.PathValue("slot")
	if !models.IsValidSlot(slotKey) {
		middleware.ErrorResponse(w, http.StatusBadRequest, CodeInvalidSlot, "unknown slot "+slotKey)
		return
	}

	tally, err := h.svc.SlotVoteCounts(r.Context(), weekKey, slotKey)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	counts := []models.OptionCount(tally)
	if counts == nil {
		counts = []models.OptionCount{}
	}

	middleware.JSONResponse(w, http.StatusOK, models.SlotVotesResponse{
		WeekKey: weekKey,
		SlotKey: slotKey,
		Counts:  counts,
	})
}

// GetFinalizedMenu handles GET /weeks/{week}/menu
// Without any menu options (live or cached) every slot is a placeholder
func (h *ResultsHandler) GetFinalizedMenu(w http.ResponseWriter, r *http.Request) {
	weekKey, ok := weekFromPath(w, r, h.svc)
	if !ok {
		return
	}

	var (
		options   models.MenuOptions
		fromCache bool
	)
	res, err := h.svc.FetchMealOptions(r.Context())
	if err != nil {
		slog.Warn("finalizing menu without options",
			"request_id", middleware.RequestIDFromContext(r.Context()),
			"week_key", weekKey,
			"error", err,
		)
	} else {
		options, fromCache = res.Options, res.FromCache
	}

	menu, err := h.svc.FinalizedMenu(r.Context(), weekKey, options)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	count, err := h.svc.VoterCount(r.Context(), weekKey)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.FinalizedMenuResponse{
		WeekKey:    weekKey,
		FromCache:  fromCache,
		VoterCount: count,
		Menu:       menu,
	})
}
