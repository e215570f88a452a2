// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/auth"
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/cliparse"
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/middleware"
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/voting"
)

type AdminHandler struct {
	svc *voting.Service
	cfg cliparse.Config
}

func NewAdminHandler(svc *voting.Service, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{svc: svc, cfg: cfg}
}

// GetLedger handles GET /admin/weeks/{week}/ledger
// Dumps the stored ledger, including voter ids
func (h *AdminHandler) GetLedger(w http.ResponseWriter, r *http.Request) {
	if err := auth.ValidateAdminKey(r.Header.Get(middleware.HeaderAdminKey), h.cfg.AdminKey); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, CodeInvalidAdminKey, "Invalid admin key")
		return
	}

	weekKey, ok := weekFromPath(w, r, h.svc)
	if !ok {
		return
	}

	l, err := h.svc.Ledger(r.Context(), weekKey)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	slog.Info("ledger dumped",
		"request_id", middleware.RequestIDFromContext(r.Context()),
		"week_key", weekKey,
		"voters", l.VoterCount(),
	)

	middleware.JSONResponse(w, http.StatusOK, l)
}
