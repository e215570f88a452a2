// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/cliparse"
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/handlers"
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/metrics"
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/middleware"
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/voting"
)

func NewRouter(svc *voting.Service, cfg cliparse.Config, limiter *middleware.RateLimiter, gatherer prometheus.Gatherer) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	votingHandler := handlers.NewVotingHandler(svc, cfg)
	resultsHandler := handlers.NewResultsHandler(svc, cfg)
	adminHandler := handlers.NewAdminHandler(svc, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", metrics.Handler(gatherer))

	// Voting
	mux.HandleFunc("GET /voting/status", middleware.WithLogging(votingHandler.GetStatus))
	mux.HandleFunc("POST /ballots", middleware.WithLogging(limiter.Middleware(votingHandler.SubmitBallot)))
	mux.HandleFunc("GET /weeks/{week}/voters/count", middleware.WithLogging(votingHandler.GetVoterCount))
	mux.HandleFunc("GET /weeks/{week}/voters/{user}", middleware.WithLogging(votingHandler.HasVoted))

	// Menu options and results
	mux.HandleFunc("GET /meal-options", middleware.WithLogging(resultsHandler.GetMealOptions))
	mux.HandleFunc("GET /weeks/{week}/slots/{slot}/votes", middleware.WithLogging(resultsHandler.GetSlotVotes))
	mux.HandleFunc("GET /weeks/{week}/menu", middleware.WithLogging(resultsHandler.GetFinalizedMenu))

	// Admin (requires X-Admin-Key)
	mux.HandleFunc("GET /admin/weeks/{week}/ledger", middleware.WithLogging(adminHandler.GetLedger))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("mess-vote API v1"))
	})

	return mux
}
