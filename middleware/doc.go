// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Each request gets an id (the incoming X-Request-ID or a new UUID) that is
echoed in the response and available via RequestIDFromContext. Start and
completion are logged with method, path, status and duration_ms.

# Metrics

WithMetrics wraps the whole mux and counts responses by status code.

# Rate Limiting

Ballot submission is limited per X-User-ID (client IP when absent) with a
token bucket from golang.org/x/time/rate:

	limiter := middleware.NewRateLimiter(cfg.BallotRatePerMin, 5*time.Minute)
	mux.HandleFunc("POST /ballots", middleware.WithLogging(limiter.Middleware(h.SubmitBallot)))

Rejected requests get 429 with a Retry-After header.

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows GET, POST and OPTIONS with the X-User-ID and X-Admin-Key headers.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusConflict, "ALREADY_VOTED", "you have already voted this week")
	err := middleware.ParseJSONBody(r, &req)

# Client IP

GetClientIP checks X-Forwarded-For, then X-Real-IP, then RemoteAddr.
*/
package middleware
