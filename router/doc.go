// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the mess voting API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(svc, cfg, limiter, registry)

# Endpoints

Health and metrics:

	GET /health
	GET /metrics

Voting:

	GET  /voting/status                 - Week key, phase, countdown, voters
	POST /ballots                       - Submit a week's ballot (X-User-ID, rate limited)
	GET  /weeks/{week}/voters/count     - Number of voters
	GET  /weeks/{week}/voters/{user}    - Whether a user has voted

Menu and results:

	GET /meal-options                   - Option document (live or cached)
	GET /weeks/{week}/slots/{slot}/votes - Ordered tally for one slot
	GET /weeks/{week}/menu              - Finalized 21-slot menu

Admin (requires X-Admin-Key):

	GET /admin/weeks/{week}/ledger      - Raw stored ledger

{week} is an ISO week key such as 2026-08 or the alias "current". The
literal voters/count route takes precedence over voters/{user}.
*/
package router
