// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the hostel mess vote API server.

Students pick one option for each of the 21 meals (7 days × breakfast, lunch,
dinner) of the coming week. Voting is open on Sundays from 06:00 to 20:00 in
the mess timezone, and each student gets one ballot per week. The finalized
menu takes the most-voted option per meal, falling back to the first option
in the menu document and then to a placeholder.

# Starting the Server

The only required setting is the admin key:

	ADMIN_KEY=secret go run .

Or with flags:

	go run . -p 3318 -admin-key secret -m https://mess.example/meal_options.xml

A .env file in the working directory is loaded first if present.

# Configuration

Required settings:

  - ADMIN_KEY (-admin-key): Key for the admin ledger endpoint

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string (default: file:mess.db, required for postgres)
  - MENU_OPTIONS_SOURCE (-m): URL or path of the XML menu document (default: meal_options.xml)
  - MESS_TIMEZONE (-tz): IANA zone for the voting window (default: Asia/Kolkata)
  - FETCH_TIMEOUT: Menu document fetch timeout (default: 10s)
  - BALLOT_RATE_PER_MIN: Ballot submissions per user or IP per minute, 0 disables (default: 6)
  - LOG_LEVEL (-log-level): debug, info, warn or error (default: info)
  - LOG_FILE (-log-file): Rotate JSON logs into this file instead of stderr
  - LOG_MAX_SIZE_MB, LOG_MAX_BACKUPS, LOG_MAX_AGE_DAYS: Rotation limits

# Architecture

  - voting: Caller-facing service (status, ballots, finalized menu)
  - weekgate: Week keys, voting phase, countdown text
  - menuopts: XML menu document fetch, parse and cache fallback
  - ledger: Per-week ballots and tallies
  - finalizer: Winner selection and menu resolution
  - kvstore: Key-value storage over memory, SQLite or PostgreSQL
  - handlers, router, middleware: HTTP surface
  - metrics, logging: Prometheus collectors and slog setup
  - auth, cliparse, db, models: Supporting pieces

See package documentation for each component.
*/
package main
