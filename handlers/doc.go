// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the mess voting API.

# Handler Types

Each handler is a struct over the voting service and config:

  - VotingHandler: status, ballot submission, voter lookups
  - ResultsHandler: menu options, slot tallies, finalized menu
  - AdminHandler: raw ledger dump

	votingHandler := handlers.NewVotingHandler(svc, cfg)

# Weekly Cycle

Voting runs on Sunday from 06:00 to 20:00 in the mess timezone and decides
the menu for the week starting the next day. A ballot needs one choice for
each of the 21 day/meal slots:

	POST /ballots  (X-User-ID: <id>)
	{"selections": {"monday_breakfast": "Poha", ...}}

# Week Keys

Paths take an ISO week key such as 2026-08, or "current".

# Errors

Failures are JSON ErrorResponse bodies with a machine-readable code:

	409 ALREADY_VOTED         the user already has a ballot this week
	409 VOTING_CLOSED         outside the Sunday window
	400 INCOMPLETE_BALLOT     details lists the missing slots
	400 INVALID_SELECTION     choice is not on the slot's menu
	503 STORAGE_WRITE_FAILED  the ledger could not be saved
	502 MENU_UNAVAILABLE      no live or cached menu options
*/
package handlers
