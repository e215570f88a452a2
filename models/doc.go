// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the shared menu types and the request/response types
for the API.

# Slots

A week has 21 slots, one per (day, meal type):

	models.SlotKey("monday", "breakfast") // "monday_breakfast"
	models.AllSlots()                     // day-major, monday_breakfast first

# Domain Types

  - MealOption: id + display name from the menu-option document
  - MenuOptions: day -> meal type -> ordered option list
  - FinalizedSlot / FinalizedMenu: resolved option per slot with provenance
  - OptionCount: one tally entry

MealOption decodes from either an object or a bare string, so cached
documents written by older clients still load.

# Provenance

	ProvenanceVoted       = "voted"
	ProvenanceDefault     = "default"
	ProvenancePlaceholder = "placeholder"

# Response Types

  - VotingStatusResponse: week_key, status, countdown, voter_count
  - MealOptionsResponse: success, data, from_cache, code, error
  - SubmitBallotResponse: success, week_key, receipt_id, message
  - HasVotedResponse, VoterCountResponse, SlotVotesResponse
  - FinalizedMenuResponse: week_key, voter_count, menu
  - ErrorResponse: error, code, message, details
*/
package models
