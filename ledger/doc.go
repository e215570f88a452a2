// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger records weekly ballots.

Each week has one ledger stored under "votes:<weekKey>":

	{"weekKey":"2026-08","voters":{"alice":true},"votes":{"monday_breakfast":{"Poha":1}}}

Tallies keep options in the order they first received a vote, and that order
survives storage. A user can vote once per week; a second ballot returns
ErrAlreadyVoted and changes nothing. An unreadable ledger is logged and
treated as empty.
*/
package ledger
