// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting is the caller-facing API of the mess menu vote.

Service ties the week gate, menu options, ledger and finalizer together
behind one clock and timezone:

	svc := voting.NewService(store, source, loc, collector)
	receipt, err := svc.SubmitBallot(ctx, userID, selections)
	menu, err := svc.FinalizedMenu(ctx, "2026-08", options)

SubmitBallot only accepts complete ballots for the current week while voting
is open.
*/
package voting
