// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package finalizer

import (
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/ledger"
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/models"
)

// Winner returns the option with the strictly highest count. Entries are
// scanned in first-recorded order, so on a tie the option that received
// its first vote earliest wins. ok is false when the tally has no votes.
func Winner(tally ledger.Tally) (name string, ok bool) {
	maxVotes := 0
	for _, oc := range tally {
		if oc.Count > maxVotes {
			maxVotes = oc.Count
			name = oc.Name
			ok = true
		}
	}
	return name, ok
}

// Finalize resolves all 21 slots. A slot takes its voted winner when the
// winner still names one of the slot's options, otherwise the first option
// from the document, otherwise a TBD placeholder.
func Finalize(l *ledger.Ledger, options models.MenuOptions) models.FinalizedMenu {
	menu := make(models.FinalizedMenu, len(models.Days)*len(models.MealTypes))

	for _, day := range models.Days {
		for _, meal := range models.MealTypes {
			slotKey := models.SlotKey(day, meal)
			menu[slotKey] = resolveSlot(l.Tally(slotKey), options.OptionsFor(day, meal))
		}
	}

	return menu
}

func resolveSlot(tally ledger.Tally, options []models.MealOption) models.FinalizedSlot {
	if len(options) == 0 {
		return models.FinalizedSlot{
			ID:         models.PlaceholderID,
			Name:       "TBD",
			Provenance: models.ProvenancePlaceholder,
		}
	}

	if winner, ok := Winner(tally); ok {
		for _, opt := range options {
			if opt.Name == winner {
				return models.FinalizedSlot{ID: opt.ID, Name: opt.Name, Provenance: models.ProvenanceVoted}
			}
		}
	}

	first := options[0]
	return models.FinalizedSlot{ID: first.ID, Name: first.Name, Provenance: models.ProvenanceDefault}
}
