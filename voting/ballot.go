// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"fmt"
	"sort"
	"strings"

	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/models"
)

// IncompleteBallotError lists slots that have no selection, in menu order
type IncompleteBallotError struct {
	Missing []string
}

func (e *IncompleteBallotError) Error() string {
	shown := e.Missing
	if len(shown) > 3 {
		shown = shown[:3]
	}
	msg := "please select options for all meals. Missing: " + strings.Join(shown, ", ")
	if extra := len(e.Missing) - len(shown); extra > 0 {
		msg += fmt.Sprintf(" +%d more", extra)
	}
	return msg
}

// ValidateBallot checks that every one of the 21 slots has a non-empty choice
func ValidateBallot(selections map[string]string) error {
	var missing []string
	for _, slot := range models.AllSlots() {
		if strings.TrimSpace(selections[slot]) == "" {
			missing = append(missing, slot)
		}
	}
	if len(missing) > 0 {
		return &IncompleteBallotError{Missing: missing}
	}
	return nil
}

// checkSelections verifies each slot key is real and each choice is one of
// that slot's options. Slots with no options in the document accept any name.
func checkSelections(selections map[string]string, options models.MenuOptions) error {
	slots := make([]string, 0, len(selections))
	for slot := range selections {
		slots = append(slots, slot)
	}
	sort.Strings(slots)

	for _, slot := range slots {
		if !models.IsValidSlot(slot) {
			return fmt.Errorf("%w: unknown slot %q", ErrInvalidSelection, slot)
		}
		if options == nil {
			continue
		}

		day, meal, _ := strings.Cut(slot, "_")
		available := options.OptionsFor(day, meal)
		if len(available) == 0 {
			continue
		}

		found := false
		for _, opt := range available {
			if opt.Name == selections[slot] {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: %q is not an option for %s", ErrInvalidSelection, selections[slot], slot)
		}
	}

	return nil
}
