package models

import (
	"encoding/json"
	"fmt"
)

// Days of the mess week, in menu order
var Days = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// Meal types served each day, in menu order
var MealTypes = []string{"breakfast", "lunch", "dinner"}

// Provenance constants
const (
	ProvenanceVoted       = "voted"
	ProvenanceDefault     = "default"
	ProvenancePlaceholder = "placeholder"
)

// PlaceholderID is used for slots with no source options at all
const PlaceholderID = "TBD"

// SlotKey builds the "<day>_<mealType>" key for a menu slot
func SlotKey(day, mealType string) string {
	return day + "_" + mealType
}

// AllSlots returns the 21 slot keys in day-major order
func AllSlots() []string {
	slots := make([]string, 0, len(Days)*len(MealTypes))
	for _, day := range Days {
		for _, meal := range MealTypes {
			slots = append(slots, SlotKey(day, meal))
		}
	}
	return slots
}

// IsValidSlot reports whether slotKey names one of the 21 slots
func IsValidSlot(slotKey string) bool {
	for _, day := range Days {
		for _, meal := range MealTypes {
			if SlotKey(day, meal) == slotKey {
				return true
			}
		}
	}
	return false
}

func IsValidDay(day string) bool {
	for _, d := range Days {
		if d == day {
			return true
		}
	}
	return false
}

func IsValidMealType(mealType string) bool {
	for _, m := range MealTypes {
		if m == mealType {
			return true
		}
	}
	return false
}

// Domain types

type MealOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UnmarshalJSON accepts both {"id","name"} objects and bare strings.
// Older cached documents stored options as plain names.
func (o *MealOption) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*o = MealOption{Name: name}
		return nil
	}

	var obj struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("meal option must be a string or object: %w", err)
	}
	*o = MealOption{ID: obj.ID, Name: obj.Name}
	return nil
}

// MenuOptions maps day -> meal type -> ordered option list
type MenuOptions map[string]map[string][]MealOption

// OptionsFor returns the ordered options for one slot, nil if none
func (m MenuOptions) OptionsFor(day, mealType string) []MealOption {
	if m == nil {
		return nil
	}
	return m[day][mealType]
}

// FinalizedSlot is the resolved option for one slot plus where it came from
type FinalizedSlot struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Provenance string `json:"provenance"`
}

// FinalizedMenu maps slot key -> resolved option
type FinalizedMenu map[string]FinalizedSlot

// OptionCount is one entry of a slot tally
type OptionCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Request types

// slot_key -> option name
type SubmitBallotRequest struct {
	Selections map[string]string `json:"selections"`
}

// Response types

type VotingStatusResponse struct {
	WeekKey    string `json:"week_key"`
	Status     string `json:"status"`
	Countdown  string `json:"countdown"`
	VoterCount int    `json:"voter_count"`
}

type MealOptionsResponse struct {
	Success   bool        `json:"success"`
	Data      MenuOptions `json:"data"`
	FromCache bool        `json:"from_cache,omitempty"`
	Code      string      `json:"code,omitempty"`
	Error     string      `json:"error,omitempty"`
}

type SubmitBallotResponse struct {
	Success   bool   `json:"success"`
	WeekKey   string `json:"week_key"`
	ReceiptID string `json:"receipt_id"`
	Message   string `json:"message"`
}

type HasVotedResponse struct {
	WeekKey  string `json:"week_key"`
	UserID   string `json:"user_id"`
	HasVoted bool   `json:"has_voted"`
}

type VoterCountResponse struct {
	WeekKey    string `json:"week_key"`
	VoterCount int    `json:"voter_count"`
}

type SlotVotesResponse struct {
	WeekKey string        `json:"week_key"`
	SlotKey string        `json:"slot_key"`
	Counts  []OptionCount `json:"counts"`
}

type FinalizedMenuResponse struct {
	WeekKey    string        `json:"week_key"`
	FromCache  bool          `json:"from_cache,omitempty"`
	VoterCount int           `json:"voter_count"`
	Menu       FinalizedMenu `json:"menu"`
}

// Error response

type ErrorResponse struct {
	Error   string   `json:"error"`
	Code    string   `json:"code,omitempty"`
	Message string   `json:"message,omitempty"`
	Details []string `json:"details,omitempty"`
}
