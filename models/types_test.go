package models

import (
	"encoding/json"
	"testing"
)

func TestAllSlots(t *testing.T) {
	slots := AllSlots()
	if len(slots) != 21 {
		t.Fatalf("expected 21 slots, got %d", len(slots))
	}
	if slots[0] != "monday_breakfast" {
		t.Errorf("expected first slot monday_breakfast, got %s", slots[0])
	}
	if slots[20] != "sunday_dinner" {
		t.Errorf("expected last slot sunday_dinner, got %s", slots[20])
	}

	seen := make(map[string]bool)
	for _, s := range slots {
		if seen[s] {
			t.Errorf("duplicate slot %s", s)
		}
		seen[s] = true
		if !IsValidSlot(s) {
			t.Errorf("IsValidSlot(%s) = false", s)
		}
	}
}

func TestIsValidSlot_Rejects(t *testing.T) {
	for _, s := range []string{"", "monday", "monday_brunch", "funday_lunch", "Monday_lunch"} {
		if IsValidSlot(s) {
			t.Errorf("IsValidSlot(%q) = true, want false", s)
		}
	}
}

func TestMealOption_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    MealOption
		wantErr bool
	}{
		{"object", `{"id":"b1","name":"Idli Sambar"}`, MealOption{ID: "b1", Name: "Idli Sambar"}, false},
		{"bare string", `"Poha"`, MealOption{Name: "Poha"}, false},
		{"number", `42`, MealOption{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got MealOption
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMenuOptions_MixedCacheDocument(t *testing.T) {
	raw := `{"monday":{"breakfast":["Idli Sambar",{"id":"b2","name":"Poha"}]}}`

	var opts MenuOptions
	if err := json.Unmarshal([]byte(raw), &opts); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	got := opts.OptionsFor("monday", "breakfast")
	if len(got) != 2 {
		t.Fatalf("expected 2 options, got %d", len(got))
	}
	if got[0].Name != "Idli Sambar" || got[1].ID != "b2" {
		t.Errorf("unexpected options: %+v", got)
	}
	if opts.OptionsFor("tuesday", "lunch") != nil {
		t.Error("expected nil for missing slot")
	}

	var nilOpts MenuOptions
	if nilOpts.OptionsFor("monday", "breakfast") != nil {
		t.Error("expected nil from nil MenuOptions")
	}
}
