// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/models"
)

// Tally holds per-option counts for one slot in the order each option
// first received a vote. It encodes as a JSON object and keeps key order
// on decode, since finalization breaks ties by that order.
type Tally []models.OptionCount

// Count returns the votes recorded for name
func (t Tally) Count(name string) int {
	for _, oc := range t {
		if oc.Name == name {
			return oc.Count
		}
	}
	return 0
}

// Increment adds one vote for name, appending it if this is its first vote
func (t *Tally) Increment(name string) {
	for i := range *t {
		if (*t)[i].Name == name {
			(*t)[i].Count++
			return
		}
	}
	*t = append(*t, models.OptionCount{Name: name, Count: 1})
}

// Total returns the sum of all counts
func (t Tally) Total() int {
	total := 0
	for _, oc := range t {
		total += oc.Count
	}
	return total
}

func (t Tally) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, oc := range t {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(oc.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", oc.Count)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (t *Tally) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*t = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("tally must be a JSON object, got %v", tok)
	}

	var out Tally
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("tally key must be a string, got %v", keyTok)
		}

		var count int
		if err := dec.Decode(&count); err != nil {
			return fmt.Errorf("tally count for %q: %w", name, err)
		}

		// A repeated key keeps its first position and takes the last value
		replaced := false
		for i := range out {
			if out[i].Name == name {
				out[i].Count = count
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, models.OptionCount{Name: name, Count: count})
		}
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*t = out
	return nil
}
