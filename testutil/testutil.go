// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/cliparse"
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/db"
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/kvstore"
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/menuopts"
	"github.com/drashtisojitra2411-jpg/Hostel-Food-Wastage-Reduction/models"
)

//go:embed meal_options.xml
var sampleOptionsXML []byte

// IST is the mess timezone used throughout tests
var IST = time.FixedZone("IST", 5*60*60+30*60)

var (
	// OpenSunday falls inside the voting window for week 2026-08
	OpenSunday = time.Date(2026, time.February, 15, 10, 0, 0, 0, IST)
	// TallyingSunday is the same Sunday after voting has closed
	TallyingSunday = time.Date(2026, time.February, 15, 21, 0, 0, 0, IST)
	// ClosedWednesday is mid-week in 2026-07
	ClosedWednesday = time.Date(2026, time.February, 11, 12, 0, 0, 0, IST)
)

// TestAdminKey is the admin key used by handler and router tests
const TestAdminKey = "test-admin-key"

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:              3318,
		DatabaseType:      db.TypeSQLite,
		DatabaseURL:       ":memory:",
		MenuOptionsSource: "meal_options.xml",
		Timezone:          "Asia/Kolkata",
		Location:          IST,
		AdminKey:          TestAdminKey,
		FetchTimeout:      time.Second,
		BallotRatePerMin:  6,
		LogLevel:          "info",
	}
}

// FixedClock returns a clock that always reports t
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// SetupTestStore opens an in-memory SQLite database with the schema applied
func SetupTestStore(t *testing.T) kvstore.Store {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	store := kvstore.NewSQLStore(conn, kvstore.DialectSQLite)
	t.Cleanup(func() { store.Close() })
	return store
}

// SampleOptions returns the parsed sample document
func SampleOptions(t *testing.T) models.MenuOptions {
	t.Helper()

	opts, err := menuopts.Parse(sampleOptionsXML)
	if err != nil {
		t.Fatalf("Failed to parse sample options: %v", err)
	}
	return opts
}

// WriteSampleOptions writes the sample document to a temp file and returns its path
func WriteSampleOptions(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "meal_options.xml")
	if err := os.WriteFile(path, sampleOptionsXML, 0o644); err != nil {
		t.Fatalf("Failed to write sample options: %v", err)
	}
	return path
}

// NewSampleSource returns a file-backed option source over the sample document
func NewSampleSource(t *testing.T, store kvstore.Store) *menuopts.Source {
	t.Helper()
	return menuopts.NewSource(menuopts.NewFetcher(WriteSampleOptions(t), time.Second), store, nil)
}

// Ballot picks the option at index choice (wrapping) for every slot
func Ballot(opts models.MenuOptions, choice int) map[string]string {
	selections := make(map[string]string, 21)
	for _, day := range models.Days {
		for _, meal := range models.MealTypes {
			available := opts.OptionsFor(day, meal)
			if len(available) == 0 {
				continue
			}
			selections[models.SlotKey(day, meal)] = available[choice%len(available)].Name
		}
	}
	return selections
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
