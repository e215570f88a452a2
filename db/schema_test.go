package db

import (
	"path/filepath"
	"testing"
)

func TestOpen_SQLiteMemory(t *testing.T) {
	conn, err := Open(TypeSQLite, "file::memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer conn.Close()

	if err := CreateSchema(conn); err != nil {
		t.Fatalf("CreateSchema: %v", err)
	}

	// Idempotent
	if err := CreateSchema(conn); err != nil {
		t.Fatalf("second CreateSchema: %v", err)
	}

	if _, err := conn.Exec(`INSERT INTO kv_entry (key, value) VALUES ($1, $2)`, "k", "v"); err != nil {
		t.Fatalf("insert: %v", err)
	}

	var value string
	if err := conn.QueryRow(`SELECT value FROM kv_entry WHERE key = $1`, "k").Scan(&value); err != nil {
		t.Fatalf("select: %v", err)
	}
	if value != "v" {
		t.Errorf("expected v, got %s", value)
	}
}

func TestOpen_SQLiteFileCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "mess.db")

	conn, err := Open(TypeSQLite, "file:"+path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer conn.Close()

	if err := CreateSchema(conn); err != nil {
		t.Fatalf("CreateSchema: %v", err)
	}
}

func TestOpen_UnsupportedType(t *testing.T) {
	if _, err := Open("mysql", "whatever"); err == nil {
		t.Fatal("expected error for unsupported type")
	}
}

func TestSQLitePath(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"file::memory:", ""},
		{":memory:", ""},
		{"file:test?mode=memory&cache=shared", ""},
		{"file:data/mess.db", "data/mess.db"},
		{"data/mess.db?_pragma=busy_timeout(5000)", "data/mess.db"},
	}

	for _, tt := range tests {
		if got := sqlitePath(tt.url); got != tt.want {
			t.Errorf("sqlitePath(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}
