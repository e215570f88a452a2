// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the backing SQL database and creates its schema.

# Opening

Open accepts "sqlite" (modernc.org/sqlite, pure Go) or "postgres" (lib/pq):

	conn, err := db.Open(db.TypeSQLite, "file:data/mess.db")
	conn, err := db.Open(db.TypePostgres, "postgres://...")

For SQLite the parent directory is created and the pool is capped at one
connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - kv_entry: key (primary key), JSON value, updated_at

Vote ledgers live under "votes:<weekKey>" and the menu option cache under
"menu_options:cache". See package kvstore.
*/
package db
