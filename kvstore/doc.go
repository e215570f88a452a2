// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package kvstore is the string-keyed storage the ledger and the option cache
are kept in.

# Stores

	store := kvstore.NewMemoryStore()                        // tests, ephemeral
	store := kvstore.NewSQLStore(conn, kvstore.DialectSQLite)   // default
	store := kvstore.NewSQLStore(conn, kvstore.DialectPostgres)

SQL stores keep one row per key in the kv_entry table created by
db.CreateSchema.

# Read-Modify-Write

Update runs fn against the current value and writes what it returns as one
atomic step, so concurrent ballots never lose each other's votes:

	err := store.Update(ctx, "votes:2026-08", func(cur []byte, found bool) ([]byte, error) {
		// decode, change, encode
	})

If fn returns an error nothing is written and the error is returned as is.
The memory store holds a mutex, SQLite runs on a single connection inside a
transaction, and Postgres locks the row with SELECT ... FOR UPDATE after
making sure it exists.

# Errors

Failed writes and commits wrap ErrWrite.
*/
package kvstore
