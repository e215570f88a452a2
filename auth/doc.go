// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides the admin key check and identifier helpers.

# Admin Key

The ledger dump endpoint requires the configured ADMIN_KEY in the
X-Admin-Key header. Comparison is constant time:

	err := auth.ValidateAdminKey(r.Header.Get("X-Admin-Key"), cfg.AdminKey)

# User IDs

Users are authenticated by the presentation layer, which passes the user id
in X-User-ID. NormalizeUserID trims it and rejects empty, oversized or
control-character values.

# Hashing

For privacy-preserving logs:

	hash := auth.HashIdentifier(userID, salt)

Returns the first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
