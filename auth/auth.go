// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"unicode"
)

// MaxUserIDLength bounds the identifiers accepted from the presentation layer
const MaxUserIDLength = 128

var (
	ErrInvalidAdminKey = errors.New("invalid admin key")
	ErrInvalidUserID   = errors.New("invalid user id")
)

// ValidateAdminKey compares the provided key against the configured one in
// constant time. An empty configured key rejects everything.
func ValidateAdminKey(provided, expected string) error {
	if expected == "" || !hmac.Equal([]byte(provided), []byte(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}

// NormalizeUserID trims the caller-supplied user id and rejects empty,
// oversized or control-character ids
func NormalizeUserID(userID string) (string, error) {
	id := strings.TrimSpace(userID)
	if id == "" || len(id) > MaxUserIDLength {
		return "", ErrInvalidUserID
	}
	if strings.IndexFunc(id, unicode.IsControl) >= 0 {
		return "", ErrInvalidUserID
	}
	return id, nil
}

// HashIdentifier creates a one-way hash of a user id or IP address so logs
// never carry the raw value
func HashIdentifier(value, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(value))
	sum := h.Sum(nil)
	// First 16 hex chars (64 bits) - enough to correlate log lines
	return hex.EncodeToString(sum[:8])
}
