// Package id provides utilities for generating URL-safe identifiers.
//
// Identifiers are generated from 16 random bytes encoded as base32
// (RFC 4648) with no padding. The resulting strings are 26 characters
// long, lowercase, and safe for use in URLs and file paths.
package id

import (
	crand "crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
)

// NewID generates a new URL-safe identifier.
func NewID() (string, error) {
	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		return "", fmt.Errorf("read random id bytes: %w", err)
	}

	encoded := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(b[:])
	return strings.ToLower(encoded), nil
}
