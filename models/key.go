// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"

	"github.com/google/uuid"
)

// KeyKind tells how a [ContentKey] must be resolved.
type KeyKind int

const (
	// KeySlug resolves the key against the human-readable slug column.
	KeySlug KeyKind = iota
	// KeyID resolves the key against the server-assigned identifier.
	KeyID
)

// idLength is the length of a canonical textual UUID
// (xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx).
const idLength = 36

// ContentKey is a classified lookup key for posts and projects.
//
// The raw key coming from a URL is classified exactly once by its shape:
// a canonical UUID is an identifier, everything else is a slug. Lookups
// never try one form and then fall back to the other.
type ContentKey struct {
	Kind  KeyKind
	Value string
}

// ParseContentKey classifies raw into an identifier or slug key.
func ParseContentKey(raw string) ContentKey {
	raw = strings.TrimSpace(raw)
	if IsIdentifier(raw) {
		id, _ := uuid.Parse(raw)
		return ContentKey{Kind: KeyID, Value: id.String()}
	}

	return ContentKey{Kind: KeySlug, Value: raw}
}

// SlugKey builds a key that is always resolved by slug.
func SlugKey(slug string) ContentKey {
	return ContentKey{Kind: KeySlug, Value: strings.TrimSpace(slug)}
}

// IsIdentifier reports whether s has the shape of a server-assigned identifier.
func IsIdentifier(s string) bool {
	if len(s) != idLength {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// IsID reports whether the key must be resolved by identifier.
func (k ContentKey) IsID() bool {
	return k.Kind == KeyID
}

// String returns the key value.
func (k ContentKey) String() string {
	return k.Value
}
