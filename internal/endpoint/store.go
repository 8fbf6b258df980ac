// Package endpoint persists the base URL of the planning service between
// sessions.
//
// A [Store] always hands back a usable URL: when nothing has been saved yet,
// Load returns [DefaultEndpoint]. Values are normalized on save but never
// validated; a malformed URL surfaces later as a transport failure.
package endpoint

import (
	"context"
	"strings"
)

// DefaultEndpoint is used until an operator saves something else.
const DefaultEndpoint = "http://127.0.0.1:8000"

// StorageKey is the key the endpoint is stored under in every backend.
const StorageKey = "api_base"

// Store loads and saves the last-used endpoint.
type Store interface {
	// Load returns the saved endpoint, or DefaultEndpoint if none is saved.
	Load(ctx context.Context) (string, error)
	// Save persists Normalize(value).
	Save(ctx context.Context, value string) error
}

// Normalize trims surrounding whitespace and strips every trailing slash.
func Normalize(value string) string {
	return strings.TrimRight(strings.TrimSpace(value), "/")
}

// orDefault maps an empty stored value to DefaultEndpoint.
func orDefault(value string) string {
	if value == "" {
		return DefaultEndpoint
	}
	return value
}
