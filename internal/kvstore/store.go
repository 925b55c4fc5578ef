// Package kvstore provides the string-keyed record store that characters and
// settings are persisted in.
package kvstore

//go:generate mockgen -destination=mock/mock_store.go -package=kvstoremock github.com/KirkDiggler/op-character-creator/internal/kvstore Store

import (
	"context"
)

// Store is a minimal get/set-by-key persistence capability
type Store interface {
	// Get returns the value stored under key
	// Returns errors.NotFound if nothing is stored under key
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key, value string) error

	// Delete removes key; deleting a missing key is not an error
	Delete(ctx context.Context, key string) error
}

const errKeyEmpty = "key cannot be empty"
