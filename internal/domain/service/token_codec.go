// Package service defines domain service contracts implemented by the
// infra layer.
package service

import (
	"github.com/pkg/errors"

	"tiffin/internal/domain/entity"
)

// ErrNoToken is returned by TokenStore.Load when the durable key is empty.
var ErrNoToken = errors.New("no token stored")

// TokenCodec recovers identity claims from an opaque bearer token. Decoding
// is pure: no network access and no side effects, and the same token always
// yields the same result. A malformed token yields an error, never a panic;
// callers treat any failure exactly like an absent token.
type TokenCodec interface {
	Decode(token string) (*entity.Claims, error)
}

// TokenStore is the single durable key the client persists. Login writes
// it, logout clears it, every navigation reads it.
type TokenStore interface {
	// Load returns the stored token, or ErrNoToken when nothing is stored.
	Load() (string, error)

	// Save overwrites any previously stored token.
	Save(token string) error

	// Clear removes the stored token. Clearing an empty store is a no-op.
	Clear() error
}
