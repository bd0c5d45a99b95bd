// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"tiffin/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the credentials for signing in against the marketplace.
type LoginInput struct {
	Email    string
	Password string
}

// RegisterUserInput defines the data required to register a new customer.
type RegisterUserInput struct {
	Name     string
	Phone    string
	Email    string
	Password string
	Address  entity.Address
}

// RegisterVendorInput defines the data required to register a new vendor.
type RegisterVendorInput struct {
	OwnerName   string
	Restaurant  string
	Location    string
	Email       string
	Phone       string
	PANCard     string
	WorkingDays []string
	BankIFSC    string
	BankAccount string
	Password    string
	Address     entity.Address
}

// SessionUsecase owns the durable token and the session derived from it.
// The session is re-derived from the store on every call; it is never
// cached across navigations.
type SessionUsecase interface {
	// Current returns the session for the stored token. Absent token or a
	// token that fails to decode yields the guest session.
	Current(ctx context.Context) entity.Session

	// Login exchanges credentials for a token, persists it and returns the
	// derived session.
	Login(ctx context.Context, input LoginInput) (entity.Session, error)

	// Logout clears the stored token. Idempotent.
	Logout(ctx context.Context) error

	RequestPasswordReset(ctx context.Context, email string) error
	RegisterUser(ctx context.Context, input RegisterUserInput) error
	RegisterVendor(ctx context.Context, input RegisterVendorInput) error
}
