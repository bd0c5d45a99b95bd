// Package gateway declares the abstract contracts for the remote
// marketplace API. The concrete transport and wire format live in
// internal/infra/remote; everything above this boundary sees plain ordered
// sequences, never response envelopes.
package gateway

import (
	"context"

	"github.com/google/uuid"

	"tiffin/internal/domain/entity"
)

// UserRegistration is the profile-plus-address payload for user signup.
type UserRegistration struct {
	Name     string
	Phone    string
	Email    string
	Password string
	Address  entity.Address
}

// VendorRegistration extends registration with the vendor-specific fields
// the marketplace collects at signup.
type VendorRegistration struct {
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

// AuthGateway covers login, password reset and both registration flows.
// Non-2xx responses surface as errors carrying the remote message.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (token string, err error)
	RequestPasswordReset(ctx context.Context, email string) error
	RegisterUser(ctx context.Context, reg UserRegistration) error
	RegisterVendor(ctx context.Context, reg VendorRegistration) error
}

// CatalogGateway lists food services for a filter. Implementations own the
// envelope normalization: an absent envelope or payload yields an empty
// sequence, not an error.
type CatalogGateway interface {
	ListMenu(ctx context.Context, filter entity.CatalogFilter) ([]entity.MenuService, error)
}

// OrderGateway seeds and submits checkouts.
type OrderGateway interface {
	// Context fetches the order-placing seed for a selected service: unit
	// price, profile fields and candidate addresses.
	Context(ctx context.Context, serviceID int64, userID uuid.UUID) (*entity.OrderContext, error)

	// Place submits the final order.
	Place(ctx context.Context, order entity.Order) error
}

// ContactGateway reads and writes the contact board.
type ContactGateway interface {
	List(ctx context.Context) ([]entity.ContactMessage, error)
	Create(ctx context.Context, msg entity.ContactMessage) error
}

// FeedbackGateway reads and writes the feedback board.
type FeedbackGateway interface {
	List(ctx context.Context) ([]entity.Feedback, error)
	Create(ctx context.Context, message string) error
}
