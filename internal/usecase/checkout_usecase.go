package usecase

import (
	"context"

	"tiffin/internal/domain/entity"
)

// CheckoutState names the phases of the single in-flight checkout.
type CheckoutState string

const (
	// StateSeeding means the order context has not arrived yet; the screen
	// shows a loading placeholder and no mutation is possible.
	StateSeeding CheckoutState = "seeding"

	// StateEditing is the interactive phase: quantity, tier and address
	// mutations apply here.
	StateEditing CheckoutState = "editing"

	// StateConfirming awaits the explicit yes/no before submission.
	StateConfirming CheckoutState = "confirming"

	// StateSubmitting is the exclusive network phase; all inputs are
	// disabled until the remote call settles.
	StateSubmitting CheckoutState = "submitting"

	// StateDone is terminal for a successful order; the draft is discarded.
	StateDone CheckoutState = "done"

	// StateCancelled is terminal for an abandoned checkout.
	StateCancelled CheckoutState = "cancelled"
)

// CheckoutView is the read model the checkout screen renders.
type CheckoutView struct {
	State   CheckoutState
	Draft   *entity.OrderDraft
	Context *entity.OrderContext
	Total   float64
}

// CheckoutUsecase drives the checkout state machine for the single
// in-flight order of this client.
type CheckoutUsecase interface {
	// Seed starts a checkout for the selected service by fetching its
	// order context. Until the context arrives the machine stays in
	// Seeding.
	Seed(ctx context.Context, session entity.Session, serviceID int64) error

	// View returns the current state, draft and seed context.
	View(ctx context.Context) CheckoutView

	// IncrementQuantity and DecrementQuantity adjust the draft quantity.
	// Decrementing at one holds the floor; it is not an error.
	IncrementQuantity(ctx context.Context) error
	DecrementQuantity(ctx context.Context) error

	SelectTier(ctx context.Context, tier entity.SubscriptionTier) error
	SelectAddress(ctx context.Context, addressID int64) error

	// Submit moves Editing to Confirming. Without a subscription tier the
	// move is rejected and the machine stays in Editing.
	Submit(ctx context.Context) error

	// Confirm settles the Confirming phase. accept=false returns to
	// Editing unchanged; accept=true submits the order, landing in Done on
	// success or back in Editing with the draft intact on failure.
	Confirm(ctx context.Context, session entity.Session, accept bool) error

	// Cancel abandons the checkout from Editing or Confirming after the
	// user has confirmed the destructive action. The draft is cleared.
	Cancel(ctx context.Context) error
}
