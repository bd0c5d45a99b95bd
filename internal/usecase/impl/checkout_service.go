package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "tiffin/internal/delivery/context"
	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/gateway"
	"tiffin/internal/usecase"
)

// checkoutService implements the CheckoutUsecase interface. It holds the
// single in-flight checkout of this client and enforces its state machine:
// Seeding -> Editing -> Confirming -> Submitting -> Done, with Cancelled
// reachable from Editing and Confirming and a failed submission returning
// to Editing with the draft intact.
type checkoutService struct {
	orders gateway.OrderGateway
	logger *slog.Logger

	// mu guards state, draft and seed. submitMu is the hard mutual
	// exclusion around the remote submission: it is held without mu for
	// the duration of the network call, so a second submission attempt
	// fails fast instead of queueing.
	mu       sync.Mutex
	submitMu sync.Mutex

	state usecase.CheckoutState
	draft entity.OrderDraft
	seed  *entity.OrderContext
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(orders gateway.OrderGateway, logger *slog.Logger) usecase.CheckoutUsecase {
	return &checkoutService{
		orders: orders,
		logger: logger,
		state:  usecase.StateSeeding,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Seed fetches the order context for the selected service and opens the
// editing phase. Until the context arrives the machine stays in Seeding;
// there is no other way to obtain a draft.
func (srv *checkoutService) Seed(ctx context.Context, session entity.Session, serviceID int64) error {
	if !session.Authenticated {
		return domainerrors.ErrNotSignedIn
	}

	srv.mu.Lock()
	if srv.state == usecase.StateSubmitting {
		srv.mu.Unlock()

		return domainerrors.ErrSubmissionInFlight
	}
	srv.mu.Unlock()

	seed, err := srv.orders.Context(ctx, serviceID, session.UserID)
	if err != nil {
		srv.log(ctx).Warn("Failed to fetch order context",
			slog.Any("error", err), slog.Int64("service_id", serviceID))

		srv.mu.Lock()
		srv.state = usecase.StateSeeding
		srv.seed = nil
		srv.mu.Unlock()

		return err
	}

	draft := entity.OrderDraft{
		ServiceID: seed.ServiceID,
		UnitPrice: seed.Price,
		Quantity:  1,
		Tier:      entity.TierNone,
	}
	if len(seed.Addresses) > 0 {
		draft.AddressID = seed.Addresses[0].ID
	}

	srv.mu.Lock()
	srv.state = usecase.StateEditing
	srv.seed = seed
	srv.draft = draft
	srv.mu.Unlock()

	srv.log(ctx).Info("Checkout seeded",
		slog.Int64("service_id", seed.ServiceID), slog.Float64("unit_price", seed.Price))

	return nil
}

// View returns the current phase together with copies of the draft and the
// seed context.
func (srv *checkoutService) View(_ context.Context) usecase.CheckoutView {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	view := usecase.CheckoutView{State: srv.state}
	if srv.seed != nil {
		seed := *srv.seed
		view.Context = &seed
	}
	if srv.state != usecase.StateSeeding {
		draft := srv.draft
		view.Draft = &draft
		view.Total = draft.Total()
	}

	return view
}

// requireEditing maps the current phase to the error a mutation gets when
// the draft is not editable. Callers hold mu.
func (srv *checkoutService) requireEditing() error {
	switch srv.state {
	case usecase.StateEditing:
		return nil
	case usecase.StateSeeding:
		return domainerrors.ErrOrderContextMissing
	case usecase.StateSubmitting:
		return domainerrors.ErrSubmissionInFlight
	default:
		return domainerrors.ErrNotEditing
	}
}

func (srv *checkoutService) IncrementQuantity(_ context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.requireEditing(); err != nil {
		return err
	}
	srv.draft.Quantity++

	return nil
}

// DecrementQuantity lowers the quantity but never below one. Hitting the
// floor is not an error.
func (srv *checkoutService) DecrementQuantity(_ context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.requireEditing(); err != nil {
		return err
	}
	if srv.draft.Quantity > 1 {
		srv.draft.Quantity--
	}

	return nil
}

func (srv *checkoutService) SelectTier(_ context.Context, tier entity.SubscriptionTier) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.requireEditing(); err != nil {
		return err
	}
	// TierNone is selectable: it is the placeholder the dropdown starts on.
	if tier != entity.TierNone && !tier.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown subscription model")
	}
	srv.draft.Tier = tier

	return nil
}

// SelectAddress picks one of the candidate delivery addresses from the seed
// context.
func (srv *checkoutService) SelectAddress(_ context.Context, addressID int64) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.requireEditing(); err != nil {
		return err
	}
	for _, addr := range srv.seed.Addresses {
		if addr.ID == addressID {
			srv.draft.AddressID = addressID

			return nil
		}
	}

	return domainerrors.ErrValidationFailed.WithDetails("unknown delivery address")
}

// Submit moves the draft to the confirmation phase. A draft without a
// subscription tier is rejected here, before any network traffic, and the
// machine stays in Editing.
func (srv *checkoutService) Submit(_ context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.requireEditing(); err != nil {
		return err
	}
	if srv.draft.Tier == entity.TierNone {
		return domainerrors.ErrSubscriptionRequired
	}
	srv.state = usecase.StateConfirming

	return nil
}

// Confirm settles the pending confirmation. Declining returns to Editing
// with nothing changed. Accepting enters the exclusive Submitting phase:
// the amount is truncated to two decimals exactly once, the order is placed
// remotely, and the machine lands in Done on success or back in Editing
// with the draft intact on failure.
func (srv *checkoutService) Confirm(ctx context.Context, session entity.Session, accept bool) error {
	srv.mu.Lock()
	if srv.state != usecase.StateConfirming {
		state := srv.state
		srv.mu.Unlock()
		if state == usecase.StateSubmitting {
			return domainerrors.ErrSubmissionInFlight
		}

		return domainerrors.ErrNotConfirming
	}

	if !accept {
		srv.state = usecase.StateEditing
		srv.mu.Unlock()

		return nil
	}

	if !session.Authenticated {
		srv.mu.Unlock()

		return domainerrors.ErrNotSignedIn
	}

	if !srv.submitMu.TryLock() {
		srv.mu.Unlock()

		return domainerrors.ErrSubmissionInFlight
	}
	defer srv.submitMu.Unlock()

	srv.state = usecase.StateSubmitting
	order := entity.Order{
		UserID:    session.UserID,
		AddressID: srv.draft.AddressID,
		Quantity:  srv.draft.Quantity,
		ServiceID: srv.draft.ServiceID,
		Amount:    entity.TruncateAmount(srv.draft.Total()),
	}
	srv.mu.Unlock()

	err := srv.orders.Place(ctx, order)

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err != nil {
		srv.log(ctx).Warn("Order placement failed, draft preserved",
			slog.Any("error", err), slog.Int64("service_id", order.ServiceID))
		srv.state = usecase.StateEditing

		return domainerrors.ErrOrderFailed
	}

	srv.log(ctx).Info("Order placed",
		slog.Int64("service_id", order.ServiceID),
		slog.Int("quantity", order.Quantity),
		slog.Float64("amount", order.Amount))
	srv.state = usecase.StateDone
	srv.draft = entity.OrderDraft{}
	srv.seed = nil

	return nil
}

// Cancel abandons the checkout from Editing or Confirming. The draft and
// the seed context are cleared; a new checkout starts with a fresh Seed.
func (srv *checkoutService) Cancel(ctx context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	switch srv.state {
	case usecase.StateEditing, usecase.StateConfirming:
	case usecase.StateSubmitting:
		return domainerrors.ErrSubmissionInFlight
	default:
		return domainerrors.ErrOrderContextMissing
	}

	srv.log(ctx).Info("Checkout cancelled", slog.Int64("service_id", srv.draft.ServiceID))
	srv.state = usecase.StateCancelled
	srv.draft = entity.OrderDraft{}
	srv.seed = nil

	return nil
}
