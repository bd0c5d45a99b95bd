package handler

import (
	"log/slog"
	"net/http"

	"tiffin/internal/delivery/http/response"
	"tiffin/internal/domain/entity"
	"tiffin/internal/domain/policy"
	"tiffin/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	SessionUC  usecase.SessionUsecase
	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler serves the checkout screen and its state transitions.
type CheckoutHandler struct {
	sessionUC  usecase.SessionUsecase
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		sessionUC:  params.SessionUC,
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// QuantityRequest nudges the draft quantity one step.
type QuantityRequest struct {
	Op string `json:"op" form:"op" validate:"required,oneof=increment decrement"`
}

// TierRequest selects the subscription model. An empty value is the
// unselected placeholder.
type TierRequest struct {
	Tier string `json:"tier" form:"tier" validate:"omitempty,oneof=day week month"`
}

// AddressSelectRequest picks one of the candidate delivery addresses.
type AddressSelectRequest struct {
	AddressID int64 `json:"addressId" form:"addressId" validate:"required,gt=0"`
}

// ConfirmRequest settles the pending confirmation.
type ConfirmRequest struct {
	Accept bool `json:"accept" form:"accept"`
}

// checkoutPayload is the checkout read model rendered by the screen.
type checkoutPayload struct {
	State     string           `json:"state"`
	Name      string           `json:"name,omitempty"`
	Phone     string           `json:"phone,omitempty"`
	UnitPrice float64          `json:"unitPrice,omitempty"`
	Quantity  int              `json:"quantity,omitempty"`
	Tier      string           `json:"tier,omitempty"`
	AddressID int64            `json:"addressId,omitempty"`
	Addresses []entity.Address `json:"addresses,omitempty"`
	Total     float64          `json:"total"`
}

func checkoutData(view usecase.CheckoutView) checkoutPayload {
	payload := checkoutPayload{
		State: string(view.State),
		Total: view.Total,
	}
	if view.Context != nil {
		payload.Name = view.Context.Name
		payload.Phone = view.Context.Phone
		payload.Addresses = view.Context.Addresses
	}
	if view.Draft != nil {
		payload.UnitPrice = view.Draft.UnitPrice
		payload.Quantity = view.Draft.Quantity
		payload.Tier = string(view.Draft.Tier)
		payload.AddressID = view.Draft.AddressID
	}

	return payload
}

// Checkout renders the checkout screen: a loading placeholder while the
// order context has not arrived, the editable draft afterwards.
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	session := h.sessionUC.Current(ctx)
	decision := policy.Resolve(session, policy.ScreenCheckout)

	return response.Success(c, http.StatusOK, screenPayload{
		Branch:  string(decision.Branch),
		Session: sessionData(session),
		Data:    checkoutData(h.checkoutUC.View(ctx)),
	}, "")
}

// Quantity applies one increment or decrement step.
func (h *CheckoutHandler) Quantity(c echo.Context) error {
	var req QuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()
	var err error
	if req.Op == "increment" {
		err = h.checkoutUC.IncrementQuantity(ctx)
	} else {
		err = h.checkoutUC.DecrementQuantity(ctx)
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, checkoutData(h.checkoutUC.View(ctx)), "")
}

// Tier selects the subscription model and recomputes the total.
func (h *CheckoutHandler) Tier(c echo.Context) error {
	var req TierRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()
	if err := h.checkoutUC.SelectTier(ctx, entity.SubscriptionTier(req.Tier)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, checkoutData(h.checkoutUC.View(ctx)), "")
}

// Address selects the delivery address.
func (h *CheckoutHandler) Address(c echo.Context) error {
	var req AddressSelectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()
	if err := h.checkoutUC.SelectAddress(ctx, req.AddressID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, checkoutData(h.checkoutUC.View(ctx)), "")
}

// Submit asks for confirmation of the current draft.
func (h *CheckoutHandler) Submit(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.checkoutUC.Submit(ctx); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, checkoutData(h.checkoutUC.View(ctx)), "Please confirm your order")
}

// Confirm settles the confirmation: accepted orders are placed, declined
// ones return to editing.
func (h *CheckoutHandler) Confirm(c echo.Context) error {
	var req ConfirmRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid confirmation input")
	}

	ctx := c.Request().Context()
	session := h.sessionUC.Current(ctx)

	if err := h.checkoutUC.Confirm(ctx, session, req.Accept); err != nil {
		return response.HandleAppError(c, err)
	}

	if !req.Accept {
		return response.Success(c, http.StatusOK, checkoutData(h.checkoutUC.View(ctx)), "")
	}

	return response.Success(c, http.StatusOK, map[string]string{"next": "/listing"}, "Order placed successfully")
}

// Cancel abandons the checkout after the destructive confirm.
func (h *CheckoutHandler) Cancel(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.checkoutUC.Cancel(ctx); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"next": "/listing"}, "Order cancelled")
}
