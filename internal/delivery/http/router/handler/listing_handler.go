package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"tiffin/internal/delivery/http/response"
	"tiffin/internal/domain/entity"
	"tiffin/internal/domain/policy"
	"tiffin/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ListingHandlerParams holds dependencies for ListingHandler, injected by Fx.
type ListingHandlerParams struct {
	fx.In

	SessionUC  usecase.SessionUsecase
	CatalogUC  usecase.CatalogUsecase
	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// ListingHandler serves the meal listing screen and the jump into checkout.
type ListingHandler struct {
	sessionUC  usecase.SessionUsecase
	catalogUC  usecase.CatalogUsecase
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler
func NewListingHandler(params ListingHandlerParams) *ListingHandler {
	return &ListingHandler{
		sessionUC:  params.SessionUC,
		catalogUC:  params.CatalogUC,
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// SelectServiceRequest picks a meal service from the listing.
type SelectServiceRequest struct {
	ServiceID int64 `json:"serviceId" form:"serviceId" validate:"required,gt=0"`
}

// Listing renders the listing screen. The session is re-derived for this
// navigation, the gate runs first, and only then does the filter trigger a
// catalog query.
func (h *ListingHandler) Listing(c echo.Context) error {
	ctx := c.Request().Context()
	session := h.sessionUC.Current(ctx)

	decision := policy.Resolve(session, policy.ScreenListing)
	if decision.RedirectToLogin {
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	if decision.Branch == policy.BranchDenied {
		return response.Success(c, http.StatusOK, screenPayload{
			Branch:  string(decision.Branch),
			Session: sessionData(session),
		}, "")
	}

	filter := entity.CatalogFilter{Pincode: c.QueryParam("pincode")}
	if raw := c.QueryParam("category"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_CATEGORY", "Unknown meal category")
		}
		category := entity.MealCategory(id)
		filter.Category = &category
	}

	items := h.catalogUC.Browse(ctx, session, filter)

	return response.Success(c, http.StatusOK, screenPayload{
		Branch:  string(decision.Branch),
		Session: sessionData(session),
		Data:    map[string]any{"services": items},
	}, "")
}

// Select seeds a checkout for the chosen service and points the client at
// the checkout screen.
func (h *ListingHandler) Select(c echo.Context) error {
	var req SelectServiceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service selection")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()
	session := h.sessionUC.Current(ctx)

	if err := h.checkoutUC.Seed(ctx, session, req.ServiceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"next": "/checkout"}, "")
}
