package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tiffin/internal/delivery/http/validator"
	"tiffin/internal/domain/entity"
	"tiffin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSessionUC returns a fixed session for every navigation.
type fakeSessionUC struct {
	usecase.SessionUsecase

	session entity.Session
}

func (f *fakeSessionUC) Current(context.Context) entity.Session { return f.session }

// fakeCatalogUC records browse calls and returns canned items.
type fakeCatalogUC struct {
	items  []entity.MenuService
	filter entity.CatalogFilter
	calls  int
}

func (f *fakeCatalogUC) Browse(_ context.Context, _ entity.Session, filter entity.CatalogFilter) []entity.MenuService {
	f.calls++
	f.filter = filter

	return f.items
}

// fakeCheckoutUC records seeded services.
type fakeCheckoutUC struct {
	usecase.CheckoutUsecase

	seeded []int64
}

func (f *fakeCheckoutUC) Seed(_ context.Context, _ entity.Session, serviceID int64) error {
	f.seeded = append(f.seeded, serviceID)

	return nil
}

func newTestContext(t *testing.T, method, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func listingHandler(session entity.Session, catalog *fakeCatalogUC, checkout *fakeCheckoutUC) *ListingHandler {
	return NewListingHandler(ListingHandlerParams{
		SessionUC:  &fakeSessionUC{session: session},
		CatalogUC:  catalog,
		CheckoutUC: checkout,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestListingHandler_GuestRedirectsToLogin(t *testing.T) {
	catalog := &fakeCatalogUC{}
	h := listingHandler(entity.GuestSession(), catalog, &fakeCheckoutUC{})

	c, rec := newTestContext(t, http.MethodGet, "/listing")
	require.NoError(t, h.Listing(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Zero(t, catalog.calls, "no catalog query before login")
}

func TestListingHandler_VendorGetsDeniedBranch(t *testing.T) {
	catalog := &fakeCatalogUC{}
	vendor := entity.Session{Authenticated: true, Role: entity.RoleVendor, Name: "Ravi Kumar"}
	h := listingHandler(vendor, catalog, &fakeCheckoutUC{})

	c, rec := newTestContext(t, http.MethodGet, "/listing")
	require.NoError(t, h.Listing(c))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data struct {
			Branch string `json:"branch"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "denied", body.Data.Branch)
	assert.Zero(t, catalog.calls, "vendor navigation never queries")
}

func TestListingHandler_UserBrowsesWithFilter(t *testing.T) {
	catalog := &fakeCatalogUC{items: []entity.MenuService{{ID: 1, Name: "Idli Combo"}}}
	user := entity.Session{Authenticated: true, Role: entity.RoleUser, Name: "Asha Rao"}
	h := listingHandler(user, catalog, &fakeCheckoutUC{})

	c, rec := newTestContext(t, http.MethodGet, "/listing?pincode=500081&category=2")
	require.NoError(t, h.Listing(c))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, catalog.calls)
	assert.Equal(t, "500081", catalog.filter.Pincode)
	require.NotNil(t, catalog.filter.Category)
	assert.Equal(t, entity.CategoryLunch, *catalog.filter.Category)
}

func TestListingHandler_SelectSeedsCheckout(t *testing.T) {
	checkout := &fakeCheckoutUC{}
	user := entity.Session{Authenticated: true, Role: entity.RoleUser}
	h := listingHandler(user, &fakeCatalogUC{}, checkout)

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/listing/select", strings.NewReader(`{"serviceId":42}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Select(c))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int64{42}, checkout.seeded)
}
