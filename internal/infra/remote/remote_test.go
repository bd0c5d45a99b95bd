package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tiffin/config"
	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/service"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.Remote.BaseURL = srv.URL
	cfg.Remote.Timeout = 5 * time.Second

	return NewClient(cfg)
}

type memoryTokens struct {
	token string
}

func (m *memoryTokens) Load() (string, error) {
	if m.token == "" {
		return "", service.ErrNoToken
	}

	return m.token, nil
}

func (m *memoryTokens) Save(token string) error { m.token = token; return nil }
func (m *memoryTokens) Clear() error            { m.token = ""; return nil }

func TestAuthGateway_Login(t *testing.T) {
	gw := NewAuthGateway(testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/Login", r.URL.Path)
		w.Write([]byte(`{"token":"aaa.bbb.ccc"}`))
	})))

	token, err := gw.Login(context.Background(), "a@b.c", "secret")

	require.NoError(t, err)
	assert.Equal(t, "aaa.bbb.ccc", token)
}

func TestAuthGateway_LoginRejectionSurfacesRemoteMessage(t *testing.T) {
	gw := NewAuthGateway(testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`"Invalid email or password"`))
	})))

	_, err := gw.Login(context.Background(), "a@b.c", "wrong")

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "Invalid email or password", appErr.Message())
}

func TestCatalogGateway_UnwrapsEnvelope(t *testing.T) {
	gw := NewCatalogGateway(testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/Menu/GetAllMenu", r.URL.Path)
		assert.Equal(t, "400001", r.URL.Query().Get("pincode"))
		assert.Equal(t, "2", r.URL.Query().Get("foodType"))
		w.Write([]byte(`{"$values":[
			{"id":7,"foodName":"Thali","restrauntName":"Sharma Tiffins","location":"Andheri","area":"East","pincode":"400001","foodDesc":"Daily lunch","price":120.5,"rating":4.5}
		]}`))
	})))

	lunch := entity.CategoryLunch
	services, err := gw.ListMenu(context.Background(), entity.CatalogFilter{Category: &lunch, Pincode: "400001"})

	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, entity.MenuService{
		ID:          7,
		Name:        "Thali",
		Restaurant:  "Sharma Tiffins",
		Location:    "Andheri",
		Area:        "East",
		Pincode:     "400001",
		Description: "Daily lunch",
		Price:       120.5,
		Rating:      4.5,
	}, services[0])
}

func TestCatalogGateway_AbsentEnvelopeYieldsEmpty(t *testing.T) {
	gw := NewCatalogGateway(testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})))

	services, err := gw.ListMenu(context.Background(), entity.CatalogFilter{})

	require.NoError(t, err)
	assert.Empty(t, services)
}

func TestOrderGateway_ContextCarriesBearer(t *testing.T) {
	userID := uuid.New()
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/Order/OrderPlacingAndAddressDetails", r.URL.Path)
		assert.Equal(t, "Bearer stored.token.value", r.Header.Get("Authorization"))
		assert.Equal(t, "9", r.URL.Query().Get("foodId"))
		assert.Equal(t, userID.String(), r.URL.Query().Get("userLogedIn"))
		w.Write([]byte(`{"foodId":9,"price":150,"name":"Asha Rao","phone":"9999999999",
			"addresses":{"$values":[{"id":3,"doorNumber":"12A","street":"MG Road","area":"Fort","city":"Mumbai","state":"MH","postalCode":"400001","addressType":"Home"}]}}`))
	}))

	gw := NewOrderGateway(client, &memoryTokens{token: "stored.token.value"})
	octx, err := gw.Context(context.Background(), 9, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(9), octx.ServiceID)
	assert.Equal(t, 150.0, octx.Price)
	require.Len(t, octx.Addresses, 1)
	assert.Equal(t, int64(3), octx.Addresses[0].ID)
	assert.Equal(t, "Mumbai", octx.Addresses[0].City)
}

func TestOrderGateway_PlaceSendsQueryParams(t *testing.T) {
	userID := uuid.New()
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/Order/placeOrder", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, userID.String(), q.Get("userId"))
		assert.Equal(t, "3", q.Get("adressId"))
		assert.Equal(t, "2", q.Get("Quantity"))
		assert.Equal(t, "9", q.Get("foodId"))
		assert.Equal(t, "285.00", q.Get("amount"))
	}))

	gw := NewOrderGateway(client, &memoryTokens{})
	err := gw.Place(context.Background(), entity.Order{
		UserID:    userID,
		AddressID: 3,
		Quantity:  2,
		ServiceID: 9,
		Amount:    285.00,
	})

	require.NoError(t, err)
}

func TestFeedbackGateway_ListReadsMisspelledWireField(t *testing.T) {
	gw := NewFeedbackGateway(testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"$values":[{"id":1,"messagae":"great dabba"}]}`))
	})))

	feedbacks, err := gw.List(context.Background())

	require.NoError(t, err)
	require.Len(t, feedbacks, 1)
	assert.Equal(t, "great dabba", feedbacks[0].Message)
}

func TestContactGateway_CreatePostsPayload(t *testing.T) {
	gw := NewContactGateway(testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/ContactUs", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
	})))

	err := gw.Create(context.Background(), entity.ContactMessage{
		Name:    "Asha",
		Email:   "asha@example.com",
		Subject: "Hello",
		Message: "Hi there",
	})

	require.NoError(t, err)
}
