package impl

import (
	"context"
	"io"
	"log/slog"

	"tiffin/internal/domain/entity"
	"tiffin/internal/domain/gateway"
	"tiffin/internal/domain/service"

	"github.com/google/uuid"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memoryTokenStore is an in-memory TokenStore for tests.
type memoryTokenStore struct {
	token  string
	clears int
}

func (m *memoryTokenStore) Load() (string, error) {
	if m.token == "" {
		return "", service.ErrNoToken
	}

	return m.token, nil
}

func (m *memoryTokenStore) Save(token string) error {
	m.token = token

	return nil
}

func (m *memoryTokenStore) Clear() error {
	m.token = ""
	m.clears++

	return nil
}

// fakeCodec returns canned claims regardless of input.
type fakeCodec struct {
	claims *entity.Claims
	err    error
}

func (f *fakeCodec) Decode(string) (*entity.Claims, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.claims, nil
}

// fakeAuthGateway records calls and returns canned results.
type fakeAuthGateway struct {
	token      string
	err        error
	loginCalls int
	lastUser   gateway.UserRegistration
	lastVendor gateway.VendorRegistration
	lastEmail  string
}

func (f *fakeAuthGateway) Login(_ context.Context, email, _ string) (string, error) {
	f.loginCalls++
	f.lastEmail = email

	return f.token, f.err
}

func (f *fakeAuthGateway) RequestPasswordReset(_ context.Context, email string) error {
	f.lastEmail = email

	return f.err
}

func (f *fakeAuthGateway) RegisterUser(_ context.Context, reg gateway.UserRegistration) error {
	f.lastUser = reg

	return f.err
}

func (f *fakeAuthGateway) RegisterVendor(_ context.Context, reg gateway.VendorRegistration) error {
	f.lastVendor = reg

	return f.err
}

// fakeCatalogGateway delegates to a per-test function and counts calls.
type fakeCatalogGateway struct {
	fn    func(ctx context.Context, filter entity.CatalogFilter) ([]entity.MenuService, error)
	calls int
}

func (f *fakeCatalogGateway) ListMenu(ctx context.Context, filter entity.CatalogFilter) ([]entity.MenuService, error) {
	f.calls++

	return f.fn(ctx, filter)
}

// fakeOrderGateway returns a canned context and records placed orders.
type fakeOrderGateway struct {
	seed       *entity.OrderContext
	seedErr    error
	placeFn    func(ctx context.Context, order entity.Order) error
	placed     []entity.Order
	placeCalls int
}

func (f *fakeOrderGateway) Context(context.Context, int64, uuid.UUID) (*entity.OrderContext, error) {
	return f.seed, f.seedErr
}

func (f *fakeOrderGateway) Place(ctx context.Context, order entity.Order) error {
	f.placeCalls++
	f.placed = append(f.placed, order)
	if f.placeFn != nil {
		return f.placeFn(ctx, order)
	}

	return nil
}

// fakeContactGateway serves canned messages and records creations.
type fakeContactGateway struct {
	messages []entity.ContactMessage
	listErr  error
	created  []entity.ContactMessage
}

func (f *fakeContactGateway) List(context.Context) ([]entity.ContactMessage, error) {
	return f.messages, f.listErr
}

func (f *fakeContactGateway) Create(_ context.Context, msg entity.ContactMessage) error {
	f.created = append(f.created, msg)

	return nil
}

// fakeFeedbackGateway serves canned entries and records creations.
type fakeFeedbackGateway struct {
	entries []entity.Feedback
	listErr []error
	created []string
}

func (f *fakeFeedbackGateway) List(context.Context) ([]entity.Feedback, error) {
	if len(f.listErr) > 0 {
		err := f.listErr[0]
		f.listErr = f.listErr[1:]

		return nil, err
	}

	return f.entries, nil
}

func (f *fakeFeedbackGateway) Create(_ context.Context, message string) error {
	f.created = append(f.created, message)

	return nil
}
