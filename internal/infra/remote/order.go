package remote

import (
	"context"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"tiffin/internal/domain/entity"
	"tiffin/internal/domain/gateway"
	"tiffin/internal/domain/service"
)

type orderGateway struct {
	client *Client
	tokens service.TokenStore
}

// NewOrderGateway is the constructor for the marketplace order gateway.
// It reads the stored token so the order-context call can carry the
// Authorization header the endpoint requires.
func NewOrderGateway(client *Client, tokens service.TokenStore) gateway.OrderGateway {
	return &orderGateway{client: client, tokens: tokens}
}

type orderContextWire struct {
	FoodID    int64                  `json:"foodId"`
	Price     float64                `json:"price"`
	Name      string                 `json:"name"`
	Phone     string                 `json:"phone"`
	Addresses *envelope[addressWire] `json:"addresses"`
}

type addressWire struct {
	ID          int64  `json:"id"`
	AddressType string `json:"addressType"`
	DoorNumber  string `json:"doorNumber"`
	Street      string `json:"street"`
	Area        string `json:"area"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postalCode"`
}

// Context fetches the order-placing seed for a selected service.
func (g *orderGateway) Context(ctx context.Context, serviceID int64, userID uuid.UUID) (*entity.OrderContext, error) {
	bearer, err := g.tokens.Load()
	if err != nil && !errors.Is(err, service.ErrNoToken) {
		return nil, err
	}

	query := url.Values{}
	query.Set("foodId", strconv.FormatInt(serviceID, 10))
	query.Set("userLogedIn", userID.String())

	var reply orderContextWire
	if err := g.client.getJSON(ctx, "/api/Order/OrderPlacingAndAddressDetails", query, bearer, &reply); err != nil {
		return nil, err
	}

	wire := reply.Addresses.unwrap()
	addresses := make([]entity.Address, 0, len(wire))
	for _, w := range wire {
		addresses = append(addresses, entity.Address{
			ID:         w.ID,
			Type:       w.AddressType,
			DoorNumber: w.DoorNumber,
			Street:     w.Street,
			Area:       w.Area,
			City:       w.City,
			State:      w.State,
			PostalCode: w.PostalCode,
		})
	}

	return &entity.OrderContext{
		ServiceID: reply.FoodID,
		Price:     reply.Price,
		Name:      reply.Name,
		Phone:     reply.Phone,
		Addresses: addresses,
	}, nil
}

// Place submits the final order. The endpoint takes everything as query
// parameters; the amount is already truncated by the checkout machine.
func (g *orderGateway) Place(ctx context.Context, order entity.Order) error {
	query := url.Values{}
	query.Set("userId", order.UserID.String())
	query.Set("adressId", strconv.FormatInt(order.AddressID, 10))
	query.Set("Quantity", strconv.Itoa(order.Quantity))
	query.Set("foodId", strconv.FormatInt(order.ServiceID, 10))
	query.Set("amount", strconv.FormatFloat(order.Amount, 'f', 2, 64))

	return g.client.postJSON(ctx, "/api/Order/placeOrder", query, nil, nil)
}
