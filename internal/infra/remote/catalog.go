package remote

import (
	"context"
	"net/url"
	"strconv"

	"tiffin/internal/domain/entity"
	"tiffin/internal/domain/gateway"
)

type catalogGateway struct {
	client *Client
}

// NewCatalogGateway is the constructor for the marketplace catalog gateway.
func NewCatalogGateway(client *Client) gateway.CatalogGateway {
	return &catalogGateway{client: client}
}

type menuServiceWire struct {
	ID         int64   `json:"id"`
	FoodName   string  `json:"foodName"`
	Restaurant string  `json:"restrauntName"`
	Location   string  `json:"location"`
	Area       string  `json:"area"`
	Pincode    string  `json:"pincode"`
	FoodDesc   string  `json:"foodDesc"`
	Price      float64 `json:"price"`
	Rating     float64 `json:"rating"`
}

// ListMenu fetches the catalog for the filter. The collection arrives
// inside a $values envelope; a missing envelope means an empty listing.
func (g *catalogGateway) ListMenu(ctx context.Context, filter entity.CatalogFilter) ([]entity.MenuService, error) {
	query := url.Values{}
	query.Set("pincode", filter.Pincode)
	if filter.Category != nil {
		query.Set("foodType", strconv.Itoa(int(*filter.Category)))
	} else {
		query.Set("foodType", "")
	}

	var reply envelope[menuServiceWire]
	if err := g.client.getJSON(ctx, "/api/Menu/GetAllMenu", query, "", &reply); err != nil {
		return nil, err
	}

	wire := reply.unwrap()
	services := make([]entity.MenuService, 0, len(wire))
	for _, w := range wire {
		services = append(services, entity.MenuService{
			ID:          w.ID,
			Name:        w.FoodName,
			Restaurant:  w.Restaurant,
			Location:    w.Location,
			Area:        w.Area,
			Pincode:     w.Pincode,
			Description: w.FoodDesc,
			Price:       w.Price,
			Rating:      w.Rating,
		})
	}

	return services, nil
}
