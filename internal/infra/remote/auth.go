package remote

import (
	"context"
	"net/url"

	"github.com/pkg/errors"

	"tiffin/internal/domain/gateway"
)

type authGateway struct {
	client *Client
}

// NewAuthGateway is the constructor for the marketplace auth gateway.
func NewAuthGateway(client *Client) gateway.AuthGateway {
	return &authGateway{client: client}
}

// Login exchanges credentials for a bearer token. A 4xx response carries
// the remote rejection message and surfaces as a RemoteError.
func (g *authGateway) Login(ctx context.Context, email, password string) (string, error) {
	payload := map[string]string{
		"emailAddress": email,
		"password":     password,
	}

	var reply struct {
		Token string `json:"token"`
	}
	if err := g.client.postJSON(ctx, "/api/Login", nil, payload, &reply); err != nil {
		return "", err
	}
	if reply.Token == "" {
		return "", errors.New("login response carried no token")
	}

	return reply.Token, nil
}

// RequestPasswordReset asks the marketplace to mail a reset.
func (g *authGateway) RequestPasswordReset(ctx context.Context, email string) error {
	payload := map[string]string{"emailAddress": email}

	return g.client.postJSON(ctx, "/api/Login/changePassword", nil, payload, nil)
}

// RegisterUser submits the user signup form. The endpoint takes form
// fields with dotted address keys.
func (g *authGateway) RegisterUser(ctx context.Context, reg gateway.UserRegistration) error {
	form := url.Values{}
	form.Set("Name", reg.Name)
	form.Set("PhoneNumber", reg.Phone)
	form.Set("EmailAddress", reg.Email)
	form.Set("Password", reg.Password)
	form.Set("Address.AddressType", reg.Address.Type)
	form.Set("Address.DoorNumber", reg.Address.DoorNumber)
	form.Set("Address.Street", reg.Address.Street)
	form.Set("Address.Area", reg.Address.Area)
	form.Set("Address.City", reg.Address.City)
	form.Set("Address.Postal", reg.Address.PostalCode)

	return g.client.postForm(ctx, "/api/Login/register", form)
}

// RegisterVendor submits the vendor signup payload. Field names follow the
// marketplace wire contract, misspellings included.
func (g *authGateway) RegisterVendor(ctx context.Context, reg gateway.VendorRegistration) error {
	payload := map[string]any{
		"name":          reg.OwnerName,
		"emailAddress":  reg.Email,
		"password":      reg.Password,
		"phoneNumber":   reg.Phone,
		"pancard":       reg.PANCard,
		"bankIFSC":      reg.BankIFSC,
		"bankAccount":   reg.BankAccount,
		"restrauntName": reg.Restaurant,
		"workingDays":   reg.WorkingDays,
		"address": map[string]string{
			"doorNumber":  reg.Address.DoorNumber,
			"street":      reg.Address.Street,
			"area":        reg.Address.Area,
			"city":        reg.Address.City,
			"state":       reg.Address.State,
			"postalCode":  reg.Address.PostalCode,
			"addressType": reg.Address.Type,
		},
	}

	return g.client.postJSON(ctx, "/api/Login/registerVendor", nil, payload, nil)
}
