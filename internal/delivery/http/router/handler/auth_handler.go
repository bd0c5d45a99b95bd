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

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// AuthHandler serves the login, signup and password-reset screens.
type AuthHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// sessionPayload is the session summary rendered in every screen header.
type sessionPayload struct {
	Authenticated bool   `json:"authenticated"`
	Role          string `json:"role"`
	Name          string `json:"name,omitempty"`
	FirstName     string `json:"firstName,omitempty"`
}

func sessionData(session entity.Session) sessionPayload {
	return sessionPayload{
		Authenticated: session.Authenticated,
		Role:          string(session.Role),
		Name:          session.Name,
		FirstName:     session.FirstName(),
	}
}

// screenPayload is the common screen envelope: gate branch plus header data.
type screenPayload struct {
	Branch  string         `json:"branch"`
	Session sessionPayload `json:"session"`
	Data    any            `json:"data,omitempty"`
	Notice  string         `json:"notice,omitempty"`
}

// LoginRequest represents the login form.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// AddressRequest represents the typed address block shared by both signup
// forms.
type AddressRequest struct {
	Type       string `json:"type" form:"address.type"`
	DoorNumber string `json:"doorNumber" form:"address.doorNumber"`
	Street     string `json:"street" form:"address.street"`
	Area       string `json:"area" form:"address.area"`
	City       string `json:"city" form:"address.city"`
	State      string `json:"state" form:"address.state"`
	PostalCode string `json:"postalCode" form:"address.postalCode" validate:"required"`
}

// SignupRequest represents the customer signup form.
type SignupRequest struct {
	Name     string         `json:"name" form:"name" validate:"required"`
	Phone    string         `json:"phone" form:"phone" validate:"required"`
	Email    string         `json:"email" form:"email" validate:"required,email"`
	Password string         `json:"password" form:"password" validate:"required,min=6"`
	Address  AddressRequest `json:"address"`
}

// VendorSignupRequest represents the vendor signup form.
type VendorSignupRequest struct {
	OwnerName   string         `json:"ownerName" validate:"required"`
	Restaurant  string         `json:"restaurantName" validate:"required"`
	Location    string         `json:"location"`
	Email       string         `json:"email" validate:"required,email"`
	Phone       string         `json:"phone" validate:"required"`
	PANCard     string         `json:"pancard" validate:"required"`
	WorkingDays []string       `json:"workingDays" validate:"required,min=1"`
	BankIFSC    string         `json:"bankIfsc"`
	BankAccount string         `json:"bankAccount"`
	Password    string         `json:"password" validate:"required,min=6"`
	Address     AddressRequest `json:"address"`
}

// ForgotPasswordRequest represents the password-reset form.
type ForgotPasswordRequest struct {
	Email string `json:"email" form:"email" validate:"required,email"`
}

func (r AddressRequest) toEntity() entity.Address {
	return entity.Address{
		Type:       r.Type,
		DoorNumber: r.DoorNumber,
		Street:     r.Street,
		Area:       r.Area,
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
	}
}

// screen renders an auth screen: always the standard branch, with the
// session re-derived for the header.
func (h *AuthHandler) screen(c echo.Context, screen policy.Screen) error {
	session := h.sessionUC.Current(c.Request().Context())
	decision := policy.Resolve(session, screen)

	return response.Success(c, http.StatusOK, screenPayload{
		Branch:  string(decision.Branch),
		Session: sessionData(session),
	}, "")
}

// LoginScreen renders the login screen.
func (h *AuthHandler) LoginScreen(c echo.Context) error {
	return h.screen(c, policy.ScreenLogin)
}

// SignupScreen renders the customer signup screen.
func (h *AuthHandler) SignupScreen(c echo.Context) error {
	return h.screen(c, policy.ScreenSignup)
}

// VendorSignupScreen renders the vendor signup screen.
func (h *AuthHandler) VendorSignupScreen(c echo.Context) error {
	return h.screen(c, policy.ScreenSignupVendor)
}

// ForgotPasswordScreen renders the password-reset screen.
func (h *AuthHandler) ForgotPasswordScreen(c echo.Context) error {
	return h.screen(c, policy.ScreenForgotPassword)
}

// Login signs the user in and stores the bearer token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.sessionUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"session": sessionData(session),
		"next":    "/listing",
	}, "Logged in successfully")
}

// Logout clears the stored token.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessionUC.Logout(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"next": "/login"}, "Logged out")
}

// Signup registers a customer account.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	err := h.sessionUC.RegisterUser(c.Request().Context(), usecase.RegisterUserInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address.toEntity(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"next": "/login"}, "Account created")
}

// VendorSignup registers a vendor account.
func (h *AuthHandler) VendorSignup(c echo.Context) error {
	var req VendorSignupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vendor signup input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	err := h.sessionUC.RegisterVendor(c.Request().Context(), usecase.RegisterVendorInput{
		OwnerName:   req.OwnerName,
		Restaurant:  req.Restaurant,
		Location:    req.Location,
		Email:       req.Email,
		Phone:       req.Phone,
		PANCard:     req.PANCard,
		WorkingDays: req.WorkingDays,
		BankIFSC:    req.BankIFSC,
		BankAccount: req.BankAccount,
		Password:    req.Password,
		Address:     req.Address.toEntity(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"next": "/login"}, "Vendor account created")
}

// ForgotPassword starts a password reset.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.sessionUC.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset requested")
}
