// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "tiffin/internal/delivery/context"
	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/gateway"
	"tiffin/internal/domain/service"
	"tiffin/internal/usecase"

	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	auth   gateway.AuthGateway
	codec  service.TokenCodec
	tokens service.TokenStore
	logger *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	auth gateway.AuthGateway,
	codec service.TokenCodec,
	tokens service.TokenStore,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		auth:   auth,
		codec:  codec,
		tokens: tokens,
		logger: logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Current re-derives the session from the stored token. Any failure along
// the way degrades to the guest session; a token that no longer decodes is
// also cleared so the next navigation starts clean.
func (srv *sessionService) Current(ctx context.Context) entity.Session {
	raw, err := srv.tokens.Load()
	if err != nil {
		if !errors.Is(err, service.ErrNoToken) {
			srv.log(ctx).Warn("Failed to read stored token", slog.Any("error", err))
		}

		return entity.GuestSession()
	}

	claims, err := srv.codec.Decode(raw)
	if err != nil {
		srv.log(ctx).Warn("Stored token no longer decodes, clearing it", slog.Any("error", err))
		if clearErr := srv.tokens.Clear(); clearErr != nil {
			srv.log(ctx).Warn("Failed to clear stale token", slog.Any("error", clearErr))
		}

		return entity.GuestSession()
	}

	// A token without a recognizable role claim carries no usable identity.
	if claims.Role == entity.RoleGuest {
		return entity.GuestSession()
	}

	return entity.SessionFromClaims(claims)
}

// Login exchanges credentials for a token, overwrites the stored one and
// returns the session derived from the fresh token.
func (srv *sessionService) Login(ctx context.Context, input usecase.LoginInput) (entity.Session, error) {
	srv.log(ctx).Info("Logging in", slog.String("email", input.Email))

	if input.Email == "" || input.Password == "" {
		return entity.GuestSession(), domainerrors.ErrInvalidCredentials
	}

	token, err := srv.auth.Login(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Login rejected", slog.Any("error", err), slog.String("email", input.Email))

		return entity.GuestSession(), err
	}

	claims, err := srv.codec.Decode(token)
	if err != nil {
		srv.log(ctx).Error("Login returned an undecodable token", slog.Any("error", err))

		return entity.GuestSession(), errors.Wrap(err, "decode login token")
	}

	if err := srv.tokens.Save(token); err != nil {
		return entity.GuestSession(), errors.Wrap(err, "persist login token")
	}

	session := entity.SessionFromClaims(claims)
	srv.log(ctx).Info("Logged in", slog.String("role", string(session.Role)), slog.Any("user_id", session.UserID))

	return session, nil
}

// Logout clears the stored token. Clearing an empty store is not an error.
func (srv *sessionService) Logout(ctx context.Context) error {
	srv.log(ctx).Info("Logging out")

	if err := srv.tokens.Clear(); err != nil {
		return errors.Wrap(err, "clear stored token")
	}

	return nil
}

// RequestPasswordReset asks the marketplace to start a password reset.
func (srv *sessionService) RequestPasswordReset(ctx context.Context, email string) error {
	srv.log(ctx).Info("Requesting password reset", slog.String("email", email))

	if email == "" {
		return domainerrors.ErrValidationFailed.WithDetails("email is required")
	}

	if err := srv.auth.RequestPasswordReset(ctx, email); err != nil {
		srv.log(ctx).Warn("Password reset request failed", slog.Any("error", err))

		return err
	}

	return nil
}

// RegisterUser signs up a new customer account.
func (srv *sessionService) RegisterUser(ctx context.Context, input usecase.RegisterUserInput) error {
	srv.log(ctx).Info("Registering user", slog.String("email", input.Email))

	err := srv.auth.RegisterUser(ctx, gateway.UserRegistration{
		Name:     input.Name,
		Phone:    input.Phone,
		Email:    input.Email,
		Password: input.Password,
		Address:  input.Address,
	})
	if err != nil {
		srv.log(ctx).Warn("User registration failed", slog.Any("error", err), slog.String("email", input.Email))

		return err
	}

	return nil
}

// RegisterVendor signs up a new vendor account.
func (srv *sessionService) RegisterVendor(ctx context.Context, input usecase.RegisterVendorInput) error {
	srv.log(ctx).Info("Registering vendor", slog.String("email", input.Email), slog.String("restaurant", input.Restaurant))

	err := srv.auth.RegisterVendor(ctx, gateway.VendorRegistration{
		OwnerName:   input.OwnerName,
		Restaurant:  input.Restaurant,
		Location:    input.Location,
		Email:       input.Email,
		Phone:       input.Phone,
		PANCard:     input.PANCard,
		WorkingDays: input.WorkingDays,
		BankIFSC:    input.BankIFSC,
		BankAccount: input.BankAccount,
		Password:    input.Password,
		Address:     input.Address,
	})
	if err != nil {
		srv.log(ctx).Warn("Vendor registration failed", slog.Any("error", err), slog.String("email", input.Email))

		return err
	}

	return nil
}
