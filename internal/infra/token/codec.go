// Package token provides the bearer-token codec. The marketplace API signs
// the token; the client only recovers the identity claims from the payload
// segment, so parsing is deliberately unverified here.
package token

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"tiffin/internal/domain/entity"
	"tiffin/internal/domain/service"
)

// Claim keys as issued by the marketplace API.
const (
	claimRole   = "Role"
	claimUserID = "UserId"
	claimName   = "Name"
)

type jwtCodec struct {
	parser *jwt.Parser
}

// NewJWTCodec is the constructor for the JWT-backed TokenCodec.
func NewJWTCodec() service.TokenCodec {
	return &jwtCodec{parser: jwt.NewParser()}
}

// Decode recovers claims from a bearer token. It fails when the token is
// not three dot-separated segments or the payload is not valid claims
// data; callers treat that exactly like an absent token. Expiry is decoded
// but not enforced — the marketplace API rejects expired tokens itself.
func (c *jwtCodec) Decode(raw string) (*entity.Claims, error) {
	parsed, _, err := c.parser.ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return nil, errors.Wrap(err, "malformed bearer token")
	}

	payload, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("bearer token payload is not a claims object")
	}

	claims := &entity.Claims{
		Role: entity.RoleFromString(stringClaim(payload, claimRole)),
		Name: stringClaim(payload, claimName),
	}

	if id, err := uuid.Parse(stringClaim(payload, claimUserID)); err == nil {
		claims.UserID = id
	}

	if exp, err := payload.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	return claims, nil
}

func stringClaim(payload jwt.MapClaims, key string) string {
	if v, ok := payload[key].(string); ok {
		return v
	}

	return ""
}
