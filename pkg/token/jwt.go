package token

import (
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"taskapi/internal/core/domain"
)

// Codec issues and verifies signed access tokens. Tokens are stateless:
// validity is decided entirely by the HS256 signature and the exp claim.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue builds and signs a claim set {sub: email, id: userID, exp: now+ttl}.
func (c *Codec) Issue(email string, userID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"sub": email,
		"id":  userID.String(),
		"exp": time.Now().UTC().Add(c.ttl).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify checks signature and expiry, then extracts the id claim. Any
// verification failure is logged and surfaced as an authentication error
// without leaking the cause to the caller. A token that verifies but carries
// no usable id claim yields a TokenData whose UUID() fails downstream.
func (c *Codec) Verify(tokenString string) (domain.TokenData, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		slog.Error("Token verification failed", "error", err)
		return domain.TokenData{}, domain.NewAuthenticationError()
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)

	if !ok {
		slog.Error("Token carries unexpected claims type")
		return domain.TokenData{}, domain.NewAuthenticationError()
	}

	userID, _ := claims["id"].(string)

	return domain.TokenData{UserID: userID}, nil
}
