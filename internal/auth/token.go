package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the single failure a caller sees from Verify. Malformed,
// tampered and expired tokens all collapse into it; the distinction only
// matters for internal logs, never for clients.
var ErrInvalidToken = errors.New("invalid or expired token")

// Codec mints and validates HS256-signed session tokens carrying a user
// identity claim. Verification is a pure function of the token, the secret
// and the clock; the codec holds no per-session state.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec creates a Codec signing with secret and issuing tokens valid
// for ttl.
func NewCodec(secret []byte, ttl time.Duration) *Codec {
	return &Codec{secret: secret, ttl: ttl, now: time.Now}
}

// Issue mints a signed token binding the user identity to an expiry of
// issuance + ttl.
func (c *Codec) Issue(userID int64, email string) (string, error) {
	now := c.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		UserID: userID,
		Email:  email,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", err
	}

	return token, nil
}

// Verify checks the signature and expiry of a token and returns its claims.
// The HMAC comparison inside jwt/v5 is constant-time.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
