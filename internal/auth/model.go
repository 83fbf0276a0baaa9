package auth

import "github.com/golang-jwt/jwt/v5"

// CookieName is the session cookie the browser carries between requests.
const CookieName = "token"

// Claims is the identity payload embedded in a session token.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
}

// Identity is stored in the request context after authentication.
type Identity struct {
	UserID int64
	Email  string
}
