package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sp1r1tt/dashboard2025/internal/api/response"
	"github.com/sp1r1tt/dashboard2025/internal/auth"
)

const identityKey contextKey = "identity"

// unauthorizedMessage is the single body every 401 from the gate carries.
// Clients must not be able to tell a missing token from an expired or
// tampered one; the distinction lives in the logs only.
const unauthorizedMessage = "Missing or invalid token"

// TokenVerifier validates a session token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// TokenExtractor pulls a candidate session token from a request. Extractors
// are tried in order; the first match wins.
type TokenExtractor func(r *http.Request) (string, bool)

// BearerToken extracts a token from an "Authorization: Bearer" header.
func BearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}

// CookieToken extracts a token from the named cookie.
func CookieToken(name string) TokenExtractor {
	return func(r *http.Request) (string, bool) {
		c, err := r.Cookie(name)
		if err != nil || c.Value == "" {
			return "", false
		}
		return c.Value, true
	}
}

// Auth is middleware that authenticates a request by extracting a session
// token (Authorization header first, then the session cookie), verifying it
// and storing the resulting Identity in the context. It never re-fetches the
// user row: a deleted user keeps a valid session until the token expires.
func Auth(verifier TokenVerifier, extractors ...TokenExtractor) func(http.Handler) http.Handler {
	if len(extractors) == 0 {
		extractors = []TokenExtractor{BearerToken, CookieToken(auth.CookieName)}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var token string
			for _, extract := range extractors {
				if t, ok := extract(r); ok {
					token = t
					break
				}
			}

			if token == "" {
				slog.Debug("request rejected: missing token",
					"path", r.URL.Path, "requestId", GetRequestID(r.Context()))
				response.Message(w, http.StatusUnauthorized, unauthorizedMessage)
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				slog.Debug("request rejected: invalid token",
					"path", r.URL.Path, "requestId", GetRequestID(r.Context()), "error", err)
				response.Message(w, http.StatusUnauthorized, unauthorizedMessage)
				return
			}

			identity := &auth.Identity{UserID: claims.UserID, Email: claims.Email}
			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentity retrieves the authenticated Identity from the request context.
func GetIdentity(ctx context.Context) *auth.Identity {
	if id, ok := ctx.Value(identityKey).(*auth.Identity); ok {
		return id
	}
	return nil
}
