package middleware

import (
	"net/http"

	"github.com/sp1r1tt/dashboard2025/internal/auth"
)

// RouteGuard redirects browser navigations to the login page when the
// session cookie is absent. It checks presence only, never signature or
// expiry, so it is a UX shortcut and not a security boundary; every API
// route performs real verification through Auth regardless.
func RouteGuard(loginPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, err := r.Cookie(auth.CookieName); err != nil {
				http.Redirect(w, r, loginPath, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
