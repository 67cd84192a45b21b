package middleware

import (
	"crypto/subtle"
	"net/http"

	"clementus360/habit-dashboard/config"
)

const LoginPath = "/login"

// Authorized reports whether the request carries the session cookie holding token.
// A missing or empty cookie, or any other value, is not authorized.
func Authorized(r *http.Request, token string) bool {
	cookie, err := r.Cookie(config.SessionCookieName)
	if err != nil || cookie.Value == "" || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(cookie.Value), []byte(token)) == 1
}

// SessionGate admits requests carrying the configured session token and redirects
// everything else to the login page.
func SessionGate(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !Authorized(r, token) {
				config.Logger.Debugf("Unauthenticated request to %s, redirecting to login", r.URL.Path)
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
