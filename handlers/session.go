package handlers

import (
	"bytes"
	"clementus360/habit-dashboard/config"
	"clementus360/habit-dashboard/middleware"
	"net/http"
)

const dashboardPath = "/"

// LoginPageHandler serves the login form.
func (s *Server) LoginPageHandler(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.Renderer.RenderLogin(&buf); err != nil {
		config.Logger.Error("Failed to render login page: ", err)
		http.Error(w, "Failed to render login page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

// LoginHandler checks the submitted form against the configured username and password
// and issues the session cookie on a match. Credentials are compared in plaintext.
func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	if middleware.Authorized(r, s.Site.AuthzToken) {
		http.Redirect(w, r, dashboardPath, http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		config.Logger.Warn("Failed to parse login form: ", err)
		http.Redirect(w, r, middleware.LoginPath, http.StatusSeeOther)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username != s.Site.Username || password != s.Site.Password {
		config.Logger.Warnf("Failed login attempt for %q from %s", username, r.RemoteAddr)
		http.Redirect(w, r, middleware.LoginPath, http.StatusSeeOther)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     config.SessionCookieName,
		Value:    s.Site.AuthzToken,
		Path:     "/",
		MaxAge:   config.SessionCookieMaxAge,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	config.Logger.Infof("Login succeeded for %q", username)
	http.Redirect(w, r, dashboardPath, http.StatusSeeOther)
}

// LogoutHandler drops the session cookie from the browser. The token itself stays valid.
func (s *Server) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     config.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, middleware.LoginPath, http.StatusSeeOther)
}
