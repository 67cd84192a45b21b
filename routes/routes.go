package routes

import (
	"clementus360/habit-dashboard/handlers"
	"clementus360/habit-dashboard/middleware"
	"clementus360/habit-dashboard/web"
	"net/http"
)

// RegisterAllRoutes registers all application routes
func RegisterAllRoutes(mux *http.ServeMux, s *handlers.Server) {
	RegisterSessionRoutes(mux, s)
	RegisterTaskRoutes(mux, s)
	mux.Handle("GET /static/", web.StaticHandler("/static/"))
}

// RegisterSessionRoutes registers the login routes, which sit outside the session gate
func RegisterSessionRoutes(mux *http.ServeMux, s *handlers.Server) {
	mux.HandleFunc("GET /login", s.LoginPageHandler)
	mux.HandleFunc("POST /api/login", s.LoginHandler)
	mux.HandleFunc("POST /api/logout", s.LogoutHandler)
}

// RegisterTaskRoutes registers the dashboard routes behind the session gate
func RegisterTaskRoutes(mux *http.ServeMux, s *handlers.Server) {
	gate := middleware.SessionGate(s.Site.AuthzToken)

	mux.Handle("GET /{$}", gate(http.HandlerFunc(s.DashboardHandler)))
	mux.Handle("POST /complete/{id}", gate(http.HandlerFunc(s.CompleteTaskHandler)))
}

// NewHandler builds the full application handler with request logging applied
func NewHandler(s *handlers.Server) http.Handler {
	mux := http.NewServeMux()
	RegisterAllRoutes(mux, s)
	return middleware.Chain(middleware.LoggingMiddleware)(mux)
}
