package config

import "time"

const (
	AppName = "habit-dashboard"

	DefaultBaseURL  = "https://habitica.com/api/v3"
	DefaultClient   = AppName
	DefaultPort     = 3002
	DefaultTimeout  = 10 * time.Second
	DefaultLogLevel = "info"
)

// Session cookie settings
const (
	SessionCookieName = "authz"
	// Max-Age for a permanent cookie, twenty years.
	SessionCookieMaxAge = 20 * 365 * 24 * 60 * 60
)
