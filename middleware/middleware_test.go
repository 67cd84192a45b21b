package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clementus360/habit-dashboard/config"
)

const testToken = "s3cret-token"

func TestSessionGate(t *testing.T) {
	var reached bool
	protected := SessionGate(testToken)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusTeapot)
	}))

	cases := []struct {
		name   string
		cookie *http.Cookie
		admit  bool
	}{
		{"Matching Token", &http.Cookie{Name: config.SessionCookieName, Value: testToken}, true},
		{"No Cookie", nil, false},
		{"Empty Value", &http.Cookie{Name: config.SessionCookieName, Value: ""}, false},
		{"Wrong Value", &http.Cookie{Name: config.SessionCookieName, Value: "guess"}, false},
		{"Token Prefix", &http.Cookie{Name: config.SessionCookieName, Value: testToken[:4]}, false},
		{"Token With Suffix", &http.Cookie{Name: config.SessionCookieName, Value: testToken + "x"}, false},
		{"Different Cookie Name", &http.Cookie{Name: "session", Value: testToken}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reached = false
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.cookie != nil {
				req.AddCookie(tc.cookie)
			}
			rec := httptest.NewRecorder()

			protected.ServeHTTP(rec, req)

			if tc.admit {
				if !reached || rec.Code != http.StatusTeapot {
					t.Errorf("expected request to reach handler, got status %d", rec.Code)
				}
				return
			}
			if reached {
				t.Error("expected handler not to run")
			}
			if rec.Code != http.StatusSeeOther {
				t.Errorf("expected status 303, got %d", rec.Code)
			}
			if loc := rec.Header().Get("Location"); loc != "/login" {
				t.Errorf("expected redirect to /login, got %q", loc)
			}
		})
	}
}

func TestAuthorizedEmptyToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: config.SessionCookieName, Value: ""})
	if Authorized(req, "") {
		t.Error("expected an empty token never to authorize")
	}
}

func TestLoggingMiddleware(t *testing.T) {
	var buf strings.Builder
	out := config.Logger.Out
	config.Logger.SetOutput(&buf)
	t.Cleanup(func() { config.Logger.SetOutput(out) })

	handler := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/complete/abc", nil))

	if rec.Code != http.StatusBadGateway {
		t.Errorf("expected status 502 to pass through, got %d", rec.Code)
	}
	logged := buf.String()
	if !strings.Contains(logged, "status=502") || !strings.Contains(logged, "path=/complete/abc") {
		t.Errorf("expected status and path in log line, got %q", logged)
	}
}

func TestChain(t *testing.T) {
	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	handler := Chain(mark("first"), mark("second"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if strings.Join(order, ",") != "first,second,handler" {
		t.Errorf("unexpected order %v", order)
	}
}
