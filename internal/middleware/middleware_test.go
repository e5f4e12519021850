package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func signed(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

func protectedRouter(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append(mw, func(c *gin.Context) {
		uid := UserID(c)
		if uid == nil {
			c.String(http.StatusOK, "anon")
			return
		}
		c.String(http.StatusOK, "%d:%s", *uid, c.GetString(ContextUserRole))
	})
	r.GET("/p", handlers...)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := protectedRouter(AuthMiddleware(testSecret))
	valid := signed(t, testSecret, jwt.MapClaims{
		"sub": 3, "role": "owner", "exp": time.Now().Add(time.Hour).Unix(),
	})

	cases := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"missing", "", http.StatusUnauthorized, ""},
		{"not bearer", "Basic abc", http.StatusUnauthorized, ""},
		{"garbage", "Bearer abc", http.StatusUnauthorized, ""},
		{"wrong secret", "Bearer " + signed(t, "other", jwt.MapClaims{"sub": 3}), http.StatusUnauthorized, ""},
		{"expired", "Bearer " + signed(t, testSecret, jwt.MapClaims{"sub": 3, "exp": time.Now().Add(-time.Hour).Unix()}), http.StatusUnauthorized, ""},
		{"no subject", "Bearer " + signed(t, testSecret, jwt.MapClaims{"role": "owner"}), http.StatusUnauthorized, ""},
		{"valid", "Bearer " + valid, http.StatusOK, "3:owner"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/p", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tc.status, w.Body.String())
			}
			if tc.body != "" && w.Body.String() != tc.body {
				t.Fatalf("body = %q, want %q", w.Body.String(), tc.body)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	r := protectedRouter(AuthMiddleware(testSecret), RequireRole("owner"))

	staff := signed(t, testSecret, jwt.MapClaims{"sub": 4, "role": "staff"})
	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	req.Header.Set("Authorization", "Bearer "+staff)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}

	owner := signed(t, testSecret, jwt.MapClaims{"sub": 1, "role": "owner"})
	req = httptest.NewRequest(http.MethodGet, "/p", nil)
	req.Header.Set("Authorization", "Bearer "+owner)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestRequestID(t *testing.T) {
	r := protectedRouter(RequestID())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/p", nil))
	if len(w.Header().Get(HeaderRequestID)) != 36 {
		t.Fatalf("generated id = %q", w.Header().Get(HeaderRequestID))
	}

	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get(HeaderRequestID) != "abc-123" {
		t.Fatalf("id = %q, want abc-123", w.Header().Get(HeaderRequestID))
	}
}

type fakeCounter struct {
	IncrFn func(ctx context.Context, key string, window time.Duration) (int64, error)
}

func (f *fakeCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	if f.IncrFn == nil {
		panic("IncrFn not set")
	}
	return f.IncrFn(ctx, key, window)
}

func TestRateLimit(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	hits := map[string]int64{}
	counter := &fakeCounter{IncrFn: func(_ context.Context, key string, _ time.Duration) (int64, error) {
		hits[key]++
		return hits[key], nil
	}}
	r := protectedRouter(RateLimit(counter, "login", 2, time.Minute, log))

	codes := []int{}
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/p", nil))
		codes = append(codes, w.Code)
	}
	if codes[0] != 200 || codes[1] != 200 || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("codes = %v", codes)
	}
}

func TestRateLimit_FailsOpen(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	counter := &fakeCounter{IncrFn: func(context.Context, string, time.Duration) (int64, error) {
		return 0, errors.New("redis down")
	}}
	r := protectedRouter(RateLimit(counter, "login", 1, time.Minute, log))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/p", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestCORS_Preflight(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware(nil))
	r.GET("/p", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/p", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
		t.Fatalf("allow origin = %q", w.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestCORS_RestrictedOrigins(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://agenda.example.com"}))
	r.GET("/p", func(c *gin.Context) { c.Status(http.StatusOK) })

	for origin, want := range map[string]string{
		"https://agenda.example.com": "https://agenda.example.com",
		"https://evil.example.com":   "",
	} {
		req := httptest.NewRequest(http.MethodGet, "/p", nil)
		req.Header.Set("Origin", origin)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != want {
			t.Fatalf("origin %s: allow origin = %q, want %q", origin, got, want)
		}
	}
}
