package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"assistant-relay/config"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newTestRouter(mw Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID())
	r.Use(mw.CORS())
	r.POST("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestCORS(t *testing.T) {
	mw := New(&mockLogger{}, config.ChatConfig{
		AllowedOrigins:  []string{"https://allowed.example"},
		RateLimitPerMin: 1000,
	})
	r := newTestRouter(mw)

	t.Run("Allowed Origin Gets Headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/ping", nil)
		req.Header.Set("Origin", "https://allowed.example")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://allowed.example" {
			t.Errorf("expected origin echoed, got %q", got)
		}
	})

	t.Run("Disallowed Origin Gets No Headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/ping", nil)
		req.Header.Set("Origin", "https://evil.example")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("expected no CORS headers, got %q", got)
		}
	})

	t.Run("Preflight Answered", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
		req.Header.Set("Origin", "https://allowed.example")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("expected 204 on preflight, got %d", w.Code)
		}
	})
}

func TestRequestID(t *testing.T) {
	mw := New(&mockLogger{}, config.ChatConfig{RateLimitPerMin: 1000})
	r := newTestRouter(mw)

	t.Run("Generated When Absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ping", nil))
		if w.Header().Get("X-Request-ID") == "" {
			t.Error("expected request id generated")
		}
	})

	t.Run("Echoed When Present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/ping", nil)
		req.Header.Set("X-Request-ID", "given-id")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if got := w.Header().Get("X-Request-ID"); got != "given-id" {
			t.Errorf("expected given-id, got %q", got)
		}
	})
}

func TestRateLimiter(t *testing.T) {
	rl := newRateLimiter(5)

	for i := 0; i < 5; i++ {
		if err := rl.Allow("1.2.3.4"); err != nil {
			t.Fatalf("request %d should pass: %v", i, err)
		}
	}
	if err := rl.Allow("1.2.3.4"); err == nil {
		t.Error("expected sixth request rejected")
	}

	// Other clients have their own budget.
	if err := rl.Allow("5.6.7.8"); err != nil {
		t.Errorf("unexpected rejection for fresh client: %v", err)
	}
}
