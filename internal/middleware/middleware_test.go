package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"chatbot-srv/pkg/log"
	pkgRedis "chatbot-srv/pkg/redis"
	"chatbot-srv/pkg/scope"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeVerifier struct{}

func (fakeVerifier) Verify(token string) (scope.Payload, error) {
	switch token {
	case "admin-token":
		return scope.Payload{UserID: "admin", Username: "admin", Role: scope.RoleAdmin}, nil
	case "user-token":
		return scope.Payload{UserID: "u1", Role: "viewer"}, nil
	}
	return scope.Payload{}, errors.New("invalid token")
}

func TestAuthAndAdminOnly(t *testing.T) {
	m := New(log.NewNop(), fakeVerifier{}, nil, 0)
	r := gin.New()
	r.GET("/admin", m.Auth(), m.AdminOnly(), func(c *gin.Context) {
		sc := scope.GetScopeFromContext(c.Request.Context())
		c.String(http.StatusOK, sc.Username)
	})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"invalid", "Bearer nope", http.StatusUnauthorized},
		{"not admin", "Bearer user-token", http.StatusForbidden},
		{"admin", "Bearer admin-token", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := pkgRedis.NewFromClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))

	m := New(log.NewNop(), nil, rdb, 2)
	r := gin.New()
	var bodies []string
	r.POST("/chat", m.RateLimit(), func(c *gin.Context) {
		b, _ := io.ReadAll(c.Request.Body)
		bodies = append(bodies, string(b))
		c.Status(http.StatusOK)
	})

	send := func(remoteAddr, body string) int {
		req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
		req.RemoteAddr = remoteAddr
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	tests := []struct {
		name       string
		remoteAddr string
		body       string
		want       int
	}{
		{"first request", "192.0.2.1:1234", `{"message":"hi","conversationId":"conv_1"}`, http.StatusOK},
		{"second request", "192.0.2.1:1234", `{"message":"hi","conversationId":"conv_2"}`, http.StatusOK},
		{"fresh conversation id is still limited", "192.0.2.1:1234", `{"message":"hi","conversationId":"conv_3"}`, http.StatusTooManyRequests},
		{"no conversation id is limited", "192.0.2.1:5678", `{"message":"hi"}`, http.StatusTooManyRequests},
		{"other client", "198.51.100.7:4000", `{"message":"hi","conversationId":"conv_3"}`, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := send(tt.remoteAddr, tt.body); code != tt.want {
				t.Errorf("status = %d, want %d", code, tt.want)
			}
		})
	}

	if len(bodies) == 0 || bodies[0] != tests[0].body {
		t.Errorf("handler bodies = %q, want the request body untouched", bodies)
	}
}

func TestRateLimit_RedisDownLetsThrough(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := pkgRedis.NewFromClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	mr.Close()

	m := New(log.NewNop(), nil, rdb, 1)
	r := gin.New()
	r.POST("/chat", m.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{}`)))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d status = %d", i, w.Code)
		}
	}
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORS())
	r.POST("/chat", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/chat", nil))
	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing allow origin")
	}
}
