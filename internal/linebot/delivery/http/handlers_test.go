package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"chatbot-srv/internal/middleware"
	pkgLine "chatbot-srv/pkg/line"
	"chatbot-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

const testSecret = "channel-secret"

type fakeUseCase struct {
	done chan pkgLine.WebhookPayload
}

func (f *fakeUseCase) Process(ctx context.Context, payload pkgLine.WebhookPayload) {
	f.done <- payload
}

type panicUseCase struct{}

func (panicUseCase) Process(ctx context.Context, payload pkgLine.WebhookPayload) {
	panic("boom")
}

func newTestRouter(h Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h.RegisterRoutes(r.Group(""), middleware.New(log.NewNop(), nil, nil, 0))
	return r
}

func postWebhook(r *gin.Engine, body, signature string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook/line", strings.NewReader(body))
	if signature != "" {
		req.Header.Set(pkgLine.SignatureHeader, signature)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestWebhook(t *testing.T) {
	body := `{"destination":"Ubot","events":[{"type":"message","replyToken":"rt","source":{"type":"user","userId":"U1"},"message":{"id":"1","type":"text","text":"hi"}}]}`

	t.Run("valid signature is acknowledged then processed", func(t *testing.T) {
		uc := &fakeUseCase{done: make(chan pkgLine.WebhookPayload, 1)}
		r := newTestRouter(New(log.NewNop(), uc, Config{ChannelSecret: testSecret, VerifySignature: true}))

		w := postWebhook(r, body, pkgLine.Sign([]byte(body), testSecret))
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		select {
		case p := <-uc.done:
			if p.Destination != "Ubot" || len(p.Events) != 1 || p.Events[0].Message.Text != "hi" {
				t.Errorf("payload = %+v", p)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("events were not processed")
		}
	})

	t.Run("bad signature", func(t *testing.T) {
		uc := &fakeUseCase{done: make(chan pkgLine.WebhookPayload, 1)}
		r := newTestRouter(New(log.NewNop(), uc, Config{ChannelSecret: testSecret, VerifySignature: true}))

		if w := postWebhook(r, body, "bm9wZQ=="); w.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", w.Code)
		}
		if w := postWebhook(r, body, ""); w.Code != http.StatusForbidden {
			t.Errorf("status without header = %d, want 403", w.Code)
		}
		if len(uc.done) != 0 {
			t.Error("unverified events were processed")
		}
	})

	t.Run("verification disabled", func(t *testing.T) {
		uc := &fakeUseCase{done: make(chan pkgLine.WebhookPayload, 1)}
		r := newTestRouter(New(log.NewNop(), uc, Config{VerifySignature: false}))

		if w := postWebhook(r, body, ""); w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
		select {
		case <-uc.done:
		case <-time.After(2 * time.Second):
			t.Fatal("events were not processed")
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		uc := &fakeUseCase{done: make(chan pkgLine.WebhookPayload, 1)}
		r := newTestRouter(New(log.NewNop(), uc, Config{ChannelSecret: testSecret, VerifySignature: true}))

		bad := `{"events":`
		if w := postWebhook(r, bad, pkgLine.Sign([]byte(bad), testSecret)); w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("panic in processing is contained", func(t *testing.T) {
		h := New(log.NewNop(), panicUseCase{}, Config{}).(*handler)
		done := make(chan struct{})
		h.dispatch = func(fn func()) {
			fn()
			close(done)
		}
		r := newTestRouter(h)

		if w := postWebhook(r, body, ""); w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
		<-done
	})
}
