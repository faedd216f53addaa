package line_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/claimmate/claimmate/internal/channel"
	"github.com/claimmate/claimmate/internal/channel/adapters/line"
	"github.com/claimmate/claimmate/internal/config"
)

const testChannelSecret = "test-channel-secret"

type recordingDispatcher struct {
	texts   []string
	targets []string
}

func (d *recordingDispatcher) HandleIncoming(ctx context.Context, rawText, target string, sender channel.ReplySender) {
	d.texts = append(d.texts, rawText)
	d.targets = append(d.targets, target)
}

func newWebhookTestServer(t *testing.T) (*echo.Echo, *recordingDispatcher) {
	t.Helper()
	adapter, err := line.NewAdapter(nil, config.LineConfig{
		ChannelSecret:      testChannelSecret,
		ChannelAccessToken: "test-access-token",
	})
	if err != nil {
		t.Fatalf("NewAdapter: %v", err)
	}
	dispatcher := &recordingDispatcher{}
	e := echo.New()
	line.NewWebhookHandler(nil, adapter, dispatcher).Register(e)
	return e, dispatcher
}

func sign(body, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(body))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

const webhookBody = `{
  "destination": "U0000000000000000000000000000000",
  "events": [
    {
      "replyToken": "rt-001",
      "type": "message",
      "timestamp": 1700000000000,
      "source": {"type": "user", "userId": "U1234"},
      "message": {"id": "100001", "type": "text", "text": "菜單"}
    },
    {
      "replyToken": "rt-002",
      "type": "follow",
      "timestamp": 1700000000001,
      "source": {"type": "user", "userId": "U1234"}
    }
  ]
}`

func TestHandle_DispatchesTextEvents(t *testing.T) {
	t.Parallel()
	e, dispatcher := newWebhookTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/webhook/line", strings.NewReader(webhookBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("X-Line-Signature", sign(webhookBody, testChannelSecret))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if rec.Body.String() != "OK" {
		t.Fatalf("acknowledgement body = %q, want OK", rec.Body.String())
	}
	if len(dispatcher.texts) != 1 {
		t.Fatalf("dispatched %d events, want only the text message", len(dispatcher.texts))
	}
	if dispatcher.texts[0] != "菜單" || dispatcher.targets[0] != "rt-001" {
		t.Fatalf("dispatched (%q, %q)", dispatcher.texts[0], dispatcher.targets[0])
	}
}

func TestHandle_RejectsInvalidSignature(t *testing.T) {
	t.Parallel()
	e, dispatcher := newWebhookTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/webhook/line", strings.NewReader(webhookBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("X-Line-Signature", sign(webhookBody, "wrong-secret"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if len(dispatcher.texts) != 0 {
		t.Fatal("events must not be dispatched on invalid signature")
	}
}

func TestHandle_UnconfiguredChannel(t *testing.T) {
	t.Parallel()
	adapter, err := line.NewAdapter(nil, config.LineConfig{})
	if err != nil {
		t.Fatalf("NewAdapter: %v", err)
	}
	e := echo.New()
	line.NewWebhookHandler(nil, adapter, &recordingDispatcher{}).Register(e)

	req := httptest.NewRequest(http.MethodPost, "/webhook/line", strings.NewReader(webhookBody))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestHandleProbe(t *testing.T) {
	t.Parallel()
	e, _ := newWebhookTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/webhook/line", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
