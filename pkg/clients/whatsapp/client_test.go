package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/mamadbah2/bizdash/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *APIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.WhatsAppConfig{
		AccessToken:   "secret",
		PhoneNumberID: "12345",
		BaseURL:       srv.URL + "/",
		APIVersion:    "v20.0",
	})
}

func TestSendTextMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v20.0/12345/messages" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("authorization = %q", got)
		}
		var payload struct {
			To   string `json:"to"`
			Text struct {
				Body string `json:"body"`
			} `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode: %v", err)
		}
		if payload.To != "224600000000" || payload.Text.Body != "hello" {
			t.Errorf("payload = %+v", payload)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"messages":[{"id":"wamid.1"}]}`))
	})

	resp, err := client.SendTextMessage(context.Background(), SendTextMessageRequest{To: "224600000000", Body: "hello"})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if len(resp.Messages) != 1 || resp.Messages[0].ID != "wamid.1" {
		t.Fatalf("response = %+v", resp)
	}
}

func TestSendTextMessage_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid OAuth access token","code":190}}`))
	})

	_, err := client.SendTextMessage(context.Background(), SendTextMessageRequest{To: "1", Body: "x"})
	if err == nil || !strings.Contains(err.Error(), "code=190") || !strings.Contains(err.Error(), "Invalid OAuth") {
		t.Fatalf("unexpected error %v", err)
	}
}

type recordingClient struct {
	mu     sync.Mutex
	bodies []string
}

func (r *recordingClient) SendTextMessage(_ context.Context, req SendTextMessageRequest) (*SendTextMessageResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bodies = append(r.bodies, req.Body)
	return &SendTextMessageResponse{}, nil
}

func TestDigestSender_SplitsLongBodies(t *testing.T) {
	rec := &recordingClient{}
	sender := NewDigestSender(rec, "224600000000")

	line := strings.Repeat("x", 99) + "\n"
	body := strings.Repeat(line, 100)

	if err := sender.SendDigest(context.Background(), body); err != nil {
		t.Fatalf("send: %v", err)
	}
	if len(rec.bodies) != 3 {
		t.Fatalf("expected 3 parts, got %d", len(rec.bodies))
	}
	if strings.Join(rec.bodies, "") != body {
		t.Fatal("parts do not reassemble into the original body")
	}
	for _, part := range rec.bodies {
		if len(part) > MaxBodyLength {
			t.Fatalf("part of %d bytes exceeds limit", len(part))
		}
		if !strings.HasSuffix(part, "\n") {
			t.Fatal("parts should break on line boundaries")
		}
	}
}

func TestSplitBody_ShortBodyIsSinglePart(t *testing.T) {
	if parts := splitBody("hi", 10); len(parts) != 1 || parts[0] != "hi" {
		t.Fatalf("parts = %v", parts)
	}
}
