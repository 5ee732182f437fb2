package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/tbourn/holistiq/internal/assistant"
	"github.com/tbourn/holistiq/internal/domain"
	"github.com/tbourn/holistiq/internal/services"
)

func TestChatbot_OK(t *testing.T) {
	d := newDeps()
	d.chat.res = &services.ChatResult{
		TurnID:    "t1",
		SessionID: "s-1",
		Reply:     assistant.Reply{Text: "Aim for 150 minutes a week.", Provider: "rules"},
		Timestamp: domain.NewTimestamp(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)),
	}

	w := do(t, d.router(), http.MethodPost, "/api/chatbot",
		`{"message":"how much exercise?","session_id":"s-1","age":30,"weight":70.5,"goals":"run 5k"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	resp := decode[map[string]any](t, w)
	if resp["success"] != true || resp["response"] != "Aim for 150 minutes a week." ||
		resp["timestamp"] != "2024-05-01 09:00:00" || resp["session_id"] != "s-1" || resp["provider"] != "rules" {
		t.Fatalf("unexpected body: %v", resp)
	}
	if _, ok := resp["fallback"]; ok {
		t.Fatalf("fallback should be omitted: %v", resp)
	}

	got := d.chat.got
	if got.Message != "how much exercise?" || got.SessionID != "s-1" {
		t.Fatalf("request = %+v", got)
	}
	if got.Health.Age == nil || *got.Health.Age != 30 || got.Health.Weight == nil || *got.Health.Weight != 70.5 || got.Health.Goals != "run 5k" {
		t.Fatalf("health context not forwarded: %+v", got.Health)
	}
	if got.Health.Height != nil {
		t.Fatalf("height should be absent")
	}
}

func TestChatbot_FallbackFlag(t *testing.T) {
	d := newDeps()
	d.chat.res = &services.ChatResult{
		SessionID: services.DefaultSessionID,
		Reply:     assistant.Reply{Text: "sorry", Provider: "openai", Fallback: true},
	}
	w := do(t, d.router(), http.MethodPost, "/api/chatbot", `{"message":"hi"}`)
	resp := decode[map[string]any](t, w)
	if w.Code != http.StatusOK || resp["fallback"] != true {
		t.Fatalf("status=%d body=%v", w.Code, resp)
	}
}

func TestChatbot_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
		code   string
	}{
		{"bad json", `{"message":`, nil, http.StatusBadRequest, ErrCodeBadRequest},
		{"empty body", ``, nil, http.StatusBadRequest, ErrCodeBadRequest},
		{"empty message", `{"message":"  "}`, services.ErrEmptyMessage, http.StatusBadRequest, ErrCodeBadRequest},
		{"not configured", `{"message":"hi"}`, assistant.ErrNotConfigured, http.StatusServiceUnavailable, ErrCodeAssistantUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps()
			d.chat.err = tt.err
			w := do(t, d.router(), http.MethodPost, "/api/chatbot", tt.body)
			expectError(t, w, tt.status, tt.code)
		})
	}
}
