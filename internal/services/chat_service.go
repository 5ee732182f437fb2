// Package services – ChatService
//
// ChatService validates a chat message, asks the configured assistant for a
// reply and records the exchange. Provider selection lives in the assistant
// package; this service only sees the Responder interface.
//
// Observability: Ask is OpenTelemetry-instrumented with the provider name and
// whether the canned fallback was used.
package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/holistiq/internal/assistant"
	"github.com/tbourn/holistiq/internal/domain"
	"github.com/tbourn/holistiq/internal/repo"
	"github.com/tbourn/holistiq/internal/sysutil"
)

// DefaultSessionID groups turns from clients that send no session id.
const DefaultSessionID = "default"

// ChatResult is a reply plus the bookkeeping returned to the client.
type ChatResult struct {
	TurnID    domain.ID
	SessionID string
	Reply     assistant.Reply
	Timestamp domain.Timestamp
}

// ChatService answers chat messages.
type ChatService struct {
	// Store records every answered turn.
	Store *repo.Store
	// Responder produces the reply text.
	Responder assistant.Responder

	// MaxMessageRunes caps incoming messages by rune length.
	MaxMessageRunes int
	// Now is the clock used for turn timestamps.
	Now func() time.Time
}

// NewChatService constructs a ChatService with a 2000-rune message cap.
func NewChatService(store *repo.Store, r assistant.Responder) *ChatService {
	return &ChatService{
		Store:           store,
		Responder:       r,
		MaxMessageRunes: 2000,
		Now:             time.Now,
	}
}

// Ask validates req.Message, gets a reply and records the turn.
//
// assistant.ErrNotConfigured is returned unchanged and nothing is recorded.
// Upstream provider failures never reach here: the responder turns them into
// the apology text, which is recorded like any other reply.
func (s *ChatService) Ask(ctx context.Context, req assistant.Request) (*ChatResult, error) {
	tr := otel.Tracer("services/ChatService")
	ctx, span := tr.Start(ctx, "Ask",
		trace.WithAttributes(attribute.String("assistant.provider", s.Responder.Name())),
	)
	defer span.End()

	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		return nil, ErrEmptyMessage
	}
	if s.MaxMessageRunes > 0 && utf8.RuneCountInString(req.Message) > s.MaxMessageRunes {
		return nil, ErrMessageTooLong
	}
	req.SessionID = strings.TrimSpace(sysutil.FirstNonEmpty(req.SessionID, DefaultSessionID))

	reply, err := s.Responder.Respond(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Bool("assistant.fallback", reply.Fallback))

	now := domain.Now()
	if s.Now != nil {
		now = domain.NewTimestamp(s.Now())
	}
	id := s.Store.Insert(ctx, &domain.ChatTurn{
		SessionID:   req.SessionID,
		UserMessage: req.Message,
		BotResponse: reply.Text,
		Provider:    reply.Provider,
		Fallback:    reply.Fallback,
		Timestamp:   now,
	})

	return &ChatResult{TurnID: id, SessionID: req.SessionID, Reply: reply, Timestamp: now}, nil
}
