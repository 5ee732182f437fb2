package assistant

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Message is one chat message sent to a provider.
type Message struct {
	Role    string // system | user | assistant
	Content string
}

// Provider is a text-generation backend.
type Provider interface {
	Chat(ctx context.Context, messages []Message) (string, error)
}

const (
	defaultTimeout  = 20 * time.Second
	defaultMaxWords = 150
)

// Remote asks a Provider for each reply. A nil provider makes every call
// return ErrNotConfigured.
type Remote struct {
	name     string
	provider Provider
	timeout  time.Duration
	maxWords int
}

// NewRemote builds a remote responder. Zero timeout or maxWords select the defaults.
func NewRemote(name string, p Provider, timeout time.Duration, maxWords int) *Remote {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if maxWords <= 0 {
		maxWords = defaultMaxWords
	}
	return &Remote{name: name, provider: p, timeout: timeout, maxWords: maxWords}
}

func (r *Remote) Name() string { return r.name }

// Respond sends the prompt under the configured timeout. Any provider error
// or blank answer produces ApologyText with Fallback set.
func (r *Remote) Respond(ctx context.Context, req Request) (Reply, error) {
	if r.provider == nil {
		replies.WithLabelValues(r.name, "unconfigured").Inc()
		return Reply{}, ErrNotConfigured
	}

	ctx, span := otel.Tracer("assistant/Remote").Start(ctx, "Respond",
		trace.WithAttributes(
			attribute.String("assistant.provider", r.name),
			attribute.String("session.id", req.SessionID),
		),
	)
	defer span.End()

	cctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	text, err := r.provider.Chat(cctx, BuildPrompt(req, r.maxWords))
	text = strings.TrimSpace(text)
	if err == nil && text == "" {
		err = fmt.Errorf("%s: empty reply", r.name)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "provider failed")
		replies.WithLabelValues(r.name, "fallback").Inc()
		log.Warn().Err(err).
			Str("provider", r.name).
			Str("session_id", req.SessionID).
			Msg("assistant provider failed; using fallback reply")
		return Reply{Text: ApologyText, Provider: r.name, Fallback: true}, nil
	}

	replies.WithLabelValues(r.name, "ok").Inc()
	return Reply{Text: text, Provider: r.name}, nil
}

// BuildPrompt returns the system instruction followed by the user turn. The
// user turn starts with a context block listing only the health attributes
// that were supplied.
func BuildPrompt(req Request, maxWords int) []Message {
	system := "You are Holistiq, a friendly health and wellness assistant. " +
		"You are not a medical professional: say so whenever you give health advice, " +
		"and recommend consulting a qualified professional for medical concerns. " +
		"Keep answers practical and encouraging, and no longer than " + strconv.Itoa(maxWords) + " words."

	var b strings.Builder
	if lines := contextLines(req.Health); len(lines) > 0 {
		b.WriteString("User health context:\n")
		for _, l := range lines {
			b.WriteString("- ")
			b.WriteString(l)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	b.WriteString("Question: ")
	b.WriteString(strings.TrimSpace(req.Message))

	return []Message{
		{Role: "system", Content: system},
		{Role: "user", Content: b.String()},
	}
}

func contextLines(h HealthContext) []string {
	var out []string
	if h.Age != nil && *h.Age > 0 {
		out = append(out, fmt.Sprintf("Age: %d years", *h.Age))
	}
	if h.Weight != nil && *h.Weight > 0 {
		out = append(out, fmt.Sprintf("Weight: %g kg", *h.Weight))
	}
	if h.Height != nil && *h.Height > 0 {
		out = append(out, fmt.Sprintf("Height: %g cm", *h.Height))
	}
	if s := strings.TrimSpace(h.ActivityLevel); s != "" {
		out = append(out, "Activity level: "+s)
	}
	if s := strings.TrimSpace(h.Goals); s != "" {
		out = append(out, "Goals: "+s)
	}
	if h.BMI != nil && *h.BMI > 0 {
		out = append(out, fmt.Sprintf("BMI: %.1f", *h.BMI))
	}
	if h.MentalScore != nil {
		out = append(out, fmt.Sprintf("Mental wellness score: %d/10", *h.MentalScore))
	}
	return out
}
