// Package assistant produces chatbot replies. A Responder is either the fixed
// keyword rule table or a Remote that asks a text-generation provider and
// falls back to a canned apology when the provider fails.
package assistant

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// ErrNotConfigured is returned by a remote responder that has no usable
// provider (typically a missing API credential).
var ErrNotConfigured = errors.New("AI service not configured")

// ApologyText replaces the reply whenever the remote provider fails.
const ApologyText = "I'm sorry, I'm having trouble responding right now. Please try again in a moment."

// HealthContext carries optional user attributes folded into a remote prompt.
// Nil or empty fields are left out.
type HealthContext struct {
	Age           *int     `json:"age,omitempty"`
	Weight        *float64 `json:"weight,omitempty"`
	Height        *float64 `json:"height,omitempty"`
	ActivityLevel string   `json:"activity_level,omitempty"`
	Goals         string   `json:"goals,omitempty"`
	BMI           *float64 `json:"bmi,omitempty"`
	MentalScore   *int     `json:"mental_score,omitempty"`
}

// Request is a single user turn.
type Request struct {
	Message   string
	SessionID string
	Health    HealthContext
}

// Reply is what the user sees. Fallback is set when Text is the apology.
type Reply struct {
	Text     string
	Provider string
	Fallback bool
}

// Responder answers a user message.
type Responder interface {
	// Name identifies the backend ("rules", "openai", "ollama").
	Name() string
	// Respond returns ErrNotConfigured when the backend cannot be used at all.
	// Provider failures are not errors; they yield the apology reply.
	Respond(ctx context.Context, req Request) (Reply, error)
}

var replies = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "holistiq",
		Name:      "assistant_replies_total",
		Help:      "Assistant replies by provider and outcome (ok, fallback, unconfigured).",
	},
	[]string{"provider", "outcome"},
)

func init() {
	prometheus.MustRegister(replies)
}
