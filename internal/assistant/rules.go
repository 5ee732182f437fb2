package assistant

import (
	"context"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultReply is returned when no trigger matches.
const DefaultReply = "I'm here to help with health and wellness questions! Try asking about BMI, exercise, yoga, recipes, or mental health."

type rule struct {
	trigger string
	reply   string
}

// Triggers are tried in order; the first substring match wins. "exercise"
// comes first so a message mentioning it always gets the exercise reply.
var defaultRules = []rule{
	{"exercise", "Regular exercise is crucial for maintaining good health. Visit our Exercise page for workout routines and timers!"},
	{"bmi", "BMI (Body Mass Index) is a measure of body fat based on height and weight. You can use our BMI calculator on the home page!"},
	{"yoga", "Yoga combines physical postures, breathing techniques, and meditation. Check out our Yoga page for guided sessions!"},
	{"recipe", "A healthy diet is essential for overall wellness. Browse our Recipes page for nutritious meal ideas!"},
	{"mental", "Mental health is as important as physical health. Visit our Mental Health page for meditation and mindfulness exercises!"},
	{"stress", "Try our meditation timers on the Mental Health page. Deep breathing and mindfulness can help reduce stress."},
	{"diet", "A balanced diet includes fruits, vegetables, whole grains, lean proteins, and healthy fats. Check our Recipes page!"},
	{"weight", "Weight management involves balanced nutrition and regular exercise. Use our BMI calculator to track your progress!"},
	{"hello", "Hello! I'm your health assistant. How can I help you today?"},
	{"hi", "Hi there! I'm here to help with your health and wellness questions!"},
	{"help", "I can help you with BMI calculations, exercise routines, yoga practices, healthy recipes, and mental health tips. What would you like to know?"},
}

// Rules answers from a fixed keyword table. It never fails.
type Rules struct {
	rules []rule
}

// NewRules returns the rule-table responder.
func NewRules() *Rules { return &Rules{rules: defaultRules} }

func (*Rules) Name() string { return "rules" }

// Respond lowercases the message and returns the reply of the first trigger
// it contains, or DefaultReply.
func (r *Rules) Respond(_ context.Context, req Request) (Reply, error) {
	// A Caser keeps state between calls, so build one per message.
	msg := cases.Lower(language.Und).String(req.Message)
	text := DefaultReply
	for _, rl := range r.rules {
		if strings.Contains(msg, rl.trigger) {
			text = rl.reply
			break
		}
	}
	replies.WithLabelValues(r.Name(), "ok").Inc()
	return Reply{Text: text, Provider: r.Name()}, nil
}
