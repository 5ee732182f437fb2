package assistant

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)
}

func TestRules_Table(t *testing.T) {
	r := NewRules()
	cases := []struct {
		msg  string
		want string
	}{
		{"What is BMI?", "BMI (Body Mass Index)"},
		{"Tell me about exercise", "Regular exercise is crucial"},
		{"any YOGA poses?", "Yoga combines"},
		{"share a recipe", "A healthy diet is essential"},
		{"mental health tips", "Mental health is as important"},
		{"I'm so stressed", "Try our meditation timers"},
		{"what diet should I follow", "A balanced diet includes"},
		{"lose weight fast", "Weight management involves"},
		{"hello there", "Hello! I'm your health assistant."},
		{"hi", "Hi there!"},
		{"help", "I can help you with BMI calculations"},
		{"quantum chromodynamics", DefaultReply},
		{"", DefaultReply},
	}
	for _, tc := range cases {
		rep, err := r.Respond(context.Background(), Request{Message: tc.msg})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(rep.Text, tc.want), "%q -> %q", tc.msg, rep.Text)
		assert.Equal(t, "rules", rep.Provider)
		assert.False(t, rep.Fallback)
	}
}

func TestRules_ExerciseAlwaysWins(t *testing.T) {
	r := NewRules()
	for _, msg := range []string{
		"exercise",
		"My BMI is high, what EXERCISE helps?",
		"hello, yoga or exercise for stress?",
		"ÉXERCISE? no: Exercise!",
	} {
		rep, _ := r.Respond(context.Background(), Request{Message: msg})
		assert.Contains(t, rep.Text, "exercise", msg)
		assert.True(t, strings.HasPrefix(rep.Text, "Regular exercise"), msg)
	}
}

func TestRules_SubstringNotWord(t *testing.T) {
	// "this" contains "hi"; matching is plain substring containment.
	rep, _ := NewRules().Respond(context.Background(), Request{Message: "what is this"})
	assert.True(t, strings.HasPrefix(rep.Text, "Hi there!"))
}
