package domain

import (
	"sort"
	"strings"
)

// AssessmentOption is one selectable answer. Every item of an assessment
// shares the same option set.
type AssessmentOption struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// AssessmentItem is one question.
type AssessmentItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// SeverityBand covers scores up to and including Max.
type SeverityBand struct {
	Max    int    `json:"max"`
	Label  string `json:"label"`
	Advice string `json:"advice"`
}

// Assessment is a fixed self-screening questionnaire scored by summing answers.
type Assessment struct {
	Type         string             `json:"type"`
	Title        string             `json:"title"`
	Instructions string             `json:"instructions"`
	Items        []AssessmentItem   `json:"items"`
	Options      []AssessmentOption `json:"options"`
	Bands        []SeverityBand     `json:"bands"`
}

// MaxScore is the highest reachable total.
func (a Assessment) MaxScore() int {
	best := 0
	for _, o := range a.Options {
		if o.Value > best {
			best = o.Value
		}
	}
	return best * len(a.Items)
}

// Allows reports whether v is one of the option values.
func (a Assessment) Allows(v int) bool {
	for _, o := range a.Options {
		if o.Value == v {
			return true
		}
	}
	return false
}

// Band returns the severity band for score. Scores past the last band map to it.
func (a Assessment) Band(score int) SeverityBand {
	for _, b := range a.Bands {
		if score <= b.Max {
			return b
		}
	}
	return a.Bands[len(a.Bands)-1]
}

var frequencyOptions = []AssessmentOption{
	{Label: "Not at all", Value: 0},
	{Label: "Several days", Value: 1},
	{Label: "More than half the days", Value: 2},
	{Label: "Nearly every day", Value: 3},
}

const twoWeeks = "Over the last 2 weeks, how often have you been bothered by any of the following problems?"

var assessments = map[string]Assessment{
	"phq9": {
		Type:         "phq9",
		Title:        "Depression Screening (PHQ-9)",
		Instructions: twoWeeks,
		Items: []AssessmentItem{
			{ID: "q1", Text: "Little interest or pleasure in doing things"},
			{ID: "q2", Text: "Feeling down, depressed, or hopeless"},
			{ID: "q3", Text: "Trouble falling or staying asleep, or sleeping too much"},
			{ID: "q4", Text: "Feeling tired or having little energy"},
			{ID: "q5", Text: "Poor appetite or overeating"},
			{ID: "q6", Text: "Feeling bad about yourself, or that you are a failure or have let yourself or your family down"},
			{ID: "q7", Text: "Trouble concentrating on things, such as reading the newspaper or watching television"},
			{ID: "q8", Text: "Moving or speaking so slowly that other people could have noticed, or being so fidgety or restless that you have been moving around a lot more than usual"},
			{ID: "q9", Text: "Thoughts that you would be better off dead, or of hurting yourself in some way"},
		},
		Options: frequencyOptions,
		Bands: []SeverityBand{
			{Max: 4, Label: "Minimal", Advice: "Your responses suggest minimal symptoms. Keep up your healthy routines."},
			{Max: 9, Label: "Mild", Advice: "Your responses suggest mild symptoms. Regular exercise, sleep and social contact can help; keep monitoring how you feel."},
			{Max: 14, Label: "Moderate", Advice: "Your responses suggest moderate symptoms. Consider talking to a healthcare professional."},
			{Max: 19, Label: "Moderately severe", Advice: "Your responses suggest moderately severe symptoms. Please reach out to a healthcare professional."},
			{Max: 27, Label: "Severe", Advice: "Your responses suggest severe symptoms. Please contact a healthcare professional as soon as possible."},
		},
	},
	"gad7": {
		Type:         "gad7",
		Title:        "Anxiety Screening (GAD-7)",
		Instructions: twoWeeks,
		Items: []AssessmentItem{
			{ID: "q1", Text: "Feeling nervous, anxious, or on edge"},
			{ID: "q2", Text: "Not being able to stop or control worrying"},
			{ID: "q3", Text: "Worrying too much about different things"},
			{ID: "q4", Text: "Trouble relaxing"},
			{ID: "q5", Text: "Being so restless that it is hard to sit still"},
			{ID: "q6", Text: "Becoming easily annoyed or irritable"},
			{ID: "q7", Text: "Feeling afraid, as if something awful might happen"},
		},
		Options: frequencyOptions,
		Bands: []SeverityBand{
			{Max: 4, Label: "Minimal", Advice: "Your responses suggest minimal anxiety."},
			{Max: 9, Label: "Mild", Advice: "Your responses suggest mild anxiety. Breathing exercises and meditation may help."},
			{Max: 14, Label: "Moderate", Advice: "Your responses suggest moderate anxiety. Consider talking to a healthcare professional."},
			{Max: 21, Label: "Severe", Advice: "Your responses suggest severe anxiety. Please contact a healthcare professional."},
		},
	},
	"wellness": {
		Type:         "wellness",
		Title:        "Mental Wellness Check",
		Instructions: "Answer yes or no for how you have felt over the past week.",
		Items: []AssessmentItem{
			{ID: "q1", Text: "I usually wake up feeling rested"},
			{ID: "q2", Text: "I have had enough energy for my daily activities"},
			{ID: "q3", Text: "I have been able to concentrate on what I was doing"},
			{ID: "q4", Text: "I have felt calm most of the time"},
			{ID: "q5", Text: "I have enjoyed the things I usually enjoy"},
			{ID: "q6", Text: "I have spent time with people I care about"},
			{ID: "q7", Text: "I have been physically active on most days"},
			{ID: "q8", Text: "I have taken time to relax or meditate"},
			{ID: "q9", Text: "I have been eating regular, balanced meals"},
			{ID: "q10", Text: "I feel optimistic about the coming week"},
		},
		Options: []AssessmentOption{
			{Label: "No", Value: 0},
			{Label: "Yes", Value: 1},
		},
		Bands: []SeverityBand{
			{Max: 4, Label: "Needs attention", Advice: "Consider speaking with a mental health professional and start with small daily self-care steps."},
			{Max: 7, Label: "Moderate", Advice: "Practice stress management techniques and keep a regular sleep schedule."},
			{Max: 10, Label: "Good", Advice: "Great mental health! Continue your current practices."},
		},
	},
}

// LookupAssessment returns the definition for kind (case-insensitive).
func LookupAssessment(kind string) (Assessment, bool) {
	a, ok := assessments[strings.ToLower(strings.TrimSpace(kind))]
	return a, ok
}

// AssessmentTypes lists the known assessment types in sorted order.
func AssessmentTypes() []string {
	out := make([]string, 0, len(assessments))
	for k := range assessments {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
