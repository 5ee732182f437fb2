package calc

// Mental wellness score bands on the 0..10 scale.
const (
	MentalLow      = "Needs attention"
	MentalModerate = "Moderate"
	MentalGood     = "Good"
)

// MaxMentalPoints is the top of the mental wellness scale.
const MaxMentalPoints = 10

// MentalStatus labels a 0..10 mental wellness score.
func MentalStatus(points int) string {
	switch {
	case points <= 4:
		return MentalLow
	case points <= 7:
		return MentalModerate
	default:
		return MentalGood
	}
}

// Suggestions returns one physical and one mental advice line for a BMI
// category and a 0..10 mental wellness score.
func Suggestions(bmiCategory string, mentalPoints int) []string {
	out := make([]string, 0, 2)
	switch bmiCategory {
	case Underweight:
		out = append(out, "You are in the underweight range. Consider consulting a nutritionist and adding more calorie-dense, nutritious foods to your diet.")
	case NormalWeight:
		out = append(out, "Your BMI is in a healthy range. Keep up the great work with a balanced diet and regular physical activity.")
	case Overweight:
		out = append(out, "You are in the overweight range. Combine a balanced, calorie-controlled diet with regular exercise; the exercise and recipe sections are a good place to start.")
	default:
		out = append(out, "You are in the obese range. It is highly recommended to consult a healthcare professional about a structured diet and exercise plan.")
	}
	switch MentalStatus(mentalPoints) {
	case MentalLow:
		out = append(out, "You've indicated a lower level of mental wellness. Explore the mental health section and consider talking to a friend, family member, or a mental health professional.")
	case MentalModerate:
		out = append(out, "You're in a moderate range for mental wellness. Yoga and meditation sessions can help manage stress and improve focus.")
	default:
		out = append(out, "It's great that you're feeling positive about your mental wellness. Keep practicing self-care; guided meditations can further enhance your well-being.")
	}
	return out
}
