// Package calc holds the pure health metric formulas: body mass index,
// basal metabolic rate, daily calorie need and age from a birth date.
//
// Nothing here performs I/O; every function is safe for concurrent use.
package calc

import (
	"errors"
	"math"
	"strings"
	"time"
)

var (
	// ErrInvalidMeasurement is returned for non-positive or non-finite weight or height.
	ErrInvalidMeasurement = errors.New("weight and height must be positive numbers")
	// ErrImplausibleMeasurement is returned when the metric values exceed
	// MaxWeightKg or MaxHeightCm, or the BMI is not a finite number.
	ErrImplausibleMeasurement = errors.New("weight must be at most 1000 kg and height at most 300 cm")
)

// Upper bounds on accepted measurements after unit conversion.
const (
	MaxWeightKg = 1000
	MaxHeightCm = 300
)

// UnitSystem selects how weight and height are interpreted.
type UnitSystem string

const (
	Metric   UnitSystem = "metric"   // kilograms, centimeters
	Imperial UnitSystem = "imperial" // pounds, inches
)

// ParseUnit maps any value other than "imperial" to Metric.
func ParseUnit(s string) UnitSystem {
	if strings.EqualFold(strings.TrimSpace(s), string(Imperial)) {
		return Imperial
	}
	return Metric
}

const (
	poundsToKg  = 0.453592
	inchesToCm  = 2.54
	birthLayout = "2006-01-02"
)

// BMI category labels.
const (
	Underweight  = "Underweight"
	NormalWeight = "Normal weight"
	Overweight   = "Overweight"
	Obese        = "Obese"
)

// BMIResult is the outcome of ComputeBMI. WeightKg and HeightCm are the
// inputs after unit conversion.
type BMIResult struct {
	BMI      float64
	Category string
	Color    string
	WeightKg float64
	HeightCm float64
}

// ComputeBMI converts the inputs to metric when needed and returns the BMI
// rounded to two decimals. The category is derived from the rounded value so
// the number and the label shown to a user always agree.
//
// Inputs above MaxWeightKg or MaxHeightCm, or a BMI that is not finite, are
// rejected with ErrImplausibleMeasurement.
func ComputeBMI(weight, height float64, unit UnitSystem) (BMIResult, error) {
	if !(weight > 0) || !(height > 0) || math.IsInf(weight, 0) || math.IsInf(height, 0) {
		return BMIResult{}, ErrInvalidMeasurement
	}
	if unit == Imperial {
		weight *= poundsToKg
		height *= inchesToCm
	}
	if weight > MaxWeightKg || height > MaxHeightCm {
		return BMIResult{}, ErrImplausibleMeasurement
	}
	m := height / 100
	raw := weight / (m * m)
	if math.IsInf(raw, 0) || math.IsNaN(raw) {
		return BMIResult{}, ErrImplausibleMeasurement
	}
	bmi := Round2(raw)
	category, color := ClassifyBMI(bmi)
	return BMIResult{
		BMI:      bmi,
		Category: category,
		Color:    color,
		WeightKg: weight,
		HeightCm: height,
	}, nil
}

// ClassifyBMI returns the category label and its display color token.
func ClassifyBMI(bmi float64) (category, color string) {
	switch {
	case bmi < 18.5:
		return Underweight, "info"
	case bmi < 25:
		return NormalWeight, "success"
	case bmi < 30:
		return Overweight, "warning"
	default:
		return Obese, "danger"
	}
}

// ComputeBMR applies the Mifflin-St Jeor equation. Gender "male" or "m"
// (any case) uses the male constant; everything else uses the female one.
func ComputeBMR(weightKg, heightCm float64, age int, gender string) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch strings.ToLower(strings.TrimSpace(gender)) {
	case "male", "m":
		return base + 5
	default:
		return base - 161
	}
}

var activityMultipliers = map[string]float64{
	"sedentary": 1.2,
	"light":     1.375,
	"moderate":  1.55,
	"active":    1.725,
	"extra":     1.9,
}

// ActivityMultiplier returns the factor for level; unknown levels count as sedentary.
func ActivityMultiplier(level string) float64 {
	if m, ok := activityMultipliers[strings.ToLower(strings.TrimSpace(level))]; ok {
		return m
	}
	return activityMultipliers["sedentary"]
}

// DailyCalories is bmr times the activity multiplier, rounded to the nearest integer.
func DailyCalories(bmr float64, activityLevel string) int {
	return int(math.Round(bmr * ActivityMultiplier(activityLevel)))
}

// AgeFromBirthDate returns completed years between birth (YYYY-MM-DD) and today.
//
// A malformed date yields 0 rather than an error, and so does a birth date in
// the future. Callers that need to tell those apart must validate first.
func AgeFromBirthDate(birth string, today time.Time) int {
	b, err := time.Parse(birthLayout, strings.TrimSpace(birth))
	if err != nil {
		return 0
	}
	age := today.Year() - b.Year()
	if today.Month() < b.Month() || (today.Month() == b.Month() && today.Day() < b.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// Round2 rounds half away from zero to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
