package observation

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pulsecheck/pulsecheck/pkg/models"
)

// Error kinds detected by Normalize. Callers distinguish them with
// errors.Is; the wrapped message names the offending field.
var (
	// ErrMalformedInput marks a field that cannot be parsed into its
	// expected shape.
	ErrMalformedInput = errors.New("malformed input")

	// ErrOutOfRange marks a parsed value that violates a domain bound.
	ErrOutOfRange = errors.New("value out of range")
)

// Clinical plausibility bounds for vitals and weight.
const (
	MinSystolic  = 50
	MaxSystolic  = 300
	MinDiastolic = 30
	MaxDiastolic = 200
	MaxWeightKg  = 500.0
)

// Normalize parses and validates the three raw form fields into an
// Observation. It is pure: no I/O, deterministic for identical input.
// An error return means the submission never reaches the rule engine.
func Normalize(rawBP, rawWeight, rawSymptoms string) (models.Observation, error) {
	systolic, diastolic, err := parseBloodPressure(rawBP)
	if err != nil {
		return models.Observation{}, err
	}

	weight, err := parseWeight(rawWeight)
	if err != nil {
		return models.Observation{}, err
	}

	symptoms := strings.TrimSpace(rawSymptoms)
	if symptoms == "" {
		return models.Observation{}, fmt.Errorf("symptoms must not be empty: %w", ErrMalformedInput)
	}

	return models.Observation{
		Systolic:    systolic,
		Diastolic:   diastolic,
		WeightKg:    weight,
		SymptomText: symptoms,
		SymptomTags: ExtractTags(symptoms),
	}, nil
}

// parseBloodPressure splits an "S/D" reading into its two integer parts
// and checks the clinical bounds.
func parseBloodPressure(raw string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(raw), "/")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("blood pressure %q: expected systolic/diastolic: %w", raw, ErrMalformedInput)
	}

	systolic, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("blood pressure %q: systolic is not an integer: %w", raw, ErrMalformedInput)
	}
	diastolic, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("blood pressure %q: diastolic is not an integer: %w", raw, ErrMalformedInput)
	}

	if systolic < MinSystolic || systolic > MaxSystolic {
		return 0, 0, fmt.Errorf("systolic %d outside %d-%d mmHg: %w", systolic, MinSystolic, MaxSystolic, ErrOutOfRange)
	}
	if diastolic < MinDiastolic || diastolic > MaxDiastolic {
		return 0, 0, fmt.Errorf("diastolic %d outside %d-%d mmHg: %w", diastolic, MinDiastolic, MaxDiastolic, ErrOutOfRange)
	}
	if diastolic >= systolic {
		return 0, 0, fmt.Errorf("diastolic %d must be below systolic %d: %w", diastolic, systolic, ErrOutOfRange)
	}

	return systolic, diastolic, nil
}

func parseWeight(raw string) (float64, error) {
	weight, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("weight %q is not numeric: %w", raw, ErrMalformedInput)
	}
	if math.IsNaN(weight) || weight <= 0 || weight >= MaxWeightKg {
		return 0, fmt.Errorf("weight %.1f kg outside 0-%.0f: %w", weight, MaxWeightKg, ErrOutOfRange)
	}
	return weight, nil
}
