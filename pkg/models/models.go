package models

// Severity ranks the clinical weight of a finding
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityModerate Severity = "moderate"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Rank returns the sort weight of a severity, higher is more severe
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityModerate:
		return 2
	case SeverityLow:
		return 1
	}
	return 0
}

// Valid reports whether s is one of the known severities
func (s Severity) Valid() bool {
	return s.Rank() > 0
}

// Observation is a validated patient submission. Instances are built only
// by the observation normalizer; a value that exists is in range.
type Observation struct {
	Systolic    int      `json:"systolic"`
	Diastolic   int      `json:"diastolic"`
	WeightKg    float64  `json:"weight_kg"`
	SymptomText string   `json:"symptom_text"`
	SymptomTags []string `json:"symptom_tags"`
}

// HasTag reports whether the observation carries the given symptom tag
func (o Observation) HasTag(tag string) bool {
	for _, t := range o.SymptomTags {
		if t == tag {
			return true
		}
	}
	return false
}

// RuleInfo is the metadata of a diagnosis rule, exposed in findings and
// on the rules listing endpoint
type RuleInfo struct {
	ID       string   `json:"id"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Finding is a matched rule with its message interpolated against the
// observation that matched it
type Finding struct {
	RuleID   string   `json:"rule_id"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// DiagnosisResult is the outcome of evaluating one observation against
// the active rule set. Findings are ordered by severity descending, then
// rule ID ascending. It is handed straight to the renderer, never stored.
type DiagnosisResult struct {
	Findings    []Finding `json:"findings"`
	SummaryText string    `json:"summary_text"`
}

// NoFindingsMessage is the summary line used when no rule matches.
const NoFindingsMessage = "No significant findings based on the provided observations."

// Disclaimer closes every diagnosis summary.
const Disclaimer = "This automated assessment is not a substitute for professional medical advice."
