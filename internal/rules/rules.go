package rules

import (
	"strconv"
	"strings"

	"github.com/pulsecheck/pulsecheck/pkg/models"
)

// Rule is one declarative diagnosis rule. Rules are uniform data: an
// identifier, a severity, a message template, and a condition clause set.
// They are loaded once at startup and never mutated, so a single rule set
// is safe to share across concurrent evaluations.
type Rule struct {
	ID       string          `yaml:"id"`
	Severity models.Severity `yaml:"severity"`
	Message  string          `yaml:"message"`
	When     Condition       `yaml:"when"`
}

// Info returns the rule's metadata view.
func (r Rule) Info() models.RuleInfo {
	return models.RuleInfo{ID: r.ID, Severity: r.Severity, Message: r.Message}
}

// Condition is a conjunction of clauses over an Observation. A zero-valued
// numeric clause is unset; AnySymptoms requires at least one listed tag,
// AllSymptoms requires every listed tag. Conditions never inspect other
// rules' outcomes, so evaluation order cannot change what matches.
type Condition struct {
	SystolicAtLeast  int      `yaml:"systolic_at_least,omitempty"`
	SystolicBelow    int      `yaml:"systolic_below,omitempty"`
	DiastolicAtLeast int      `yaml:"diastolic_at_least,omitempty"`
	DiastolicBelow   int      `yaml:"diastolic_below,omitempty"`
	WeightAtLeast    float64  `yaml:"weight_at_least,omitempty"`
	WeightBelow      float64  `yaml:"weight_below,omitempty"`
	AnySymptoms      []string `yaml:"any_symptoms,omitempty"`
	AllSymptoms      []string `yaml:"all_symptoms,omitempty"`
}

// Empty reports whether no clause is set.
func (c Condition) Empty() bool {
	return c.SystolicAtLeast == 0 && c.SystolicBelow == 0 &&
		c.DiastolicAtLeast == 0 && c.DiastolicBelow == 0 &&
		c.WeightAtLeast == 0 && c.WeightBelow == 0 &&
		len(c.AnySymptoms) == 0 && len(c.AllSymptoms) == 0
}

// Matches evaluates the condition against an observation. Pure.
func (c Condition) Matches(o models.Observation) bool {
	if c.SystolicAtLeast > 0 && o.Systolic < c.SystolicAtLeast {
		return false
	}
	if c.SystolicBelow > 0 && o.Systolic >= c.SystolicBelow {
		return false
	}
	if c.DiastolicAtLeast > 0 && o.Diastolic < c.DiastolicAtLeast {
		return false
	}
	if c.DiastolicBelow > 0 && o.Diastolic >= c.DiastolicBelow {
		return false
	}
	if c.WeightAtLeast > 0 && o.WeightKg < c.WeightAtLeast {
		return false
	}
	if c.WeightBelow > 0 && o.WeightKg >= c.WeightBelow {
		return false
	}
	if len(c.AnySymptoms) > 0 {
		any := false
		for _, tag := range c.AnySymptoms {
			if o.HasTag(tag) {
				any = true
				break
			}
		}
		if !any {
			return false
		}
	}
	for _, tag := range c.AllSymptoms {
		if !o.HasTag(tag) {
			return false
		}
	}
	return true
}

// interpolate substitutes observation values into a message template.
// Supported placeholders: {systolic}, {diastolic}, {weight}.
func interpolate(message string, o models.Observation) string {
	r := strings.NewReplacer(
		"{systolic}", strconv.Itoa(o.Systolic),
		"{diastolic}", strconv.Itoa(o.Diastolic),
		"{weight}", strconv.FormatFloat(o.WeightKg, 'f', -1, 64),
	)
	return r.Replace(message)
}
