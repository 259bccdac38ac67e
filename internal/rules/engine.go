package rules

import (
	"sort"
	"strings"

	"github.com/pulsecheck/pulsecheck/pkg/models"
)

// Evaluate runs every rule against the observation and assembles the
// diagnosis. It is a pure function: it never mutates its inputs, performs
// no I/O, and is total over valid observations — any rule set yields a
// result, never an error.
func Evaluate(o models.Observation, ruleset []Rule) models.DiagnosisResult {
	var findings []models.Finding
	for _, rule := range ruleset {
		if rule.When.Matches(o) {
			findings = append(findings, models.Finding{
				RuleID:   rule.ID,
				Severity: rule.Severity,
				Message:  interpolate(rule.Message, o),
			})
		}
	}

	// Severity descending, rule ID ascending. Ties break on the
	// identifier alone so output never depends on rule set order.
	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].Severity.Rank() != findings[j].Severity.Rank() {
			return findings[i].Severity.Rank() > findings[j].Severity.Rank()
		}
		return findings[i].RuleID < findings[j].RuleID
	})

	return models.DiagnosisResult{
		Findings:    findings,
		SummaryText: summarize(findings),
	}
}

func summarize(findings []models.Finding) string {
	if len(findings) == 0 {
		return models.NoFindingsMessage + "\n" + models.Disclaimer
	}
	var b strings.Builder
	for _, f := range findings {
		b.WriteString(f.Message)
		b.WriteString("\n")
	}
	b.WriteString(models.Disclaimer)
	return b.String()
}
