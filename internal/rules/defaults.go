package rules

import "github.com/pulsecheck/pulsecheck/pkg/models"

// Default returns the built-in rule corpus. Thresholds follow common
// blood-pressure staging; the symptom rules cover the triage keywords the
// intake form was built around. A deployment can replace the whole corpus
// with a YAML rule file, see Load.
func Default() []Rule {
	return []Rule{
		{
			ID:       "bp.crisis",
			Severity: models.SeverityCritical,
			Message:  "Systolic pressure {systolic} mmHg is in hypertensive crisis range (>=180).",
			When:     Condition{SystolicAtLeast: 180},
		},
		{
			ID:       "bp.crisis-diastolic",
			Severity: models.SeverityCritical,
			Message:  "Diastolic pressure {diastolic} mmHg is in hypertensive crisis range (>=120).",
			When:     Condition{DiastolicAtLeast: 120},
		},
		{
			ID:       "bp.hypertension",
			Severity: models.SeverityHigh,
			Message:  "Systolic pressure {systolic} mmHg indicates stage 2 hypertension (140-179).",
			When:     Condition{SystolicAtLeast: 140, SystolicBelow: 180},
		},
		{
			ID:       "bp.hypertension-diastolic",
			Severity: models.SeverityHigh,
			Message:  "Diastolic pressure {diastolic} mmHg indicates stage 2 hypertension (90-119).",
			When:     Condition{DiastolicAtLeast: 90, DiastolicBelow: 120},
		},
		{
			ID:       "bp.elevated",
			Severity: models.SeverityModerate,
			Message:  "Systolic pressure {systolic} mmHg is elevated (130-139).",
			When:     Condition{SystolicAtLeast: 130, SystolicBelow: 140},
		},
		{
			ID:       "bp.hypotension",
			Severity: models.SeverityHigh,
			Message:  "Systolic pressure {systolic} mmHg is below 90, suggesting hypotension.",
			When:     Condition{SystolicBelow: 90},
		},
		{
			ID:       "weight.very-low",
			Severity: models.SeverityModerate,
			Message:  "Body weight {weight} kg is unusually low.",
			When:     Condition{WeightBelow: 40},
		},
		{
			ID:       "weight.very-high",
			Severity: models.SeverityModerate,
			Message:  "Body weight {weight} kg is unusually high.",
			When:     Condition{WeightAtLeast: 200},
		},
		{
			ID:       "sym.breathing",
			Severity: models.SeverityCritical,
			Message:  "Reported difficulty breathing requires urgent attention.",
			When:     Condition{AnySymptoms: []string{"breathing-difficulty"}},
		},
		{
			ID:       "sym.chest-pain",
			Severity: models.SeverityHigh,
			Message:  "Reported chest pain should be assessed promptly.",
			When:     Condition{AnySymptoms: []string{"chest-pain"}},
		},
		{
			ID:       "combo.chest-pain-hypertension",
			Severity: models.SeverityCritical,
			Message:  "Chest pain combined with blood pressure {systolic}/{diastolic} mmHg is an emergency indicator.",
			When:     Condition{AllSymptoms: []string{"chest-pain"}, SystolicAtLeast: 140},
		},
		{
			ID:       "combo.dizziness-hypotension",
			Severity: models.SeverityHigh,
			Message:  "Dizziness with systolic pressure {systolic} mmHg below 100 suggests symptomatic hypotension.",
			When:     Condition{AllSymptoms: []string{"dizziness"}, SystolicBelow: 100},
		},
		{
			ID:       "sym.bleeding",
			Severity: models.SeverityHigh,
			Message:  "Reported bleeding should be assessed promptly.",
			When:     Condition{AnySymptoms: []string{"bleeding"}},
		},
		{
			ID:       "sym.collapse",
			Severity: models.SeverityHigh,
			Message:  "Fainting or confusion episodes should be assessed promptly.",
			When:     Condition{AnySymptoms: []string{"fainting", "confusion"}},
		},
		{
			ID:       "sym.severe-pain",
			Severity: models.SeverityHigh,
			Message:  "Severe pain was reported.",
			When:     Condition{AnySymptoms: []string{"severe-pain"}},
		},
		{
			ID:       "sym.fever",
			Severity: models.SeverityModerate,
			Message:  "Reported fever; monitor temperature and hydration.",
			When:     Condition{AnySymptoms: []string{"fever"}},
		},
		{
			ID:       "sym.general",
			Severity: models.SeverityLow,
			Message:  "General complaints noted (headache, dizziness, nausea or fatigue).",
			When:     Condition{AnySymptoms: []string{"headache", "dizziness", "nausea", "fatigue"}},
		},
	}
}
