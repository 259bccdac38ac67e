package observation

import (
	"sort"
	"strings"
	"unicode"
)

// symptomVocabulary maps a canonical symptom tag to the words and phrases
// that indicate it. Single-word aliases are matched per token; aliases
// containing a space are matched as phrases against the whole text.
var symptomVocabulary = map[string][]string{
	"headache":             {"headache", "migraine"},
	"fever":                {"fever", "feverish", "temperature"},
	"dizziness":            {"dizzy", "dizziness", "lightheaded", "vertigo"},
	"fatigue":              {"fatigue", "tired", "exhausted", "exhaustion", "weakness"},
	"nausea":               {"nausea", "nauseous", "queasy"},
	"vomiting":             {"vomit", "vomiting", "throwing up"},
	"cough":                {"cough", "coughing"},
	"bleeding":             {"bleeding", "blood", "hemorrhage"},
	"chest-pain":           {"chest pain", "chest tightness", "chest pressure"},
	"breathing-difficulty": {"breathless", "difficulty breathing", "shortness of breath", "short of breath", "cannot breathe", "wheezing"},
	"severe-pain":          {"severe pain", "unbearable pain", "intense pain"},
	"pain":                 {"pain", "aching", "sore"},
	"palpitations":         {"palpitation", "palpitations", "racing heart"},
	"blurred-vision":       {"blurred vision", "blurry vision", "vision problems"},
	"numbness":             {"numb", "numbness", "tingling"},
	"swelling":             {"swelling", "swollen"},
	"confusion":            {"confused", "confusion", "disoriented"},
	"fainting":             {"faint", "fainting", "fainted", "unconscious", "collapsed"},
}

// stopWords are frequent filler tokens dropped before vocabulary matching.
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "the": true, "i": true, "my": true,
	"me": true, "have": true, "has": true, "had": true, "am": true,
	"is": true, "are": true, "was": true, "been": true, "being": true,
	"feel": true, "feels": true, "feeling": true, "felt": true,
	"with": true, "for": true, "of": true, "in": true, "on": true,
	"it": true, "its": true, "very": true, "some": true, "since": true,
	"also": true, "but": true, "or": true, "to": true, "so": true,
	"really": true, "quite": true, "bit": true, "little": true,
	"days": true, "day": true, "week": true, "weeks": true, "today": true,
	"yesterday": true, "morning": true, "night": true,
}

// ExtractTags derives the normalized symptom tag set from free text.
// Unknown words are ignored; the result is sorted and deduplicated so
// identical text always yields an identical tag slice.
func ExtractTags(text string) []string {
	normalized := normalizeText(text)
	tokens := tokenize(normalized)

	tags := make(map[string]bool)
	for tag, aliases := range symptomVocabulary {
		for _, alias := range aliases {
			if strings.Contains(alias, " ") {
				if strings.Contains(normalized, alias) {
					tags[tag] = true
					break
				}
				continue
			}
			if tokensMatch(tokens, alias) {
				tags[tag] = true
				break
			}
		}
	}

	out := make([]string, 0, len(tags))
	for tag := range tags {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// normalizeText lowercases the text and collapses every non-letter run
// into a single space, so phrase matching survives punctuation.
func normalizeText(text string) string {
	var b strings.Builder
	lastSpace := true
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			b.WriteRune(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}

func tokenize(normalized string) []string {
	fields := strings.Fields(normalized)
	tokens := fields[:0]
	for _, f := range fields {
		if !stopWords[f] {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// tokensMatch reports whether any token matches the alias exactly or, for
// words of four letters or more, by containment in either direction
// ("headaches" matches "headache").
func tokensMatch(tokens []string, alias string) bool {
	for _, tok := range tokens {
		if tok == alias {
			return true
		}
		if len(alias) >= 4 && len(tok) >= 4 &&
			(strings.Contains(tok, alias) || strings.Contains(alias, tok)) {
			return true
		}
	}
	return false
}
