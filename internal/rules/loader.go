package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ruleFile is the YAML document shape for an external rule corpus.
type ruleFile struct {
	Rules []Rule `yaml:"rules"`
}

// Load reads a rule corpus from a YAML file. The returned slice replaces
// the default corpus wholesale; it is validated here and treated as
// read-only afterwards.
func Load(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML rule corpus.
func Parse(data []byte) ([]Rule, error) {
	var f ruleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse rule file: %w", err)
	}
	if len(f.Rules) == 0 {
		return nil, fmt.Errorf("rule file contains no rules")
	}

	seen := make(map[string]bool, len(f.Rules))
	for i, r := range f.Rules {
		if r.ID == "" {
			return nil, fmt.Errorf("rule %d: missing id", i)
		}
		if seen[r.ID] {
			return nil, fmt.Errorf("rule %q: duplicate id", r.ID)
		}
		seen[r.ID] = true
		if !r.Severity.Valid() {
			return nil, fmt.Errorf("rule %q: unknown severity %q", r.ID, r.Severity)
		}
		if r.Message == "" {
			return nil, fmt.Errorf("rule %q: missing message", r.ID)
		}
		if r.When.Empty() {
			return nil, fmt.Errorf("rule %q: condition has no clauses", r.ID)
		}
	}
	return f.Rules, nil
}
