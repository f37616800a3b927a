package domain

import (
	"fmt"
	"regexp"
)

// AnalysisConfig holds project-level configuration loaded from .hexaview.yaml.
// It is an explicit value passed into every entry point; the core keeps no
// ambient configuration state.
type AnalysisConfig struct {
	Layers       map[string]LayerConfig `yaml:"layers"        json:"layers,omitempty"`
	Rules        []RuleConfig           `yaml:"rules"         json:"rules,omitempty"`
	ExcludePaths []string               `yaml:"exclude_paths" json:"exclude_paths,omitempty"`
}

// LayerConfig overrides the detection descriptor for a single layer.
// A layer present here replaces that layer's default descriptor entirely.
type LayerConfig struct {
	Paths   []string `yaml:"paths"   json:"paths,omitempty"`
	Markers []string `yaml:"markers" json:"markers,omitempty"`
	Color   string   `yaml:"color"   json:"color,omitempty"`
}

// RuleConfig declares the forbidden dependency targets for one source layer.
type RuleConfig struct {
	Layer     string   `yaml:"layer"     json:"layer"`
	Forbidden []string `yaml:"forbidden" json:"forbidden"`
	Severity  string   `yaml:"severity"  json:"severity,omitempty"`
}

// DefaultConfig returns a zero-value config: built-in taxonomy, built-in rules.
func DefaultConfig() AnalysisConfig {
	return AnalysisConfig{}
}

// Validate checks the config for authoring errors. A rule referencing an
// undeclared layer is fatal here, before any analysis runs: silently ignoring
// it would produce false negatives.
func (c AnalysisConfig) Validate() error {
	for name, lc := range c.Layers {
		if !ValidLayer(name) {
			return fmt.Errorf("unknown layer %q in layers", name)
		}
		for _, p := range append(append([]string{}, lc.Paths...), lc.Markers...) {
			if _, err := regexp.Compile(p); err != nil {
				return fmt.Errorf("invalid pattern %q for layer %q: %w", p, name, err)
			}
		}
	}

	seen := make(map[string]bool, len(c.Rules))
	for _, r := range c.Rules {
		if !ValidLayer(r.Layer) {
			return fmt.Errorf("rule references unknown layer %q", r.Layer)
		}
		if seen[r.Layer] {
			return fmt.Errorf("duplicate rule for layer %q (at most one rule per layer)", r.Layer)
		}
		seen[r.Layer] = true

		if len(r.Forbidden) == 0 {
			return fmt.Errorf("rule for layer %q forbids nothing", r.Layer)
		}
		for _, f := range r.Forbidden {
			if !ValidLayer(f) {
				return fmt.Errorf("rule for layer %q forbids unknown layer %q", r.Layer, f)
			}
		}

		switch r.Severity {
		case "", string(SeverityError), string(SeverityWarning):
		default:
			return fmt.Errorf("rule for layer %q has unknown severity %q (valid: error, warning)", r.Layer, r.Severity)
		}
	}

	return nil
}

// RuleSet converts the configured rules into the evaluator's form,
// falling back to DefaultRules when no rules are declared.
func (c AnalysisConfig) RuleSet() []Rule {
	if len(c.Rules) == 0 {
		return DefaultRules()
	}

	rules := make([]Rule, 0, len(c.Rules))
	for _, rc := range c.Rules {
		r := Rule{Source: Layer(rc.Layer), Severity: SeverityError}
		if rc.Severity != "" {
			r.Severity = Severity(rc.Severity)
		}
		for _, f := range rc.Forbidden {
			r.Forbidden = append(r.Forbidden, Layer(f))
		}
		rules = append(rules, r)
	}
	return rules
}
