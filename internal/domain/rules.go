package domain

import "fmt"

// Severity grades a violation.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Rule forbids one source layer from depending on a set of target layers.
// The rule set is closed over the layer enumeration: a layer with no rule
// permits every dependency target, and each layer has at most one rule.
type Rule struct {
	Source    Layer
	Forbidden []Layer
	Severity  Severity
}

// Violation is one dependency edge breaking a rule. Violations are in 1:1
// correspondence with rule-breaking edges.
type Violation struct {
	Rule        string   `json:"rule"`
	Severity    Severity `json:"severity"`
	From        string   `json:"from"`
	To          string   `json:"to"`
	SourceLayer Layer    `json:"source_layer"`
	TargetLayer Layer    `json:"target_layer"`
}

// RuleID names the broken constraint, e.g. "domain-cannot-import-infrastructure".
func RuleID(source, target Layer) string {
	return fmt.Sprintf("%s-cannot-import-%s", source, target)
}

// DefaultRules is the built-in layering discipline: the inner tiers must not
// reach the adapter or infrastructure tiers, and inbound adapters must not
// import outbound adapters directly.
func DefaultRules() []Rule {
	outerTiers := []Layer{LayerInboundAdapters, LayerOutboundAdapters, LayerInfrastructure}
	return []Rule{
		{Source: LayerDomain, Forbidden: outerTiers, Severity: SeverityError},
		{Source: LayerApplication, Forbidden: outerTiers, Severity: SeverityError},
		{Source: LayerPorts, Forbidden: outerTiers, Severity: SeverityError},
		{Source: LayerInboundAdapters, Forbidden: []Layer{LayerOutboundAdapters}, Severity: SeverityError},
	}
}

// EvaluateRules walks the graph in module order, then edge order within each
// module, emitting one violation per edge whose target layer is in the source
// layer's forbidden set. The ordering is deterministic given the builder's
// sorted module list, so repeated runs produce identical output.
func EvaluateRules(g *ClassifiedGraph, rules []Rule) []Violation {
	byLayer := make(map[Layer]Rule, len(rules))
	for _, r := range rules {
		if _, ok := byLayer[r.Source]; !ok {
			byLayer[r.Source] = r
		}
	}

	var violations []Violation
	for _, m := range g.Modules {
		rule, ok := byLayer[m.Layer]
		if !ok {
			continue // unconstrained layer
		}
		for _, dep := range m.Dependencies {
			if !forbidden(rule, dep.TargetLayer) {
				continue
			}
			violations = append(violations, Violation{
				Rule:        RuleID(m.Layer, dep.TargetLayer),
				Severity:    rule.Severity,
				From:        m.Path,
				To:          dep.Target,
				SourceLayer: m.Layer,
				TargetLayer: dep.TargetLayer,
			})
		}
	}
	return violations
}

func forbidden(r Rule, target Layer) bool {
	for _, f := range r.Forbidden {
		if f == target {
			return true
		}
	}
	return false
}
