package domain_test

import (
	"testing"

	"github.com/hexaview/hexaview/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildGraph(t *testing.T, raw []domain.RawModule) *domain.ClassifiedGraph {
	t.Helper()
	return domain.BuildGraph(raw, newClassifier(t))
}

func TestEvaluateRules_DomainCannotImportInfrastructure(t *testing.T) {
	g := buildGraph(t, []domain.RawModule{
		{Path: "src/domain/user.ts", Imports: []string{"src/infrastructure/db.ts"}},
		{Path: "src/infrastructure/db.ts"},
	})

	violations := domain.EvaluateRules(g, domain.DefaultRules())

	require.Len(t, violations, 1)
	v := violations[0]
	assert.Equal(t, "domain-cannot-import-infrastructure", v.Rule)
	assert.Equal(t, domain.SeverityError, v.Severity)
	assert.Equal(t, "src/domain/user.ts", v.From)
	assert.Equal(t, "src/infrastructure/db.ts", v.To)
}

func TestEvaluateRules_PermittedEdgesEmitNothing(t *testing.T) {
	g := buildGraph(t, []domain.RawModule{
		{Path: "src/application/userService.ts", Imports: []string{"src/domain/user.ts", "src/ports/userRepo.ts"}},
		{Path: "src/adapters/inbound/http/controller.ts", Imports: []string{"src/application/userService.ts"}},
		{Path: "src/domain/user.ts"},
		{Path: "src/ports/userRepo.ts"},
	})

	violations := domain.EvaluateRules(g, domain.DefaultRules())
	assert.Empty(t, violations)
}

func TestEvaluateRules_UnconstrainedLayerIsSkipped(t *testing.T) {
	// Infrastructure has no rule in the default set; it may import anything.
	g := buildGraph(t, []domain.RawModule{
		{Path: "src/infrastructure/db.ts", Imports: []string{"src/adapters/outbound/repo.ts"}},
		{Path: "src/adapters/outbound/repo.ts"},
	})

	violations := domain.EvaluateRules(g, domain.DefaultRules())
	assert.Empty(t, violations)
}

func TestEvaluateRules_InboundCannotImportOutbound(t *testing.T) {
	g := buildGraph(t, []domain.RawModule{
		{Path: "src/adapters/inbound/http/controller.ts", Imports: []string{"src/adapters/outbound/db/repo.ts"}},
		{Path: "src/adapters/outbound/db/repo.ts"},
	})

	violations := domain.EvaluateRules(g, domain.DefaultRules())
	require.Len(t, violations, 1)
	assert.Equal(t, "inboundAdapters-cannot-import-outboundAdapters", violations[0].Rule)
}

func TestEvaluateRules_OneViolationPerForbiddenEdge(t *testing.T) {
	g := buildGraph(t, []domain.RawModule{
		{Path: "src/domain/user.ts", Imports: []string{
			"src/infrastructure/db.ts",
			"src/adapters/outbound/repo.ts",
			"src/domain/order.ts",
		}},
		{Path: "src/infrastructure/db.ts"},
		{Path: "src/adapters/outbound/repo.ts"},
		{Path: "src/domain/order.ts"},
	})

	violations := domain.EvaluateRules(g, domain.DefaultRules())
	require.Len(t, violations, 2)
	// Module order, then edge order within the module.
	assert.Equal(t, "src/infrastructure/db.ts", violations[0].To)
	assert.Equal(t, "src/adapters/outbound/repo.ts", violations[1].To)
}

func TestEvaluateRules_CustomSeverity(t *testing.T) {
	g := buildGraph(t, []domain.RawModule{
		{Path: "src/domain/user.ts", Imports: []string{"src/infrastructure/db.ts"}},
		{Path: "src/infrastructure/db.ts"},
	})

	rules := []domain.Rule{{
		Source:    domain.LayerDomain,
		Forbidden: []domain.Layer{domain.LayerInfrastructure},
		Severity:  domain.SeverityWarning,
	}}

	violations := domain.EvaluateRules(g, rules)
	require.Len(t, violations, 1)
	assert.Equal(t, domain.SeverityWarning, violations[0].Severity)
}

func TestEvaluateRules_DeterministicAcrossRuns(t *testing.T) {
	raw := []domain.RawModule{
		{Path: "src/domain/b.ts", Imports: []string{"src/infrastructure/y.ts", "src/infrastructure/x.ts"}},
		{Path: "src/domain/a.ts", Imports: []string{"src/infrastructure/x.ts"}},
		{Path: "src/infrastructure/x.ts"},
		{Path: "src/infrastructure/y.ts"},
	}

	first := domain.EvaluateRules(buildGraph(t, raw), domain.DefaultRules())
	second := domain.EvaluateRules(buildGraph(t, raw), domain.DefaultRules())
	assert.Equal(t, first, second)

	require.Len(t, first, 3)
	assert.Equal(t, "src/domain/a.ts", first[0].From)
	assert.Equal(t, "src/infrastructure/y.ts", first[1].To)
	assert.Equal(t, "src/infrastructure/x.ts", first[2].To)
}
