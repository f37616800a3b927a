package domain_test

import (
	"testing"

	"github.com/hexaview/hexaview/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGraph_ClassifiesModulesAndEdges(t *testing.T) {
	raw := []domain.RawModule{
		{Path: "src/domain/user.ts", Imports: []string{"src/infrastructure/db.ts"}},
		{Path: "src/infrastructure/db.ts"},
	}
	g := domain.BuildGraph(raw, newClassifier(t))

	require.Len(t, g.Modules, 2)
	// Sorted by path.
	assert.Equal(t, "src/domain/user.ts", g.Modules[0].Path)
	assert.Equal(t, domain.LayerDomain, g.Modules[0].Layer)
	require.Len(t, g.Modules[0].Dependencies, 1)
	assert.Equal(t, domain.LayerInfrastructure, g.Modules[0].Dependencies[0].TargetLayer)
}

func TestBuildGraph_MarkerClassifiesModuleButNotEdges(t *testing.T) {
	raw := []domain.RawModule{
		{
			Path:    "src/weird/place.ts",
			Excerpt: "// @hexagonal application\n",
			Imports: []string{"src/weird/other.ts"},
		},
		{Path: "src/weird/other.ts"},
	}
	g := domain.BuildGraph(raw, newClassifier(t))

	require.Len(t, g.Modules, 2)
	assert.Equal(t, domain.LayerApplication, g.Modules[1].Layer)
	// Edge targets are classified path-only: no content is available for them.
	assert.Equal(t, domain.LayerUnknown, g.Modules[1].Dependencies[0].TargetLayer)
}

func TestBuildGraph_DropsEdgesOutsideRoot(t *testing.T) {
	raw := []domain.RawModule{
		{Path: "src/domain/user.ts", Imports: []string{
			"../sibling/src/domain/account.ts",
			"/etc/passwd",
			"src/domain/order.ts",
		}},
		{Path: "src/domain/order.ts"},
	}
	g := domain.BuildGraph(raw, newClassifier(t))

	require.Len(t, g.Modules, 2)
	require.Len(t, g.Modules[1].Dependencies, 1, "out-of-root targets must be excluded entirely")
	assert.Equal(t, "src/domain/order.ts", g.Modules[1].Dependencies[0].Target)
}

func TestBuildGraph_OneModulePerDistinctPath(t *testing.T) {
	raw := []domain.RawModule{
		{Path: "src/domain/user.ts"},
		{Path: "src/domain/user.ts", Imports: []string{"src/domain/order.ts"}},
	}
	g := domain.BuildGraph(raw, newClassifier(t))

	require.Len(t, g.Modules, 1)
	assert.Empty(t, g.Modules[0].Dependencies, "first occurrence wins")
}

func TestBuildGraph_PreservesEdgeOrder(t *testing.T) {
	raw := []domain.RawModule{
		{Path: "src/app/svc.ts", Imports: []string{
			"src/domain/b.ts",
			"src/domain/a.ts",
		}},
	}
	g := domain.BuildGraph(raw, newClassifier(t))

	require.Len(t, g.Modules, 1)
	require.Len(t, g.Modules[0].Dependencies, 2)
	assert.Equal(t, "src/domain/b.ts", g.Modules[0].Dependencies[0].Target)
	assert.Equal(t, "src/domain/a.ts", g.Modules[0].Dependencies[1].Target)
}
