package domain

import (
	"path"
	"sort"
	"strings"
)

// RawModule is one module as supplied by the source-analysis collaborator:
// a project-relative path, an optional content excerpt for marker detection,
// and the resolved import targets (already filtered of third-party packages).
type RawModule struct {
	Path    string
	Excerpt string
	Imports []string
}

// Dependency is one outgoing edge of a module, tagged with the layer of its
// resolved target.
type Dependency struct {
	Target      string `json:"target"`
	TargetLayer Layer  `json:"target_layer"`
}

// Module is one analyzed source unit. Never mutated after construction.
type Module struct {
	Path         string       `json:"path"`
	Layer        Layer        `json:"layer"`
	Dependencies []Dependency `json:"dependencies,omitempty"`
}

// ClassifiedGraph is the module graph after every node and edge target has
// been assigned a layer. Modules are sorted by path so downstream stages
// iterate deterministically.
type ClassifiedGraph struct {
	Modules []Module
}

// BuildGraph classifies every raw module once (content markers first, paths
// second) and every dependency target by path only. Edges whose target
// resolves outside the analyzed tree are dropped: they are out-of-scope
// third-party or sibling-project files, never violations. The result holds
// exactly one module per distinct source path.
func BuildGraph(raw []RawModule, c *Classifier) *ClassifiedGraph {
	seen := make(map[string]bool, len(raw))
	modules := make([]Module, 0, len(raw))

	for _, rm := range raw {
		p := normalizePath(rm.Path)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true

		m := Module{
			Path:  p,
			Layer: c.Classify(p, rm.Excerpt),
		}
		for _, target := range rm.Imports {
			t := normalizePath(target)
			if outsideRoot(t) {
				continue
			}
			m.Dependencies = append(m.Dependencies, Dependency{
				Target:      t,
				TargetLayer: c.ClassifyPath(t),
			})
		}
		modules = append(modules, m)
	}

	sort.Slice(modules, func(i, j int) bool {
		return modules[i].Path < modules[j].Path
	})

	return &ClassifiedGraph{Modules: modules}
}

// normalizePath cleans a project-relative path to slash form. Targets that
// escape the root keep their leading "../" so outsideRoot can reject them.
func normalizePath(p string) string {
	cleaned := path.Clean(strings.ReplaceAll(p, "\\", "/"))
	if cleaned == "." {
		return ""
	}
	return cleaned
}

// outsideRoot reports whether a cleaned relative path escapes the analyzed
// tree.
func outsideRoot(p string) bool {
	return p == "" || p == ".." || strings.HasPrefix(p, "../") || strings.HasPrefix(p, "/")
}
