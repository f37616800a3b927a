package domain

// LayerSummary is the per-layer slice of the report.
type LayerSummary struct {
	Count int      `json:"count"`
	Files []string `json:"files"`
}

// ReportMetrics holds the derived summary numbers.
type ReportMetrics struct {
	TotalModules      int `json:"totalModules"`
	TotalViolations   int `json:"totalViolations"`
	ArchitectureScore int `json:"architectureScore"`
}

// AnalysisReport is the terminal aggregate of one analysis run and the sole
// input to every renderer. Constructed once, never mutated. Every layer of
// the closed enumeration is present, with zero counts, so the serialized
// schema is stable across projects.
type AnalysisReport struct {
	Layers     map[Layer]LayerSummary `json:"layers"`
	Violations []Violation            `json:"violations"`
	Metrics    ReportMetrics          `json:"metrics"`
	CommitHash string                 `json:"commit_hash,omitempty"`

	// Modules carries the classified graph for renderers that draw
	// dependency edges. Excluded from the serialized report shape.
	Modules []Module `json:"-"`
}

// ArchitectureScore is a coarse monotonically decreasing health indicator,
// clamped at zero. It is not a probability or a weighted severity score.
func ArchitectureScore(violationCount int) int {
	score := 100 - 5*violationCount
	if score < 0 {
		return 0
	}
	return score
}

// Summarize aggregates the classified graph and the violation list into the
// report. Files within each layer follow the graph's sorted module order.
func Summarize(g *ClassifiedGraph, violations []Violation) *AnalysisReport {
	layers := make(map[Layer]LayerSummary, len(AllLayers))
	files := make(map[Layer][]string)
	for _, m := range g.Modules {
		files[m.Layer] = append(files[m.Layer], m.Path)
	}
	for _, l := range AllLayers {
		layers[l] = LayerSummary{Count: len(files[l]), Files: emptyIfNil(files[l])}
	}

	if violations == nil {
		violations = []Violation{}
	}

	return &AnalysisReport{
		Layers:     layers,
		Violations: violations,
		Metrics: ReportMetrics{
			TotalModules:      len(g.Modules),
			TotalViolations:   len(violations),
			ArchitectureScore: ArchitectureScore(len(violations)),
		},
		Modules: g.Modules,
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
