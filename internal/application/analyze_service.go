package application

import (
	"fmt"

	"github.com/hexaview/hexaview/internal/domain"
	"golang.org/x/sync/errgroup"
)

// readConcurrency bounds the parallel per-module file reads.
const readConcurrency = 8

// AnalyzeService orchestrates the analysis pipeline:
// scan -> read excerpts + resolve imports -> build graph -> evaluate rules -> summarize.
type AnalyzeService struct {
	scanner domain.ProjectScanner
	parser  domain.ImportParser
	reader  domain.ContentReader
	config  domain.ConfigLoader
}

func NewAnalyzeService(
	scanner domain.ProjectScanner,
	parser domain.ImportParser,
	reader domain.ContentReader,
	config domain.ConfigLoader,
) *AnalyzeService {
	return &AnalyzeService{
		scanner: scanner,
		parser:  parser,
		reader:  reader,
		config:  config,
	}
}

// AnalysisData carries the pipeline products for callers that need more than
// the final report (diagram rendering, JSON output of the raw graph).
type AnalysisData struct {
	Config domain.AnalysisConfig
	Graph  *domain.ClassifiedGraph
	Report *domain.AnalysisReport
}

// AnalyzeProject runs the full pipeline for one project root. Configuration
// errors are fatal; unreadable individual files are not.
func (s *AnalyzeService) AnalyzeProject(projectPath string) (*AnalysisData, error) {
	cfg, err := s.config.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	taxonomy, err := domain.NewTaxonomy(cfg)
	if err != nil {
		return nil, fmt.Errorf("building taxonomy: %w", err)
	}

	scan, err := s.scanner.Scan(projectPath, cfg.ExcludePaths...)
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	raw, err := s.collectModules(scan)
	if err != nil {
		return nil, err
	}

	classifier := domain.NewClassifier(taxonomy)
	graph := domain.BuildGraph(raw, classifier)
	violations := domain.EvaluateRules(graph, cfg.RuleSet())
	report := domain.Summarize(graph, violations)

	return &AnalysisData{Config: cfg, Graph: graph, Report: report}, nil
}

// collectModules reads each module's excerpt and resolves its imports. The
// per-module reads are independent, so they run in a bounded errgroup; slot
// indexing keeps the result order identical to the scan order.
func (s *AnalyzeService) collectModules(scan *domain.ScanResult) ([]domain.RawModule, error) {
	known := make(map[string]bool, len(scan.SourceFiles))
	for _, f := range scan.SourceFiles {
		known[f] = true
	}

	raw := make([]domain.RawModule, len(scan.SourceFiles))

	var g errgroup.Group
	g.SetLimit(readConcurrency)
	for i, f := range scan.SourceFiles {
		g.Go(func() error {
			excerpt, _ := s.reader.Excerpt(scan.RootPath, f)

			// A file that cannot be parsed contributes no edges; that is a
			// degradation, not a failure of the run.
			imports, err := s.parser.ParseImports(scan.RootPath, f, known)
			if err != nil {
				imports = nil
			}

			raw[i] = domain.RawModule{Path: f, Excerpt: excerpt, Imports: imports}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("collecting modules: %w", err)
	}

	return raw, nil
}
