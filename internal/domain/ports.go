package domain

// ProjectScanner discovers analyzable source files under a root directory.
type ProjectScanner interface {
	Scan(root string, excludePaths ...string) (*ScanResult, error)
}

// ScanResult holds the result of scanning a project directory.
// SourceFiles are project-relative slash paths in sorted order.
type ScanResult struct {
	RootPath    string   `json:"root_path"`
	SourceFiles []string `json:"source_files"`
}

// ImportParser extracts one module's import targets and resolves them to
// project-relative paths. Bare (third-party) specifiers are excluded;
// relative specifiers that escape the root are resolved and passed through
// for the graph builder to drop. known is the set of scanned source files
// used for extension and index resolution.
type ImportParser interface {
	ParseImports(rootPath, relPath string, known map[string]bool) ([]string, error)
}

// ContentReader returns a short excerpt of a module for marker detection.
// ok is false when the file cannot be read; unavailability is not an error.
type ContentReader interface {
	Excerpt(rootPath, relPath string) (excerpt string, ok bool)
}

// ConfigLoader supplies the analysis configuration for a project.
type ConfigLoader interface {
	Load(projectPath string) (AnalysisConfig, error)
}

// GitInfo provides repository metadata for report stamping.
type GitInfo interface {
	CommitHash(projectPath string) (string, error)
}

// ReportHistory persists per-run report summaries.
type ReportHistory interface {
	Save(projectPath string, entry ReportEntry) error
	Load(projectPath string) ([]ReportEntry, error)
}

// ReportEntry is one line of report history.
type ReportEntry struct {
	Timestamp  string `json:"timestamp"`
	CommitHash string `json:"commit_hash,omitempty"`
	Modules    int    `json:"modules"`
	Violations int    `json:"violations"`
	Score      int    `json:"score"`
}
