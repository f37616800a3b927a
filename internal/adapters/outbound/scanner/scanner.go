package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hexaview/hexaview/internal/domain"
)

var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	"dist":         true,
	"build":        true,
	"coverage":     true,
	".next":        true,
	"vendor":       true,
}

// sourceExtensions are the TypeScript/JavaScript module extensions hexaview
// analyzes, in resolution preference order.
var sourceExtensions = []string{".ts", ".tsx", ".mts", ".js", ".jsx", ".mjs"}

// FileScanner implements domain.ProjectScanner by walking the filesystem.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

// Scan walks projectPath collecting analyzable source files as sorted
// project-relative slash paths. Declaration files (.d.ts) carry no runtime
// dependencies and are skipped.
func (s *FileScanner) Scan(projectPath string, excludePaths ...string) (*domain.ScanResult, error) {
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, err
	}

	extraSkip := make(map[string]bool, len(excludePaths))
	for _, p := range excludePaths {
		extraSkip[strings.TrimSuffix(p, "/")] = true
	}

	result := &domain.ScanResult{RootPath: absPath}

	err = filepath.WalkDir(absPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, _ := filepath.Rel(absPath, path)
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if skipDirs[d.Name()] || extraSkip[d.Name()] || extraSkip[relPath] {
				return filepath.SkipDir
			}
			return nil
		}

		if isSourceFile(d.Name()) {
			result.SourceFiles = append(result.SourceFiles, relPath)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(result.SourceFiles)
	return result, nil
}

func isSourceFile(name string) bool {
	if strings.HasSuffix(name, ".d.ts") || strings.HasSuffix(name, ".d.mts") {
		return false
	}
	for _, ext := range sourceExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// Extensions exposes the resolution preference order for the import parser.
func Extensions() []string {
	out := make([]string, len(sourceExtensions))
	copy(out, sourceExtensions)
	return out
}
