package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hexaview/hexaview/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".hexaview.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .hexaview.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .hexaview.yaml from projectPath. A missing file yields the
// built-in defaults; a malformed file or a rule referencing an undeclared
// layer is fatal, before any analysis runs.
func (l *YAMLLoader) Load(projectPath string) (domain.AnalysisConfig, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.AnalysisConfig{}, err
	}

	var cfg domain.AnalysisConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.AnalysisConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.AnalysisConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return cfg, nil
}
