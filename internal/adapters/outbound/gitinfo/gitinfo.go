package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// Adapter implements domain.GitInfo. Reports are stamped with the commit
// they were produced from so history entries can be tied back to a revision.
type Adapter struct{}

func New() *Adapter {
	return &Adapter{}
}

// IsGitRepo reports whether projectPath holds a git repository. Callers use
// it to skip commit stamping entirely for plain directories.
func (a *Adapter) IsGitRepo(projectPath string) bool {
	_, err := git.PlainOpen(projectPath)
	return err == nil
}

// CommitHash returns the HEAD commit hash of the repository at projectPath.
// A repository with an unborn HEAD (no commits yet) reports an error.
func (a *Adapter) CommitHash(projectPath string) (string, error) {
	repo, err := git.PlainOpen(projectPath)
	if err != nil {
		return "", fmt.Errorf("opening repository at %s: %w", projectPath, err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolving HEAD: %w", err)
	}

	return head.Hash().String(), nil
}
