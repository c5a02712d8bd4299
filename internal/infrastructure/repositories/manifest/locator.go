package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"
)

// Locate resolves the manifest path. Absolute paths and paths that exist
// relative to workDir are used as is. Otherwise, when workDir sits inside a
// Git worktree, the path is tried relative to the worktree root, so running
// from a subdirectory still finds the project's package.json.
func Locate(workDir, path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}

	candidate := filepath.Join(workDir, path)
	if _, err := os.Stat(candidate); err == nil {
		return candidate, nil
	}

	root, err := worktreeRoot(workDir)
	if err != nil {
		return "", fmt.Errorf("manifest %q not found in %s: %w", path, workDir, err)
	}

	fromRoot := filepath.Join(root, path)
	if _, statErr := os.Stat(fromRoot); statErr != nil {
		return "", fmt.Errorf("manifest %q not found in %s nor at worktree root %s", path, workDir, root)
	}

	logger.Debugf("Using manifest from worktree root: %s", fromRoot)
	return fromRoot, nil
}

func worktreeRoot(dir string) (string, error) {
	//nolint:exhaustruct // only DetectDotGit matters here
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", errors.New("not inside a git repository")
		}
		return "", err
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", err
	}
	return worktree.Filesystem.Root(), nil
}
