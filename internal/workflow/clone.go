package workflow

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	gogit "github.com/go-git/go-git/v5"
)

// repositoryNamePattern extracts the final path component of a remote
// URL, with an optional .git suffix stripped. It handles ssh
// (git@host:org/repo.git), https, and suffixless https forms alike.
var repositoryNamePattern = regexp.MustCompile(`([^/.:]+)(?:\.git)?$`)

// RepositoryName returns the directory name a clone of url should land
// in.
func RepositoryName(url string) (string, error) {
	m := repositoryNamePattern.FindStringSubmatch(url)
	if m == nil {
		return "", fmt.Errorf("cannot derive a repository name from '%s'", url)
	}
	return m[1], nil
}

// Clone clones url into a directory named after the repository inside
// parent and returns the directory path.
func Clone(ctx context.Context, url, parent string) (string, error) {
	name, err := RepositoryName(url)
	if err != nil {
		return "", err
	}
	dir := filepath.Join(parent, name)
	if _, err := gogit.PlainCloneContext(ctx, dir, false, &gogit.CloneOptions{
		URL:      url,
		Progress: os.Stderr,
	}); err != nil {
		return "", fmt.Errorf("cloning '%s': %w", url, err)
	}
	return dir, nil
}
