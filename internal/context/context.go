package context

import (
	"fmt"
	"path/filepath"

	"github.com/soneyama/gud/internal/git"
)

// Context holds resolved repository information.
type Context struct {
	RepoRoot      string
	DefaultBranch string
}

// Resolver resolves repository context from git metadata.
type Resolver struct {
	git git.Client
}

// NewResolver creates a Resolver backed by the given git client.
func NewResolver(git git.Client) *Resolver {
	return &Resolver{git: git}
}

// Resolve resolves the full repository context.
func (r *Resolver) Resolve() (*Context, error) {
	repoRoot, err := r.resolveRepoRoot()
	if err != nil {
		return nil, err
	}

	defaultBranch, err := r.resolveDefaultBranch()
	if err != nil {
		return nil, err
	}

	return &Context{
		RepoRoot:      repoRoot,
		DefaultBranch: defaultBranch,
	}, nil
}

func (r *Resolver) resolveRepoRoot() (string, error) {
	gitDir, err := r.git.GitCommonDir()
	if err != nil {
		return "", fmt.Errorf("not a git repository: %w", err)
	}
	return filepath.Dir(gitDir), nil
}

func (r *Resolver) resolveDefaultBranch() (string, error) {
	branches, err := r.git.ListBranches()
	if err != nil {
		return "", fmt.Errorf("resolving default branch: %w", err)
	}

	for _, name := range []string{"main", "master"} {
		for _, branch := range branches {
			if branch == name {
				return name, nil
			}
		}
	}

	return "", fmt.Errorf("could not determine default branch")
}
