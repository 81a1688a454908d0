package cmd

import (
	"bytes"
	"testing"

	"github.com/soneyama/gud/internal/config"
	gudcontext "github.com/soneyama/gud/internal/context"
	"github.com/soneyama/gud/internal/git"
)

// appWithDeps creates an App that resolves to the given deps.
func appWithDeps(d *deps) *App {
	return &App{
		resolveDeps: func(verbose bool) (*deps, error) { return d, nil },
	}
}

// appWithDepsError creates an App whose resolveDeps returns an error.
func appWithDepsError(err error) *App {
	return &App{
		resolveDeps: func(verbose bool) (*deps, error) { return nil, err },
	}
}

// newCmdDeps creates deps around the given git client with a resolved
// context and default configuration.
func newCmdDeps(g git.Client) *deps {
	return &deps{
		git: g,
		ctx: &gudcontext.Context{RepoRoot: "/repo", DefaultBranch: "main"},
		cfg: &config.Config{Remote: "origin"},
	}
}

// okGitMock returns a ClientMock where every operation succeeds.
func okGitMock(branch string) *git.ClientMock {
	return &git.ClientMock{
		GitCommonDirFunc:  func() (string, error) { return "/repo/.git", nil },
		CurrentBranchFunc: func() (string, error) { return branch, nil },
		ListBranchesFunc:  func() ([]string, error) { return []string{branch, "main"}, nil },
		CommitCountFunc:   func(rangeSpec string) (int, error) { return 0, nil },
		StatusFunc:        func() ([]git.FileStatus, error) { return nil, nil },
		CheckoutFunc:      func(branch string) error { return nil },
		CreateBranchFunc:  func(name string) error { return nil },
		RebaseFunc:        func(onto string) error { return nil },
		StashPushFunc:     func(message string, keepIndex bool) error { return nil },
		StashListFunc:     func() ([]git.StashEntry, error) { return nil, nil },
		StashPopFunc:      func(ref string) error { return nil },
		StageAllFunc:      func() error { return nil },
		StageFunc:         func(pattern string) error { return nil },
		UnstageFunc:       func(pattern string) error { return nil },
		ResetFunc:         func() error { return nil },
		ResetHardFunc:     func() error { return nil },
		CommitFunc:        func(message string) error { return nil },
		FetchFunc:         func(remote string) error { return nil },
		PullRebaseFunc:    func() error { return nil },
		PushFunc:          func(remote, branch string) error { return nil },
	}
}

// executeCommand runs the CLI command tree with the given args and returns the output.
func executeCommand(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := app.BuildRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}
