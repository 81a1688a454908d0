package git

import (
	"errors"
	"fmt"
	"testing"

	"github.com/soneyama/gud/internal/exec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockExec() *exec.ExecutorMock {
	return &exec.ExecutorMock{}
}

func TestNewClient(t *testing.T) {
	e := mockExec()
	c := NewClient(e)
	assert.NotNil(t, c)
}

func TestClientCurrentBranch(t *testing.T) {
	t.Run("trims whitespace", func(t *testing.T) {
		e := mockExec()
		e.OutputFunc = func(name string, args ...string) (string, error) {
			assert.Equal(t, "git", name)
			assert.Equal(t, []string{"rev-parse", "--abbrev-ref", "HEAD"}, args)
			return "feature\n", nil
		}
		c := NewClient(e)
		branch, err := c.CurrentBranch()
		require.NoError(t, err)
		assert.Equal(t, "feature", branch)
	})

	t.Run("propagates executor error", func(t *testing.T) {
		e := mockExec()
		e.OutputFunc = func(name string, args ...string) (string, error) {
			return "", fmt.Errorf("not a git repository")
		}
		c := NewClient(e)
		_, err := c.CurrentBranch()
		assert.Error(t, err)
	})
}

func TestClientCommitCount(t *testing.T) {
	t.Run("parses count", func(t *testing.T) {
		e := mockExec()
		e.OutputFunc = func(name string, args ...string) (string, error) {
			assert.Equal(t, []string{"rev-list", "--count", "origin/main..main"}, args)
			return "4\n", nil
		}
		c := NewClient(e)
		n, err := c.CommitCount("origin/main..main")
		require.NoError(t, err)
		assert.Equal(t, 4, n)
	})

	t.Run("non-numeric output is a ParseError", func(t *testing.T) {
		e := mockExec()
		e.OutputFunc = func(name string, args ...string) (string, error) {
			return "fatal: bad revision", nil
		}
		c := NewClient(e)
		_, err := c.CommitCount("main..origin/main")
		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Contains(t, perr.Query, "main..origin/main")
	})

	t.Run("executor error passes through untyped", func(t *testing.T) {
		e := mockExec()
		e.OutputFunc = func(name string, args ...string) (string, error) {
			return "", fmt.Errorf("unknown revision")
		}
		c := NewClient(e)
		_, err := c.CommitCount("main..origin/main")
		require.Error(t, err)
		var perr *ParseError
		assert.False(t, errors.As(err, &perr))
	})
}

func TestClientStashPush(t *testing.T) {
	t.Run("plain push", func(t *testing.T) {
		e := mockExec()
		e.RunFunc = func(name string, args ...string) error { return nil }
		c := NewClient(e)
		require.NoError(t, c.StashPush("gud-keep:main", false))
		calls := e.RunCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, []string{"stash", "push", "-m", "gud-keep:main"}, calls[0].Args)
	})

	t.Run("keep index", func(t *testing.T) {
		e := mockExec()
		e.RunFunc = func(name string, args ...string) error { return nil }
		c := NewClient(e)
		require.NoError(t, c.StashPush("gud-keep:main", true))
		calls := e.RunCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, []string{"stash", "push", "--keep-index", "-m", "gud-keep:main"}, calls[0].Args)
	})
}

func TestClientStashPop(t *testing.T) {
	e := mockExec()
	e.RunFunc = func(name string, args ...string) error { return nil }
	c := NewClient(e)
	require.NoError(t, c.StashPop("stash@{2}"))
	calls := e.RunCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"stash", "pop", "stash@{2}"}, calls[0].Args)
}

func TestParseStashList(t *testing.T) {
	t.Run("two entries", func(t *testing.T) {
		out := "stash@{0}: On test_branch: gud-keep:test_branch\nstash@{1}: On master: gud-keep:master\n"
		entries := parseStashList(out)
		assert.Equal(t, []StashEntry{
			{Ref: "stash@{0}", Message: "On test_branch: gud-keep:test_branch"},
			{Ref: "stash@{1}", Message: "On master: gud-keep:master"},
		}, entries)
	})

	t.Run("empty output", func(t *testing.T) {
		assert.Nil(t, parseStashList(""))
	})

	t.Run("ignores malformed lines", func(t *testing.T) {
		out := "garbage\nstash@{0}: On main: gud-keep:main\nstash@{1}: WIP without prefix\n: On x: y\n"
		entries := parseStashList(out)
		assert.Equal(t, []StashEntry{
			{Ref: "stash@{0}", Message: "On main: gud-keep:main"},
		}, entries)
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("mixed states", func(t *testing.T) {
		out := " M cmd/root.go\n?? notes.txt\nA  internal/new.go"
		files := parseStatus(out)
		assert.Equal(t, []FileStatus{
			{Code: "M", Path: "cmd/root.go"},
			{Code: "??", Path: "notes.txt"},
			{Code: "A", Path: "internal/new.go"},
		}, files)
	})

	t.Run("clean tree", func(t *testing.T) {
		assert.Nil(t, parseStatus(""))
	})
}

func TestClientListBranches(t *testing.T) {
	t.Run("multiple branches", func(t *testing.T) {
		e := mockExec()
		e.OutputFunc = func(name string, args ...string) (string, error) {
			return "main\nfeature\nfix/bug", nil
		}
		c := NewClient(e)
		branches, err := c.ListBranches()
		require.NoError(t, err)
		assert.Equal(t, []string{"main", "feature", "fix/bug"}, branches)
	})

	t.Run("empty", func(t *testing.T) {
		e := mockExec()
		e.OutputFunc = func(name string, args ...string) (string, error) {
			return "", nil
		}
		c := NewClient(e)
		branches, err := c.ListBranches()
		require.NoError(t, err)
		assert.Nil(t, branches)
	})
}

func TestClientRemoteOps(t *testing.T) {
	var got [][]string
	e := mockExec()
	e.RunFunc = func(name string, args ...string) error {
		got = append(got, args)
		return nil
	}
	c := NewClient(e)

	require.NoError(t, c.Fetch("origin"))
	require.NoError(t, c.PullRebase())
	require.NoError(t, c.Push("origin", "main"))

	assert.Equal(t, [][]string{
		{"fetch", "origin"},
		{"pull", "--rebase"},
		{"push", "origin", "main"},
	}, got)
}

func TestClientStaging(t *testing.T) {
	var got [][]string
	e := mockExec()
	e.RunFunc = func(name string, args ...string) error {
		got = append(got, args)
		return nil
	}
	c := NewClient(e)

	require.NoError(t, c.StageAll())
	require.NoError(t, c.Stage("*.go"))
	require.NoError(t, c.Unstage("*.go"))
	require.NoError(t, c.Reset())
	require.NoError(t, c.ResetHard())
	require.NoError(t, c.Commit("a message"))

	assert.Equal(t, [][]string{
		{"add", "-A"},
		{"add", "--", "*.go"},
		{"reset", "--", "*.go"},
		{"reset"},
		{"reset", "--hard"},
		{"commit", "-m", "a message"},
	}, got)
}
