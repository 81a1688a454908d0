package cmd

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubConfirm replaces the interactive prompt for the duration of a test.
func stubConfirm(t *testing.T, answer bool, err error) *int {
	t.Helper()
	orig := confirmClear
	t.Cleanup(func() { confirmClear = orig })
	calls := 0
	confirmClear = func() (bool, error) {
		calls++
		return answer, err
	}
	return &calls
}

func TestRunClear(t *testing.T) {
	t.Run("confirmed resets hard", func(t *testing.T) {
		calls := stubConfirm(t, true, nil)
		g := okGitMock("main")
		app := appWithDeps(newCmdDeps(g))

		cmd := &cobra.Command{}
		err := app.runClear(cmd, false)
		require.NoError(t, err)
		assert.Equal(t, 1, *calls)
		assert.Len(t, g.ResetHardCalls(), 1)
	})

	t.Run("declined aborts without touching the repository", func(t *testing.T) {
		stubConfirm(t, false, nil)
		g := okGitMock("main")
		app := appWithDeps(newCmdDeps(g))

		cmd := &cobra.Command{}
		var buf bytes.Buffer
		cmd.SetOut(&buf)
		err := app.runClear(cmd, false)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Aborted")
		assert.Empty(t, g.ResetHardCalls())
	})

	t.Run("force skips the prompt", func(t *testing.T) {
		calls := stubConfirm(t, false, nil)
		g := okGitMock("main")
		app := appWithDeps(newCmdDeps(g))

		cmd := &cobra.Command{}
		err := app.runClear(cmd, true)
		require.NoError(t, err)
		assert.Equal(t, 0, *calls)
		assert.Len(t, g.ResetHardCalls(), 1)
	})

	t.Run("prompt error propagates", func(t *testing.T) {
		stubConfirm(t, false, fmt.Errorf("terminal closed"))
		app := appWithDeps(newCmdDeps(okGitMock("main")))

		cmd := &cobra.Command{}
		err := app.runClear(cmd, false)
		assert.Error(t, err)
	})
}
