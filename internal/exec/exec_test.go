package exec

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultExecutor(t *testing.T) {
	e := NewDefaultExecutor()
	assert.NotNil(t, e)
}

func TestLookPath(t *testing.T) {
	e := NewDefaultExecutor()

	t.Run("existing command", func(t *testing.T) {
		err := e.LookPath("sh")
		require.NoError(t, err)
	})

	t.Run("missing command", func(t *testing.T) {
		err := e.LookPath("nonexistent-command-xyz-12345")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "command not found")
	})
}

func TestOutput(t *testing.T) {
	e := NewDefaultExecutor()

	t.Run("success", func(t *testing.T) {
		out, err := e.Output("echo", "hello")
		require.NoError(t, err)
		assert.Equal(t, "hello", out)
	})

	t.Run("non-zero exit is an error", func(t *testing.T) {
		_, err := e.Output("sh", "-c", "exit 1")
		assert.Error(t, err)
		assert.True(t, IsExitError(err))
	})

	t.Run("error with stderr", func(t *testing.T) {
		_, err := e.Output("sh", "-c", "echo fail >&2; exit 1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "fail")
	})

	t.Run("launch failure", func(t *testing.T) {
		_, err := e.Output("nonexistent-command-xyz-12345")
		assert.Error(t, err)
		assert.False(t, IsExitError(err))
	})
}

func TestRun(t *testing.T) {
	e := NewDefaultExecutor()

	t.Run("success", func(t *testing.T) {
		err := e.Run("true")
		require.NoError(t, err)
	})

	t.Run("error with stderr", func(t *testing.T) {
		err := e.Run("sh", "-c", "echo errmsg >&2; exit 1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "errmsg")
	})

	t.Run("error without stderr", func(t *testing.T) {
		err := e.Run("false")
		assert.Error(t, err)
	})
}

func TestIsExitCode(t *testing.T) {
	t.Run("matching exit code", func(t *testing.T) {
		e := NewDefaultExecutor()
		err := e.Run("sh", "-c", "exit 2")
		require.Error(t, err)
		assert.True(t, IsExitCode(err, 2))
	})

	t.Run("non-matching exit code", func(t *testing.T) {
		e := NewDefaultExecutor()
		err := e.Run("sh", "-c", "exit 3")
		require.Error(t, err)
		assert.False(t, IsExitCode(err, 1))
	})

	t.Run("non-exit error", func(t *testing.T) {
		assert.False(t, IsExitCode(fmt.Errorf("plain error"), 1))
	})

	t.Run("nil error", func(t *testing.T) {
		assert.False(t, IsExitCode(nil, 0))
	})
}

func TestWithLogger(t *testing.T) {
	newEchoExecutor := func(buf *bytes.Buffer) *DefaultExecutor {
		l := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		return NewDefaultExecutor(WithLogger(l))
	}

	t.Run("echoes command and output", func(t *testing.T) {
		var buf bytes.Buffer
		e := newEchoExecutor(&buf)
		out, err := e.Output("echo", "hello")
		require.NoError(t, err)
		assert.Equal(t, "hello", out)
		assert.Contains(t, buf.String(), "echo")
		assert.Contains(t, buf.String(), "hello")
	})

	t.Run("does not alter return values", func(t *testing.T) {
		plain := NewDefaultExecutor()
		var buf bytes.Buffer
		echoing := newEchoExecutor(&buf)

		wantOut, wantErr := plain.Output("echo", "same")
		gotOut, gotErr := echoing.Output("echo", "same")
		assert.Equal(t, wantOut, gotOut)
		assert.Equal(t, wantErr, gotErr)

		assert.Error(t, echoing.Run("false"))
		assert.NotEmpty(t, buf.String())
	})
}
