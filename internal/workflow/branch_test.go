package workflow

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranch(t *testing.T) {
	t.Run("snapshots with keep-index and skips restore", func(t *testing.T) {
		g := switchingClient("main")
		svc := NewService(g)

		require.NoError(t, svc.Branch(context.Background(), BranchParams{Name: "feature"}))

		pushes := g.StashPushCalls()
		require.Len(t, pushes, 1)
		assert.Equal(t, "gud-keep:main", pushes[0].Message)
		assert.True(t, pushes[0].KeepIndex)

		// The bulk staging is undone so the index is clean again.
		assert.Len(t, g.ResetCalls(), 1)

		creates := g.CreateBranchCalls()
		require.Len(t, creates, 1)
		assert.Equal(t, "feature", creates[0].Name)

		// The new branch already carries the changes: no restore.
		assert.Empty(t, g.StashListCalls())
		assert.Empty(t, g.StashPopCalls())
	})

	t.Run("create failure keeps the snapshot stashed", func(t *testing.T) {
		g := switchingClient("main")
		g.CreateBranchFunc = func(name string) error { return fmt.Errorf("branch exists") }
		svc := NewService(g)

		err := svc.Branch(context.Background(), BranchParams{Name: "feature"})
		assert.Error(t, err)
		assert.Len(t, g.StashPushCalls(), 1)
		assert.Empty(t, g.StashPopCalls())
	})

	t.Run("invalid branch name", func(t *testing.T) {
		g := switchingClient("main")
		svc := NewService(g)

		err := svc.Branch(context.Background(), BranchParams{Name: "feat..x"})
		assert.Error(t, err)
		assert.Empty(t, g.StashPushCalls())
		assert.Empty(t, g.CreateBranchCalls())
	})
}
