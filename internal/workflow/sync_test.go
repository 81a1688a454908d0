package workflow

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSync(t *testing.T) {
	t.Run("fetch, count, integrate, publish in order", func(t *testing.T) {
		var order []string
		g := okClient("main")
		g.FetchFunc = func(remote string) error {
			order = append(order, "fetch "+remote)
			return nil
		}
		g.CommitCountFunc = func(rangeSpec string) (int, error) {
			order = append(order, "count "+rangeSpec)
			if rangeSpec == "origin/main..main" {
				return 2, nil
			}
			return 3, nil
		}
		g.PullRebaseFunc = func() error {
			order = append(order, "pull")
			return nil
		}
		g.PushFunc = func(remote, branch string) error {
			order = append(order, "push "+remote+" "+branch)
			return nil
		}
		svc := NewService(g)

		div, err := svc.Sync(context.Background())
		require.NoError(t, err)
		assert.Equal(t, Divergence{Ahead: 2, Behind: 3}, div)
		assert.Equal(t, []string{
			"fetch origin",
			"count origin/main..main",
			"count main..origin/main",
			"pull",
			"push origin main",
		}, order)
	})

	t.Run("zero divergence is still a success", func(t *testing.T) {
		g := okClient("main")
		svc := NewService(g)

		div, err := svc.Sync(context.Background())
		require.NoError(t, err)
		assert.True(t, div.InSync())
		assert.Len(t, g.PushCalls(), 1)
	})

	t.Run("fetch failure stops before counting", func(t *testing.T) {
		g := okClient("main")
		g.FetchFunc = func(remote string) error { return fmt.Errorf("network down") }
		svc := NewService(g)

		_, err := svc.Sync(context.Background())
		assert.Error(t, err)
		assert.Empty(t, g.CommitCountCalls())
		assert.Empty(t, g.PullRebaseCalls())
		assert.Empty(t, g.PushCalls())
	})

	t.Run("integration failure stops before publishing", func(t *testing.T) {
		g := okClient("main")
		g.PullRebaseFunc = func() error { return fmt.Errorf("rebase conflict") }
		svc := NewService(g)

		_, err := svc.Sync(context.Background())
		assert.Error(t, err)
		assert.Len(t, g.FetchCalls(), 1)
		assert.Empty(t, g.PushCalls())
	})

	t.Run("divergence failure stops before integrating", func(t *testing.T) {
		g := okClient("main")
		g.CommitCountFunc = func(rangeSpec string) (int, error) {
			return 0, fmt.Errorf("no remote tracking branch")
		}
		svc := NewService(g)

		_, err := svc.Sync(context.Background())
		assert.Error(t, err)
		assert.Empty(t, g.PullRebaseCalls())
		assert.Empty(t, g.PushCalls())
	})
}
