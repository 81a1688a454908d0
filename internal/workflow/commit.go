package workflow

import (
	"context"
	"fmt"
)

// CommitParams holds parameters for the Commit operation.
type CommitParams struct {
	Message string
}

// Commit records the currently staged changes with the given message
// and then synchronizes with the remote.
func (s *Service) Commit(ctx context.Context, p CommitParams) (Divergence, error) {
	if p.Message == "" {
		return Divergence{}, fmt.Errorf("commit message must not be empty")
	}
	if err := s.git.Commit(p.Message); err != nil {
		return Divergence{}, fmt.Errorf("committing: %w", err)
	}
	return s.Sync(ctx)
}
