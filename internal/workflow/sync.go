package workflow

import (
	"context"
	"fmt"
)

// Sync fetches remote updates, replays unpublished local commits on
// top of them, and publishes the result. The returned Divergence is
// measured after the fetch but before integrating, so it reports what
// the sync is about to move.
func (s *Service) Sync(ctx context.Context) (Divergence, error) {
	branch, err := s.git.CurrentBranch()
	if err != nil {
		return Divergence{}, fmt.Errorf("resolving current branch: %w", err)
	}

	if err := s.git.Fetch(s.remote); err != nil {
		return Divergence{}, fmt.Errorf("fetching %s: %w", s.remote, err)
	}

	div, err := s.divergence(branch)
	if err != nil {
		return Divergence{}, err
	}
	s.logger.Debug("divergence", "branch", branch, "ahead", div.Ahead, "behind", div.Behind)

	if err := s.git.PullRebase(); err != nil {
		return Divergence{}, fmt.Errorf("integrating remote changes: %w", err)
	}
	if err := s.git.Push(s.remote, branch); err != nil {
		return Divergence{}, fmt.Errorf("publishing local commits: %w", err)
	}
	return div, nil
}
