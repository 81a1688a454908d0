package workflow

import (
	"context"
	"fmt"
)

// Stage adds files matching pattern to the index. Pass-through to the
// primitive; no additional logic.
func (s *Service) Stage(ctx context.Context, pattern string) error {
	if err := s.git.Stage(pattern); err != nil {
		return fmt.Errorf("staging '%s': %w", pattern, err)
	}
	return nil
}

// Unstage removes files matching pattern from the index.
func (s *Service) Unstage(ctx context.Context, pattern string) error {
	if err := s.git.Unstage(pattern); err != nil {
		return fmt.Errorf("unstaging '%s': %w", pattern, err)
	}
	return nil
}

// Clear discards all working-tree and index modifications. There is no
// way back; the confirmation prompt lives in the CLI layer, not here.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.git.ResetHard(); err != nil {
		return fmt.Errorf("discarding changes: %w", err)
	}
	return nil
}
