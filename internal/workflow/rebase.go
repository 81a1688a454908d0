package workflow

import (
	"context"
	"fmt"
)

// RebaseParams holds parameters for the Rebase operation.
type RebaseParams struct {
	Onto string
}

// Rebase replays the current branch on top of another branch, after
// bringing that branch up to date with its remote. Uncommitted changes
// survive both switches via the stash. Conflicts during the final
// rebase step are not resolved here: git's error is surfaced as-is and
// the repository is left wherever git left it, possibly mid-rebase.
func (s *Service) Rebase(ctx context.Context, p RebaseParams) error {
	if err := ValidateBranchName(p.Onto); err != nil {
		return err
	}

	original, err := s.git.CurrentBranch()
	if err != nil {
		return fmt.Errorf("resolving current branch: %w", err)
	}

	if err := s.Switch(ctx, SwitchParams{Branch: p.Onto}); err != nil {
		return err
	}
	if _, err := s.Sync(ctx); err != nil {
		return err
	}
	if err := s.Switch(ctx, SwitchParams{Branch: original}); err != nil {
		return err
	}

	if err := s.git.Rebase(p.Onto); err != nil {
		return fmt.Errorf("rebasing onto '%s': %w", p.Onto, err)
	}
	return nil
}
