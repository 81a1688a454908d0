package workflow

import (
	"context"
	"fmt"
)

// BranchParams holds parameters for the Branch operation.
type BranchParams struct {
	Name string
}

// Branch creates a new branch at the current position. Uncommitted
// changes are snapshotted to the stash first but kept in the working
// tree, so they ride along onto the new branch; restore is
// deliberately skipped because the new branch already carries them.
func (s *Service) Branch(ctx context.Context, p BranchParams) error {
	if err := ValidateBranchName(p.Name); err != nil {
		return err
	}

	if err := s.preserve(true); err != nil {
		return err
	}
	if err := s.git.CreateBranch(p.Name); err != nil {
		return fmt.Errorf("creating branch '%s': %w", p.Name, err)
	}
	return nil
}
