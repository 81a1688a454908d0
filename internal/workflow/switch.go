package workflow

import (
	"context"
	"fmt"
)

// SwitchParams holds parameters for the Switch operation.
type SwitchParams struct {
	Branch string
}

// Switch moves to another branch, carrying uncommitted changes across
// via the stash. If the checkout itself fails the preserved entry
// stays in the stash for manual recovery; recovering automatically
// from an unknown git failure risks making things worse.
func (s *Service) Switch(ctx context.Context, p SwitchParams) error {
	if err := ValidateBranchName(p.Branch); err != nil {
		return err
	}

	if err := s.preserve(false); err != nil {
		return err
	}
	if err := s.git.Checkout(p.Branch); err != nil {
		return fmt.Errorf("checking out '%s': %w", p.Branch, err)
	}
	return s.restore()
}
