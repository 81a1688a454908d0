package workflow

import (
	"context"
	"fmt"

	"github.com/soneyama/gud/internal/git"
)

// RepoStatus describes the working tree and how far the current branch
// has drifted from its remote counterpart.
type RepoStatus struct {
	Branch     string           `json:"branch"`
	Divergence Divergence       `json:"divergence"`
	Files      []git.FileStatus `json:"files"`
}

// Status reports the current branch, its divergence, and the changed
// files. A branch with no remote counterpart has nothing to reconcile,
// so divergence queries that fail leave the counts at zero instead of
// failing the verb.
func (s *Service) Status(ctx context.Context) (*RepoStatus, error) {
	branch, err := s.git.CurrentBranch()
	if err != nil {
		return nil, fmt.Errorf("resolving current branch: %w", err)
	}

	st := &RepoStatus{Branch: branch}

	div, err := s.divergence(branch)
	if err != nil {
		s.logger.Debug("divergence unavailable", "branch", branch, "error", err)
	} else {
		st.Divergence = div
	}

	files, err := s.git.Status()
	if err != nil {
		return nil, fmt.Errorf("reading status: %w", err)
	}
	st.Files = files
	return st, nil
}
