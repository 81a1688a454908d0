package workflow

import "fmt"

// Divergence counts the commits that exist on only one side of a local
// branch and its remote counterpart.
type Divergence struct {
	Ahead  int `json:"ahead"`  // local commits not yet published
	Behind int `json:"behind"` // remote commits not yet integrated
}

// InSync reports whether there is nothing to move in either direction.
func (d Divergence) InSync() bool {
	return d.Ahead == 0 && d.Behind == 0
}

// divergence computes the counts with two one-sided range queries
// against the remote counterpart of branch. The counts are computed
// fresh on every call; nothing is cached.
func (s *Service) divergence(branch string) (Divergence, error) {
	upstream := s.remote + "/" + branch

	ahead, err := s.git.CommitCount(upstream + ".." + branch)
	if err != nil {
		return Divergence{}, fmt.Errorf("counting unpublished commits: %w", err)
	}
	behind, err := s.git.CommitCount(branch + ".." + upstream)
	if err != nil {
		return Divergence{}, fmt.Errorf("counting unintegrated commits: %w", err)
	}
	return Divergence{Ahead: ahead, Behind: behind}, nil
}
