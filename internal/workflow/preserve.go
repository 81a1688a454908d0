package workflow

import (
	"fmt"
	"strings"

	"github.com/soneyama/gud/internal/git"
)

// stashTagPrefix namespaces stash entries created by preserve so they
// can be found again after a branch switch without relying on stack
// position.
const stashTagPrefix = "gud-keep"

// StashTag derives the stash label for a branch. The full branch name
// is embedded after the prefix, so no two branches share a tag.
func StashTag(branch string) string {
	return stashTagPrefix + ":" + branch
}

// preserve stashes all uncommitted modifications of the current
// branch, untracked files included, under the branch's tag.
//
// With keepStaged the snapshot is pushed with keep-index so the
// working tree keeps carrying the changes, and the index is then
// reset so the bulk staging does not leak into the next commit. Branch
// uses this so the new branch inherits the work in progress.
func (s *Service) preserve(keepStaged bool) error {
	branch, err := s.git.CurrentBranch()
	if err != nil {
		return fmt.Errorf("resolving current branch: %w", err)
	}
	tag := StashTag(branch)

	if err := s.git.StageAll(); err != nil {
		return fmt.Errorf("staging changes: %w", err)
	}
	if err := s.git.StashPush(tag, keepStaged); err != nil {
		return fmt.Errorf("stashing changes: %w", err)
	}
	s.logger.Debug("preserved changes", "branch", branch, "tag", tag)

	if keepStaged {
		if err := s.git.Reset(); err != nil {
			return fmt.Errorf("unstaging kept changes: %w", err)
		}
	}
	return nil
}

// restore pops the stash entry preserved for the current branch, if
// one exists. Entries for other branches may be interleaved in the
// stack, so the lookup scans the listing for this branch's tag instead
// of popping the top entry. No matching entry means there was nothing
// to preserve for this branch; that is a successful no-op.
func (s *Service) restore() error {
	branch, err := s.git.CurrentBranch()
	if err != nil {
		return fmt.Errorf("resolving current branch: %w", err)
	}
	tag := StashTag(branch)

	entries, err := s.git.StashList()
	if err != nil {
		return fmt.Errorf("listing stash: %w", err)
	}

	entry := findStash(entries, tag)
	if entry == nil {
		s.logger.Debug("no preserved changes", "branch", branch, "tag", tag)
		return nil
	}

	if err := s.git.StashPop(entry.Ref); err != nil {
		return fmt.Errorf("restoring %s: %w", entry.Ref, err)
	}
	// Popping re-stages what preserve staged; hand back a clean index.
	if err := s.git.Reset(); err != nil {
		return fmt.Errorf("unstaging restored changes: %w", err)
	}
	s.logger.Debug("restored changes", "branch", branch, "ref", entry.Ref)
	return nil
}

// findStash returns the first entry whose message carries the tag, or
// nil. Tags end with the full branch name, so a scan by label cannot
// confuse two in-use branches.
func findStash(entries []git.StashEntry, tag string) *git.StashEntry {
	for i := range entries {
		if strings.HasSuffix(entries[i].Message, tag) {
			return &entries[i]
		}
	}
	return nil
}
