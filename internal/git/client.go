package git

import (
	"strconv"
	"strings"

	"github.com/soneyama/gud/internal/exec"
)

var _ Client = (*client)(nil)

type client struct {
	exec exec.Executor
}

// NewClient creates a git Client backed by the given Executor.
func NewClient(exec exec.Executor) Client {
	return &client{exec: exec}
}

func (c *client) GitCommonDir() (string, error) {
	return c.exec.Output("git", "rev-parse", "--path-format=absolute", "--git-common-dir")
}

// CurrentBranch returns the abbreviated name of the checked-out branch.
// Captured output carries a trailing line terminator, so the result is
// trimmed.
func (c *client) CurrentBranch() (string, error) {
	out, err := c.exec.Output("git", "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (c *client) ListBranches() ([]string, error) {
	out, err := c.exec.Output("git", "branch", "--format=%(refname:short)")
	if err != nil {
		return nil, err
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return nil, nil
	}
	var branches []string
	for line := range strings.SplitSeq(out, "\n") {
		branches = append(branches, line)
	}
	return branches, nil
}

// CommitCount returns the number of commits in the given range, e.g.
// "origin/main..main". Output that is not a non-negative integer is a
// ParseError (typically a missing remote-tracking branch).
func (c *client) CommitCount(rangeSpec string) (int, error) {
	out, err := c.exec.Output("git", "rev-list", "--count", rangeSpec)
	if err != nil {
		return 0, err
	}
	n, perr := strconv.Atoi(strings.TrimSpace(out))
	if perr != nil || n < 0 {
		return 0, &ParseError{Query: "rev-list --count " + rangeSpec, Output: out}
	}
	return n, nil
}

func (c *client) Status() ([]FileStatus, error) {
	out, err := c.exec.Output("git", "status", "--porcelain")
	if err != nil {
		return nil, err
	}
	return parseStatus(out), nil
}

func (c *client) Checkout(branch string) error {
	return c.exec.Run("git", "checkout", branch)
}

func (c *client) CreateBranch(name string) error {
	return c.exec.Run("git", "checkout", "-b", name)
}

func (c *client) Rebase(onto string) error {
	return c.exec.Run("git", "rebase", onto)
}

// StashPush pushes a stash entry labeled with message. With keepIndex
// the staged snapshot is kept in the working tree and index instead of
// being reverted.
func (c *client) StashPush(message string, keepIndex bool) error {
	args := []string{"stash", "push"}
	if keepIndex {
		args = append(args, "--keep-index")
	}
	args = append(args, "-m", message)
	return c.exec.Run("git", args...)
}

func (c *client) StashList() ([]StashEntry, error) {
	out, err := c.exec.Output("git", "stash", "list")
	if err != nil {
		return nil, err
	}
	return parseStashList(out), nil
}

// StashPop pops the exact entry named by ref, not the top of the stack.
func (c *client) StashPop(ref string) error {
	return c.exec.Run("git", "stash", "pop", ref)
}

func (c *client) StageAll() error {
	return c.exec.Run("git", "add", "-A")
}

func (c *client) Stage(pattern string) error {
	return c.exec.Run("git", "add", "--", pattern)
}

func (c *client) Unstage(pattern string) error {
	return c.exec.Run("git", "reset", "--", pattern)
}

func (c *client) Reset() error {
	return c.exec.Run("git", "reset")
}

func (c *client) ResetHard() error {
	return c.exec.Run("git", "reset", "--hard")
}

func (c *client) Commit(message string) error {
	return c.exec.Run("git", "commit", "-m", message)
}

func (c *client) Fetch(remote string) error {
	return c.exec.Run("git", "fetch", remote)
}

func (c *client) PullRebase() error {
	return c.exec.Run("git", "pull", "--rebase")
}

func (c *client) Push(remote, branch string) error {
	return c.exec.Run("git", "push", remote, branch)
}

// parseStashList parses the output of `git stash list`. Each entry has
// the shape `stash@{N}: On <branch>: <message>`; lines that do not
// match are ignored.
func parseStashList(output string) []StashEntry {
	if output == "" {
		return nil
	}
	var entries []StashEntry
	for line := range strings.SplitSeq(output, "\n") {
		ref, rest, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}
		if !strings.HasPrefix(ref, "stash@{") || !strings.HasSuffix(ref, "}") {
			continue
		}
		if !strings.HasPrefix(rest, "On ") {
			continue
		}
		entries = append(entries, StashEntry{Ref: ref, Message: rest})
	}
	return entries
}

// parseStatus parses the porcelain status format: a two-character
// state code, a space, and the path.
func parseStatus(output string) []FileStatus {
	if output == "" {
		return nil
	}
	var files []FileStatus
	for line := range strings.SplitSeq(output, "\n") {
		if len(line) < 4 {
			continue
		}
		files = append(files, FileStatus{
			Code: strings.TrimSpace(line[:2]),
			Path: line[3:],
		})
	}
	return files
}
