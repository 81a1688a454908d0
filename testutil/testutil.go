// Package testutil constructs temporary git repositories for
// integration tests.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// RepoBuilder constructs temporary git repositories for testing.
type RepoBuilder struct {
	t        *testing.T
	remote   string
	branches []string
}

// NewRepo creates a RepoBuilder for the given test.
func NewRepo(t *testing.T) *RepoBuilder {
	t.Helper()
	return &RepoBuilder{t: t}
}

// WithRemote sets the origin remote URL. The main branch is pushed to
// it with upstream tracking during Build, so the URL should point at a
// writable (typically bare, local) repository.
func (b *RepoBuilder) WithRemote(url string) *RepoBuilder {
	b.remote = url
	return b
}

// WithBranch adds a branch to be created.
func (b *RepoBuilder) WithBranch(name string) *RepoBuilder {
	b.branches = append(b.branches, name)
	return b
}

// Build creates the repository and returns the root directory path.
func (b *RepoBuilder) Build() string {
	b.t.Helper()

	dir := b.t.TempDir()

	Run(b.t, dir, "git", "init", "-b", "main")
	Run(b.t, dir, "git", "config", "user.email", "test@example.com")
	Run(b.t, dir, "git", "config", "user.name", "Test")

	readme := filepath.Join(dir, "README.md")
	if err := os.WriteFile(readme, []byte("# test\n"), 0644); err != nil {
		b.t.Fatal(err)
	}
	Run(b.t, dir, "git", "add", ".")
	Run(b.t, dir, "git", "commit", "-m", "initial commit")

	if b.remote != "" {
		Run(b.t, dir, "git", "remote", "add", "origin", b.remote)
		Run(b.t, dir, "git", "push", "-u", "origin", "main")
	}

	created := make(map[string]bool)
	for _, branch := range b.branches {
		if !created[branch] {
			Run(b.t, dir, "git", "branch", branch)
			created[branch] = true
		}
	}

	return dir
}

// GitRepo creates a temporary git repository with an initial commit.
// The directory is cleaned up when the test finishes.
func GitRepo(t *testing.T) string {
	t.Helper()
	return NewRepo(t).Build()
}

// GitRepoWithBranch creates a temporary git repository with an additional branch.
func GitRepoWithBranch(t *testing.T, branch string) string {
	t.Helper()
	return NewRepo(t).WithBranch(branch).Build()
}

// BareRemote creates a bare repository suitable as a push target.
func BareRemote(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	Run(t, dir, "git", "init", "--bare", "-b", "main")
	return dir
}

// WriteFile writes content to a file inside the repository.
func WriteFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// ReadFile returns the content of a file inside the repository.
func ReadFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

// Commit stages everything and commits with the given message.
func Commit(t *testing.T, dir, message string) {
	t.Helper()
	Run(t, dir, "git", "add", "-A")
	Run(t, dir, "git", "commit", "-m", message)
}

// Run executes a command in dir, failing the test on error.
func Run(t *testing.T, dir, name string, args ...string) {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("%s %v: %s: %v", name, args, out, err)
	}
}

// Output executes a command in dir and returns its trimmed stdout,
// failing the test on error.
func Output(t *testing.T, dir, name string, args ...string) string {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("%s %v: %v", name, args, err)
	}
	return strings.TrimSpace(string(out))
}
