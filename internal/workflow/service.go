// Package workflow composes primitive git operations into the public
// gud verbs. Every verb is a sequential, fail-fast composition: no
// primitive is issued until the previous one completed, and the first
// failure aborts the rest with no automatic rollback.
package workflow

import "github.com/soneyama/gud/internal/git"

// DefaultRemote is the remote used when none is configured.
const DefaultRemote = "origin"

// Logger defines an interface for logging workflow step tracing.
type Logger interface {
	Debug(msg string, args ...any)
}

// nopLogger discards all log messages.
type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger for step tracing.
func WithLogger(l Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithRemote sets the remote name used by sync and divergence queries.
func WithRemote(remote string) Option {
	return func(s *Service) { s.remote = remote }
}

// Service provides the workflow verbs backed by a git client.
//
// It holds no repository state of its own: the current branch is
// re-resolved at the start of every step, and stash entries never
// outlive a single verb invocation.
type Service struct {
	git    git.Client
	remote string
	logger Logger
}

// NewService creates a Service with the default remote.
func NewService(g git.Client, opts ...Option) *Service {
	s := &Service{
		git:    g,
		remote: DefaultRemote,
		logger: nopLogger{},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}
