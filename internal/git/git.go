package git

//go:generate moq -out git_mock.go . Client

// Querier abstracts read-only repository queries.
type Querier interface {
	GitCommonDir() (string, error)
	CurrentBranch() (string, error)
	ListBranches() ([]string, error)
	CommitCount(rangeSpec string) (int, error)
	Status() ([]FileStatus, error)
}

// BranchWriter abstracts branch mutation operations.
type BranchWriter interface {
	Checkout(branch string) error
	CreateBranch(name string) error
	Rebase(onto string) error
}

// Stasher abstracts the stash operations used for change preservation.
type Stasher interface {
	StashPush(message string, keepIndex bool) error
	StashList() ([]StashEntry, error)
	StashPop(ref string) error
}

// Stager abstracts index manipulation.
type Stager interface {
	StageAll() error
	Stage(pattern string) error
	Unstage(pattern string) error
	Reset() error
	ResetHard() error
	Commit(message string) error
}

// Remoter abstracts operations that talk to the configured remote.
type Remoter interface {
	Fetch(remote string) error
	PullRebase() error
	Push(remote, branch string) error
}

// Client abstracts git operations for testing.
type Client interface {
	Querier
	BranchWriter
	Stasher
	Stager
	Remoter
}

// StashEntry is one line of `git stash list`: a positional reference
// and its free-text message. The reference is only valid until the
// stash stack changes, so entries are looked up fresh and consumed
// immediately.
type StashEntry struct {
	Ref     string
	Message string
}

// FileStatus is one entry of `git status --porcelain`.
type FileStatus struct {
	Code string `json:"code"`
	Path string `json:"path"`
}
