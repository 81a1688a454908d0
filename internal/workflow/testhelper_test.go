package workflow

import "github.com/soneyama/gud/internal/git"

// okClient returns a ClientMock fixed on the given branch where every
// operation succeeds. Tests override the funcs they care about and use
// the moq call records for assertions.
func okClient(branch string) *git.ClientMock {
	return &git.ClientMock{
		CurrentBranchFunc: func() (string, error) { return branch, nil },
		CommitCountFunc:   func(rangeSpec string) (int, error) { return 0, nil },
		StatusFunc:        func() ([]git.FileStatus, error) { return nil, nil },
		CheckoutFunc:      func(branch string) error { return nil },
		CreateBranchFunc:  func(name string) error { return nil },
		RebaseFunc:        func(onto string) error { return nil },
		StashPushFunc:     func(message string, keepIndex bool) error { return nil },
		StashListFunc:     func() ([]git.StashEntry, error) { return nil, nil },
		StashPopFunc:      func(ref string) error { return nil },
		StageAllFunc:      func() error { return nil },
		StageFunc:         func(pattern string) error { return nil },
		UnstageFunc:       func(pattern string) error { return nil },
		ResetFunc:         func() error { return nil },
		ResetHardFunc:     func() error { return nil },
		CommitFunc:        func(message string) error { return nil },
		FetchFunc:         func(remote string) error { return nil },
		PullRebaseFunc:    func() error { return nil },
		PushFunc:          func(remote, branch string) error { return nil },
	}
}

// switchingClient returns an okClient whose CurrentBranch follows
// Checkout and CreateBranch calls, like a real repository would.
func switchingClient(start string) *git.ClientMock {
	current := start
	m := okClient(start)
	m.CurrentBranchFunc = func() (string, error) { return current, nil }
	m.CheckoutFunc = func(branch string) error {
		current = branch
		return nil
	}
	m.CreateBranchFunc = func(name string) error {
		current = name
		return nil
	}
	return m
}

// stashOf builds a listing entry the way git renders a preserve push
// on the given branch.
func stashOf(ref, branch string) git.StashEntry {
	return git.StashEntry{Ref: ref, Message: "On " + branch + ": " + StashTag(branch)}
}
