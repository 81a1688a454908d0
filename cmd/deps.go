package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/soneyama/gud/internal/config"
	gudcontext "github.com/soneyama/gud/internal/context"
	gudexec "github.com/soneyama/gud/internal/exec"
	"github.com/soneyama/gud/internal/git"
	"github.com/soneyama/gud/internal/workflow"
)

// App holds the dependency resolution function and builds the CLI command tree.
type App struct {
	resolveDeps func(verbose bool) (*deps, error)
	verbose     bool
}

// NewApp creates an App with the default dependency resolver.
func NewApp() *App {
	return &App{resolveDeps: defaultResolveDeps}
}

type deps struct {
	exec   gudexec.Executor
	git    git.Client
	ctx    *gudcontext.Context
	cfg    *config.Config
	logger *slog.Logger
}

func defaultResolveDeps(verbose bool) (*deps, error) {
	d, err := resolveDepsWithExec(gudexec.NewDefaultExecutor())
	if err != nil {
		return nil, err
	}
	if verbose || d.cfg.Debug {
		// Rebuild the executor with echo enabled so every git
		// invocation and its output land on stderr.
		d.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		d.exec = gudexec.NewDefaultExecutor(gudexec.WithLogger(d.logger))
		d.git = git.NewClient(d.exec)
	}
	return d, nil
}

func resolveDepsWithExec(e gudexec.Executor) (*deps, error) {
	if err := e.LookPath("git"); err != nil {
		return nil, fmt.Errorf("required command 'git' not found")
	}
	g := git.NewClient(e)
	ctx, err := gudcontext.NewResolver(g).Resolve()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(filepath.Join(ctx.RepoRoot, ".gud.yaml"))
	if err != nil {
		return nil, err
	}
	return &deps{exec: e, git: g, ctx: ctx, cfg: cfg}, nil
}

// withService resolves dependencies and calls fn with the constructed Service.
func (a *App) withService(fn func(svc *workflow.Service) error) error {
	d, err := a.resolveDeps(a.verbose)
	if err != nil {
		return err
	}
	return fn(d.service())
}

func (d *deps) service() *workflow.Service {
	opts := []workflow.Option{workflow.WithRemote(d.cfg.Remote)}
	if d.logger != nil {
		opts = append(opts, workflow.WithLogger(d.logger))
	}
	return workflow.NewService(d.git, opts...)
}
