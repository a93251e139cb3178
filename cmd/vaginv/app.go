// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"
	"time"

	"vaginv-cli/internal/aggregate"
	"vaginv-cli/internal/cache"
	"vaginv-cli/internal/config"
	"vaginv-cli/internal/inventory"
	"vaginv-cli/internal/source"
	"vaginv-cli/internal/vagrant"

	"github.com/charmbracelet/log"
)

type (
	// App wires CLI services and shared dependencies. It is the composition
	// root for the CLI layer: all Cobra command handlers delegate business
	// logic through its service interfaces.
	App struct {
		Config    ConfigProvider
		Inventory InventoryService
		stdout    io.Writer
		stderr    io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp. Tests can
	// supply mock implementations to isolate specific service behavior.
	Dependencies struct {
		Config    ConfigProvider
		Inventory InventoryService
		Runner    vagrant.Runner
		Stdout    io.Writer
		Stderr    io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// ListRequest captures the inputs of `vaginv list` as an immutable value.
	ListRequest struct {
		// SourcePath is the inventory source file.
		SourcePath string
		// Format selects json (the script protocol) or yaml output.
		Format inventory.Format
		// NoCache bypasses result replay for this run.
		NoCache bool
		// ConfigPath is the explicit --config flag value.
		ConfigPath string
		// Verbose enables debug logging.
		Verbose bool
	}

	// HostRequest captures the inputs of `vaginv host`.
	HostRequest struct {
		// SourcePath is the inventory source file.
		SourcePath string
		// HostName is the inventory identity to report on.
		HostName string
		// ConfigPath is the explicit --config flag value.
		ConfigPath string
		// Verbose enables debug logging.
		Verbose bool
	}

	// InventoryService produces rendered inventory documents. Implementations
	// must not write directly to stdout/stderr; rendered bytes are returned
	// for the CLI layer to print.
	InventoryService interface {
		List(ctx context.Context, req ListRequest) ([]byte, error)
		Host(ctx context.Context, req HostRequest) ([]byte, error)
	}

	// appInventoryService is the production InventoryService: it loads the
	// config and the source, consults the cache, runs aggregation on a miss,
	// and materializes the result through the in-process sink.
	appInventoryService struct {
		config ConfigProvider

		// runner overrides the vagrant CLI invocation; nil means the real one.
		runner vagrant.Runner
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Inventory == nil {
		deps.Inventory = &appInventoryService{config: deps.Config, runner: deps.Runner}
	}

	return &App{
		Config:    deps.Config,
		Inventory: deps.Inventory,
		stdout:    deps.Stdout,
		stderr:    deps.Stderr,
	}, nil
}

// newLogger builds the CLI logger. Debug messages only show up in verbose
// mode; everything goes to stderr so stdout stays machine-readable.
func newLogger(verbose bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func (s *appInventoryService) vagrantRunner(cfg *config.Config) vagrant.Runner {
	if s.runner != nil {
		return s.runner
	}
	return &vagrant.ExecRunner{
		Command: cfg.VagrantCommand.String(),
		Timeout: time.Duration(cfg.TimeoutSecs) * time.Second,
	}
}

// materialize runs the whole pipeline for one source file and returns the
// populated sink, replaying a cached result when one is available.
func (s *appInventoryService) materialize(ctx context.Context, sourcePath, configPath string, noCache, verbose bool) (*inventory.Memory, error) {
	cfg, err := s.config.Load(ctx, config.LoadOptions{ConfigFilePath: configPath})
	if err != nil {
		return nil, err
	}

	opts, err := source.Load(sourcePath)
	if err != nil {
		return nil, err
	}

	logger := newLogger(verbose || cfg.UI.Verbose)

	cacheDir, err := config.ResolveCacheDir(cfg)
	if err != nil {
		return nil, err
	}
	mgr := cache.NewManager(cache.NewFileStore(cacheDir), opts.Cache && !noCache)

	key := cache.Key(sourcePath)
	res, hit, err := mgr.Fetch(key)
	if err != nil {
		return nil, err
	}
	if hit {
		logger.Debug("replaying cached result", "key", key)
	} else {
		agg := aggregate.New(s.vagrantRunner(cfg), logger, opts.GetHostOnlyIPs)
		res, err = agg.Run(ctx, opts.Paths)
		if err != nil {
			return nil, err
		}
		if err := mgr.Persist(key, sourcePath, res); err != nil {
			return nil, err
		}
	}

	sink := inventory.NewMemory()
	inventory.Emit(res, sink)
	return sink, nil
}

// List implements InventoryService.
func (s *appInventoryService) List(ctx context.Context, req ListRequest) ([]byte, error) {
	sink, err := s.materialize(ctx, req.SourcePath, req.ConfigPath, req.NoCache, req.Verbose)
	if err != nil {
		return nil, err
	}
	return sink.RenderList(req.Format)
}

// Host implements InventoryService.
func (s *appInventoryService) Host(ctx context.Context, req HostRequest) ([]byte, error) {
	sink, err := s.materialize(ctx, req.SourcePath, req.ConfigPath, false, req.Verbose)
	if err != nil {
		return nil, err
	}
	return sink.RenderHost(req.HostName, inventory.FormatJSON)
}
