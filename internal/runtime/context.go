// Package runtime provides application runtime context for track.
package runtime

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/manav03panchal/track/internal/config"
	"github.com/manav03panchal/track/internal/ledger"
	"github.com/manav03panchal/track/internal/logging"
	"github.com/manav03panchal/track/internal/model"
	"github.com/manav03panchal/track/internal/naming"
	"github.com/manav03panchal/track/internal/output"
	"github.com/manav03panchal/track/internal/storage"
)

// Locker is implemented by blob stores that need an explicit process lock.
type Locker interface {
	Lock() error
	Unlock() error
}

// Context holds the application runtime context.
type Context struct {
	Config    *config.Config
	Formatter *output.Formatter
	Store     *storage.Store
	Ledger    *ledger.Service

	// RequestCtx carries the request id attached to every log line.
	RequestCtx context.Context

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	ConfigPath string
	Config     *config.Config // used as-is when set, skipping Load
	Format     output.Format
	ColorMode  output.ColorMode
	Debug      bool
	InMemory   bool // badger only
	Stdout     io.Writer
	LogOutput  io.Writer
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
	}
}

// New creates a new runtime context.
func New(opts Options) (*Context, error) {
	cfg := opts.Config
	if cfg == nil {
		var err error
		if cfg, err = config.Load(opts.ConfigPath); err != nil {
			return nil, err
		}
	}

	initLogging(cfg, opts)

	blob, err := openBlob(cfg, opts.InMemory)
	if err != nil {
		return nil, err
	}
	store := storage.NewStore(blob, storage.StoreOptions{BackupDir: cfg.BackupDir()})

	names := naming.NewChecker(cfg.Naming.SimilarityCutoff, cfg.Naming.SuggestTags)
	service := ledger.NewService(names, store.IDs(), cfg.Report.IntervalMinutes)

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode
	if opts.Stdout != nil {
		formatter.Writer = opts.Stdout
	}
	if formatter.Format == "" {
		formatter.Format = output.FormatCLI
	}
	if formatter.ColorMode == "" {
		formatter.ColorMode = output.ColorAuto
	}

	reqCtx := logging.NewRequestContext()
	logging.DebugContext(reqCtx, "runtime ready",
		logging.KeyBackend, cfg.Storage.Backend,
		logging.KeyPath, storagePath(cfg),
	)

	return &Context{
		Config:     cfg,
		Formatter:  formatter,
		Store:      store,
		Ledger:     service,
		RequestCtx: reqCtx,
		Debug:      opts.Debug,
	}, nil
}

func initLogging(cfg *config.Config, opts Options) {
	logCfg := logging.DefaultConfig()
	if opts.Debug {
		logCfg = logging.DebugConfig()
	} else if level, err := logging.ParseLevel(cfg.Log.Level); err == nil {
		logCfg.Level = level
		logCfg.JSON = cfg.Log.JSON
	}
	if opts.LogOutput != nil {
		logCfg.Output = opts.LogOutput
	}
	logging.Init(logCfg)
}

func openBlob(cfg *config.Config, inMemory bool) (storage.BlobStore, error) {
	if cfg.Storage.Backend == config.BackendBadger {
		return storage.OpenBadger(storage.Options{Path: cfg.Storage.BadgerDir, InMemory: inMemory})
	}
	return storage.NewFileStore(cfg.Storage.DataFile), nil
}

func storagePath(cfg *config.Config) string {
	if cfg.Storage.Backend == config.BackendBadger {
		return cfg.Storage.BadgerDir
	}
	return cfg.Storage.DataFile
}

// Close releases the store.
func (c *Context) Close() error {
	if c.Store != nil {
		return c.Store.Close()
	}
	return nil
}

// View loads the ledger under the lock and passes it to fn. A repaired
// ledger is still persisted by the load itself.
func (c *Context) View(op string, fn func(*model.Ledger) error) error {
	defer logging.LogOperation(c.RequestCtx, op, time.Now())
	return c.withLock(func() error {
		l, err := c.Store.Load()
		if err != nil {
			return err
		}
		return fn(l)
	})
}

// Update loads the ledger under the lock, applies fn, and saves the result
// when fn succeeds.
func (c *Context) Update(op string, fn func(*model.Ledger) error) error {
	defer logging.LogOperation(c.RequestCtx, op, time.Now())
	return c.withLock(func() error {
		l, err := c.Store.Load()
		if err != nil {
			return err
		}
		if err := fn(l); err != nil {
			return err
		}
		return c.Store.Save(l)
	})
}

func (c *Context) withLock(fn func() error) error {
	locker, ok := c.Store.Blob().(Locker)
	if !ok {
		return fn()
	}
	if err := locker.Lock(); err != nil {
		return err
	}
	defer func() {
		if err := locker.Unlock(); err != nil {
			logging.Warn("failed to release ledger lock", logging.KeyError, err)
		}
	}()
	return fn()
}

// Restore replaces the stored ledger with l without reading the current
// one, so it also works when the stored ledger is corrupt. The replaced blob
// is backed up first.
func (c *Context) Restore(l *model.Ledger) (string, error) {
	defer logging.LogOperation(c.RequestCtx, "restore", time.Now())

	var backupPath string
	err := c.withLock(func() error {
		current, err := c.Store.Blob().Read()
		if err != nil {
			return err
		}
		if len(current) > 0 {
			if backupPath, err = storage.Backup(c.Config.BackupPath(), current, time.Now()); err != nil {
				return err
			}
		}
		return c.Store.Save(l)
	})
	return backupPath, err
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// Stdout returns the writer command output goes to.
func (c *Context) Stdout() io.Writer {
	if c.Formatter != nil && c.Formatter.Writer != nil {
		return c.Formatter.Writer
	}
	return os.Stdout
}
