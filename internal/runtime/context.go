// Package runtime provides the application runtime context for Reckon.
package runtime

import (
	"os"
	"strconv"

	"github.com/danreyes/reckon/internal/history"
	"github.com/danreyes/reckon/internal/logging"
	"github.com/danreyes/reckon/internal/output"
	"github.com/danreyes/reckon/internal/storage"
)

// Context holds the application runtime context.
type Context struct {
	DB        *storage.DB
	Formatter *output.Formatter

	// Repositories
	TransactionRepo *storage.TransactionRepo
	ProjectRepo     *storage.ProjectRepo

	// History configuration
	MaxHistorySize int
	SnapshotPath   string

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	DBPath         string
	InMemory       bool
	Format         output.Format
	ColorMode      output.ColorMode
	MaxHistorySize int
	SnapshotPath   string
	Debug          bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		DBPath:         storage.DefaultPath(),
		InMemory:       false,
		Format:         output.FormatCLI,
		ColorMode:      output.ColorAuto,
		MaxHistorySize: history.DefaultMaxStackSize,
		SnapshotPath:   history.DefaultSnapshotPath(),
	}
}

// New creates a new runtime context.
func New(opts Options) (*Context, error) {
	// Environment overrides
	if envPath := os.Getenv("RECKON_DATABASE"); envPath != "" {
		if envPath == ":memory:" {
			opts.InMemory = true
		} else {
			opts.DBPath = envPath
		}
	}
	if envSize := os.Getenv("RECKON_HISTORY_SIZE"); envSize != "" {
		if n, err := strconv.Atoi(envSize); err == nil && n > 0 {
			opts.MaxHistorySize = n
		}
	}

	db, err := storage.Open(storage.Options{
		Path:     opts.DBPath,
		InMemory: opts.InMemory,
	})
	if err != nil {
		return nil, err
	}

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	return &Context{
		DB:              db,
		Formatter:       formatter,
		TransactionRepo: storage.NewTransactionRepo(db),
		ProjectRepo:     storage.NewProjectRepo(db),
		MaxHistorySize:  opts.MaxHistorySize,
		SnapshotPath:    opts.SnapshotPath,
		Debug:           opts.Debug,
	}, nil
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// NewManager builds an undo/redo manager wired to this context. The confirm
// callback is supplied by the front end owning the session; nil disables
// batch confirmation.
func (c *Context) NewManager(confirm history.ConfirmFunc) *history.Manager {
	return history.NewManager(history.Options{
		MaxStackSize: c.MaxHistorySize,
		Logger:       logging.Logger(),
		Confirm:      confirm,
		Snapshots:    history.NewFileSnapshotWriter(c.SnapshotPath, logging.Logger()),
	})
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
