package runtime

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danreyes/reckon/internal/history"
	"github.com/danreyes/reckon/internal/output"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()
	opts := DefaultOptions()
	opts.InMemory = true
	opts.SnapshotPath = filepath.Join(t.TempDir(), "history.json")

	ctx, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctx.Close() })
	return ctx
}

func TestNewContextWiresRepos(t *testing.T) {
	ctx := newTestContext(t)
	assert.NotNil(t, ctx.DB)
	assert.NotNil(t, ctx.TransactionRepo)
	assert.NotNil(t, ctx.ProjectRepo)
	assert.Equal(t, history.DefaultMaxStackSize, ctx.MaxHistorySize)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("RECKON_DATABASE", ":memory:")
	t.Setenv("RECKON_HISTORY_SIZE", "7")

	ctx, err := New(DefaultOptions())
	require.NoError(t, err)
	defer ctx.Close()

	assert.Empty(t, ctx.DB.Path())
	assert.Equal(t, 7, ctx.MaxHistorySize)
}

func TestEnvHistorySizeIgnoresGarbage(t *testing.T) {
	t.Setenv("RECKON_DATABASE", ":memory:")
	t.Setenv("RECKON_HISTORY_SIZE", "not-a-number")

	ctx, err := New(DefaultOptions())
	require.NoError(t, err)
	defer ctx.Close()

	assert.Equal(t, history.DefaultMaxStackSize, ctx.MaxHistorySize)
}

func TestNewManagerUsesContextLimits(t *testing.T) {
	ctx := newTestContext(t)
	ctx.MaxHistorySize = 2

	mgr := ctx.NewManager(nil)
	require.NotNil(t, mgr)

	for i := 0; i < 3; i++ {
		mgr.Execute(&history.Func{Desc: "noop"})
	}
	assert.Equal(t, 2, mgr.UndoDepth())

	// Snapshot writer is wired to the context's path.
	_, found, err := history.ReadSnapshot(ctx.SnapshotPath)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestIsJSON(t *testing.T) {
	ctx := newTestContext(t)
	assert.False(t, ctx.IsJSON())
	ctx.Formatter.Format = output.FormatJSON
	assert.True(t, ctx.IsJSON())
}
