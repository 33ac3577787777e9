package history

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danreyes/reckon/internal/model"
	"github.com/danreyes/reckon/internal/storage"
)

func setupStore(t *testing.T) *storage.TransactionRepo {
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return storage.NewTransactionRepo(db)
}

func sampleTransaction() *model.Transaction {
	return model.NewTransaction("casa", time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		150000, model.KindExpense, "roof repair")
}

// failStore rejects every mutation, for exercising the boolean boundary.
type failStore struct{}

func (failStore) Create(*model.Transaction) error { return fmt.Errorf("store offline") }
func (failStore) Put(*model.Transaction) error    { return fmt.Errorf("store offline") }
func (failStore) Delete(string) error             { return fmt.Errorf("store offline") }

func TestCreateTransactionCommand(t *testing.T) {
	repo := setupStore(t)

	cmd := NewCreateTransaction(repo, sampleTransaction(), nil)
	assert.False(t, cmd.IsBatch())
	assert.Contains(t, cmd.Description(), "Create transaction")
	assert.Contains(t, cmd.Description(), "roof repair")

	require.True(t, cmd.Execute())
	key := cmd.Key()
	require.NotEmpty(t, key)

	stored, err := repo.Get(key)
	require.NoError(t, err)
	assert.Equal(t, int64(150000), stored.Amount)

	require.True(t, cmd.Undo())
	_, err = repo.Get(key)
	assert.True(t, storage.IsErrKeyNotFound(err))
}

func TestCreateTransactionRedoKeepsKey(t *testing.T) {
	repo := setupStore(t)

	cmd := NewCreateTransaction(repo, sampleTransaction(), nil)
	require.True(t, cmd.Execute())
	key := cmd.Key()

	require.True(t, cmd.Undo())
	require.True(t, cmd.Execute())

	// Redo restores the record under the original key.
	assert.Equal(t, key, cmd.Key())
	stored, err := repo.Get(key)
	require.NoError(t, err)
	assert.Equal(t, "casa", stored.ProjectSID)
}

func TestDeleteTransactionCommand(t *testing.T) {
	repo := setupStore(t)

	tx := sampleTransaction()
	require.NoError(t, repo.Create(tx))

	cmd := NewDeleteTransaction(repo, tx, nil)
	assert.Contains(t, cmd.Description(), "Delete transaction")

	require.True(t, cmd.Execute())
	_, err := repo.Get(tx.Key)
	assert.True(t, storage.IsErrKeyNotFound(err))

	require.True(t, cmd.Undo())
	restored, err := repo.Get(tx.Key)
	require.NoError(t, err)
	assert.Equal(t, tx.Amount, restored.Amount)
	assert.Equal(t, tx.Note, restored.Note)
}

func TestUpdateTransactionCommand(t *testing.T) {
	repo := setupStore(t)

	before := sampleTransaction()
	require.NoError(t, repo.Create(before))

	after := *before
	after.Amount = 200000
	after.Note = "roof repair plus gutters"

	cmd := NewUpdateTransaction(repo, before, &after, nil)
	assert.Contains(t, cmd.Description(), "Update transaction")

	require.True(t, cmd.Execute())
	stored, err := repo.Get(before.Key)
	require.NoError(t, err)
	assert.Equal(t, int64(200000), stored.Amount)

	require.True(t, cmd.Undo())
	stored, err = repo.Get(before.Key)
	require.NoError(t, err)
	assert.Equal(t, int64(150000), stored.Amount)
	assert.Equal(t, "roof repair", stored.Note)
}

func TestCommandsConvertStoreErrors(t *testing.T) {
	// Errors never escape the command boundary; they surface as false.
	tx := sampleTransaction()
	tx.Key = model.GenerateTransactionKey(tx.ProjectSID, "fixed")

	create := NewCreateTransaction(failStore{}, tx, nil)
	assert.False(t, create.Execute())
	assert.False(t, create.Undo())

	del := NewDeleteTransaction(failStore{}, tx, nil)
	assert.False(t, del.Execute())
	assert.False(t, del.Undo())

	upd := NewUpdateTransaction(failStore{}, tx, tx, nil)
	assert.False(t, upd.Execute())
	assert.False(t, upd.Undo())
}

func TestManagerWithRealStore(t *testing.T) {
	repo := setupStore(t)
	mgr := NewManager(Options{})

	tx := sampleTransaction()
	create := NewCreateTransaction(repo, tx, nil)
	require.True(t, mgr.Execute(create))

	list, err := repo.ListByProject("casa")
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.True(t, mgr.Undo())
	list, err = repo.ListByProject("casa")
	require.NoError(t, err)
	assert.Empty(t, list)

	require.True(t, mgr.Redo())
	list, err = repo.ListByProject("casa")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestBatchDeleteAgainstStore(t *testing.T) {
	repo := setupStore(t)
	mgr := NewManager(Options{})

	var cmds []Command
	for i := 0; i < 3; i++ {
		tx := sampleTransaction()
		tx.Note = fmt.Sprintf("entry %d", i)
		require.NoError(t, repo.Create(tx))
		cmds = append(cmds, NewDeleteTransaction(repo, tx, nil))
	}

	batch := NewBatch(cmds, "", nil)
	require.True(t, mgr.Execute(batch))

	list, err := repo.ListByProject("casa")
	require.NoError(t, err)
	assert.Empty(t, list)

	require.True(t, mgr.Undo())
	list, err = repo.ListByProject("casa")
	require.NoError(t, err)
	assert.Len(t, list, 3)
}
