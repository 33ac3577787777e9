package validate

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danreyes/reckon/internal/errors"
	"github.com/danreyes/reckon/internal/model"
)

func validTransaction() *model.Transaction {
	return model.NewTransaction("casa", time.Now(), 2500, model.KindExpense, "paint")
}

func TestStructTransaction(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, Struct(validTransaction()))
	})

	t.Run("missing_project", func(t *testing.T) {
		tx := validTransaction()
		tx.ProjectSID = ""
		err := Struct(tx)
		require.Error(t, err)
		assert.True(t, errors.IsUserError(err))
	})

	t.Run("bad_kind", func(t *testing.T) {
		tx := validTransaction()
		tx.Kind = "transfer"
		err := Struct(tx)
		require.Error(t, err)
		assert.Contains(t, errors.Suggestion(err), "income")
	})

	t.Run("bad_project_sid", func(t *testing.T) {
		tx := validTransaction()
		tx.ProjectSID = "has spaces"
		assert.Error(t, Struct(tx))
	})

	t.Run("note_too_long", func(t *testing.T) {
		tx := validTransaction()
		tx.Note = strings.Repeat("x", 5000)
		assert.Error(t, Struct(tx))
	})
}

func TestStructProject(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, Struct(model.NewProject("casa", "Casa Nueva")))
	})

	t.Run("missing_name", func(t *testing.T) {
		assert.Error(t, Struct(model.NewProject("casa", "")))
	})
}

func TestSID(t *testing.T) {
	valid := []string{"casa", "proj-1", "a.b_c", "X9"}
	for _, sid := range valid {
		assert.NoError(t, SID(sid), "sid %q", sid)
	}

	invalid := []string{"", "-leading", "has spaces", strings.Repeat("a", 33)}
	for _, sid := range invalid {
		assert.Error(t, SID(sid), "sid %q", sid)
	}
}
