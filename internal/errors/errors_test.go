package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserErrorMessage(t *testing.T) {
	err := NewUserError("amount could not be parsed", "Use a format like 1500.00")
	assert.Equal(t, "amount could not be parsed", err.Error())
	assert.True(t, IsUserError(err))
	assert.False(t, IsSystemError(err))

	withField := NewUserErrorWithField("kind", "spend", "kind must be 'income' or 'expense'", "")
	assert.Equal(t, "kind must be 'income' or 'expense': 'spend'", withField.Error())
}

func TestSystemErrorWrapsCause(t *testing.T) {
	cause := New("disk full")
	err := NewSystemErrorWithOp("snapshot write", "could not persist history", cause)

	assert.Equal(t, "could not persist history during snapshot write", err.Error())
	assert.True(t, IsSystemError(err))
	assert.True(t, Is(err, cause))
}

func TestSuggestion(t *testing.T) {
	user := NewUserError("bad input", "Try again with a number")
	assert.Equal(t, "Try again with a number", Suggestion(user))

	wrapped := fmt.Errorf("dispatch: %w", user)
	assert.Equal(t, "Try again with a number", Suggestion(wrapped))

	assert.Empty(t, Suggestion(New("plain")))
	assert.Empty(t, Suggestion(NewSystemError("boom", nil)))
}
