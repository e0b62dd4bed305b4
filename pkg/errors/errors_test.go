package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	err := New(CodeInvalidInput, "username cannot be empty")
	assert.Equal(t, "username cannot be empty", err.Error())

	cause := stderrors.New("connection refused")
	wrapped := Wrap(CodeInternal, "user lookup failed", cause)
	assert.Equal(t, "user lookup failed: connection refused", wrapped.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(CodeInternal, "store failed", cause)
	assert.ErrorIs(t, err, cause)
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeAlreadyExists, CodeOf(AlreadyExists("taken")))
	assert.Equal(t, CodeSenderUnknown, CodeOf(SenderUnknown("who")))
	assert.Equal(t, CodeRecipientUnknown, CodeOf(RecipientUnknown("who")))
	assert.Equal(t, CodeInvalidInput, CodeOf(InvalidInput("empty")))
	assert.Equal(t, CodeUnknown, CodeOf(stderrors.New("plain")))
}

func TestCodeOf_WrappedChain(t *testing.T) {
	inner := AlreadyExists("taken")
	outer := fmt.Errorf("register: %w", inner)
	assert.Equal(t, CodeAlreadyExists, CodeOf(outer))
}
