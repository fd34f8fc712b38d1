package errorx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStorage_WrapsOnce(t *testing.T) {
	cause := errors.New("connection reset")

	err := Storage("topic.create", cause)
	assert.True(t, IsStorage(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "storage topic.create: connection reset", err.Error())

	again := Storage("outer", fmt.Errorf("ctx: %w", err))
	var se *StorageError
	assert.True(t, errors.As(again, &se))
	assert.Equal(t, "topic.create", se.Op)

	assert.Nil(t, Storage("noop", nil))
}

func TestNotFound(t *testing.T) {
	err := NotFound("category")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "category not found", err.Error())
	assert.False(t, IsValidation(err))
}

func TestValidationError(t *testing.T) {
	err := fmt.Errorf("record view: %w", NewValidation("ip", "invalid address"))
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "ip: invalid address")
	assert.Equal(t, "plain", (&ValidationError{Msg: "plain"}).Error())
}
