package profilecard

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfrastructureError(t *testing.T) {
	t.Parallel()

	cause := errors.New("no display")
	err := fmt.Errorf("start: %w", NewInfrastructureError("init_sdl", cause))

	assert.True(t, IsInfrastructureError(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "start: profilecard: init_sdl: no display", err.Error())
	assert.Equal(t, "profilecard: load_font", NewInfrastructureError("load_font", nil).Error())
	assert.False(t, IsInfrastructureError(cause))
}

func TestIsQuit(t *testing.T) {
	t.Parallel()

	assert.True(t, IsQuit(ErrQuit))
	assert.True(t, IsQuit(fmt.Errorf("loop: %w", ErrQuit)))
	assert.False(t, IsQuit(errors.New("quit requested")))
}
