package qerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Playerf(t *testing.T) {
	assert := assert.New(t)

	err := Playerf("You can't reach the %s.", "ledge")

	assert.True(IsPlayer(err))
	assert.Equal("You can't reach the ledge.", GameMessage(err))
	assert.Equal(`got PlayerError("You can't reach the ledge.")`, err.Error())
}

func Test_Player_separatesMessages(t *testing.T) {
	assert := assert.New(t)

	err := Player("The chest won't open.", "chest c1: lock state desynced")

	assert.Equal("The chest won't open.", GameMessage(err))
	assert.Equal("chest c1: lock state desynced", err.Error())
}

func Test_WrapPlayerf(t *testing.T) {
	assert := assert.New(t)

	cause := errors.New("no such item")
	err := WrapPlayerf(cause, "You don't have a %s.", "torch")

	assert.True(IsPlayer(err))
	assert.Equal("You don't have a torch.", GameMessage(err))
	assert.True(errors.Is(err, cause))
}

func Test_GameMessage_nonPlayerError(t *testing.T) {
	assert := assert.New(t)

	plain := errors.New("dial tcp: connection refused")

	assert.Equal("dial tcp: connection refused", GameMessage(plain))
	assert.False(IsPlayer(plain))
}

func Test_IsPlayer_outerWrapHidesType(t *testing.T) {
	assert := assert.New(t)

	// the session only calls GameMessage on errors handlers return directly,
	// so an fmt-wrapped player error intentionally reads as technical
	inner := Playerf("Nope.")
	outer := fmt.Errorf("during dispatch: %w", inner)

	assert.False(IsPlayer(outer))
}
