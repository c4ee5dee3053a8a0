// Package qerrors defines error types that carry both a technical message and
// a message suitable for showing to the player.
package qerrors

import "fmt"

// playerError is an error caused by the player asking for something that
// cannot be done right now: an unknown verb, a missing item, a locked exit.
// It carries a human-readable in-game message alongside the usual Error()
// text.
type playerError struct {
	msg   string
	game  string
	cause error
}

func (e *playerError) Error() string {
	return e.msg
}

// GameMessage returns the text that should be shown in-game for the error.
func (e *playerError) GameMessage() string {
	return e.game
}

func (e *playerError) Unwrap() error {
	return e.cause
}

// Player returns an error with separate in-game and technical messages. If
// technical is empty one is derived from the game message.
func Player(game, technical string) error {
	if technical == "" {
		technical = fmt.Sprintf("got PlayerError(%q)", game)
	}
	return &playerError{msg: technical, game: game}
}

// Playerf returns a player-facing error whose game message is built from the
// given format string and arguments.
func Playerf(gameFormat string, a ...interface{}) error {
	return Player(fmt.Sprintf(gameFormat, a...), "")
}

// WrapPlayerf is like Playerf but wraps a causing error so that callers can
// still distinguish it with errors.Is/As.
func WrapPlayerf(cause error, gameFormat string, a ...interface{}) error {
	game := fmt.Sprintf(gameFormat, a...)
	return &playerError{
		msg:   fmt.Sprintf("got PlayerError(%q)", game),
		game:  game,
		cause: cause,
	}
}

// GameMessage returns the in-game text for err. For errors created by this
// package that is the player-facing message; any other error reports its
// Error() text.
func GameMessage(err error) string {
	if pe, ok := err.(*playerError); ok {
		return pe.GameMessage()
	}
	return err.Error()
}

// IsPlayer reports whether err is a player-facing error from this package.
func IsPlayer(err error) bool {
	_, ok := err.(*playerError)
	return ok
}
