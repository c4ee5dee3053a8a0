package behavior

import "github.com/kmetzlaff/goblinear/internal/game"

// entry shows a message when the hero walks in. With once set, which is the
// default, only the first visit gets it.
type entry struct {
	game.Base

	text  string
	once  bool
	shown bool
}

func newEntry(_ *game.Room, p Params, _ map[string]*game.Room) (game.Behavior, error) {
	return &entry{
		text: p.Str("text", "You have arrived."),
		once: p.Bool("once", true),
	}, nil
}

func (b *entry) Kind() string { return "entry" }

func (b *entry) OnEnter(actor *game.Hero) game.Response {
	if b.once && b.shown {
		return game.NoResponse()
	}
	b.shown = true
	return game.Respond("%s", b.text)
}
