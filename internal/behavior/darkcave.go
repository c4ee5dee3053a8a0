package behavior

import (
	"strings"

	"github.com/kmetzlaff/goblinear/internal/game"
)

// darkCave hides a room's real description until there is light. The room
// counts as lit while the hero has held up a light source in it, or while
// one is lying on its floor. Carrying the torch away darkens it again.
type darkCave struct {
	game.Base

	room      *game.Room
	lightItem string
	darkText  string

	// lightBearer is the hero who raised a carried light in here. Their
	// light only counts while they still hold it; a copy on the floor
	// supersedes it.
	lightBearer *game.Hero
}

func newDarkCave(room *game.Room, p Params, _ map[string]*game.Room) (game.Behavior, error) {
	return &darkCave{
		room:      room,
		lightItem: p.Str("light", "torch"),
		darkText:  p.Str("dark_text", "It is pitch dark. You can't see a thing."),
	}, nil
}

func (b *darkCave) Kind() string { return "dark_cave" }

func (b *darkCave) lit() bool {
	if b.room.Inventory.Has(b.lightItem) {
		b.lightBearer = nil
		return true
	}
	if b.lightBearer != nil && b.lightBearer.Inventory.Has(b.lightItem) {
		return true
	}
	b.lightBearer = nil
	return false
}

func (b *darkCave) Describe(base string) string {
	if b.lit() {
		return base
	}
	return b.darkText
}

func (b *darkCave) OnEnter(actor *game.Hero) game.Response {
	if b.lit() || actor.Inventory.Has(b.lightItem) {
		return game.NoResponse()
	}
	return game.Respond("Darkness swallows you. If only you had a %s.", b.lightItem)
}

func (b *darkCave) HandleItemUse(verb string, item *game.Item, actor *game.Hero) game.Response {
	if verb != "use" || item == nil || !strings.EqualFold(item.Name, b.lightItem) {
		return game.NoResponse()
	}
	if b.lit() {
		return game.Respond("The cave is already lit.")
	}
	b.lightBearer = actor
	return game.Respond("You hold the %s aloft. Flickering light pushes the darkness back.", b.lightItem)
}

func (b *darkCave) HandleInteraction(verb, target string, actor *game.Hero, item *game.Item) game.Response {
	switch verb {
	case "look", "examine", "inspect":
		if b.lit() {
			return game.NoResponse()
		}
		return game.Respond("It's far too dark to make anything out.")

	case "use":
		if item == nil {
			return game.NoResponse()
		}
		return b.HandleItemUse(verb, item, actor)
	}
	return game.NoResponse()
}
