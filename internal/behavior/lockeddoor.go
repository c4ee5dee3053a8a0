package behavior

import (
	"fmt"
	"strings"

	"github.com/kmetzlaff/goblinear/internal/game"
)

// lockedDoor guards the exit to a target room. The target stays locked until
// the hero uses the matching key on the door, after which the behavior keeps
// answering looks at the door with its open state.
type lockedDoor struct {
	game.Base

	room   *game.Room
	target *game.Room

	doorName string
	keyName  string

	lockedText string
	consumeKey bool

	// bashable doors can be forced open without the key
	bashable bool
}

func newLockedDoor(room *game.Room, p Params, roomsByLabel map[string]*game.Room) (game.Behavior, error) {
	// room labels are upper-cased by the loader
	targetLabel := strings.ToUpper(strings.TrimSpace(p.Str("target", "")))
	target, ok := roomsByLabel[targetLabel]
	if !ok {
		return nil, fmt.Errorf("locked_door in room %q: unknown target room %q", room.Label, targetLabel)
	}

	b := &lockedDoor{
		room:       room,
		target:     target,
		doorName:   p.Str("door", "door"),
		keyName:    p.Str("key", "key"),
		lockedText: p.Str("locked_text", "The door is locked. It won't budge."),
		consumeKey: p.Bool("consume_key", true),
		bashable:   p.Bool("bashable", false),
	}
	target.Locked = true

	door := game.NewObject(b.doorName, "A heavy door. There is a keyhole below the handle.")
	if err := room.AddObject(door); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *lockedDoor) Kind() string { return "locked_door" }

func (b *lockedDoor) isDoor(target string) bool {
	return strings.EqualFold(target, b.doorName)
}

func (b *lockedDoor) HandleInteraction(verb, target string, actor *game.Hero, item *game.Item) game.Response {
	switch verb {
	case "go":
		// only speaks up while the far side is still locked
		if b.room.Exits[strings.ToLower(target)] == b.target && b.target.Locked {
			return game.Respond("%s", b.lockedText)
		}
		return game.NoResponse()

	case "look", "examine", "inspect":
		if !b.isDoor(target) {
			return game.NoResponse()
		}
		if b.target.Locked {
			return game.Respond("A heavy %s bars the way. There is a keyhole below the handle.", b.doorName)
		}
		return game.Respond("The %s stands open.", b.doorName)

	case "use":
		if !b.isDoor(target) || item == nil {
			return game.NoResponse()
		}
		return b.tryKey(item, actor)

	case "open", "unlock":
		if !b.isDoor(target) {
			return game.NoResponse()
		}
		if !b.target.Locked {
			return game.Respond("The %s is already open.", b.doorName)
		}
		if it, ok := actor.Inventory.Get(b.keyName); ok {
			return b.tryKey(it, actor)
		}
		return game.Respond("It's locked. You need some kind of %s.", b.keyName)

	case "bash", "kick", "force":
		if !b.isDoor(target) {
			return game.NoResponse()
		}
		if !b.target.Locked {
			return game.Respond("The %s is already open.", b.doorName)
		}
		if !b.bashable {
			return game.Respond("You throw your shoulder at the %s. It doesn't budge.", b.doorName)
		}
		b.target.Unlock()
		return game.Respond("The %s splinters and crashes open!", b.doorName)
	}
	return game.NoResponse()
}

// HandleItemUse covers a bare "use key" with no target named.
func (b *lockedDoor) HandleItemUse(verb string, item *game.Item, actor *game.Hero) game.Response {
	if verb != "use" || item == nil || !b.target.Locked {
		return game.NoResponse()
	}
	if !strings.EqualFold(item.Name, b.keyName) {
		return game.NoResponse()
	}
	return b.tryKey(item, actor)
}

func (b *lockedDoor) tryKey(item *game.Item, actor *game.Hero) game.Response {
	if !b.target.Locked {
		return game.Respond("The %s is already open.", b.doorName)
	}
	if !strings.EqualFold(item.Name, b.keyName) {
		return game.Respond("The %s doesn't fit the lock.", item.Name)
	}

	b.target.Unlock()
	if b.consumeKey {
		// the key may still be lying in the room rather than carried
		if _, err := actor.Inventory.Remove(item.Name, 1); err != nil {
			if _, err := b.room.Inventory.Remove(item.Name, 1); err != nil {
				return game.Fail(err)
			}
		}
		return game.Respond("The %s turns in the lock and the %s swings open. The %s crumbles to dust.",
			item.Name, b.doorName, item.Name)
	}
	return game.Respond("The %s turns in the lock and the %s swings open.", item.Name, b.doorName)
}
