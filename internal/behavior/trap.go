package behavior

import (
	"strings"

	"github.com/kmetzlaff/goblinear/internal/game"
)

// trap arms a tripwire in the room. On the hero's first entry they spot it
// just in time; on any later entry while it is still armed it springs and
// deals its damage. Cutting the wire with the right tool disarms it for
// good, and a sprung trap stays spent.
type trap struct {
	game.Base

	objectName string
	disarmWith string
	damage     int
	springText string

	noticed  bool
	sprung   bool
	disarmed bool
}

func newTrap(room *game.Room, p Params, _ map[string]*game.Room) (game.Behavior, error) {
	b := &trap{
		objectName: p.Str("object", "tripwire"),
		disarmWith: p.Str("disarm_with", "dagger"),
		damage:     p.Int("damage", 10),
		springText: p.Str("text", "Something clicks under your boot. Darts hiss out of the wall!"),
	}
	obj := game.NewObject(b.objectName, "A thin wire stretched taut across the floor.")
	if err := room.AddObject(obj); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *trap) Kind() string { return "trap" }

func (b *trap) OnEnter(actor *game.Hero) game.Response {
	if b.sprung || b.disarmed {
		return game.NoResponse()
	}
	if !b.noticed {
		b.noticed = true
		return game.Respond("You stop short. A %s is stretched across the floor just ahead.", b.objectName)
	}
	b.sprung = true
	actor.TakeDamage(b.damage)
	return game.Respond("%s You take %d damage.", b.springText, b.damage)
}

func (b *trap) HandleInteraction(verb, target string, actor *game.Hero, item *game.Item) game.Response {
	if !strings.EqualFold(target, b.objectName) {
		return game.NoResponse()
	}

	switch verb {
	case "look", "examine", "inspect":
		switch {
		case b.disarmed:
			return game.Respond("The %s hangs slack. It won't trigger anything now.", b.objectName)
		case b.sprung:
			return game.Respond("The %s has already done its work.", b.objectName)
		default:
			return game.Respond("A %s, nearly invisible. It looks like a %s could cut it.",
				b.objectName, b.disarmWith)
		}

	case "use":
		if item == nil {
			return game.NoResponse()
		}
		if b.disarmed || b.sprung {
			return game.Respond("The %s is no longer a threat.", b.objectName)
		}
		if !strings.EqualFold(item.Name, b.disarmWith) {
			return game.Respond("The %s is no good against the %s.", item.Name, b.objectName)
		}
		b.disarmed = true
		return game.Respond("You carefully cut the %s with your %s. The trap is disarmed.",
			b.objectName, item.Name)

	case "cut", "disarm":
		if it, ok := actor.Inventory.Get(b.disarmWith); ok {
			return b.HandleInteraction("use", target, actor, it)
		}
		return game.Respond("You'd need a %s for that.", b.disarmWith)
	}
	return game.NoResponse()
}
