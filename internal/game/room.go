package game

// File room.go holds rooms, their exits, and behavior dispatch.

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/kmetzlaff/goblinear/internal/util"
)

// Object is a fixed, non-takeable feature of a room, such as a door or a
// table. Behaviors create and mutate objects; generic dispatch only reads
// them.
type Object struct {
	Name        string
	Description string
	tags        map[string]bool
}

// NewObject creates a room object.
func NewObject(name, description string) *Object {
	return &Object{
		Name:        strings.ToLower(name),
		Description: description,
		tags:        make(map[string]bool),
	}
}

// AddTag marks the object with a tag.
func (o *Object) AddTag(tag string) {
	o.tags[strings.ToLower(tag)] = true
}

// HasTag reports whether the object carries the tag.
func (o *Object) HasTag(tag string) bool {
	return o.tags[strings.ToLower(tag)]
}

// Room is one location in the world: a description, exits to other rooms,
// loose items, fixed objects, NPCs, enemies, and attached behaviors.
type Room struct {
	// Label is the unique lookup key for the room in the world.
	Label string

	Name string

	description string

	// Exits maps direction words to neighboring rooms.
	Exits map[string]*Room

	// Locked rooms reject entry until something unlocks them.
	Locked bool

	Inventory Inventory
	Objects   map[string]*Object
	NPCs      map[string]*NPC
	Enemies   []*Enemy

	behaviors []Behavior
}

// NewRoom creates an empty room. The label is derived from the name if not
// set afterward by a loader.
func NewRoom(name, description string) *Room {
	return &Room{
		Label:       strings.ToLower(strings.ReplaceAll(name, " ", "_")),
		Name:        name,
		description: description,
		Exits:       make(map[string]*Room),
		Inventory:   NewInventory(),
		Objects:     make(map[string]*Object),
		NPCs:        make(map[string]*NPC),
	}
}

// SetDescription replaces the room's base description.
func (r *Room) SetDescription(desc string) {
	r.description = desc
}

// AddExit adds a one-way exit from this room.
func (r *Room) AddExit(direction string, to *Room) {
	r.Exits[strings.ToLower(direction)] = to
}

// Link connects two rooms bidirectionally: going direction from this room
// reaches other, and going back from other returns here.
func (r *Room) Link(direction string, other *Room, back string) {
	r.AddExit(direction, other)
	other.AddExit(back, r)
}

// Unlock clears the room's locked flag.
func (r *Room) Unlock() {
	r.Locked = false
}

// AddItem puts an item on the room floor.
func (r *Room) AddItem(it *Item) {
	r.Inventory.Add(it)
}

// AddObject registers a fixed object. A second object with the same name is
// rejected.
func (r *Room) AddObject(o *Object) error {
	if _, taken := r.Objects[o.Name]; taken {
		return fmt.Errorf("room %q already has an object named %q", r.Name, o.Name)
	}
	r.Objects[o.Name] = o
	return nil
}

// HasObject reports whether a named fixed object is in the room.
func (r *Room) HasObject(name string) bool {
	_, ok := r.Objects[strings.ToLower(name)]
	return ok
}

// AddNPC places an NPC in the room.
func (r *Room) AddNPC(n *NPC) {
	r.NPCs[n.Key()] = n
}

// AddBehavior attaches a behavior. Attachment order is dispatch order.
func (r *Room) AddBehavior(b Behavior) {
	r.behaviors = append(r.behaviors, b)
}

// Behaviors returns the attached behaviors in dispatch order.
func (r *Room) Behaviors() []Behavior {
	return r.behaviors
}

// LivingEnemy returns the first enemy in the room that is still alive, or
// nil.
func (r *Room) LivingEnemy() *Enemy {
	for _, e := range r.Enemies {
		if e.IsAlive() {
			return e
		}
	}
	return nil
}

// RemoveEnemy takes the enemy out of the room. Removing an enemy that is not
// present has no effect.
func (r *Room) RemoveEnemy(target *Enemy) {
	for i, e := range r.Enemies {
		if e == target {
			r.Enemies = append(r.Enemies[:i], r.Enemies[i+1:]...)
			return
		}
	}
}

// Interact offers the verb to each attached behavior in order and returns
// the first response. A failed behavior is logged and skipped; it never
// aborts the command. If no behavior responds and the target names a fixed
// object, a plain look at the object answers "look"-like verbs.
func (r *Room) Interact(verb, target string, actor *Hero, item *Item) Response {
	verb = strings.ToLower(strings.TrimSpace(verb))
	target = strings.ToLower(strings.TrimSpace(target))

	for _, b := range r.behaviors {
		resp := b.HandleInteraction(verb, target, actor, item)
		switch resp.Outcome {
		case OutcomeResponded:
			return resp
		case OutcomeFailed:
			slog.Warn("behavior fault during interaction",
				"room", r.Name, "behavior", b.Kind(), "verb", verb, "error", resp.Err)
		}
	}

	if obj, ok := r.Objects[target]; ok {
		switch verb {
		case "look", "examine", "inspect":
			return Respond("%s", obj.Description)
		}
	}

	return NoResponse()
}

// UseItem offers an item being used in the room at large to each behavior
// and returns the first response. Failures are logged and skipped.
func (r *Room) UseItem(verb string, item *Item, actor *Hero) Response {
	for _, b := range r.behaviors {
		resp := b.HandleItemUse(verb, item, actor)
		switch resp.Outcome {
		case OutcomeResponded:
			return resp
		case OutcomeFailed:
			slog.Warn("behavior fault during item use",
				"room", r.Name, "behavior", b.Kind(), "item", item.Name, "error", resp.Err)
		}
	}
	return NoResponse()
}

// Describe renders the room's full description: the base text as rewritten
// by each behavior, then the items, objects, and NPCs present.
func (r *Room) Describe() string {
	desc := r.description
	for _, b := range r.behaviors {
		desc = b.Describe(desc)
	}

	if len(r.Inventory) > 0 {
		desc += "\n\nOn the ground, you can see " + util.MakeTextList(r.Inventory.Names(), true) + "."
	}

	if len(r.Objects) > 0 {
		names := make([]string, 0, len(r.Objects))
		for name := range r.Objects {
			names = append(names, name)
		}
		sort.Strings(names)
		var lines []string
		for _, name := range names {
			lines = append(lines, name+": "+r.Objects[name].Description)
		}
		desc += "\n\n" + strings.Join(lines, "\n")
	}

	if len(r.NPCs) > 0 {
		var names []string
		for _, n := range r.NPCs {
			names = append(names, n.Name)
		}
		sort.Strings(names)
		desc += "\n\n" + util.MakeTextList(names, false)
		if len(names) == 1 {
			desc += " is here."
		} else {
			desc += " are here."
		}
	}

	return desc
}

// ExitNames returns the room's exit directions, sorted.
func (r *Room) ExitNames() []string {
	dirs := make([]string, 0, len(r.Exits))
	for d := range r.Exits {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	return dirs
}

func (r *Room) String() string {
	return fmt.Sprintf("Room<%s %q exits: %s>", r.Label, r.Name, strings.Join(r.ExitNames(), ", "))
}
