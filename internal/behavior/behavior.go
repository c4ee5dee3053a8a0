// Package behavior holds the built-in room interaction behaviors and the
// key→factory registry that world loaders build them from. Adding a new
// interactive behavior means adding one factory binding here; the dispatcher
// never changes.
package behavior

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kmetzlaff/goblinear/internal/game"
)

// Params is the free-form configuration block a behavior is built from, as
// decoded from a world file.
type Params map[string]interface{}

// Str returns the string under key, or def if absent or not a string.
func (p Params) Str(key, def string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return def
}

// Bool returns the bool under key, or def if absent or not a bool.
func (p Params) Bool(key string, def bool) bool {
	if v, ok := p[key].(bool); ok {
		return v
	}
	return def
}

// Int returns the integer under key, or def. TOML decodes integers as
// int64.
func (p Params) Int(key string, def int) int {
	switch v := p[key].(type) {
	case int64:
		return int(v)
	case int:
		return v
	}
	return def
}

// Table returns the nested table under key, or nil.
func (p Params) Table(key string) Params {
	if v, ok := p[key].(map[string]interface{}); ok {
		return Params(v)
	}
	return nil
}

// Factory builds one behavior for a room. roomsByLabel lets behaviors that
// reference other rooms, such as a locked door's far side, resolve them.
type Factory func(room *game.Room, p Params, roomsByLabel map[string]*game.Room) (game.Behavior, error)

var kinds = map[string]Factory{}

// RegisterKind binds a behavior key to its factory. Later registrations of
// the same key overwrite earlier ones.
func RegisterKind(key string, f Factory) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		panic("behavior kind key must not be empty")
	}
	kinds[key] = f
}

// New builds the behavior registered under key for the given room.
func New(key string, room *game.Room, p Params, roomsByLabel map[string]*game.Room) (game.Behavior, error) {
	f, ok := kinds[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return nil, fmt.Errorf("no behavior kind registered for key %q", key)
	}
	if p == nil {
		p = Params{}
	}
	return f(room, p, roomsByLabel)
}

// Kinds returns every registered behavior key, sorted.
func Kinds() []string {
	out := make([]string, 0, len(kinds))
	for k := range kinds {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func init() {
	RegisterKind("locked_door", newLockedDoor)
	RegisterKind("shop", newShop)
	RegisterKind("npc_dialog", newNPCDialog)
	RegisterKind("dark_cave", newDarkCave)
	RegisterKind("torch_table", newTorchTable)
	RegisterKind("entry", newEntry)
	RegisterKind("trap", newTrap)
}
