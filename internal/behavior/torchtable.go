package behavior

import (
	"strings"

	"github.com/kmetzlaff/goblinear/internal/game"
)

// torchTable puts a table in the room with a torch laid out on it. The torch
// is an ordinary takeable item; the table just keeps describing itself
// correctly after the torch is gone.
type torchTable struct {
	game.Base

	room      *game.Room
	tableName string
	itemName  string
}

func newTorchTable(room *game.Room, p Params, _ map[string]*game.Room) (game.Behavior, error) {
	b := &torchTable{
		room:      room,
		tableName: p.Str("table", "table"),
		itemName:  p.Str("item", "torch"),
	}

	table := game.NewObject(b.tableName, "A rough wooden table.")
	if err := room.AddObject(table); err != nil {
		return nil, err
	}
	room.AddItem(&game.Item{
		Name:     b.itemName,
		Cost:     p.Int("cost", 5),
		Usable:   true,
		Quantity: 1,
		Tags:     []string{"light"},
	})
	return b, nil
}

func (b *torchTable) Kind() string { return "torch_table" }

func (b *torchTable) HandleInteraction(verb, target string, actor *game.Hero, item *game.Item) game.Response {
	if verb != "look" && verb != "examine" && verb != "inspect" {
		return game.NoResponse()
	}
	if !strings.EqualFold(target, b.tableName) {
		return game.NoResponse()
	}
	if b.room.Inventory.Has(b.itemName) {
		return game.Respond("A rough wooden %s. A %s lies on it, within easy reach.", b.tableName, b.itemName)
	}
	return game.Respond("A rough wooden %s, bare except for a ring of old scorch marks.", b.tableName)
}
