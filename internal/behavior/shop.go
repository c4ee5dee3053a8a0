package behavior

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kmetzlaff/goblinear/internal/game"
)

// shop turns a room into a store. Items in the room's inventory are the
// stock; the shop refuses plain takes of them and instead trades through the
// buy and sell verbs. Sales pay half the item's listed cost, rounded down.
type shop struct {
	game.Base

	room    *game.Room
	keeper  string
	welcome string
}

func newShop(room *game.Room, p Params, _ map[string]*game.Room) (game.Behavior, error) {
	b := &shop{
		room:    room,
		keeper:  p.Str("keeper", "shopkeeper"),
		welcome: p.Str("welcome", "\"Welcome! Have a look at my wares.\""),
	}
	room.AddNPC(&game.NPC{
		Name:        b.keeper,
		Description: "watches you from behind the counter.",
	})
	return b, nil
}

func (b *shop) Kind() string { return "shop" }

func (b *shop) Describe(base string) string {
	stock := b.stockLines()
	if len(stock) == 0 {
		return base + "\nThe shelves are bare."
	}
	return base + "\nFor sale:\n" + strings.Join(stock, "\n")
}

func (b *shop) stockLines() []string {
	names := b.room.Inventory.Names()
	sort.Strings(names)
	lines := make([]string, 0, len(names))
	for _, n := range names {
		it, _ := b.room.Inventory.Get(n)
		lines = append(lines, fmt.Sprintf("  %s - %d gold", it.Name, it.Cost))
	}
	return lines
}

func (b *shop) OnEnter(actor *game.Hero) game.Response {
	return game.Respond("The %s nods at you. %s", b.keeper, b.welcome)
}

func (b *shop) HandleInteraction(verb, target string, actor *game.Hero, item *game.Item) game.Response {
	switch verb {
	case "take":
		if b.room.Inventory.Has(target) {
			return game.Respond("The %s blocks your hand. \"That's for sale, not for taking. Try 'buy %s'.\"",
				b.keeper, strings.ToLower(target))
		}
		return game.NoResponse()

	case "talk":
		if target == "" || strings.EqualFold(target, b.keeper) {
			return game.Respond("%s", b.welcome)
		}
		return game.NoResponse()

	case "buy":
		return b.buy(target, actor)

	case "sell":
		return b.sell(target, actor)
	}
	return game.NoResponse()
}

// buy moves one of the named item from stock to the hero, charging its full
// cost. Gold is checked before anything moves, so a failed purchase changes
// nothing.
func (b *shop) buy(name string, actor *game.Hero) game.Response {
	it, ok := b.room.Inventory.Get(name)
	if !ok {
		return game.Respond("\"I don't stock any %s,\" says the %s.", strings.ToLower(name), b.keeper)
	}
	if !actor.SpendGold(it.Cost) {
		return game.Respond("\"That'll be %d gold,\" says the %s. You only have %d.",
			it.Cost, b.keeper, actor.Gold)
	}

	bought, err := b.room.Inventory.Remove(it.Name, 1)
	if err != nil {
		actor.AddGold(it.Cost)
		return game.Fail(err)
	}
	actor.Inventory.Add(bought)
	return game.Respond("You buy the %s for %d gold. You have %d gold left.",
		bought.Name, it.Cost, actor.Gold)
}

func (b *shop) sell(name string, actor *game.Hero) game.Response {
	it, ok := actor.Inventory.Get(name)
	if !ok {
		return game.Respond("You don't have a %s to sell.", strings.ToLower(name))
	}
	price := it.Cost / 2
	if price < 1 {
		return game.Respond("\"I'm not paying for that,\" says the %s.", b.keeper)
	}

	sold, err := actor.Inventory.Remove(it.Name, 1)
	if err != nil {
		return game.Fail(err)
	}
	b.room.Inventory.Add(sold)
	actor.AddGold(price)
	return game.Respond("You sell the %s for %d gold. You now have %d gold.",
		sold.Name, price, actor.Gold)
}
