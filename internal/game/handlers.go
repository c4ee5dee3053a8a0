package game

// File handlers.go holds the default command set. Each handler is a thin
// adapter from a parsed request onto hero/room/session state.

import (
	"fmt"
	"strings"

	"github.com/dekarrin/rosed"
	"github.com/kmetzlaff/goblinear/internal/command"
	"github.com/kmetzlaff/goblinear/internal/qerrors"
	"github.com/kmetzlaff/goblinear/internal/util"
)

func (s *Session) registerDefaults() {
	r := s.Registry
	r.Register("look", s.cmdLook, "Look around the room, or at something in it")
	r.Register("status", s.cmdStatus, "Check your status", "stats")
	r.Register("inventory", s.cmdInventory, "Check your inventory", "inv", "i")
	r.Register("take", s.cmdTake, "Pick up an item", "get", "grab")
	r.Register("drop", s.cmdDrop, "Drop an item")
	r.Register("examine", s.cmdExamine, "Examine an item in detail")
	r.Register("use", s.cmdUse, "Use an item, optionally on something: use X on Y")
	r.Register("equip", s.cmdEquip, "Equip a weapon you own", "wield")
	r.Register("go", s.cmdGo, "Move in a direction", "move")
	r.Register("talk", s.cmdTalk, "Talk to someone", "speak")
	r.Register("attack", s.cmdAttack, "Attack the enemy, optionally naming a weapon")
	r.Register("cast", s.cmdCast, "Cast a spell at the enemy: cast fireball")
	r.Register("buy", s.cmdBuy, "Buy an item from a shop")
	r.Register("sell", s.cmdSell, "Sell an item to a shop")
	r.Register("help", s.cmdHelp, "Show this help", "?")
	r.Register("quit", s.cmdQuit, "End the game", "exit")
}

func (s *Session) cmdLook(req Request, ctx *Context) error {
	if req.Arg == "" {
		s.ShowRoom()
		return nil
	}

	name := req.Arg
	if it, ok := ctx.Hero.Inventory.Get(name); ok {
		s.say("You examine the %s. It looks worth about %d gold.", it.Name, it.Cost)
		return nil
	}
	if it, ok := ctx.Room.Inventory.Get(name); ok {
		s.say("You see %s %s lying here.", util.ArticleFor(it.Name, false), it.Name)
		return nil
	}
	if resp := ctx.Room.Interact("look", name, ctx.Hero, nil); resp.Outcome == OutcomeResponded {
		s.say("%s", resp.Text)
		return nil
	}
	if npc, ok := ctx.Room.NPCs[strings.ToLower(name)]; ok {
		s.say("%s %s", npc.Name, npc.Description)
		return nil
	}
	return qerrors.Playerf("I don't see any %q here.", name)
}

func (s *Session) cmdStatus(req Request, ctx *Context) error {
	h := ctx.Hero
	out := fmt.Sprintf("%s, level %d (%d/%d XP)\nHealth: %d/%d",
		h.Name, h.Level, h.XP, h.XPToNextLevel(), h.Health(), h.MaxHealth())
	if h.Mana != nil {
		out += fmt.Sprintf("\nMana: %d/%d", h.Mana.Current(), h.Mana.Max())
	}
	out += fmt.Sprintf("\nGold: %d", h.Gold)
	if quests := h.Quests.Active(); len(quests) > 0 {
		out += "\n\nActive quests:"
		for _, q := range quests {
			out += "\n  " + q.String()
		}
	}
	s.say("%s", out)
	return nil
}

func (s *Session) cmdInventory(req Request, ctx *Context) error {
	if len(ctx.Hero.Inventory) < 1 {
		s.say("You aren't carrying anything.")
		return nil
	}
	s.say("You are carrying: %s.", ctx.Hero.Inventory)
	return nil
}

func (s *Session) cmdTake(req Request, ctx *Context) error {
	if req.Arg == "" {
		return qerrors.Playerf("What do you want to take?")
	}

	// behaviors may claim the take outright, e.g. a shop refusing theft
	if resp := ctx.Room.Interact("take", req.Arg, ctx.Hero, nil); resp.Outcome == OutcomeResponded {
		s.say("%s", resp.Text)
		return nil
	}

	held, ok := ctx.Room.Inventory.Get(req.Arg)
	if !ok {
		return qerrors.Playerf("There is no %s here to take.", req.Arg)
	}

	taken, err := ctx.Room.Inventory.Remove(held.Name, held.Quantity)
	if err != nil {
		return qerrors.WrapPlayerf(err, "You couldn't take the %s.", req.Arg)
	}
	ctx.Hero.Inventory.Add(taken)
	s.say("You took the %s.", taken.Name)

	for _, msg := range ctx.Hero.Quests.NotifyCollected(taken.Name, taken.Quantity) {
		s.say("%s", msg)
	}
	return nil
}

func (s *Session) cmdDrop(req Request, ctx *Context) error {
	if req.Arg == "" {
		return qerrors.Playerf("What do you want to drop?")
	}

	dropped, err := ctx.Hero.Inventory.Remove(req.Arg, 1)
	if err != nil {
		return qerrors.WrapPlayerf(err, "You don't have a %s to drop.", req.Arg)
	}
	ctx.Room.AddItem(dropped)
	s.say("You dropped the %s.", dropped.Name)
	return nil
}

func (s *Session) cmdExamine(req Request, ctx *Context) error {
	if req.Arg == "" {
		return qerrors.Playerf("What do you want to examine?")
	}

	it, ok := ctx.Hero.Inventory.Get(req.Arg)
	if !ok {
		it, ok = ctx.Room.Inventory.Get(req.Arg)
	}
	if !ok {
		return qerrors.Playerf("You don't see a %s here.", req.Arg)
	}

	out := fmt.Sprintf("You examine the %s:\n  Quantity: %d\n  Value: %d gold", it.Name, it.Quantity, it.Cost)
	if it.Usable {
		switch it.Effect {
		case EffectHeal:
			out += fmt.Sprintf("\n  Effect: heals for %d health", it.EffectValue)
		case EffectDamage:
			out += fmt.Sprintf("\n  Effect: deals %d damage", it.EffectValue)
		default:
			out += "\n  Effect: none"
		}
	}
	s.say("%s", out)
	return nil
}

func (s *Session) cmdUse(req Request, ctx *Context) error {
	if req.Arg == "" {
		return qerrors.Playerf("What do you want to use?")
	}

	itemName, tgt := command.ParseUse(req.Arg, ctx.Hero.Name, ctx.Room.HasObject)

	var item *Item
	var fromHero bool
	if it, ok := ctx.Hero.Inventory.Get(itemName); ok {
		item, fromHero = it, true
	} else if it, ok := ctx.Room.Inventory.Get(itemName); ok {
		item = it
	} else {
		return qerrors.Playerf("You don't see or have a %q.", itemName)
	}

	switch tgt.Kind {
	case command.TargetSelf:
		if !fromHero {
			return qerrors.Playerf("You must take the %s first before using it on yourself.", item.Name)
		}
		return s.useOnSelf(item, ctx)

	case command.TargetRoom:
		return s.useInRoom(item, fromHero, ctx)

	case command.TargetObject:
		resp := ctx.Room.Interact("use", tgt.Name, ctx.Hero, item)
		if resp.Outcome == OutcomeResponded {
			s.say("%s", resp.Text)
			s.consume(item, fromHero, ctx)
			return nil
		}
		s.say("You try the %s on the %s, but nothing special happens.", item.Name, tgt.Name)
		return nil

	default:
		if tgt.Name != "" {
			return qerrors.Playerf("You don't see %q to use the %s on.", tgt.Name, item.Name)
		}
		// bare "use X": prefer a self effect, otherwise offer it to the room
		if fromHero && item.Usable && item.Effect != EffectNone {
			return s.useOnSelf(item, ctx)
		}
		return s.useInRoom(item, fromHero, ctx)
	}
}

func (s *Session) useOnSelf(item *Item, ctx *Context) error {
	if !item.Usable {
		return qerrors.Playerf("The %s cannot be used on yourself.", item.Name)
	}

	before := ctx.Hero.Health()
	item.Apply(ctx.Hero)
	s.say("%s used the %s.", ctx.Hero.Name, item.Name)
	if after := ctx.Hero.Health(); after > before {
		s.say("You feel refreshed! Health increased to %d.", after)
	} else if after < before {
		s.say("Ouch! That hurt. Health decreased to %d.", after)
	}

	s.consume(item, true, ctx)
	return nil
}

func (s *Session) useInRoom(item *Item, fromHero bool, ctx *Context) error {
	resp := ctx.Room.UseItem("use", item, ctx.Hero)
	if resp.Outcome != OutcomeResponded {
		return qerrors.Playerf("You try to use the %s, but nothing special happens here.", item.Name)
	}
	s.say("%s", resp.Text)
	s.consume(item, fromHero, ctx)
	return nil
}

// consume removes one quantity of a consumable after a successful use.
func (s *Session) consume(item *Item, fromHero bool, ctx *Context) {
	if !item.Consumable {
		return
	}
	inv := ctx.Room.Inventory
	if fromHero {
		inv = ctx.Hero.Inventory
	}
	if _, err := inv.Remove(item.Name, 1); err != nil {
		s.log.Debug("could not consume item", "item", item.Name, "error", err)
	}
}

func (s *Session) cmdEquip(req Request, ctx *Context) error {
	if req.Arg == "" {
		return qerrors.Playerf("What do you want to equip?")
	}
	if err := ctx.Hero.Equip(req.Arg); err != nil {
		return qerrors.WrapPlayerf(err, "You can't equip %q.", req.Arg)
	}
	s.say("Equipped %s.", strings.ToLower(req.Arg))
	return nil
}

func (s *Session) cmdGo(req Request, ctx *Context) error {
	dir := strings.ToLower(req.Arg)
	if dir == "" {
		return qerrors.Playerf("I don't know where you want to go.")
	}

	if dir == "back" {
		if _, hasBackExit := ctx.Room.Exits["back"]; !hasBackExit {
			if ctx.Hero.LastRoom == nil {
				return qerrors.Playerf("You can't go back any further.")
			}
			prev := ctx.Hero.LastRoom
			s.say("You go back.")
			s.EnterRoom(prev)
			return nil
		}
	}

	next, ok := ctx.Room.Exits[dir]
	if !ok {
		return qerrors.Playerf("You can't go that way.")
	}

	if next.Locked {
		// a locked-door behavior can describe the refusal; otherwise a
		// plain message
		if resp := ctx.Room.Interact("go", dir, ctx.Hero, nil); resp.Outcome == OutcomeResponded {
			s.say("%s", resp.Text)
			return nil
		}
		return qerrors.Playerf("The door is locked.")
	}

	s.say("You go %s.", dir)
	s.EnterRoom(next)
	return nil
}

func (s *Session) cmdTalk(req Request, ctx *Context) error {
	resp := ctx.Room.Interact("talk", req.Arg, ctx.Hero, nil)
	if resp.Outcome == OutcomeResponded {
		s.say("%s", resp.Text)
		return nil
	}
	if req.Arg != "" {
		return qerrors.Playerf("I don't see a %q you can talk to here.", req.Arg)
	}
	return qerrors.Playerf("There is no one here to talk to.")
}

func (s *Session) cmdBuy(req Request, ctx *Context) error {
	if req.Arg == "" {
		return qerrors.Playerf("Buy what?")
	}
	resp := ctx.Room.Interact("buy", req.Arg, ctx.Hero, nil)
	if resp.Outcome == OutcomeResponded {
		s.say("%s", resp.Text)
		return nil
	}
	return qerrors.Playerf("There is no one here to trade with.")
}

func (s *Session) cmdSell(req Request, ctx *Context) error {
	if req.Arg == "" {
		return qerrors.Playerf("Sell what?")
	}
	resp := ctx.Room.Interact("sell", req.Arg, ctx.Hero, nil)
	if resp.Outcome == OutcomeResponded {
		s.say("%s", resp.Text)
		return nil
	}
	return qerrors.Playerf("There is no one here to trade with.")
}

func (s *Session) cmdHelp(req Request, ctx *Context) error {
	out := rosed.Edit("").WithOptions(
		textFormatOptions.
			WithParagraphSeparator("\n").
			WithNoTrailingLineSeparators(true)).
		Insert(rosed.End, "Here are the commands you can use:\n").
		InsertDefinitionsTable(rosed.End, s.Registry.HelpTable(), s.io.Width).
		String()
	if err := s.io.Output("%s", out+"\n"); err != nil {
		s.log.Warn("could not write output", "error", err)
	}
	return nil
}

func (s *Session) cmdQuit(req Request, ctx *Context) error {
	s.quitting = true
	return nil
}
