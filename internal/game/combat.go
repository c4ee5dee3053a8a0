package game

// File combat.go holds the turn-based combat state machine. A turn is one
// resolved exchange: the hero's action plus any immediate retaliation.

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/kmetzlaff/goblinear/internal/util"
)

// BeginCombat enters combat with the given enemy. Combat entry is triggered
// by whatever noticed the enemy, usually room entry; the machine itself only
// records the state and announces the fight.
func (s *Session) BeginCombat(e *Enemy) {
	s.InCombat = true
	s.CurrentEnemy = e

	h := s.Hero
	out := fmt.Sprintf("--- COMBAT INITIATED: %s vs. %s ---\n\n%s Health: %d/%d",
		h.Name, e.Name, h.Name, h.Health(), h.MaxHealth())
	if h.Mana != nil {
		out += fmt.Sprintf(" | Mana: %d/%d", h.Mana.Current(), h.Mana.Max())
	}
	out += fmt.Sprintf("\n%s Health: %d/%d", e.Name, e.Health(), e.MaxHealth())
	s.say("%s", out)
}

func (s *Session) cmdAttack(req Request, ctx *Context) error {
	enemy := s.CurrentEnemy
	if !s.InCombat || enemy == nil || !enemy.IsAlive() {
		s.say("There is nothing to attack.")
		return nil
	}

	dmg, err := ctx.Hero.Attack(enemy, req.Arg)
	if err != nil {
		var noWeapon NoWeaponError
		if errors.As(err, &noWeapon) {
			// invalid weapon does not consume the turn
			weapons := ctx.Hero.Inventory.Weapons()
			if len(weapons) > 0 {
				s.say("You don't have a %s. Available weapons: %s.",
					noWeapon.Weapon, util.MakeTextList(weapons, false))
			} else {
				s.say("You don't have a %s. You'll have to fight bare-handed.", noWeapon.Weapon)
			}
			return nil
		}
		return err
	}

	s.say("%s attacks %s for %d! %s's health is now %d.",
		ctx.Hero.Name, enemy.Name, dmg, enemy.Name, enemy.Health())

	s.resolveRound(ctx)
	return nil
}

func (s *Session) cmdCast(req Request, ctx *Context) error {
	enemy := s.CurrentEnemy
	if !s.InCombat || enemy == nil || !enemy.IsAlive() {
		s.say("There is nothing to cast that at.")
		return nil
	}
	if req.Arg == "" {
		names := make([]string, 0, len(ctx.Hero.Spells))
		for _, sp := range ctx.Hero.Spells {
			names = append(names, sp.Name)
		}
		sort.Strings(names)
		s.say("Cast what? You know: %s.", util.MakeTextList(names, false))
		return nil
	}

	dmg, err := ctx.Hero.CastSpell(req.Arg, enemy)
	if err != nil {
		// resource faults report and do not consume the turn
		var notFound SpellNotFoundError
		var noMana InsufficientManaError
		switch {
		case errors.As(err, &notFound):
			s.say("You don't know any spell called %q.", req.Arg)
		case errors.Is(err, ErrNoMagic):
			s.say("You have no magic to draw on.")
		case errors.As(err, &noMana):
			s.say("Not enough mana for %s: need %d, have %d.",
				noMana.Spell, noMana.Cost, noMana.Available)
		default:
			return err
		}
		return nil
	}

	spell := ctx.Hero.GetSpell(req.Arg)
	s.say("%s casts %s for %d! %s's health is now %d.",
		ctx.Hero.Name, spell.Name, dmg, enemy.Name, enemy.Health())

	s.resolveRound(ctx)
	return nil
}

// resolveRound finishes a combat exchange after the hero's action has
// already applied its damage. Order matters: the enemy's aliveness is
// checked first, so a killing blow ends combat in victory and retaliation
// never happens; only a surviving enemy retaliates, after which the hero's
// aliveness is checked.
func (s *Session) resolveRound(ctx *Context) {
	enemy := s.CurrentEnemy

	if !enemy.IsAlive() {
		s.endCombat(true)
		return
	}

	dmg := enemy.Attack(ctx.Hero)
	s.say("%s retaliates with its %s for %d! %s's health is now %d.",
		enemy.Name, enemy.Weapon, dmg, ctx.Hero.Name, ctx.Hero.Health())

	if !ctx.Hero.IsAlive() {
		s.endCombat(false)
	}
}

// endCombat concludes the encounter and clears combat state. On victory the
// defeated enemy leaves the room and its configured XP, reward item, and
// gold go to the hero. On defeat the session is marked game over; the outer
// loop decides how to end.
func (s *Session) endCombat(victory bool) {
	enemy := s.CurrentEnemy
	s.InCombat = false
	s.CurrentEnemy = nil
	if enemy == nil {
		return
	}

	h := s.Hero
	if !victory {
		s.say("%s has been defeated by %s...", h.Name, enemy.Name)
		s.gameOver = true
		return
	}

	s.say("%s defeated %s!", h.Name, enemy.Name)
	s.CurrentRoom.RemoveEnemy(enemy)

	levels := h.AddXP(enemy.XPValue)
	msg := fmt.Sprintf("%s gained %d XP.", h.Name, enemy.XPValue)
	if levels > 0 {
		msg += fmt.Sprintf(" %s leveled up to level %d!", h.Name, h.Level)
	}
	s.say("%s", msg)

	if enemy.Reward != nil {
		reward := enemy.Reward.Copy()
		h.Inventory.Add(reward)
		s.say("%s collected a trophy: %s.", h.Name, strings.ToLower(reward.String()))
		for _, qmsg := range h.Quests.NotifyCollected(reward.Name, reward.Quantity) {
			s.say("%s", qmsg)
		}
	}
	if enemy.Gold > 0 {
		h.AddGold(enemy.Gold)
		s.say("%s found %d gold on the corpse.", h.Name, enemy.Gold)
	}
}
