package game

// File hero.go holds the player character.

import (
	"errors"
	"fmt"
	"strings"
)

// Hero progression constants.
const (
	HeroBaseHealth     = 100
	HeroBaseMana       = 100
	HeroHealthPerLevel = 5
	HeroManaPerLevel   = 2
	HeroBaseXPToLevel  = 100
	HeroXPPerLevel     = 50
)

// ErrNoMagic is returned when a hero without a mana pool tries to cast.
var ErrNoMagic = errors.New("hero has no mana pool")

// NoWeaponError is returned by Attack when the named weapon is not in the
// attacker's inventory. It is distinguishable so the combat handler can list
// the weapons the hero does own.
type NoWeaponError struct {
	Weapon string
}

func (e NoWeaponError) Error() string {
	return fmt.Sprintf("no weapon %q in inventory", e.Weapon)
}

// SpellNotFoundError is returned by CastSpell for an unknown spell name.
type SpellNotFoundError struct {
	Spell string
}

func (e SpellNotFoundError) Error() string {
	return fmt.Sprintf("spell %q is not known", e.Spell)
}

// InsufficientManaError is returned by CastSpell when the pool cannot cover
// the spell's cost.
type InsufficientManaError struct {
	Spell     string
	Cost      int
	Available int
}

func (e InsufficientManaError) Error() string {
	return fmt.Sprintf("not enough mana for %q: need %d, have %d", e.Spell, e.Cost, e.Available)
}

// Hero is the player character: health, an optional mana pool, gold, an
// inventory with stacked quantities, known spells, and a quest log.
type Hero struct {
	Name  string
	Level int
	XP    int
	Gold  int

	hp    int
	maxHP int

	// Mana may be nil for a hero with no magic; all uses must treat that as
	// an absent attribute, not a fault.
	Mana *ManaPool

	Inventory Inventory

	// Equipped is the lookup name of the currently wielded weapon.
	Equipped string

	Spells map[string]*Spell
	Quests *QuestLog

	// LastRoom supports the "go back" command.
	LastRoom *Room
}

// NewHero creates a hero at the given level with the default loadout: bare
// fists, the fireball and magic missile spells, and a full mana pool.
func NewHero(name string, level int) *Hero {
	if level < 1 {
		level = 1
	}
	h := &Hero{
		Name:      name,
		Level:     level,
		hp:        HeroBaseHealth + (level-1)*HeroHealthPerLevel,
		maxHP:     HeroBaseHealth + (level-1)*HeroHealthPerLevel,
		Mana:      NewManaPool(HeroBaseMana + (level-1)*HeroManaPerLevel),
		Inventory: NewInventory(),
		Spells: map[string]*Spell{
			"fireball":      {Name: "Fireball", Cost: 25, Damage: 25},
			"magic missile": {Name: "Magic Missile", Cost: 5, Damage: 5},
		},
		Quests:   NewQuestLog(),
		Equipped: "fists",
	}

	h.Inventory.Add(&Item{
		Name:        "fists",
		Usable:      true,
		Effect:      EffectDamage,
		EffectValue: 5,
		Tags:        []string{"weapon"},
	})

	return h
}

func (h *Hero) CombatName() string { return h.Name }

func (h *Hero) IsAlive() bool { return h.hp > 0 }

func (h *Hero) Health() int { return h.hp }

func (h *Hero) MaxHealth() int { return h.maxHP }

func (h *Hero) TakeDamage(n int) {
	h.hp -= n
	if h.hp < 0 {
		h.hp = 0
	}
}

func (h *Hero) Heal(n int) {
	h.hp += n
	if h.hp > h.maxHP {
		h.hp = h.maxHP
	}
}

// XPToNextLevel is the threshold at which the hero levels up.
func (h *Hero) XPToNextLevel() int {
	return HeroBaseXPToLevel + h.Level*HeroXPPerLevel
}

// AddXP grants experience and applies any level ups it pays for, raising max
// health and mana. It returns the number of levels gained.
func (h *Hero) AddXP(xp int) int {
	if xp < 0 {
		return 0
	}
	h.XP += xp

	gained := 0
	for h.XP >= h.XPToNextLevel() {
		h.XP -= h.XPToNextLevel()
		h.Level++
		gained++

		h.maxHP = HeroBaseHealth + (h.Level-1)*HeroHealthPerLevel
		if h.hp > h.maxHP {
			h.hp = h.maxHP
		}
		h.Mana.Raise(HeroBaseMana + (h.Level-1)*HeroManaPerLevel)
	}
	return gained
}

// AddGold grants gold; negative amounts are ignored.
func (h *Hero) AddGold(n int) {
	if n > 0 {
		h.Gold += n
	}
}

// SpendGold removes n gold and reports whether the hero could afford it. On
// false nothing is spent.
func (h *Hero) SpendGold(n int) bool {
	if n < 0 || h.Gold < n {
		return false
	}
	h.Gold -= n
	return true
}

// Equip wields the named item. The item must be in inventory and tagged as a
// weapon.
func (h *Hero) Equip(name string) error {
	it, ok := h.Inventory.Get(name)
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrItemNotFound)
	}
	if !it.HasTag("weapon") {
		return fmt.Errorf("%q is not a weapon", it.Name)
	}
	h.Equipped = it.Key()
	return nil
}

// Attack strikes the target with the named weapon, or with the equipped
// weapon if weaponName is empty. It returns the damage dealt. A weapon that
// is not in inventory yields a NoWeaponError and no damage is applied.
func (h *Hero) Attack(target Combatant, weaponName string) (int, error) {
	if target == nil {
		return 0, errors.New("no target to attack")
	}

	name := strings.ToLower(strings.TrimSpace(weaponName))
	if name == "" {
		name = h.Equipped
	}

	weapon, ok := h.Inventory.Get(name)
	if !ok {
		return 0, NoWeaponError{Weapon: name}
	}

	dmg := weapon.EffectValue
	if weapon.Effect != EffectDamage || dmg < 1 {
		dmg = 1
	}
	target.TakeDamage(dmg)
	return dmg, nil
}

// GetSpell returns the known spell with the given name, nil if unknown.
func (h *Hero) GetSpell(name string) *Spell {
	return h.Spells[strings.ToLower(strings.TrimSpace(name))]
}

// CastSpell casts the named spell at the target, consuming mana and applying
// damage. Unknown spells, an absent mana pool, and insufficient mana are
// reported without any state change.
func (h *Hero) CastSpell(name string, target Combatant) (int, error) {
	spell := h.GetSpell(name)
	if spell == nil {
		return 0, SpellNotFoundError{Spell: name}
	}
	if h.Mana == nil {
		return 0, ErrNoMagic
	}
	if !h.Mana.CanAfford(spell.Cost) {
		return 0, InsufficientManaError{
			Spell:     spell.Name,
			Cost:      spell.Cost,
			Available: h.Mana.Current(),
		}
	}

	h.Mana.Consume(spell.Cost)
	target.TakeDamage(spell.Damage)
	return spell.Damage, nil
}

func (h *Hero) String() string {
	return fmt.Sprintf("%s (Level %d, XP %d, health %d/%d, mana %d/%d)",
		h.Name, h.Level, h.XP, h.hp, h.maxHP, h.Mana.Current(), h.Mana.Max())
}
