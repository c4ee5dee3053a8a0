package game

// File enemy.go holds hostile room occupants.

import "fmt"

// Enemy is a hostile occupant of a room. The room owns the enemy's
// lifecycle; combat only mutates its health and reads its aliveness.
type Enemy struct {
	Name string

	hp    int
	maxHP int

	// Damage is applied to the hero on each retaliation.
	Damage int

	// Weapon is the flavor name used in retaliation reports.
	Weapon string

	// XPValue is granted to the hero on defeat.
	XPValue int

	// Gold and Reward are granted to the hero on defeat; both may be unset.
	Gold   int
	Reward *Item
}

// NewEnemy creates an enemy with the given combat stats.
func NewEnemy(name string, health, damage, xpValue int) *Enemy {
	if health < 1 {
		health = 1
	}
	return &Enemy{
		Name:    name,
		hp:      health,
		maxHP:   health,
		Damage:  damage,
		Weapon:  "claws",
		XPValue: xpValue,
	}
}

// NewGoblin creates the stock goblin: 100 health, a 10-damage sword, worth
// 100 XP.
func NewGoblin(name string) *Enemy {
	g := NewEnemy(name, 100, 10, 100)
	g.Weapon = "sword"
	return g
}

// NewTroll creates the stock troll: 250 health, 20-damage claws, worth
// 150 XP.
func NewTroll(name string) *Enemy {
	return NewEnemy(name, 250, 20, 150)
}

func (e *Enemy) CombatName() string { return e.Name }

func (e *Enemy) IsAlive() bool { return e.hp > 0 }

func (e *Enemy) Health() int { return e.hp }

func (e *Enemy) MaxHealth() int { return e.maxHP }

func (e *Enemy) TakeDamage(n int) {
	e.hp -= n
	if e.hp < 0 {
		e.hp = 0
	}
}

func (e *Enemy) Heal(n int) {
	e.hp += n
	if e.hp > e.maxHP {
		e.hp = e.maxHP
	}
}

// Attack strikes the target for the enemy's damage value and returns the
// damage dealt.
func (e *Enemy) Attack(target Combatant) int {
	target.TakeDamage(e.Damage)
	return e.Damage
}

func (e *Enemy) String() string {
	return fmt.Sprintf("%s (%d/%d)", e.Name, e.hp, e.maxHP)
}
