package game

// Combatant is anything that can deal and receive damage in a combat
// exchange.
type Combatant interface {
	// CombatName returns the name to use in combat reports.
	CombatName() string

	// IsAlive reports whether health is still positive.
	IsAlive() bool

	// TakeDamage reduces health by n, floored at zero.
	TakeDamage(n int)

	// Heal raises health by n, capped at max health.
	Heal(n int)

	// Health returns current health.
	Health() int

	// MaxHealth returns the health cap.
	MaxHealth() int
}
