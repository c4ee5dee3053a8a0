package game

// Spell is a named combat ability with a mana cost and a flat damage value.
type Spell struct {
	Name   string
	Cost   int
	Damage int
}

// ManaPool tracks the hero's current and maximum mana. A hero without magic
// simply has no pool; all callers must treat a nil pool as "no mana at all"
// rather than an error.
type ManaPool struct {
	current int
	max     int
}

// NewManaPool returns a pool filled to the given maximum.
func NewManaPool(max int) *ManaPool {
	return &ManaPool{current: max, max: max}
}

// Current returns the available mana, 0 for a nil pool.
func (m *ManaPool) Current() int {
	if m == nil {
		return 0
	}
	return m.current
}

// Max returns the mana cap, 0 for a nil pool.
func (m *ManaPool) Max() int {
	if m == nil {
		return 0
	}
	return m.max
}

// CanAfford reports whether the pool holds at least cost mana. A nil pool
// can afford nothing.
func (m *ManaPool) CanAfford(cost int) bool {
	return m != nil && m.current >= cost
}

// Consume removes cost mana from the pool. It is a no-op on a nil pool.
func (m *ManaPool) Consume(cost int) {
	if m == nil {
		return
	}
	m.current -= cost
	if m.current < 0 {
		m.current = 0
	}
}

// Restore adds n mana up to the cap.
func (m *ManaPool) Restore(n int) {
	if m == nil {
		return
	}
	m.current += n
	if m.current > m.max {
		m.current = m.max
	}
}

// Raise lifts the cap to newMax, used on level up.
func (m *ManaPool) Raise(newMax int) {
	if m == nil {
		return
	}
	m.max = newMax
	if m.current > m.max {
		m.current = m.max
	}
}
