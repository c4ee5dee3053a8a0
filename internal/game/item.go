package game

// File item.go holds items and inventories.

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrItemNotFound is returned when an inventory does not hold the
	// requested item.
	ErrItemNotFound = errors.New("item not found")

	// ErrInsufficientQuantity is returned when an inventory holds fewer of an
	// item than a removal asks for.
	ErrInsufficientQuantity = errors.New("not enough of that item")
)

// EffectKind is what an item does when applied to a combatant.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectHeal
	EffectDamage
)

// Item is a thing that can sit in a room or an inventory. Items stack;
// Quantity is how many of this item the holder has.
type Item struct {
	// Name is the display name and, lower-cased, the lookup key.
	Name string

	// Cost is the item's base value in gold, used by shops.
	Cost int

	// Usable marks items that can be applied to a combatant or a room.
	Usable bool

	// Consumable items lose one quantity each time they are used.
	Consumable bool

	// Equipment marks items the hero may equip as a weapon.
	Equipment bool

	Effect      EffectKind
	EffectValue int

	Quantity int

	// Tags are free-form markers that behaviors check for, such as "weapon",
	// "key", or "fire".
	Tags []string
}

// Key returns the lower-cased name items are indexed under.
func (it *Item) Key() string {
	return strings.ToLower(it.Name)
}

// HasTag reports whether the item carries the given tag.
func (it *Item) HasTag(tag string) bool {
	for _, t := range it.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Apply applies the item's effect to the target and returns a short report
// of what happened, or "" if the item has no effect.
func (it *Item) Apply(target Combatant) string {
	switch it.Effect {
	case EffectHeal:
		target.Heal(it.EffectValue)
		return fmt.Sprintf("%s is healed for %d.", target.CombatName(), it.EffectValue)
	case EffectDamage:
		target.TakeDamage(it.EffectValue)
		return fmt.Sprintf("%s takes %d damage.", target.CombatName(), it.EffectValue)
	}
	return ""
}

func (it *Item) String() string {
	if it.Quantity > 1 {
		return fmt.Sprintf("%s x%d", it.Name, it.Quantity)
	}
	return it.Name
}

// Copy returns a deep copy of the item.
func (it *Item) Copy() *Item {
	cp := *it
	cp.Tags = append([]string(nil), it.Tags...)
	return &cp
}

// Inventory is a store of items keyed by lower-cased item name.
type Inventory map[string]*Item

// NewInventory returns an empty inventory.
func NewInventory() Inventory {
	return make(Inventory)
}

// Has reports whether the inventory holds at least one of the named item.
func (inv Inventory) Has(name string) bool {
	_, ok := inv[strings.ToLower(name)]
	return ok
}

// Get returns the named item, or nil and false if not held.
func (inv Inventory) Get(name string) (*Item, bool) {
	it, ok := inv[strings.ToLower(name)]
	return it, ok
}

// Add puts the item into the inventory, stacking quantity onto an existing
// entry with the same key. A zero quantity is treated as one.
func (inv Inventory) Add(it *Item) {
	if it.Quantity < 1 {
		it.Quantity = 1
	}
	if held, ok := inv[it.Key()]; ok {
		held.Quantity += it.Quantity
		return
	}
	inv[it.Key()] = it
}

// Remove takes qty of the named item out of the inventory and returns the
// removed portion as its own item. It fails with ErrItemNotFound or
// ErrInsufficientQuantity without mutating anything.
func (inv Inventory) Remove(name string, qty int) (*Item, error) {
	if qty < 1 {
		return nil, fmt.Errorf("cannot remove %d of %q", qty, name)
	}

	held, ok := inv[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrItemNotFound)
	}
	if held.Quantity < qty {
		return nil, fmt.Errorf("%q: %w", name, ErrInsufficientQuantity)
	}

	removed := held.Copy()
	removed.Quantity = qty

	held.Quantity -= qty
	if held.Quantity < 1 {
		delete(inv, held.Key())
	}

	return removed, nil
}

// Names returns the display names of all held items, sorted for stable
// output.
func (inv Inventory) Names() []string {
	names := make([]string, 0, len(inv))
	for _, it := range inv {
		names = append(names, it.Name)
	}
	sort.Strings(names)
	return names
}

// Weapons returns the display names of all weapon-tagged items, sorted.
func (inv Inventory) Weapons() []string {
	var names []string
	for _, it := range inv {
		if it.HasTag("weapon") {
			names = append(names, it.Name)
		}
	}
	sort.Strings(names)
	return names
}

func (inv Inventory) String() string {
	if len(inv) < 1 {
		return "(nothing)"
	}
	keys := make([]string, 0, len(inv))
	for k := range inv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = inv[k].String()
	}
	return strings.Join(parts, ", ")
}
