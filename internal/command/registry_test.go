package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// tests use a plain string handler type; the registry never calls handlers

func Test_Registry_Resolve(t *testing.T) {
	assert := assert.New(t)

	r := NewRegistry[string]()
	r.Register("look", "h-look", "look around")
	r.Register("inventory", "h-inv", "check inventory", "inv", "i")

	ent, ok := r.Resolve("look")
	assert.True(ok)
	assert.Equal("h-look", ent.Handler)

	// aliases land on the same canonical entry
	for _, verb := range []string{"inventory", "inv", "i"} {
		ent, ok = r.Resolve(verb)
		assert.True(ok, verb)
		assert.Equal("inventory", ent.Verb, verb)
		assert.Equal("h-inv", ent.Handler, verb)
	}

	// resolution is case-insensitive
	ent, ok = r.Resolve("LOOK")
	assert.True(ok)
	assert.Equal("look", ent.Verb)

	_, ok = r.Resolve("dance")
	assert.False(ok)
}

func Test_Registry_Register_lastWriteWins(t *testing.T) {
	assert := assert.New(t)

	r := NewRegistry[string]()
	r.Register("look", "h-old", "old help")
	r.Register("look", "h-new", "new help")

	ent, ok := r.Resolve("look")
	assert.True(ok)
	assert.Equal("h-new", ent.Handler)
	assert.Equal("new help", ent.Help)

	// re-registration does not duplicate the registration-order listing
	assert.Len(r.Entries(), 1)
}

func Test_Registry_Register_overrideRebindsAliases(t *testing.T) {
	assert := assert.New(t)

	r := NewRegistry[string]()
	r.Register("take", "h-take", "take a thing", "get", "grab")
	r.Register("take", "h-take2", "take a thing, but better")

	// the canonical verb got the new binding
	ent, ok := r.Resolve("take")
	assert.True(ok)
	assert.Equal("h-take2", ent.Handler)

	// the old aliases still point at the entry they were registered with
	ent, ok = r.Resolve("get")
	assert.True(ok)
	assert.Equal("h-take", ent.Handler)
}

func Test_Registry_Entries_registrationOrder(t *testing.T) {
	assert := assert.New(t)

	r := NewRegistry[string]()
	r.Register("zap", "h", "")
	r.Register("attack", "h", "", "hit")
	r.Register("look", "h", "")

	var verbs []string
	for _, ent := range r.Entries() {
		verbs = append(verbs, ent.Verb)
	}

	assert.Equal([]string{"zap", "attack", "look"}, verbs)
}

func Test_Registry_HelpTable(t *testing.T) {
	assert := assert.New(t)

	r := NewRegistry[string]()
	r.Register("look", "h", "Look around")
	r.Register("inventory", "h", "Check your inventory", "inv", "i")

	rows := r.HelpTable()

	assert.Equal([][2]string{
		{"LOOK", "Look around"},
		{"INVENTORY (INV/I)", "Check your inventory"},
	}, rows)
}
