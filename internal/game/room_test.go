package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// scriptedBehavior answers a fixed verb with a fixed response and records
// whether it was consulted.
type scriptedBehavior struct {
	Base
	verb   string
	resp   Response
	called bool
}

func (b *scriptedBehavior) Kind() string { return "scripted" }

func (b *scriptedBehavior) HandleInteraction(verb, target string, actor *Hero, item *Item) Response {
	b.called = true
	if verb == b.verb {
		return b.resp
	}
	return NoResponse()
}

func Test_Room_Interact_firstResponderWins(t *testing.T) {
	assert := assert.New(t)

	room := NewRoom("Cellar", "A damp cellar.")
	first := &scriptedBehavior{verb: "pull", resp: Respond("first")}
	second := &scriptedBehavior{verb: "pull", resp: Respond("second")}
	room.AddBehavior(first)
	room.AddBehavior(second)

	resp := room.Interact("pull", "lever", nil, nil)

	assert.Equal(OutcomeResponded, resp.Outcome)
	assert.Equal("first", resp.Text)
	assert.True(first.called)
	// dispatch stopped at the first responder
	assert.False(second.called)
}

func Test_Room_Interact_failedBehaviorIsSkipped(t *testing.T) {
	assert := assert.New(t)

	room := NewRoom("Cellar", "A damp cellar.")
	broken := &scriptedBehavior{verb: "pull", resp: Fail(errors.New("boom"))}
	working := &scriptedBehavior{verb: "pull", resp: Respond("done")}
	room.AddBehavior(broken)
	room.AddBehavior(working)

	resp := room.Interact("pull", "lever", nil, nil)

	assert.Equal(OutcomeResponded, resp.Outcome)
	assert.Equal("done", resp.Text)
}

func Test_Room_Interact_objectLookFallback(t *testing.T) {
	assert := assert.New(t)

	room := NewRoom("Cellar", "A damp cellar.")
	assert.NoError(room.AddObject(NewObject("Barrel", "An old barrel, smelling of vinegar.")))

	resp := room.Interact("look", "barrel", nil, nil)
	assert.Equal(OutcomeResponded, resp.Outcome)
	assert.Equal("An old barrel, smelling of vinegar.", resp.Text)

	// only look-like verbs fall back to the plain description
	resp = room.Interact("kick", "barrel", nil, nil)
	assert.Equal(OutcomeNone, resp.Outcome)
}

func Test_Room_Interact_noBehaviorsNoResponse(t *testing.T) {
	assert := assert.New(t)

	room := NewRoom("Cellar", "A damp cellar.")

	resp := room.Interact("pull", "lever", nil, nil)
	assert.Equal(OutcomeNone, resp.Outcome)
}

func Test_Room_AddObject_rejectsDuplicate(t *testing.T) {
	assert := assert.New(t)

	room := NewRoom("Cellar", "A damp cellar.")
	assert.NoError(room.AddObject(NewObject("barrel", "a barrel")))
	assert.Error(room.AddObject(NewObject("Barrel", "another barrel")))
}

type rewriteBehavior struct {
	Base
	suffix string
}

func (b *rewriteBehavior) Kind() string { return "rewrite" }

func (b *rewriteBehavior) Describe(base string) string { return base + b.suffix }

func Test_Room_Describe_behaviorsRewriteInOrder(t *testing.T) {
	assert := assert.New(t)

	room := NewRoom("Cellar", "A damp cellar.")
	room.AddBehavior(&rewriteBehavior{suffix: " One."})
	room.AddBehavior(&rewriteBehavior{suffix: " Two."})

	assert.Equal("A damp cellar. One. Two.", room.Describe())
}

func Test_Room_Describe_listsContents(t *testing.T) {
	assert := assert.New(t)

	room := NewRoom("Cellar", "A damp cellar.")
	room.AddItem(&Item{Name: "apple"})
	room.AddNPC(&NPC{Name: "guard", Description: "stands watch."})

	desc := room.Describe()
	assert.Contains(desc, "On the ground, you can see an apple.")
	assert.Contains(desc, "guard is here.")
}

func Test_Room_LivingEnemy(t *testing.T) {
	assert := assert.New(t)

	room := NewRoom("Lair", "A foul lair.")
	assert.Nil(room.LivingEnemy())

	dead := NewEnemy("rat", 5, 1, 5)
	dead.TakeDamage(5)
	alive := NewGoblin("goblin")
	room.Enemies = append(room.Enemies, dead, alive)

	assert.Same(alive, room.LivingEnemy())

	room.RemoveEnemy(alive)
	assert.Nil(room.LivingEnemy())
}
