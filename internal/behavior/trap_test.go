package behavior

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kmetzlaff/goblinear/internal/game"
)

func trapFixture(t *testing.T) (*game.Room, game.Behavior) {
	t.Helper()

	corridor := game.NewRoom("Corridor", "A narrow corridor.")
	b, err := New("trap", corridor, Params{"damage": int64(15)}, nil)
	if err != nil {
		t.Fatalf("could not build trap: %v", err)
	}
	corridor.AddBehavior(b)
	return corridor, b
}

func Test_trap_firstEntryOnlyWarns(t *testing.T) {
	assert := assert.New(t)

	_, b := trapFixture(t)
	hero := game.NewHero("Conrad", 1)

	resp := b.OnEnter(hero)

	assert.Equal(game.OutcomeResponded, resp.Outcome)
	assert.Contains(resp.Text, "You stop short")
	assert.Equal(hero.MaxHealth(), hero.Health())
}

func Test_trap_secondEntrySpringsOnce(t *testing.T) {
	assert := assert.New(t)

	_, b := trapFixture(t)
	hero := game.NewHero("Conrad", 1)

	b.OnEnter(hero)
	resp := b.OnEnter(hero)

	assert.Contains(resp.Text, "You take 15 damage.")
	assert.Equal(hero.MaxHealth()-15, hero.Health())

	// spent traps stay spent
	resp = b.OnEnter(hero)
	assert.Equal(game.OutcomeNone, resp.Outcome)
	assert.Equal(hero.MaxHealth()-15, hero.Health())
}

func Test_trap_disarmWithRightTool(t *testing.T) {
	assert := assert.New(t)

	corridor, b := trapFixture(t)
	hero := game.NewHero("Conrad", 1)
	dagger := &game.Item{Name: "dagger", Tags: []string{"weapon"}}
	hero.Inventory.Add(dagger)

	b.OnEnter(hero)
	resp := corridor.Interact("use", "tripwire", hero, dagger)

	assert.Contains(resp.Text, "disarmed")

	// a disarmed trap never springs
	resp = b.OnEnter(hero)
	assert.Equal(game.OutcomeNone, resp.Outcome)
	assert.Equal(hero.MaxHealth(), hero.Health())
}

func Test_trap_wrongToolDoesNotDisarm(t *testing.T) {
	assert := assert.New(t)

	corridor, b := trapFixture(t)
	hero := game.NewHero("Conrad", 1)
	bread := &game.Item{Name: "bread"}
	hero.Inventory.Add(bread)

	b.OnEnter(hero)
	resp := corridor.Interact("use", "tripwire", hero, bread)
	assert.Contains(resp.Text, "no good against")

	resp = b.OnEnter(hero)
	assert.Contains(resp.Text, "damage")
}

func Test_trap_cutVerbUsesCarriedTool(t *testing.T) {
	assert := assert.New(t)

	corridor, b := trapFixture(t)
	hero := game.NewHero("Conrad", 1)

	// without the tool, cutting is refused
	resp := corridor.Interact("cut", "tripwire", hero, nil)
	assert.Contains(resp.Text, "You'd need a dagger")

	hero.Inventory.Add(&game.Item{Name: "dagger"})
	resp = corridor.Interact("cut", "tripwire", hero, nil)
	assert.Contains(resp.Text, "disarmed")

	resp = b.OnEnter(hero)
	assert.Equal(game.OutcomeNone, resp.Outcome)
}

func Test_trap_examineRevealsState(t *testing.T) {
	assert := assert.New(t)

	corridor, _ := trapFixture(t)
	hero := game.NewHero("Conrad", 1)
	hero.Inventory.Add(&game.Item{Name: "dagger"})

	resp := corridor.Interact("examine", "tripwire", hero, nil)
	assert.Contains(resp.Text, "nearly invisible")

	corridor.Interact("cut", "tripwire", hero, nil)
	resp = corridor.Interact("examine", "tripwire", hero, nil)
	assert.Contains(resp.Text, "hangs slack")
}
