package behavior

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kmetzlaff/goblinear/internal/game"
)

func questNPCFixture(t *testing.T) *game.Room {
	t.Helper()

	camp := game.NewRoom("Camp", "A small camp around a fire.")
	b, err := New("npc_dialog", camp, Params{
		"npc":    "hunter",
		"dialog": `"Goblins took my ears. Well, not MY ears."`,
		"quest": map[string]interface{}{
			"name":        "Goblin Menace",
			"description": "Bring back 2 goblin ears.",
			"reward":      int64(50),
			"target":      "goblin ear",
			"count":       int64(2),
		},
	}, nil)
	if err != nil {
		t.Fatalf("could not build npc_dialog: %v", err)
	}
	camp.AddBehavior(b)
	return camp
}

func Test_npcDialog_plainChatter(t *testing.T) {
	assert := assert.New(t)

	inn := game.NewRoom("Inn", "A warm taproom.")
	b, err := New("npc_dialog", inn, Params{"npc": "barkeep", "dialog": `"What'll it be?"`}, nil)
	assert.NoError(err)
	inn.AddBehavior(b)
	hero := game.NewHero("Conrad", 1)

	resp := inn.Interact("talk", "barkeep", hero, nil)

	assert.Equal(game.OutcomeResponded, resp.Outcome)
	assert.Contains(resp.Text, `"What'll it be?"`)
	assert.Empty(hero.Quests.Active())
}

func Test_npcDialog_addsNPCToRoom(t *testing.T) {
	assert := assert.New(t)

	camp := questNPCFixture(t)

	_, ok := camp.NPCs["hunter"]
	assert.True(ok)
}

func Test_npcDialog_firstTalkHandsOutQuest(t *testing.T) {
	assert := assert.New(t)

	camp := questNPCFixture(t)
	hero := game.NewHero("Conrad", 1)

	resp := camp.Interact("talk", "hunter", hero, nil)

	assert.Equal(game.OutcomeResponded, resp.Outcome)
	assert.Contains(resp.Text, "New quest: Goblin Menace (0/2)")
	assert.Len(hero.Quests.Active(), 1)
}

func Test_npcDialog_repeatTalkDoesNotDuplicateQuest(t *testing.T) {
	assert := assert.New(t)

	camp := questNPCFixture(t)
	hero := game.NewHero("Conrad", 1)

	camp.Interact("talk", "hunter", hero, nil)
	resp := camp.Interact("talk", "hunter", hero, nil)

	assert.Contains(resp.Text, "How goes it?")
	assert.Len(hero.Quests.Active(), 1)
}

func Test_npcDialog_turnInTakesItemsAndPays(t *testing.T) {
	assert := assert.New(t)

	camp := questNPCFixture(t)
	hero := game.NewHero("Conrad", 1)

	camp.Interact("talk", "hunter", hero, nil)
	hero.Inventory.Add(&game.Item{Name: "goblin ear", Quantity: 2})
	hero.Quests.NotifyCollected("goblin ear", 2)

	resp := camp.Interact("talk", "hunter", hero, nil)

	assert.Contains(resp.Text, "Quest complete: Goblin Menace. You receive 50 gold.")
	assert.Equal(50, hero.Gold)
	assert.False(hero.Inventory.Has("goblin ear"))
	assert.Empty(hero.Quests.Active())

	// talking again after completion is just gratitude
	resp = camp.Interact("talk", "hunter", hero, nil)
	assert.Contains(resp.Text, "Thanks again")
	assert.Equal(50, hero.Gold)
}

func Test_npcDialog_turnInRequiresTheItems(t *testing.T) {
	assert := assert.New(t)

	camp := questNPCFixture(t)
	hero := game.NewHero("Conrad", 1)

	camp.Interact("talk", "hunter", hero, nil)
	// progress says fulfilled but the ears were dropped somewhere
	hero.Quests.NotifyCollected("goblin ear", 2)

	resp := camp.Interact("talk", "hunter", hero, nil)

	assert.Contains(resp.Text, "Bring them to me")
	assert.Equal(0, hero.Gold)
	assert.Len(hero.Quests.Active(), 1)
}

func Test_npcDialog_wrongNameNoResponse(t *testing.T) {
	assert := assert.New(t)

	camp := questNPCFixture(t)
	hero := game.NewHero("Conrad", 1)

	resp := camp.Interact("talk", "ghost", hero, nil)
	assert.Equal(game.OutcomeNone, resp.Outcome)
}
