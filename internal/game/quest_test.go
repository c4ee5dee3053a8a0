package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func earQuest() *Quest {
	return NewQuest("Goblin Menace", "Bring me 2 goblin ears.", 50,
		Objective{Type: "collect", Target: "goblin ear", Count: 2})
}

func Test_QuestLog_Add_dedupesByName(t *testing.T) {
	assert := assert.New(t)

	ql := NewQuestLog()

	assert.True(ql.Add(earQuest()))
	// same quest offered again, different ID, same name
	assert.False(ql.Add(earQuest()))
	assert.Len(ql.Active(), 1)
}

func Test_QuestLog_Add_rejectsCompletedName(t *testing.T) {
	assert := assert.New(t)

	ql := NewQuestLog()
	hero := NewHero("Conrad", 1)

	q := earQuest()
	ql.Add(q)
	q.Progress = 2
	assert.True(ql.Complete(q, hero))

	assert.False(ql.Add(earQuest()))
	assert.Empty(ql.Active())
}

func Test_QuestLog_FindCompleted(t *testing.T) {
	assert := assert.New(t)

	ql := NewQuestLog()
	hero := NewHero("Conrad", 1)

	q := earQuest()
	ql.Add(q)
	assert.Nil(ql.FindCompleted(q.Name))

	q.Progress = 2
	assert.True(ql.Complete(q, hero))

	// turned-in quests are found by name, case-insensitively, and no
	// longer show as active
	assert.Equal(q, ql.FindCompleted("GOBLIN MENACE"))
	assert.Nil(ql.FindByName(q.Name))
}

func Test_QuestLog_NotifyCollected(t *testing.T) {
	assert := assert.New(t)

	ql := NewQuestLog()
	ql.Add(earQuest())

	msgs := ql.NotifyCollected("Goblin Ear", 1)
	assert.Equal([]string{"Quest progress: Goblin Menace (1/2)."}, msgs)

	msgs = ql.NotifyCollected("goblin ear", 1)
	assert.Equal([]string{"Quest objective complete: Goblin Menace. Return to turn it in."}, msgs)

	// a fulfilled quest stops counting
	msgs = ql.NotifyCollected("goblin ear", 1)
	assert.Empty(msgs)
}

func Test_QuestLog_NotifyCollected_ignoresOtherItems(t *testing.T) {
	assert := assert.New(t)

	ql := NewQuestLog()
	ql.Add(earQuest())

	assert.Empty(ql.NotifyCollected("coin", 3))
}

func Test_QuestLog_Complete(t *testing.T) {
	assert := assert.New(t)

	ql := NewQuestLog()
	hero := NewHero("Conrad", 1)
	q := earQuest()
	ql.Add(q)

	// not fulfilled yet
	assert.False(ql.Complete(q, hero))
	assert.Equal(0, hero.Gold)

	q.Progress = 2
	assert.True(ql.Complete(q, hero))
	assert.Equal(50, hero.Gold)
	assert.True(q.Completed)
	assert.Empty(ql.Active())

	// double turn-in pays nothing
	assert.False(ql.Complete(q, hero))
	assert.Equal(50, hero.Gold)
}
