package game

// File quest.go holds quests and the hero's quest log.

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Objective is what a quest asks for. Type is currently always "collect";
// Target names the item and Count how many.
type Objective struct {
	Type   string
	Target string
	Count  int
}

// Quest is a task an NPC can hand out. Progress counts toward the
// objective's Count.
type Quest struct {
	ID          uuid.UUID
	Name        string
	Description string

	// Reward is the gold granted on turn-in.
	Reward int

	Objective Objective
	Progress  int
	Completed bool
}

// NewQuest creates a quest with a fresh ID.
func NewQuest(name, description string, reward int, obj Objective) *Quest {
	if obj.Count < 1 {
		obj.Count = 1
	}
	return &Quest{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Reward:      reward,
		Objective:   obj,
	}
}

// Fulfilled reports whether the objective has been met.
func (q *Quest) Fulfilled() bool {
	return q.Progress >= q.Objective.Count
}

func (q *Quest) String() string {
	return fmt.Sprintf("%s (%d/%d)", q.Name, q.Progress, q.Objective.Count)
}

// QuestLog tracks the hero's active and completed quests. Quests are keyed
// by ID but deduplicated by name, so an NPC offering the same quest twice
// registers it only once.
type QuestLog struct {
	active    map[uuid.UUID]*Quest
	order     []uuid.UUID
	completed []*Quest
}

// NewQuestLog returns an empty log.
func NewQuestLog() *QuestLog {
	return &QuestLog{active: make(map[uuid.UUID]*Quest)}
}

// Add registers the quest. It returns false without mutating the log if a
// quest with the same name is already active or has been completed.
func (ql *QuestLog) Add(q *Quest) bool {
	if ql.FindByName(q.Name) != nil || ql.FindCompleted(q.Name) != nil {
		return false
	}
	ql.active[q.ID] = q
	ql.order = append(ql.order, q.ID)
	return true
}

// FindByName returns the active quest with the given name, or nil.
func (ql *QuestLog) FindByName(name string) *Quest {
	for _, q := range ql.active {
		if strings.EqualFold(q.Name, name) {
			return q
		}
	}
	return nil
}

// FindCompleted returns the turned-in quest with the given name, or nil.
func (ql *QuestLog) FindCompleted(name string) *Quest {
	for _, q := range ql.completed {
		if strings.EqualFold(q.Name, name) {
			return q
		}
	}
	return nil
}

// Active returns the active quests in the order they were accepted.
func (ql *QuestLog) Active() []*Quest {
	out := make([]*Quest, 0, len(ql.order))
	for _, id := range ql.order {
		if q, ok := ql.active[id]; ok {
			out = append(out, q)
		}
	}
	return out
}

// NotifyCollected records that the hero picked up qty of the named item and
// advances any collect objectives that target it. It returns a progress
// message per advanced quest.
func (ql *QuestLog) NotifyCollected(itemName string, qty int) []string {
	var msgs []string
	for _, id := range ql.order {
		q, ok := ql.active[id]
		if !ok || q.Objective.Type != "collect" {
			continue
		}
		if !strings.EqualFold(q.Objective.Target, itemName) || q.Fulfilled() {
			continue
		}
		q.Progress += qty
		if q.Progress > q.Objective.Count {
			q.Progress = q.Objective.Count
		}
		if q.Fulfilled() {
			msgs = append(msgs, fmt.Sprintf("Quest objective complete: %s. Return to turn it in.", q.Name))
		} else {
			msgs = append(msgs, fmt.Sprintf("Quest progress: %s.", q))
		}
	}
	return msgs
}

// Complete turns in the quest, moving it to the completed list and paying
// its reward to the hero. It returns false if the quest is not active or its
// objective is unmet.
func (ql *QuestLog) Complete(q *Quest, hero *Hero) bool {
	held, ok := ql.active[q.ID]
	if !ok || !held.Fulfilled() {
		return false
	}

	delete(ql.active, q.ID)
	held.Completed = true
	ql.completed = append(ql.completed, held)
	hero.AddGold(held.Reward)
	return true
}
