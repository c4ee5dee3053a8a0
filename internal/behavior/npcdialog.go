package behavior

import (
	"fmt"
	"strings"

	"github.com/kmetzlaff/goblinear/internal/game"
)

// npcDialog attaches a talking NPC to a room. If the params include a quest
// table the NPC hands that quest out on first talk, reminds the hero while
// it is underway, and takes the turn-in when the objective is met.
type npcDialog struct {
	game.Base

	npcName string
	dialog  string

	// quest config; questName == "" means the NPC only chats
	questName   string
	questDesc   string
	questReward int
	objective   game.Objective
}

func newNPCDialog(room *game.Room, p Params, _ map[string]*game.Room) (game.Behavior, error) {
	b := &npcDialog{
		npcName: p.Str("npc", "villager"),
		dialog:  p.Str("dialog", "\"Nice weather we're having.\""),
	}
	room.AddNPC(&game.NPC{
		Name:        b.npcName,
		Description: "stands here, looking like they have something to say.",
	})

	if q := p.Table("quest"); q != nil {
		b.questName = q.Str("name", "")
		if b.questName == "" {
			return nil, fmt.Errorf("npc_dialog in room %q: quest table needs a name", room.Label)
		}
		b.questDesc = q.Str("description", "")
		b.questReward = q.Int("reward", 0)
		b.objective = game.Objective{
			Type:   q.Str("type", "collect"),
			Target: q.Str("target", ""),
			Count:  q.Int("count", 1),
		}
	}
	return b, nil
}

func (b *npcDialog) Kind() string { return "npc_dialog" }

func (b *npcDialog) HandleInteraction(verb, target string, actor *game.Hero, item *game.Item) game.Response {
	if verb != "talk" {
		return game.NoResponse()
	}
	if target != "" && !strings.EqualFold(target, b.npcName) {
		return game.NoResponse()
	}

	if b.questName == "" {
		return game.Respond("The %s says: %s", b.npcName, b.dialog)
	}
	return b.questTalk(actor)
}

func (b *npcDialog) questTalk(actor *game.Hero) game.Response {
	// a turned-in quest no longer shows as active, so check it first
	if actor.Quests.FindCompleted(b.questName) != nil {
		return game.Respond("The %s says: \"Thanks again for your help!\"", b.npcName)
	}

	q := actor.Quests.FindByName(b.questName)

	switch {
	case q == nil:
		// first meeting: pitch the quest
		fresh := game.NewQuest(b.questName, b.questDesc, b.questReward, b.objective)
		actor.Quests.Add(fresh)
		return game.Respond("The %s says: %s\nNew quest: %s", b.npcName, b.dialog, fresh)

	case q.Fulfilled():
		return b.turnIn(q, actor)

	default:
		return game.Respond("The %s says: \"How goes it? %s\" (%s)",
			b.npcName, b.questDesc, q)
	}
}

func (b *npcDialog) turnIn(q *game.Quest, actor *game.Hero) game.Response {
	if b.objective.Type == "collect" && b.objective.Target != "" {
		if _, err := actor.Inventory.Remove(b.objective.Target, b.objective.Count); err != nil {
			return game.Respond("The %s says: \"You had %s? Bring them to me and we'll talk.\"",
				b.npcName, b.objective.Target)
		}
	}
	actor.Quests.Complete(q, actor)
	return game.Respond("The %s says: \"You actually did it! Here, take this.\"\nQuest complete: %s. You receive %d gold.",
		b.npcName, q.Name, q.Reward)
}
