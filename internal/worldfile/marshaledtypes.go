package worldfile

import (
	"fmt"
	"strings"

	"github.com/kmetzlaff/goblinear/internal/game"
)

// topLevelWorldData is the top-level structure containing all keys in a
// complete world data file.
type topLevelWorldData struct {
	Format string `toml:"format"`
	World  world  `toml:"world"`
	Hero   hero   `toml:"hero"`
	Rooms  []room `toml:"room"`
}

type world struct {
	Start string `toml:"start"`
}

type hero struct {
	Name  string `toml:"name"`
	Level int    `toml:"level"`
	Gold  int    `toml:"gold"`
	Items []item `toml:"item"`
}

func (th hero) toGameHero() *game.Hero {
	name := th.Name
	if name == "" {
		name = "Hero"
	}
	h := game.NewHero(name, th.Level)
	h.Gold = th.Gold
	for _, it := range th.Items {
		h.Inventory.Add(it.toGameItem())
	}
	return h
}

type room struct {
	Label       string `toml:"label"`
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Locked      bool   `toml:"locked"`

	Exits     []exit     `toml:"exit"`
	Items     []item     `toml:"item"`
	Objects   []object   `toml:"object"`
	NPCs      []npc      `toml:"npc"`
	Enemies   []enemy    `toml:"enemy"`
	Behaviors []behavior `toml:"behavior"`
}

type exit struct {
	Direction string `toml:"direction"`
	Dest      string `toml:"dest"`
}

type item struct {
	Name       string   `toml:"name"`
	Cost       int      `toml:"cost"`
	Quantity   int      `toml:"quantity"`
	Usable     bool     `toml:"usable"`
	Consumable bool     `toml:"consumable"`
	Equipment  bool     `toml:"equipment"`
	Effect     string   `toml:"effect"`
	Value      int      `toml:"value"`
	Tags       []string `toml:"tags"`
}

func (ti item) toGameItem() *game.Item {
	qty := ti.Quantity
	if qty < 1 {
		qty = 1
	}

	effect := game.EffectNone
	switch strings.ToLower(ti.Effect) {
	case "heal":
		effect = game.EffectHeal
	case "damage":
		effect = game.EffectDamage
	}

	return &game.Item{
		Name:        ti.Name,
		Cost:        ti.Cost,
		Quantity:    qty,
		Usable:      ti.Usable || effect != game.EffectNone,
		Consumable:  ti.Consumable,
		Equipment:   ti.Equipment,
		Effect:      effect,
		EffectValue: ti.Value,
		Tags:        append([]string(nil), ti.Tags...),
	}
}

type object struct {
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	Tags        []string `toml:"tags"`
}

func (to object) toGameObject() *game.Object {
	o := game.NewObject(to.Name, to.Description)
	for _, t := range to.Tags {
		o.AddTag(t)
	}
	return o
}

type npc struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
}

type enemy struct {
	// Kind selects a stock enemy, "goblin" or "troll". Custom enemies leave
	// it empty and set the stats directly.
	Kind string `toml:"kind"`

	Name   string `toml:"name"`
	Health int    `toml:"health"`
	Damage int    `toml:"damage"`
	Weapon string `toml:"weapon"`
	XP     int    `toml:"xp"`
	Gold   int    `toml:"gold"`
	Reward *item  `toml:"reward"`
}

func (te enemy) toGameEnemy() (*game.Enemy, error) {
	var e *game.Enemy
	switch strings.ToLower(te.Kind) {
	case "goblin":
		e = game.NewGoblin(orDefault(te.Name, "goblin"))
	case "troll":
		e = game.NewTroll(orDefault(te.Name, "troll"))
	case "":
		if te.Name == "" {
			return nil, fmt.Errorf("custom enemy needs a name")
		}
		e = game.NewEnemy(te.Name, te.Health, te.Damage, te.XP)
	default:
		return nil, fmt.Errorf("unknown enemy kind %q", te.Kind)
	}

	if te.Weapon != "" {
		e.Weapon = te.Weapon
	}
	e.Gold += te.Gold
	if te.Reward != nil {
		e.Reward = te.Reward.toGameItem()
	}
	return e, nil
}

type behavior struct {
	Kind   string                 `toml:"kind"`
	Params map[string]interface{} `toml:"params"`
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
