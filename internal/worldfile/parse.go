package worldfile

import (
	"fmt"
	"strings"

	behaviors "github.com/kmetzlaff/goblinear/internal/behavior"
	"github.com/kmetzlaff/goblinear/internal/game"
)

// parseWorldData links the decoded top-level data into a playable world.
// Rooms are built in three phases so that exits and behaviors can refer to
// any room regardless of declaration order: first every room shell, then
// exits, then behaviors.
func parseWorldData(top topLevelWorldData) (WorldData, error) {
	if len(top.Rooms) == 0 {
		return WorldData{}, ErrNoRooms
	}

	roomsByLabel := make(map[string]*game.Room, len(top.Rooms))
	for _, tr := range top.Rooms {
		label := strings.ToUpper(strings.TrimSpace(tr.Label))
		if label == "" {
			return WorldData{}, fmt.Errorf("room %q has no label", tr.Name)
		}
		if _, dup := roomsByLabel[label]; dup {
			return WorldData{}, fmt.Errorf("duplicate room label %q", label)
		}

		r, err := buildRoom(label, tr)
		if err != nil {
			return WorldData{}, err
		}
		roomsByLabel[label] = r
	}

	for _, tr := range top.Rooms {
		r := roomsByLabel[strings.ToUpper(strings.TrimSpace(tr.Label))]
		for _, eg := range tr.Exits {
			dest, ok := roomsByLabel[strings.ToUpper(eg.Dest)]
			if !ok {
				return WorldData{}, fmt.Errorf("room %q: exit %q leads to unknown room %q",
					r.Label, eg.Direction, eg.Dest)
			}
			if eg.Direction == "" {
				return WorldData{}, fmt.Errorf("room %q: exit to %q has no direction", r.Label, eg.Dest)
			}
			r.AddExit(eg.Direction, dest)
		}

		for _, tb := range tr.Behaviors {
			b, err := behaviors.New(tb.Kind, r, behaviors.Params(tb.Params), roomsByLabel)
			if err != nil {
				return WorldData{}, fmt.Errorf("room %q: %w", r.Label, err)
			}
			r.AddBehavior(b)
		}
	}

	start := strings.ToUpper(strings.TrimSpace(top.World.Start))
	if start == "" {
		return WorldData{}, fmt.Errorf("world data missing start room")
	}
	if _, ok := roomsByLabel[start]; !ok {
		return WorldData{}, fmt.Errorf("start room %q is not defined", start)
	}

	return WorldData{
		Rooms: roomsByLabel,
		Start: start,
		Hero:  top.Hero.toGameHero(),
	}, nil
}

func buildRoom(label string, tr room) (*game.Room, error) {
	name := tr.Name
	if name == "" {
		name = label
	}
	r := game.NewRoom(name, tr.Description)
	r.Label = label
	r.Locked = tr.Locked

	for _, ti := range tr.Items {
		if ti.Name == "" {
			return nil, fmt.Errorf("room %q: item with no name", label)
		}
		r.AddItem(ti.toGameItem())
	}
	for _, to := range tr.Objects {
		if to.Name == "" {
			return nil, fmt.Errorf("room %q: object with no name", label)
		}
		if err := r.AddObject(to.toGameObject()); err != nil {
			return nil, fmt.Errorf("room %q: %w", label, err)
		}
	}
	for _, tn := range tr.NPCs {
		if tn.Name == "" {
			return nil, fmt.Errorf("room %q: npc with no name", label)
		}
		r.AddNPC(&game.NPC{Name: tn.Name, Description: tn.Description})
	}
	for _, te := range tr.Enemies {
		e, err := te.toGameEnemy()
		if err != nil {
			return nil, fmt.Errorf("room %q: %w", label, err)
		}
		r.Enemies = append(r.Enemies, e)
	}
	return r, nil
}
