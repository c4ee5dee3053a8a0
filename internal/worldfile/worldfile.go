// Package worldfile loads game worlds from TOML world data files. A world
// file declares the hero, every room with its items, objects, NPCs, enemies
// and behaviors, and the label of the starting room.
package worldfile

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/kmetzlaff/goblinear/internal/game"
)

// FormatName is the value required in a world file's format key.
const FormatName = "goblinear"

// ErrNoRooms is returned when a world file parses cleanly but defines no
// rooms.
var ErrNoRooms = errors.New("world file defines no rooms")

// WorldData is a fully linked world ready to hand to a session.
type WorldData struct {
	// Rooms holds every room, keyed by upper-cased label, with exits,
	// contents and behaviors already wired.
	Rooms map[string]*game.Room

	// Start is the label of the room the hero begins in.
	Start string

	// Hero is the configured player character.
	Hero *game.Hero
}

// StartRoom returns the room the hero begins in.
func (wd WorldData) StartRoom() *game.Room {
	return wd.Rooms[wd.Start]
}

// LoadFile reads and parses the world file at path.
func LoadFile(path string) (WorldData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return WorldData{}, fmt.Errorf("reading world file: %w", err)
	}

	wd, err := Parse(data)
	if err != nil {
		return WorldData{}, fmt.Errorf("%s: %w", path, err)
	}
	return wd, nil
}

// Parse decodes TOML world data and links it into a playable world.
func Parse(data []byte) (WorldData, error) {
	var top topLevelWorldData
	if err := toml.Unmarshal(data, &top); err != nil {
		return WorldData{}, fmt.Errorf("decoding world data: %w", err)
	}
	if top.Format != "" && top.Format != FormatName {
		return WorldData{}, fmt.Errorf("unsupported format %q", top.Format)
	}
	return parseWorldData(top)
}
