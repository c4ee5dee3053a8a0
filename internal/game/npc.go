package game

import "strings"

// NPC is a non-player character standing in a room. Dialog and quest hooks
// live on the behavior attached to the room, not on the NPC itself.
type NPC struct {
	Name string

	// Description is the short line shown with the room description.
	Description string
}

// Key returns the lower-cased name NPCs are indexed under.
func (n *NPC) Key() string {
	return strings.ToLower(n.Name)
}
