package command

import "strings"

// TargetKind says where a "use X on Y" command resolves to.
type TargetKind int

const (
	// TargetNone means no usable target was named.
	TargetNone TargetKind = iota

	// TargetSelf means the player targeted themself.
	TargetSelf

	// TargetRoom means the player targeted the room at large.
	TargetRoom

	// TargetObject means the player targeted a named object in the room.
	TargetObject
)

// UseTarget is the resolved destination of a use command. Name is only set
// for TargetObject and carries the object's lookup name.
type UseTarget struct {
	Kind TargetKind
	Name string
}

var selfWords = map[string]bool{
	"self":   true,
	"me":     true,
	"myself": true,
}

var roomWords = map[string]bool{
	"room":      true,
	"the room":  true,
	"this room": true,
}

// ParseUse splits a use argument of the form "X", "X on Y", or "X in Y" into
// the item name and its resolved target. actorName matches as a self target.
// isObject reports whether a name refers to an object in the current room;
// it is consulted at interpretation time, never cached.
func ParseUse(arg, actorName string, isObject func(name string) bool) (item string, tgt UseTarget) {
	arg = strings.ToLower(strings.TrimSpace(arg))

	var targetPart string
	if before, after, found := strings.Cut(arg, " on "); found {
		arg, targetPart = before, after
	} else if before, after, found := strings.Cut(arg, " in "); found {
		arg, targetPart = before, after
	}

	item = strings.TrimSpace(arg)
	targetPart = strings.TrimSpace(targetPart)

	if targetPart == "" {
		return item, UseTarget{Kind: TargetNone}
	}
	if selfWords[targetPart] || targetPart == strings.ToLower(actorName) {
		return item, UseTarget{Kind: TargetSelf}
	}
	if roomWords[targetPart] {
		return item, UseTarget{Kind: TargetRoom}
	}
	if isObject != nil && isObject(targetPart) {
		return item, UseTarget{Kind: TargetObject, Name: targetPart}
	}
	return item, UseTarget{Kind: TargetNone, Name: targetPart}
}
