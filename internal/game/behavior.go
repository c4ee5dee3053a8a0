package game

// File behavior.go defines the interaction protocol between rooms and their
// attached behaviors.

import "fmt"

// Outcome classifies how a behavior answered a capability call.
type Outcome int

const (
	// OutcomeNone means the behavior had nothing to say; the caller should
	// try the next behavior.
	OutcomeNone Outcome = iota

	// OutcomeResponded means the behavior handled the call and produced
	// player-visible text.
	OutcomeResponded

	// OutcomeFailed means the behavior hit an internal fault. Dispatch logs
	// it and treats it as no response; it never aborts the command line.
	OutcomeFailed
)

// Response is the result of one behavior capability call.
type Response struct {
	Outcome Outcome
	Text    string
	Err     error
}

// NoResponse is the Response for a behavior that does not handle a call.
func NoResponse() Response {
	return Response{Outcome: OutcomeNone}
}

// Respond builds a responded Response from a format string.
func Respond(format string, a ...interface{}) Response {
	return Response{Outcome: OutcomeResponded, Text: fmt.Sprintf(format, a...)}
}

// Fail builds a failed Response carrying the fault.
func Fail(err error) Response {
	return Response{Outcome: OutcomeFailed, Err: err}
}

// Behavior is a pluggable interaction unit attached to a room. A behavior
// implements whichever of the four capabilities it needs and inherits no-ops
// for the rest from Base; callers treat a no-op as "no response", never as
// an error.
//
// Capability calls for verbs that only inspect state, such as "look", must
// not mutate world state.
type Behavior interface {
	// Kind returns the registry key the behavior was built from.
	Kind() string

	// Describe rewrites the room's description. Behaviors that do not alter
	// the description return base unchanged.
	Describe(base string) string

	// OnEnter runs when the hero enters the room the behavior is attached
	// to.
	OnEnter(actor *Hero) Response

	// HandleItemUse runs when an item is used in the room at large.
	HandleItemUse(verb string, item *Item, actor *Hero) Response

	// HandleInteraction runs for verbs aimed at the room or a named target
	// in it. item is non-nil when the verb came from "use X on Y".
	HandleInteraction(verb, target string, actor *Hero, item *Item) Response
}

// Base provides no-op defaults for every optional capability. Concrete
// behaviors embed it and override only what they handle.
type Base struct{}

func (Base) Describe(base string) string { return base }

func (Base) OnEnter(*Hero) Response { return NoResponse() }

func (Base) HandleItemUse(string, *Item, *Hero) Response { return NoResponse() }

func (Base) HandleInteraction(string, string, *Hero, *Item) Response { return NoResponse() }
