// Package game implements the game session: command dispatch, the concrete
// command handlers, rooms and their interaction behaviors, and the combat
// state machine.
package game

import (
	"fmt"
	"log/slog"

	"github.com/dekarrin/rosed"
	"github.com/kmetzlaff/goblinear/internal/command"
	"github.com/kmetzlaff/goblinear/internal/qerrors"
)

var textFormatOptions = rosed.Options{
	PreserveParagraphs: true,
	IndentStr:          "  ",
}

// IODevice is the session's output channel. Output is fire-and-forget from
// the handlers' point of view; write errors are logged, not surfaced to the
// player.
type IODevice struct {
	// Width is how wide to wrap output lines. Values below 2 fall back
	// to 80.
	Width int

	// Output sends one block of text to the player. If s is empty an empty
	// line is sent.
	Output func(s string, a ...interface{}) error
}

// Request is the per-dispatch command view handlers receive.
type Request = command.Request

// Context carries the references a handler may touch: the current hero, the
// current room, and the owning session. It is built fresh for every dispatch
// and discarded afterward; handlers must not retain it.
type Context struct {
	Hero    *Hero
	Room    *Room
	Session *Session
}

// Handler is the uniform command handler signature. Handlers produce user
// feedback through the session's output device and mutate state through the
// context; a returned error is shown to the player as its game message and
// never aborts the rest of a chained line.
type Handler func(req Request, ctx *Context) error

// Session is the single-player game session: the hero, the current room,
// the command registry, and combat state. All mutation happens on the one
// synchronous dispatch path; there is no locking.
type Session struct {
	Hero        *Hero
	CurrentRoom *Room

	Registry *command.Registry[Handler]

	// InCombat and CurrentEnemy are the combat machine's state. The enemy
	// reference is a weak association into room-owned data.
	InCombat     bool
	CurrentEnemy *Enemy

	io       IODevice
	gameOver bool
	quitting bool
	log      *slog.Logger
}

// NewSession creates a session with the default command set registered. The
// starting room's entry hooks do not run; call ShowRoom to print the opening
// description.
func NewSession(hero *Hero, start *Room, io IODevice) (*Session, error) {
	if hero == nil {
		return nil, fmt.Errorf("session requires a hero")
	}
	if start == nil {
		return nil, fmt.Errorf("session requires a starting room")
	}
	if io.Output == nil {
		return nil, fmt.Errorf("io device must define an Output function")
	}
	if io.Width < 2 {
		io.Width = 80
	}

	s := &Session{
		Hero:        hero,
		CurrentRoom: start,
		Registry:    command.NewRegistry[Handler](),
		io:          io,
		log:         slog.Default(),
	}
	s.registerDefaults()
	return s, nil
}

// GameOver reports whether the hero has been defeated.
func (s *Session) GameOver() bool {
	return s.gameOver
}

// Done reports whether the session should stop reading input, either from
// defeat or from the quit command.
func (s *Session) Done() bool {
	return s.gameOver || s.quitting
}

// say formats, wraps, and writes one block of output.
func (s *Session) say(format string, a ...interface{}) {
	text := fmt.Sprintf(format, a...)
	text = rosed.Edit(text).WrapOpts(s.io.Width, textFormatOptions).String()
	if err := s.io.Output("%s", text+"\n"); err != nil {
		s.log.Warn("could not write output", "error", err)
	}
}

// ParseAndExecute splits one raw input line into verb phrases and dispatches
// each in order. A verb that is not understood reports itself and does not
// stop the rest of the chain.
func (s *Session) ParseAndExecute(line string) {
	phrases := command.Split(line)

	// Legacy gag: "take X and drop X" collapses to a single confirmation
	// instead of running both commands. Deliberately narrow; not a general
	// rule.
	if len(phrases) == 2 &&
		phrases[0].Verb == "take" && phrases[1].Verb == "drop" &&
		phrases[0].Arg != "" && phrases[0].Arg == phrases[1].Arg {
		s.say("You picked up and dropped the %s.", phrases[0].Arg)
		return
	}

	for _, p := range phrases {
		s.dispatch(p)
		if s.Done() {
			return
		}
	}
}

// dispatch resolves and runs a single verb phrase against fresh context.
func (s *Session) dispatch(p command.Phrase) {
	ent, ok := s.Registry.Resolve(p.Verb)
	if !ok {
		s.dispatchUnknown(p)
		return
	}

	ctx := &Context{
		Hero:    s.Hero,
		Room:    s.CurrentRoom,
		Session: s,
	}
	req := command.NewRequest(ent.Verb, p)

	if err := ent.Handler(req, ctx); err != nil {
		s.log.Debug("command failed", "verb", req.Verb, "error", err)
		s.say("%s", qerrors.GameMessage(err))
	}
}

// dispatchUnknown gives the room's behaviors a chance at a verb the registry
// does not know before telling the player it was not understood.
func (s *Session) dispatchUnknown(p command.Phrase) {
	resp := s.CurrentRoom.Interact(p.Verb, p.Arg, s.Hero, nil)
	if resp.Outcome == OutcomeResponded {
		s.say("%s", resp.Text)
		return
	}

	msg := fmt.Sprintf("I don't know how to %q. Try 'help' for a list of commands.", p.Verb)
	if hint := command.Suggest(p.Verb, s.Registry.Verbs()); hint != "" {
		msg += fmt.Sprintf(" (Did you mean %q?)", hint)
	}
	s.say("%s", msg)
}

// ShowRoom prints the current room's banner, description, and exits.
func (s *Session) ShowRoom() {
	r := s.CurrentRoom
	out := fmt.Sprintf("--- You are in the %s ---\n\n%s", r.Name, r.Describe())
	if len(r.Exits) > 0 {
		out += "\n\nExits: "
		for i, d := range r.ExitNames() {
			if i > 0 {
				out += ", "
			}
			out += d
		}
	}
	s.say("%s", out)
}

// EnterRoom moves the hero into next: entry hooks run, the room is shown,
// and combat begins if a living enemy is present.
func (s *Session) EnterRoom(next *Room) {
	s.Hero.LastRoom = s.CurrentRoom
	s.CurrentRoom = next

	for _, b := range next.Behaviors() {
		resp := b.OnEnter(s.Hero)
		switch resp.Outcome {
		case OutcomeResponded:
			s.say("%s", resp.Text)
		case OutcomeFailed:
			s.log.Warn("behavior fault on room entry",
				"room", next.Name, "behavior", b.Kind(), "error", resp.Err)
		}
	}

	if !s.Hero.IsAlive() {
		s.say("%s has perished. Game over.", s.Hero.Name)
		s.gameOver = true
		return
	}

	s.ShowRoom()
	s.checkForCombat()
}

// checkForCombat begins combat with the room's first living enemy, if any.
func (s *Session) checkForCombat() {
	if s.InCombat || s.gameOver {
		return
	}
	if e := s.CurrentRoom.LivingEnemy(); e != nil {
		s.say("A snarling %s blocks your path!", e.Name)
		s.BeginCombat(e)
	}
}
