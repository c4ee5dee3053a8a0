package command

import "strings"

// Entry is one registered command: the canonical verb, the handler bound to
// it, its help line, and any alias verbs that resolve to it.
type Entry[H any] struct {
	Verb    string
	Handler H
	Help    string
	Aliases []string
}

// Registry maps verbs and their aliases to handlers. Aliases are resolved at
// registration time to the canonical entry, so lookup never chases an alias
// chain. Entries are expected to be created once at startup and treated as
// read-only during play.
type Registry[H any] struct {
	entries map[string]*Entry[H]
	order   []string
}

// NewRegistry returns an empty command registry.
func NewRegistry[H any]() *Registry[H] {
	return &Registry[H]{
		entries: make(map[string]*Entry[H]),
	}
}

// Register binds verb and every alias to the same handler. Registering a
// verb that is already bound overwrites the prior binding; the last write
// wins. This is deliberate so fixtures and world content may replace default
// commands.
func (r *Registry[H]) Register(verb string, handler H, help string, aliases ...string) {
	verb = strings.ToLower(strings.TrimSpace(verb))
	if verb == "" {
		return
	}

	ent := &Entry[H]{
		Verb:    verb,
		Handler: handler,
		Help:    help,
		Aliases: aliases,
	}

	if _, already := r.entries[verb]; !already {
		r.order = append(r.order, verb)
	}
	r.entries[verb] = ent
	for _, a := range aliases {
		a = strings.ToLower(strings.TrimSpace(a))
		if a == "" || a == verb {
			continue
		}
		r.entries[a] = ent
	}
}

// Resolve returns the entry bound to the given verb or alias. The second
// return is false if the verb is not recognized.
func (r *Registry[H]) Resolve(verb string) (*Entry[H], bool) {
	ent, ok := r.entries[strings.ToLower(verb)]
	return ent, ok
}

// Entries returns the canonical entries in registration order, deduplicated
// across aliases.
func (r *Registry[H]) Entries() []*Entry[H] {
	out := make([]*Entry[H], 0, len(r.order))
	for _, verb := range r.order {
		ent := r.entries[verb]
		// an overwritten alias could shadow a canonical verb; only list
		// entries still canonical under their own name
		if ent.Verb == verb {
			out = append(out, ent)
		}
	}
	return out
}

// HelpTable returns (term, definition) rows for every canonical entry in
// registration order, with aliases folded into the term.
func (r *Registry[H]) HelpTable() [][2]string {
	var rows [][2]string
	for _, ent := range r.Entries() {
		term := strings.ToUpper(ent.Verb)
		if len(ent.Aliases) > 0 {
			term += " (" + strings.ToUpper(strings.Join(ent.Aliases, "/")) + ")"
		}
		rows = append(rows, [2]string{term, ent.Help})
	}
	return rows
}

// Verbs returns every registered verb and alias, for suggestion matching.
func (r *Registry[H]) Verbs() []string {
	verbs := make([]string, 0, len(r.entries))
	for v := range r.entries {
		verbs = append(verbs, v)
	}
	return verbs
}
