// Package command defines the command data types, the line splitter that
// turns raw input into verb phrases, and the registry that binds verbs to
// handlers.
package command

import "strings"

// Phrase is one (verb, argument) pair split out of an input line. Verb is
// canonicalized to lower case; Arg may be empty.
type Phrase struct {
	Verb string
	Arg  string
}

func (p Phrase) String() string {
	if p.Arg == "" {
		return p.Verb
	}
	return p.Verb + " " + p.Arg
}

// Request is the immutable per-dispatch view of one command. Raw preserves
// the normalized phrase it was built from; Tokens is Arg split on whitespace.
type Request struct {
	Raw    string
	Verb   string
	Arg    string
	Tokens []string
}

// NewRequest builds a Request for a phrase after its verb has been resolved
// to the canonical verb name.
func NewRequest(canonicalVerb string, p Phrase) Request {
	return Request{
		Raw:    strings.TrimSpace(canonicalVerb + " " + p.Arg),
		Verb:   canonicalVerb,
		Arg:    p.Arg,
		Tokens: strings.Fields(p.Arg),
	}
}
