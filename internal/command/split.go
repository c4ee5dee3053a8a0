package command

import "strings"

// chainWord is the conjunction that separates chained commands on a single
// input line, as in "take coin and drop coin".
const chainWord = "and"

// Split normalizes a raw input line and splits it into an ordered sequence
// of verb phrases. The whole line is lower-cased and tokenized on whitespace;
// each bare "and" token ends the current phrase. Within a phrase the first
// token is the verb and the rest the argument text. Empty segments from
// leading, doubled, or trailing separators are dropped. Any string, including
// an empty one, yields a valid (possibly empty) sequence.
func Split(line string) []Phrase {
	line = strings.ToLower(line)

	var phrases []Phrase
	var cur []string
	flush := func() {
		if len(cur) == 0 {
			return
		}
		phrases = append(phrases, Phrase{
			Verb: cur[0],
			Arg:  strings.Join(cur[1:], " "),
		})
		cur = nil
	}

	for _, tok := range strings.Fields(line) {
		if tok == chainWord {
			flush()
			continue
		}
		cur = append(cur, tok)
	}
	flush()

	return phrases
}

// Join renders phrases back into a single normalized command line. Joining
// the output of Split reproduces the normalized form of the original line,
// so Split(Join(Split(s))) is identical to Split(s).
func Join(phrases []Phrase) string {
	parts := make([]string, len(phrases))
	for i := range phrases {
		parts[i] = phrases[i].String()
	}
	return strings.Join(parts, " "+chainWord+" ")
}
