package collection

import "strings"

type rosterEntry struct {
	member string
	phrase []string
}

// Roster is the ordered list of member phrases recognized in search text.
type Roster struct {
	entries []rosterEntry
}

// NewRoster builds a roster from names. An entry of the form "Alias=Member"
// matches the alias phrase but resolves to Member.
func NewRoster(names []string) Roster {
	r := Roster{entries: make([]rosterEntry, 0, len(names))}
	for _, n := range names {
		phrase, member := n, n
		if alias, full, ok := strings.Cut(n, "="); ok {
			phrase, member = strings.TrimSpace(alias), strings.TrimSpace(full)
		}
		tokens := Tokenize(phrase)
		if len(tokens) == 0 || member == "" {
			continue
		}
		r.entries = append(r.entries, rosterEntry{member: member, phrase: tokens})
	}
	return r
}

// Members returns the distinct member names in roster order.
func (r Roster) Members() []string {
	var out []string
	seen := make(map[string]bool)
	for _, e := range r.entries {
		if !seen[e.member] {
			seen[e.member] = true
			out = append(out, e.member)
		}
	}
	return out
}

// Match finds the roster phrase with the most tokens that appears as a
// contiguous run in tokens. Ties go to the earlier roster entry.
// It returns the resolved member and the tokens left once the run is removed.
func (r Roster) Match(tokens []string) (member string, rest []string, ok bool) {
	bestLen, bestAt := 0, -1
	for _, e := range r.entries {
		if len(e.phrase) <= bestLen {
			continue
		}
		if at := indexRun(tokens, e.phrase); at >= 0 {
			member, bestLen, bestAt = e.member, len(e.phrase), at
		}
	}
	if bestAt < 0 {
		return "", tokens, false
	}
	rest = make([]string, 0, len(tokens)-bestLen)
	rest = append(rest, tokens[:bestAt]...)
	rest = append(rest, tokens[bestAt+bestLen:]...)
	return member, rest, true
}

func indexRun(tokens, run []string) int {
	for i := 0; i+len(run) <= len(tokens); i++ {
		match := true
		for j, t := range run {
			if tokens[i+j] != t {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// Tokenize lower-cases s and splits it on whitespace.
func Tokenize(s string) []string {
	return strings.Fields(strings.ToLower(s))
}
