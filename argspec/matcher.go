package argspec

// MatchKind classifies how one raw token relates to one parameter.
type MatchKind int

const (
	MatchNone MatchKind = iota
	MatchName
	MatchShortName
	MatchAssignName
	MatchAssignShortName
)

// matchToken classifies tok against p. Comparison is case sensitive and
// exact: the only thing allowed after the name is an assignment operator, so
// neither prefixes nor abbreviations ever match. The same classification is
// used to find a token's owner and, inside array accumulation, to decide
// that a token belongs to a different parameter.
func matchToken(p *Param, tok string) MatchKind {
	if len(tok) < 2 || tok[0] != '-' {
		return MatchNone
	}
	if tok[1] == '-' {
		return matchSpelling(p.name, tok[2:], MatchName, MatchAssignName)
	}
	if p.short == "" {
		return MatchNone
	}
	return matchSpelling(p.short, tok[1:], MatchShortName, MatchAssignShortName)
}

func matchSpelling(name, rest string, bare, assign MatchKind) MatchKind {
	if name == "" || len(rest) < len(name) || rest[:len(name)] != name {
		return MatchNone
	}
	if len(rest) == len(name) {
		return bare
	}
	if rest[len(name)] == '=' {
		return assign
	}
	return MatchNone
}

// assignedValue returns the text after the assignment operator for an
// assignment-form match. The offset is the prefix length plus the matched
// name plus the operator itself.
func assignedValue(p *Param, tok string, kind MatchKind) string {
	switch kind {
	case MatchAssignName:
		return tok[2+len(p.name)+1:]
	case MatchAssignShortName:
		return tok[1+len(p.short)+1:]
	default:
		panic("argspec: assignedValue called for a non-assignment match")
	}
}

// matchesAny reports whether tok matches any registered parameter in any
// form. Array accumulation uses it to detect its terminator.
func (c *Context) matchesAny(tok string) bool {
	for _, p := range c.params {
		if matchToken(p, tok) != MatchNone {
			return true
		}
	}
	return false
}
