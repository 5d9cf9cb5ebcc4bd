package argspec

// accumulate appends element values to an array parameter. first is the
// mandatory leading element: it was either the assignment suffix or the
// token immediately after the introducing match, and it is consumed even
// when it is spelled like a parameter. Every later token is tested against
// the whole registry and the first one that matches some parameter ends the
// run, left in place for the submission loop to reprocess.
//
// The asymmetry is deliberate and load-bearing: for a string array foo with
// no other parameters declared, "--foo --foo --foo --foo" yields the two
// elements ["--foo", "--foo"].
//
// Returns the index of the last token consumed.
func (c *Context) accumulate(p *Param, first string, from int) (int, *ParseError) {
	if perr := c.appendElement(p, first); perr != nil {
		return 0, perr
	}
	i := from
	for ; i < len(c.args); i++ {
		if c.matchesAny(c.args[i]) {
			break
		}
		if perr := c.appendElement(p, c.args[i]); perr != nil {
			return 0, perr
		}
	}
	// Repeated occurrences of the same parameter keep appending to the
	// same sequence; nothing is reset between runs.
	p.hasValue = true
	return i - 1, nil
}

// appendElement coerces one token to the array's element type and appends
// it. A coercion failure fails the whole submission; elements accumulated so
// far are discarded with the rest of the context.
func (c *Context) appendElement(p *Param, tok string) *ParseError {
	switch p.typ {
	case StringArray:
		p.array.strs = append(p.array.strs, c.arena.CopyString(tok))
	case BoolArray:
		v, ok := parseBoolToken(tok)
		if !ok {
			return errInvalidBool(p)
		}
		p.array.bools = append(p.array.bools, v)
	case IntArray:
		v, err := parseIntToken(tok)
		if err != nil {
			return errInvalidInt(p, tok)
		}
		p.array.ints = append(p.array.ints, v)
	case DoubleArray:
		v, err := parseDoubleToken(tok)
		if err != nil {
			return errInvalidDouble(p, tok)
		}
		p.array.doubles = append(p.array.doubles, v)
	default:
		panic("argspec: appendElement called for a scalar parameter")
	}
	return nil
}
