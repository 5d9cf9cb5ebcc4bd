package argspec

import "fmt"

// Submit parses the context's argument list against the declared schema.
// On success every provided parameter carries its typed value and nil is
// returned. On any user-input problem a diagnostic is written to the sink
// and a *ParseError is returned. A help or version request also returns a
// non-nil result - ErrHelpShown or ErrVersionShown - after emitting the
// requested text, so normal execution short-circuits either way.
//
// Submit may be called at most once per context.
func (c *Context) Submit() error {
	if c.submitted {
		return newConfigError("argspec: context already submitted")
	}
	c.registerBuiltins()
	c.submitted = true

	// Index 0 is the program's own name.
	for i := 1; i < len(c.args); i++ {
		tok := c.args[i]
		if tok == "" {
			continue
		}
		// Every valid spelling starts with '-' and a single dash alone
		// names nothing.
		if len(tok) == 1 || tok[0] != '-' {
			return c.fail(&ParseError{
				Type:    ErrorTypeUnknownArgument,
				Message: fmt.Sprintf("unknown argument %q", tok),
			})
		}

		matched := false
		for _, p := range c.params {
			kind := matchToken(p, tok)
			if kind == MatchNone {
				continue
			}
			matched = true
			last, perr := c.dispatch(p, kind, tok, i)
			if perr != nil {
				return c.fail(perr)
			}
			i = last
			break
		}
		if !matched {
			return c.fail(&ParseError{
				Type:    ErrorTypeUnknownArgument,
				Message: fmt.Sprintf("unknown argument %q", tok),
			})
		}
	}

	if c.helpParam != nil && c.helpParam.hasValue {
		c.emitHelp()
		return ErrHelpShown
	}
	if c.versionParam != nil && c.versionParam.hasValue {
		c.sink.Printf("%s version %s\n", c.name, c.version)
		return ErrVersionShown
	}

	for _, p := range c.params {
		if p.required && !p.hasValue {
			var msg string
			if p.short == "" {
				msg = fmt.Sprintf("argument --%s is required", p.name)
			} else {
				msg = fmt.Sprintf("argument --%s / -%s is required", p.name, p.short)
			}
			return c.fail(&ParseError{
				Type:    ErrorTypeMissingRequired,
				Message: msg,
				Param:   p.name,
			})
		}
	}

	if perr := c.checkGroups(); perr != nil {
		return c.fail(perr)
	}
	return nil
}

// dispatch consumes the token(s) belonging to one matched parameter.
// i indexes the introducing token; the index of the last consumed token is
// returned so the caller's loop resumes after it.
func (c *Context) dispatch(p *Param, kind MatchKind, tok string, i int) (int, *ParseError) {
	assigned := kind == MatchAssignName || kind == MatchAssignShortName

	if p.typ.IsArray() {
		first := ""
		from := i + 1
		if assigned {
			first = assignedValue(p, tok, kind)
		} else {
			if i+1 >= len(c.args) {
				return 0, errMissingValue(p, tok)
			}
			first = c.args[i+1]
			from = i + 2
		}
		return c.accumulate(p, first, from)
	}

	if p.hasValue {
		return 0, &ParseError{
			Type:    ErrorTypeDuplicateValue,
			Message: fmt.Sprintf("%s was provided multiple times which is unsupported", tok),
			Param:   p.name,
		}
	}

	if p.typ == Switch {
		if assigned {
			return 0, &ParseError{
				Type:    ErrorTypeInvalidValue,
				Message: fmt.Sprintf("Invalid value provided for %s, a switch does not accept a value", p.displayName()),
				Param:   p.name,
			}
		}
		p.scalar.boolean = true
		p.hasValue = true
		return i, nil
	}

	value := ""
	last := i
	if assigned {
		value = assignedValue(p, tok, kind)
	} else {
		// The following token is the value and is consumed
		// unconditionally, even when it is spelled like a flag.
		if i+1 >= len(c.args) {
			return 0, errMissingValue(p, tok)
		}
		value = c.args[i+1]
		last = i + 1
	}
	if perr := c.storeScalar(p, value); perr != nil {
		return 0, perr
	}
	return last, nil
}

// storeScalar coerces value to the parameter's scalar type and stores it.
func (c *Context) storeScalar(p *Param, value string) *ParseError {
	switch p.typ {
	case String:
		p.scalar.str = c.arena.CopyString(value)
	case Bool:
		v, ok := parseBoolToken(value)
		if !ok {
			return errInvalidBool(p)
		}
		p.scalar.boolean = v
	case Int:
		v, err := parseIntToken(value)
		if err != nil {
			return errInvalidInt(p, value)
		}
		p.scalar.integer = v
	case Double:
		v, err := parseDoubleToken(value)
		if err != nil {
			return errInvalidDouble(p, value)
		}
		p.scalar.double = v
	default:
		panic("argspec: storeScalar called for " + p.typ.String())
	}
	p.hasValue = true
	return nil
}

// registerBuiltins declares --help/-h and, when a version string was
// configured, --version/-v. User declarations take precedence: a parameter
// that already owns the name or the short letter suppresses the built-in.
func (c *Context) registerBuiltins() {
	if c.lookup("help") == nil {
		opts := []DeclareOption{Description("Show this help text and exit")}
		if !c.shortTaken("h") {
			opts = append(opts, Short("h"))
		}
		c.helpParam, _ = c.Declare("help", Switch, opts...)
	}
	if c.version != "" && c.lookup("version") == nil {
		opts := []DeclareOption{Description("Show version information and exit")}
		if !c.shortTaken("v") {
			opts = append(opts, Short("v"))
		}
		c.versionParam, _ = c.Declare("version", Switch, opts...)
	}
}

func (c *Context) shortTaken(short string) bool {
	for _, p := range c.params {
		if p.short == short {
			return true
		}
	}
	return false
}

// fail writes the diagnostic for a parse error followed by the help hint and
// hands the error back for Submit to return.
func (c *Context) fail(e *ParseError) error {
	c.sink.Errorf("Error: %s\n", e.Message)
	c.sink.Errorf("Try: %s --help\n", c.name)
	return e
}

func errMissingValue(p *Param, tok string) *ParseError {
	return &ParseError{
		Type:    ErrorTypeMissingValue,
		Message: fmt.Sprintf("No value provided for %s", tok),
		Param:   p.name,
	}
}

func errInvalidBool(p *Param) *ParseError {
	return &ParseError{
		Type:    ErrorTypeInvalidValue,
		Message: fmt.Sprintf("Invalid value provided for %s, expected true or false", p.displayName()),
		Param:   p.name,
	}
}

func errInvalidInt(p *Param, tok string) *ParseError {
	return &ParseError{
		Type:    ErrorTypeInvalidValue,
		Message: fmt.Sprintf("Value %q for %s is not a valid integer", tok, p.displayName()),
		Param:   p.name,
	}
}

func errInvalidDouble(p *Param, tok string) *ParseError {
	return &ParseError{
		Type:    ErrorTypeInvalidValue,
		Message: fmt.Sprintf("Value %q for %s is not a valid number", tok, p.displayName()),
		Param:   p.name,
	}
}
