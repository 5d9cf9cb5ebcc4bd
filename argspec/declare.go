package argspec

// DeclareOption configures one parameter declaration.
type DeclareOption func(*declSpec)

type declSpec struct {
	short       string
	tip         string
	description string
	required    bool
}

// Short sets the single-dash alias for the parameter.
func Short(short string) DeclareOption {
	return func(d *declSpec) { d.short = short }
}

// Tip sets the value-tip text shown next to the parameter in help output.
// When absent a default derived from the type is used.
func Tip(tip string) DeclareOption {
	return func(d *declSpec) { d.tip = tip }
}

// Description sets the explanatory text shown under the parameter in help
// output.
func Description(description string) DeclareOption {
	return func(d *declSpec) { d.description = description }
}

// Required marks the parameter as mandatory. Submit fails when it is absent.
// Required switches are contradictory - an absent switch is simply false -
// so the flag is silently dropped for Switch declarations.
func Required() DeclareOption {
	return func(d *declSpec) { d.required = true }
}

// Declare registers a parameter with the context. Names and short names must
// be non-empty, unique across the registry, and limited to alphanumerics and
// hyphens. All strings are copied into arena-owned storage, so the caller's
// originals need not outlive the call.
func (c *Context) Declare(name string, typ Type, opts ...DeclareOption) (*Param, error) {
	if c.submitted {
		return nil, newConfigError("argspec: cannot declare after submit")
	}

	var d declSpec
	for _, opt := range opts {
		opt(&d)
	}

	if name == "" {
		return nil, newConfigError("argspec: parameter name must not be empty")
	}
	if !validName(name) {
		return nil, newConfigError("argspec: parameter name " + name + " must be alphanumeric or hyphen")
	}
	if d.short != "" && !validName(d.short) {
		return nil, newConfigError("argspec: short name " + d.short + " must be alphanumeric or hyphen")
	}
	if !typ.valid() {
		return nil, newConfigError("argspec: unknown parameter type")
	}
	for _, existing := range c.params {
		if existing.name == name {
			return nil, newConfigError("argspec: parameter name conflict: " + name)
		}
		if d.short != "" && existing.short == d.short {
			return nil, newConfigError("argspec: parameter short name conflict: " + d.short)
		}
	}

	if typ == Switch {
		// A required switch would make Submit fail whenever it is off.
		d.required = false
	}
	if d.tip == "" {
		d.tip = defaultTip(typ)
	}

	p := &Param{
		name:        c.arena.CopyString(name),
		short:       c.arena.CopyString(d.short),
		tip:         c.arena.CopyString(d.tip),
		description: c.arena.CopyString(d.description),
		typ:         typ,
		required:    d.required,
	}
	if typ.IsArray() {
		p.array = &arrayPayload{}
	} else {
		p.scalar = &scalarPayload{}
	}
	c.params = append(c.params, p)
	return p, nil
}

// MustDeclare is Declare for static schemas where a failure is a programming
// error; it panics on a ConfigError.
func (c *Context) MustDeclare(name string, typ Type, opts ...DeclareOption) *Param {
	p, err := c.Declare(name, typ, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

func validName(s string) bool {
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= 'a' && ch <= 'z':
		case ch >= 'A' && ch <= 'Z':
		case ch >= '0' && ch <= '9':
		case ch == '-':
		default:
			return false
		}
	}
	return true
}
