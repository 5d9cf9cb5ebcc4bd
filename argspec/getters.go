package argspec

// Value getters. Each Try* method reports whether the named parameter was
// provided and, if so, its parsed value. Asking for a name that was never
// declared, or with a getter that does not match the declared type, is a
// programming error and panics.

func (c *Context) param(name string) *Param {
	if c.destroyed {
		panic("argspec: context was destroyed")
	}
	p := c.lookup(name)
	if p == nil {
		panic("argspec: parameter --" + name + " was never declared")
	}
	return p
}

// HasValue reports whether the named parameter was provided on the command
// line.
func (c *Context) HasValue(name string) bool {
	return c.param(name).hasValue
}

// TryString returns the value of a String parameter.
func (c *Context) TryString(name string) (string, bool) {
	p := c.param(name)
	p.assertType(String)
	if !p.hasValue {
		return "", false
	}
	return p.scalar.str, true
}

// TryBool returns the value of a Bool or Switch parameter. A switch is
// implicitly false, so an absent switch still reads successfully; only an
// absent Bool reports no value.
func (c *Context) TryBool(name string) (bool, bool) {
	p := c.param(name)
	p.assertType(Bool, Switch)
	if !p.hasValue {
		return false, p.typ == Switch
	}
	return p.scalar.boolean, true
}

// TryInt returns the value of an Int parameter.
func (c *Context) TryInt(name string) (int64, bool) {
	p := c.param(name)
	p.assertType(Int)
	if !p.hasValue {
		return 0, false
	}
	return p.scalar.integer, true
}

// TryDouble returns the value of a Double parameter.
func (c *Context) TryDouble(name string) (float64, bool) {
	p := c.param(name)
	p.assertType(Double)
	if !p.hasValue {
		return 0, false
	}
	return p.scalar.double, true
}

// TryStringArray returns the accumulated values of a StringArray parameter.
// The slice is owned by the context and valid until Destroy.
func (c *Context) TryStringArray(name string) ([]string, bool) {
	p := c.param(name)
	p.assertType(StringArray)
	if !p.hasValue {
		return nil, false
	}
	return p.array.strs, true
}

// TryBoolArray returns the accumulated values of a BoolArray parameter.
func (c *Context) TryBoolArray(name string) ([]bool, bool) {
	p := c.param(name)
	p.assertType(BoolArray)
	if !p.hasValue {
		return nil, false
	}
	return p.array.bools, true
}

// TryIntArray returns the accumulated values of an IntArray parameter.
func (c *Context) TryIntArray(name string) ([]int64, bool) {
	p := c.param(name)
	p.assertType(IntArray)
	if !p.hasValue {
		return nil, false
	}
	return p.array.ints, true
}

// TryDoubleArray returns the accumulated values of a DoubleArray parameter.
func (c *Context) TryDoubleArray(name string) ([]float64, bool) {
	p := c.param(name)
	p.assertType(DoubleArray)
	if !p.hasValue {
		return nil, false
	}
	return p.array.doubles, true
}
