package argspec

import "fmt"

// MutuallyExclusive registers a constraint: at most one of the named
// parameters may be provided in a single submission. Every name must already
// be declared and the constraint must be registered before Submit.
func (c *Context) MutuallyExclusive(names ...string) error {
	if c.submitted {
		return newConfigError("argspec: cannot add constraints after submit")
	}
	if len(names) < 2 {
		return newConfigError("argspec: a mutually exclusive group needs at least two parameters")
	}
	group := make([]*Param, 0, len(names))
	for _, name := range names {
		p := c.lookup(name)
		if p == nil {
			return newConfigError(fmt.Sprintf("argspec: unknown parameter --%s in mutually exclusive group", name))
		}
		group = append(group, p)
	}
	c.groups = append(c.groups, group)
	return nil
}

// checkGroups runs after all tokens are consumed and the required check has
// passed, so every hasValue flag is final.
func (c *Context) checkGroups() *ParseError {
	for _, group := range c.groups {
		var seen *Param
		for _, p := range group {
			if !p.hasValue {
				continue
			}
			if seen != nil {
				return &ParseError{
					Type:    ErrorTypeGroupViolation,
					Message: fmt.Sprintf("%s cannot be combined with %s", p.displayName(), seen.displayName()),
					Param:   p.name,
				}
			}
			seen = p
		}
	}
	return nil
}
