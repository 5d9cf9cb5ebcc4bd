package argspec

// emitHelp assembles the help text into the scratch buffer and writes it to
// the sink in one call. Parameters are listed in declaration order, built-ins
// last since Submit registers them after every user declaration.
func (c *Context) emitHelp() {
	c.resetScratch()

	c.appendScratch(c.name)
	if c.version != "" {
		c.appendScratch(" version ", c.version)
	}
	c.appendScratch("\n")

	c.appendScratch("Usage: ", c.name)
	for _, p := range c.params {
		if !p.required {
			continue
		}
		c.appendScratch(" --", p.name)
		if p.tip != "" {
			c.appendScratch(" ", p.tip)
		}
	}
	c.appendScratch(" [OPTION]...\n")

	if c.description != "" {
		c.appendScratch("\n", c.description, "\n")
	}

	c.appendScratch("\n")
	for _, p := range c.params {
		c.appendScratch("  --", p.name)
		if p.short != "" {
			c.appendScratch(", -", p.short)
		}
		if p.tip != "" {
			c.appendScratch(" ", p.tip)
		}
		c.appendScratch("\n")
		if p.description != "" {
			c.appendScratch("      ", p.description, "\n")
		}
	}

	c.sink.Printf("%s", c.scratchString())
}
