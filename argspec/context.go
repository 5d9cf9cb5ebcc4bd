package argspec

import (
	"strings"

	"github.com/dzonerzy/go-argspec/internal/arena"
	argio "github.com/dzonerzy/go-argspec/io"
)

// Context owns a parameter registry, the arena backing every string it
// copies, and a reference to the caller's raw argument list. One context
// supports exactly one Submit; it is not safe for concurrent use.
type Context struct {
	args        []string
	name        string
	version     string
	description string
	sink        *argio.Sink
	arena       *arena.Arena
	params      []*Param
	groups      [][]*Param
	submitted   bool
	destroyed   bool

	// Built-in switches registered by Submit, nil when the caller declared
	// a parameter that shadows them.
	helpParam    *Param
	versionParam *Param

	// scratch is an arena buffer reused to assemble help text and
	// diagnostics without allocating per line.
	scratch    arena.Handle
	scratchLen int
}

// Option configures a Context at construction time.
type Option func(*Context)

// WithName overrides the application name. The default is the basename of
// args[0].
func WithName(name string) Option {
	return func(c *Context) { c.name = name }
}

// WithVersion sets the version string and enables the built-in
// --version/-v switch.
func WithVersion(version string) Option {
	return func(c *Context) { c.version = version }
}

// WithDescription sets the documentation paragraph shown in help output.
func WithDescription(description string) Option {
	return func(c *Context) { c.description = description }
}

// WithSink redirects all output produced by the context.
func WithSink(sink *argio.Sink) Option {
	return func(c *Context) { c.sink = sink }
}

// New creates a parsing context over the caller's argument list. args must
// include the program name at index 0 and must outlive the context; the
// slice is read, never modified.
func New(args []string, opts ...Option) *Context {
	c := &Context{
		args:  args,
		sink:  argio.New(),
		arena: arena.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.name == "" {
		if len(args) > 0 {
			c.name = basename(args[0])
		}
		if c.name == "" {
			c.name = "app"
		}
	}
	c.scratch = c.arena.Alloc(256)
	return c
}

// Destroy releases every arena-tracked buffer owned by the context. Values
// copied out of parameters before Destroy remain valid; getter access on
// the context afterwards is a misuse and panics.
func (c *Context) Destroy() {
	c.arena.Reset()
	c.params = nil
	c.groups = nil
	c.destroyed = true
}

// ArenaCount returns the number of live tracked allocations, for leak
// verification in tests and embedding harnesses.
func (c *Context) ArenaCount() int { return c.arena.Count() }

// ArenaBytes returns the total size of live tracked allocations.
func (c *Context) ArenaBytes() int64 { return c.arena.TotalBytes() }

// lookup finds a parameter by long name. Registration order is preserved.
func (c *Context) lookup(name string) *Param {
	for _, p := range c.params {
		if p.name == name {
			return p
		}
	}
	return nil
}

// Scratch buffer helpers. The buffer grows through the arena so its storage
// is tracked like every other allocation the engine makes.

func (c *Context) resetScratch() {
	c.scratchLen = 0
}

func (c *Context) appendScratch(parts ...string) {
	for _, s := range parts {
		buf := c.arena.Bytes(c.scratch)
		if c.scratchLen+len(s) > len(buf) {
			buf = c.arena.Grow(c.scratch, c.scratchLen+len(s))
		}
		copy(buf[c.scratchLen:], s)
		c.scratchLen += len(s)
	}
}

func (c *Context) scratchString() string {
	return arena.String(c.arena.Bytes(c.scratch)[:c.scratchLen])
}

// basename extracts the program name from an argv[0] path: directories and
// everything from the first dot of the file name onward are stripped, so
// "/usr/bin/tool.real.exe" becomes "tool".
func basename(path string) string {
	if path == "" {
		return ""
	}
	// A single trailing separator is tolerated.
	path = strings.TrimSuffix(strings.TrimSuffix(path, "/"), "\\")
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		path = path[i+1:]
	}
	if i := strings.IndexByte(path, '.'); i >= 0 {
		path = path[:i]
	}
	return path
}
