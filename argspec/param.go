package argspec

// Type identifies the declared value type of a parameter. The zero value is
// String, so a declaration that does not care about the type gets the
// default the same way an untyped declaration did in classic argv parsers.
type Type int

const (
	String Type = iota
	Switch
	Bool
	Int
	Double
	StringArray
	BoolArray
	IntArray
	DoubleArray
)

// String returns the human-readable name of the type.
func (t Type) String() string {
	switch t {
	case String:
		return "string"
	case Switch:
		return "switch"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Double:
		return "double"
	case StringArray:
		return "[]string"
	case BoolArray:
		return "[]bool"
	case IntArray:
		return "[]int"
	case DoubleArray:
		return "[]double"
	default:
		return "unknown"
	}
}

// IsArray reports whether the type accumulates a sequence of values.
func (t Type) IsArray() bool {
	return t >= StringArray && t <= DoubleArray
}

// Elem returns the element type of an array type. For scalar types it
// returns the type itself.
func (t Type) Elem() Type {
	switch t {
	case StringArray:
		return String
	case BoolArray:
		return Bool
	case IntArray:
		return Int
	case DoubleArray:
		return Double
	default:
		return t
	}
}

// valid reports whether t is a member of the closed type set.
func (t Type) valid() bool {
	return t >= String && t <= DoubleArray
}

// defaultTip returns the value-tip text shown in help output when the
// declaration did not supply one.
func defaultTip(t Type) string {
	switch t {
	case Switch:
		return ""
	case Bool:
		return "true|false"
	case Int:
		return "<integer>"
	case Double:
		return "<number>"
	case BoolArray:
		return "true|false..."
	case IntArray:
		return "<integer>..."
	case DoubleArray:
		return "<number>..."
	case StringArray:
		return "<string>..."
	default:
		return "<string>"
	}
}

// scalarPayload holds the single value of a scalar parameter. Which field is
// meaningful is selected by the parameter's type at construction.
type scalarPayload struct {
	str     string
	boolean bool
	integer int64
	double  float64
}

// arrayPayload holds the ordered, append-only element sequence of an array
// parameter.
type arrayPayload struct {
	strs    []string
	bools   []bool
	ints    []int64
	doubles []float64
}

// Param is one declared parameter. Exactly one of scalar/array is non-nil,
// chosen by the declared type when the parameter is created and never
// reinterpreted afterwards.
type Param struct {
	name        string
	short       string
	tip         string
	description string
	typ         Type
	required    bool
	hasValue    bool

	scalar *scalarPayload
	array  *arrayPayload
}

// Name returns the long name of the parameter.
func (p *Param) Name() string { return p.name }

// Short returns the short name, or an empty string when none was declared.
func (p *Param) Short() string { return p.short }

// Type returns the declared type.
func (p *Param) Type() Type { return p.typ }

// Required reports whether Submit fails when the parameter is absent.
func (p *Param) Required() bool { return p.required }

// HasValue reports whether the parameter received at least one value during
// Submit. Switches report true only when present on the command line.
func (p *Param) HasValue() bool { return p.hasValue }

// displayName is the spelling used in diagnostics.
func (p *Param) displayName() string { return "--" + p.name }

// assertType panics when the parameter is accessed as the wrong type. Like
// the arena's handle check this flags engine misuse, not user input.
func (p *Param) assertType(want ...Type) {
	for _, t := range want {
		if p.typ == t {
			return
		}
	}
	panic("argspec: " + p.displayName() + " accessed as incorrect type")
}
