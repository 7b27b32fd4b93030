package mask

// Placeholder marks a digit slot in a template. Every other grapheme cluster
// of a template is a literal.
const Placeholder = "x"

// MaxDigits is the longest national significant number libphonenumber
// accepts. Dynamic templates are probed up to this digit count.
const MaxDigits = 17

// Template is either a fixed template string or a function selecting a
// template for the current digit count.
type Template struct {
	fixed   string
	dynamic func(digitCount int) string
}

// Fixed returns a template that renders the same layout for any digit count.
func Fixed(template string) Template {
	return Template{fixed: template}
}

// Dynamic returns a template whose layout may change shape as digits
// accumulate.
func Dynamic(fn func(digitCount int) string) Template {
	return Template{dynamic: fn}
}

func (t Template) IsZero() bool {
	return t.fixed == "" && t.dynamic == nil
}

func (t Template) IsDynamic() bool {
	return t.dynamic != nil
}

// Text returns the template string used for digitCount digits.
func (t Template) Text(digitCount int) string {
	if t.dynamic != nil {
		return t.dynamic(digitCount)
	}
	return t.fixed
}

// Descriptor describes how one country's numbers are displayed.
type Descriptor struct {
	// Country is the ISO 3166-1 alpha-2 region code.
	Country  string
	Template Template

	// TrunkPrefix is the national dialing prefix rendered ahead of the
	// number when a caller asks for the local form ("8" in RU, "0" in GB).
	TrunkPrefix string

	// CallingCode is the international country calling code (7 for RU).
	CallingCode int
}

// SlotKind tells a placeholder slot from a literal one.
type SlotKind uint8

const (
	SlotLiteral SlotKind = iota
	SlotDigit
)

// Slot is one grapheme cluster of a resolved template.
type Slot struct {
	Kind SlotKind
	Text string // literal text; empty for digit slots
}

// Layout is the ordered slot skeleton a digit sequence is rendered against.
type Layout []Slot

// Capacity returns the number of digit slots.
func (l Layout) Capacity() int {
	n := 0
	for _, s := range l {
		if s.Kind == SlotDigit {
			n++
		}
	}
	return n
}

// String returns the template text the layout was resolved from.
func (l Layout) String() string {
	b := make([]byte, 0, len(l))
	for _, s := range l {
		if s.Kind == SlotDigit {
			b = append(b, Placeholder...)
			continue
		}
		b = append(b, s.Text...)
	}
	return string(b)
}

// Range is a half-open selection in display offsets: [Start, End).
type Range struct {
	Start int
	End   int
}

// IsEmpty reports whether r selects nothing.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Normalize returns r with Start <= End.
func (r Range) Normalize() Range {
	if r.Start <= r.End {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) clamp(max int) Range {
	r = r.Normalize()
	return Range{Start: clampInt(r.Start, 0, max), End: clampInt(r.End, 0, max)}
}

// Intent identifies the kind of edit Edit applied.
type Intent uint8

const (
	// IntentInsert covers typing and pasting without a selection.
	IntentInsert Intent = iota
	IntentBackspace
	IntentDelete
	// IntentReplace removes the selected digits and splices in new ones.
	IntentReplace
)

// String returns the lower-case intent name used in logs.
func (i Intent) String() string {
	switch i {
	case IntentInsert:
		return "insert"
	case IntentBackspace:
		return "backspace"
	case IntentDelete:
		return "delete"
	case IntentReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// EditOptions describes the keystroke Edit applies.
type EditOptions struct {
	// Selection is the selected range of the display, if any. A non-empty
	// selection turns every edit into a replace.
	Selection *Range

	Backspace bool
	Delete    bool

	// Insert is typed or pasted text to apply at the caret or over the
	// selection. When empty and no other intent is set, the display is taken
	// to already contain the keystroke.
	Insert string

	// TrunkPrefix selects the local form carrying the national prefix.
	TrunkPrefix bool
}

func (o EditOptions) selection() (Range, bool) {
	if o.Selection == nil {
		return Range{}, false
	}
	r := o.Selection.Normalize()
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

func (o EditOptions) intent() Intent {
	if _, ok := o.selection(); ok {
		return IntentReplace
	}
	switch {
	case o.Backspace:
		return IntentBackspace
	case o.Delete:
		return IntentDelete
	default:
		return IntentInsert
	}
}

// Result is the outcome of Edit.
type Result struct {
	Display string
	Caret   int

	// Digits is the national digit sequence Display renders.
	Digits string
	Intent Intent
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
