package field

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/telmask/internal/grapheme"
	"github.com/iw2rmb/telmask/mask"
)

// Model is a Bubble Tea component for entering a phone number.
//
// Terminal focus reports (tea.FocusMsg, tea.BlurMsg) call Focus and Blur, so
// OnBlur also fires when the terminal loses focus. Hosts enable them with
// tea.WithReportFocus.
type Model struct {
	cfg Config

	display string
	caret   int

	// anchor is the fixed end of the selection while selecting is set.
	anchor    int
	selecting bool

	focused bool
}

func New(cfg Config) Model {
	if isZeroKeyMap(cfg.KeyMap) {
		cfg.KeyMap = DefaultKeyMap()
	}
	m := Model{
		cfg:     cfg,
		focused: true,
	}
	m.display = mask.Format(cfg.Value, cfg.Descriptor, cfg.TrunkPrefix)
	m.caret = grapheme.Count(m.display)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Focus() Model {
	m.focused = true
	return m
}

// Blur drops focus and reports the international value to OnBlur.
func (m Model) Blur() Model {
	if !m.focused {
		return m
	}
	m.focused = false
	m.selecting = false
	if m.cfg.OnBlur != nil {
		m.cfg.OnBlur(m.International())
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// Display returns the formatted text as shown.
func (m Model) Display() string { return m.display }

// Caret returns the caret as a grapheme offset into Display.
func (m Model) Caret() int { return m.caret }

// Value returns the national digits.
func (m Model) Value() string {
	return mask.Parse(m.display, m.cfg.Descriptor, m.cfg.TrunkPrefix)
}

// International returns the value as "+<calling code><digits>", or "" when
// nothing has been entered.
func (m Model) International() string {
	return mask.ParseInternational(m.display, m.cfg.Descriptor, m.cfg.TrunkPrefix)
}

func (m Model) Descriptor() mask.Descriptor { return m.cfg.Descriptor }

func (m Model) Selection() (mask.Range, bool) {
	if !m.selecting || m.anchor == m.caret {
		return mask.Range{}, false
	}
	return mask.Range{Start: m.anchor, End: m.caret}.Normalize(), true
}

// SetValue replaces the digits and moves the caret to the end.
func (m Model) SetValue(digits string) Model {
	m.display = mask.Format(digits, m.cfg.Descriptor, m.cfg.TrunkPrefix)
	m.caret = grapheme.Count(m.display)
	m.selecting = false
	return m
}

// SetDescriptor switches the number format, keeping as many of the current
// digits as the new format holds.
func (m Model) SetDescriptor(d mask.Descriptor) Model {
	digits := m.Value()
	m.cfg.Descriptor = d
	return m.SetValue(digits)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.FocusMsg:
		return m.Focus(), nil
	case tea.BlurMsg:
		return m.Blur(), nil
	}
	return m, nil
}

func (m Model) View() string { return m.render() }

func (m *Model) moveTo(caret int, extend bool) {
	caret = max(0, min(caret, grapheme.Count(m.display)))
	if extend {
		if !m.selecting {
			m.anchor = m.caret
			m.selecting = true
		}
	} else {
		m.selecting = false
	}
	m.caret = caret
}

// apply runs an edit against display and adopts the result.
func (m *Model) apply(display string, caret int, opt mask.EditOptions) {
	opt.TrunkPrefix = m.cfg.TrunkPrefix
	before, beforeDigits := m.display, m.Value()

	res := mask.Edit(display, caret, m.cfg.Descriptor, opt)
	m.display = res.Display
	m.caret = res.Caret
	m.selecting = false

	if m.cfg.OnChange != nil && (res.Display != before || res.Digits != beforeDigits) {
		m.cfg.OnChange(buildChangeEvent(*m, res))
	}
}
