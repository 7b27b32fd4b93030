package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/iw2rmb/telmask/country"
	"github.com/iw2rmb/telmask/field"
	"github.com/iw2rmb/telmask/internal/config"
)

var (
	labelStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// status is shared with the field callbacks, which run on value copies of
// the model.
type status struct {
	changes   int
	last      field.ChangeEvent
	submitted string
}

type model struct {
	field     field.Model
	help      help.Model
	reg       *country.Registry
	countries []string
	current   int
	status    *status
	log       *zap.Logger
}

func newModel(cfg config.Config, reg *country.Registry, log *zap.Logger) (model, error) {
	countries := reg.Countries()
	current := slices.Index(countries, cfg.Country)
	if current < 0 {
		return model{}, fmt.Errorf("%w: %q", country.ErrUnknownRegion, cfg.Country)
	}
	d, _ := reg.Lookup(cfg.Country)

	st := &status{}
	f := field.New(field.Config{
		Descriptor:  d,
		TrunkPrefix: cfg.TrunkPrefix,
		Style:       field.DefaultStyle(),
		Placeholder: "phone number",
		Width:       cfg.Width,
		OnChange: func(ev field.ChangeEvent) {
			st.changes++
			st.last = ev
			log.Debug("edit",
				zap.Stringer("intent", ev.Intent),
				zap.String("display", ev.Display),
				zap.Int("caret", ev.Caret),
			)
		},
		OnBlur: func(international string) {
			st.submitted = international
			log.Info("submitted", zap.String("number", international))
		},
	})

	return model{
		field:     f,
		help:      help.New(),
		reg:       reg,
		countries: countries,
		current:   current,
		status:    st,
		log:       log,
	}, nil
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "ctrl+q":
			return m, tea.Quit
		case "tab", "shift+tab":
			step := 1
			if msg.String() == "shift+tab" {
				step = len(m.countries) - 1
			}
			m.current = (m.current + step) % len(m.countries)
			d, _ := m.reg.Lookup(m.countries[m.current])
			m.field = m.field.SetDescriptor(d)
			m.log.Debug("switched country", zap.String("country", d.Country))
			return m, nil
		case "enter":
			if m.field.Focused() {
				m.field = m.field.Blur()
			} else {
				m.field = m.field.Focus()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	return m, cmd
}

func (m model) View() string {
	d := m.field.Descriptor()
	header := labelStyle.Render(fmt.Sprintf("%s +%d", d.Country, d.CallingCode))

	submitted := m.status.submitted
	if submitted == "" {
		submitted = "-"
	}
	lines := []string{
		fmt.Sprintf("digits: %s", m.field.Value()),
		fmt.Sprintf("e164: %s", m.field.International()),
		fmt.Sprintf("caret: %d  edits: %d", m.field.Caret(), m.status.changes),
		fmt.Sprintf("submitted: %s", submitted),
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Center, header, " ", boxStyle.Render(m.field.View())),
		statusStyle.Render(strings.Join(lines, "\n")),
		"",
		m.help.View(field.DefaultKeyMap()),
		statusStyle.Render("tab: next country  enter: submit/edit  esc: quit"),
	)
}
