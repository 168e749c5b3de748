package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/bitpeek/bitpeek/codec"
	"github.com/bitpeek/bitpeek/history"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	layoutStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	bitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const historyDepth = 32

type viewState int

const (
	stateSelectLayout viewState = iota
	stateConvert
)

// field identifies which input is the source of truth for a recompute.
// Tracking it explicitly keeps in-progress typing from being clobbered by
// values derived from another field.
type field int

const (
	fieldDecimal field = iota
	fieldBits
	fieldHex
	fieldCount
)

var fieldLabels = [fieldCount]string{"decimal", "binary", "hex"}

type convertModel struct {
	layouts   []codec.Layout
	selected  int
	state     viewState
	inputs    [fieldCount]textinput.Model
	fieldErr  [fieldCount]string
	focus     field
	edited    field
	precision int
	hist      *history.Log
	status    string
}

func newConvertModel(initial string) *convertModel {
	m := &convertModel{
		layouts:   codec.Layouts(),
		state:     stateSelectLayout,
		precision: 6,
		hist:      history.New(historyDepth),
	}
	for i, l := range m.layouts {
		if string(l.Name()) == initial {
			m.selected = i
		}
	}
	return m
}

func (m *convertModel) Init() tea.Cmd {
	return nil
}

func (m *convertModel) layout() codec.Layout {
	return m.layouts[m.selected]
}

func (m *convertModel) maxPrecision() int {
	switch m.layout().Name() {
	case codec.Float32:
		return 10
	case codec.Float64:
		return 20
	}
	return 0
}

func (m *convertModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.state {
	case stateSelectLayout:
		return m.updateSelect(keyMsg)
	default:
		return m.updateConvert(keyMsg)
	}
}

func (m *convertModel) updateSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.selected < len(m.layouts)-1 {
			m.selected++
		}

	case "enter":
		m.prepareInputs()
		m.state = stateConvert
	}

	return m, nil
}

func (m *convertModel) updateConvert(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.state = stateSelectLayout
		return m, nil

	case "tab":
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil

	case "shift+tab":
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, nil

	case "enter":
		m.commit()
		return m, nil

	case "ctrl+y":
		if bits := m.inputs[fieldBits].Value(); bits != "" {
			if err := clipboard.WriteAll(bits); err != nil {
				m.status = "clipboard: " + err.Error()
			} else {
				m.status = "binary copied to clipboard"
			}
		}
		return m, nil

	case "[", "]":
		if max := m.maxPrecision(); max > 0 {
			if msg.String() == "[" && m.precision > 0 {
				m.precision--
			}
			if msg.String() == "]" && m.precision < max {
				m.precision++
			}
			m.recompute()
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.inputs[m.focus].Value()
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.inputs[m.focus].Value() != before {
		m.edited = m.focus
		m.recompute()
	}
	return m, cmd
}

func (m *convertModel) prepareInputs() {
	l := m.layout()
	if m.precision > m.maxPrecision() {
		m.precision = m.maxPrecision()
	}
	if m.maxPrecision() > 0 && m.precision == 0 {
		m.precision = 6
	}

	example := l.Example()
	decoded, _ := codec.Decode(example, l)

	placeholders := [fieldCount]string{
		m.displayDecimal(decoded),
		example,
		codec.BitsToHex(example),
	}

	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = fmt.Sprintf("%-8s ", fieldLabels[i]+":")
		ti.Placeholder = placeholders[i]
		ti.Width = 70
		m.inputs[i] = ti
	}
	m.inputs[fieldDecimal].Focus()
	m.focus = fieldDecimal
	m.edited = fieldDecimal
	m.fieldErr = [fieldCount]string{}
}

func (m *convertModel) setFocus(f field) {
	m.inputs[m.focus].Blur()
	m.focus = f
	m.inputs[m.focus].Focus()
}

func (m *convertModel) displayDecimal(v float64) string {
	if _, ok := m.layout().(*codec.FloatLayout); ok {
		return codec.FormatDecimal(v, m.precision)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// recompute re-derives the two non-edited fields from the edited one.
// On error only the edited field is flagged; the others keep their text.
func (m *convertModel) recompute() {
	l := m.layout()
	m.fieldErr = [fieldCount]string{}

	switch m.edited {
	case fieldDecimal:
		raw := m.inputs[fieldDecimal].Value()
		if strings.TrimSpace(raw) == "" {
			m.inputs[fieldBits].SetValue("")
			m.inputs[fieldHex].SetValue("")
			return
		}
		v, err := codec.ParseDecimal(raw, l)
		if err != nil {
			m.fieldErr[fieldDecimal] = err.Error()
			return
		}
		bits, err := codec.Encode(v, l)
		if err != nil {
			m.fieldErr[fieldDecimal] = err.Error()
			return
		}
		m.inputs[fieldBits].SetValue(bits)
		m.inputs[fieldHex].SetValue(codec.BitsToHex(bits))

	case fieldBits:
		raw := m.inputs[fieldBits].Value()
		if raw == "" {
			m.inputs[fieldDecimal].SetValue("")
			m.inputs[fieldHex].SetValue("")
			return
		}
		v, err := codec.Decode(raw, l)
		if err != nil {
			m.fieldErr[fieldBits] = err.Error()
			return
		}
		m.inputs[fieldDecimal].SetValue(m.displayDecimal(v))
		m.inputs[fieldHex].SetValue(codec.BitsToHex(raw))

	case fieldHex:
		raw := m.inputs[fieldHex].Value()
		if strings.TrimSpace(raw) == "" {
			m.inputs[fieldDecimal].SetValue("")
			m.inputs[fieldBits].SetValue("")
			return
		}
		bits, err := codec.HexToBits(raw)
		if err != nil {
			m.fieldErr[fieldHex] = err.Error()
			return
		}
		v, err := codec.Decode(bits, l)
		if err != nil {
			m.fieldErr[fieldHex] = err.Error()
			return
		}
		m.inputs[fieldDecimal].SetValue(m.displayDecimal(v))
		m.inputs[fieldBits].SetValue(bits)
	}
}

// commit records the current conversion in the history once it is valid
// at the layout's full width.
func (m *convertModel) commit() {
	l := m.layout()
	if m.inputs[fieldBits].Value() == "" {
		return
	}
	for _, e := range m.fieldErr {
		if e != "" {
			return
		}
	}

	v, err := codec.Decode(m.inputs[fieldBits].Value(), l)
	if err != nil {
		m.fieldErr[fieldBits] = err.Error()
		return
	}
	full, err := codec.Encode(v, l)
	if err != nil {
		m.fieldErr[fieldDecimal] = err.Error()
		return
	}

	item := m.hist.Add(m.displayDecimal(v), full, codec.BitsToHex(full), string(l.Name()))
	m.status = fmt.Sprintf("saved #%d", item.ID)

	codec.Logger().Debug("conversion committed",
		zap.Int("id", item.ID),
		zap.String("layout", item.Layout),
		zap.String("decimal", item.Decimal),
		zap.String("bits", item.Binary))
}

func (m *convertModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("bitpeek"))
	b.WriteString(" decimal ↔ bit pattern\n\n")

	switch m.state {
	case stateSelectLayout:
		m.viewSelect(&b)
	default:
		m.viewConvert(&b)
	}

	return b.String()
}

func (m *convertModel) viewSelect(b *strings.Builder) {
	b.WriteString("Select a layout:\n\n")
	for i, l := range m.layouts {
		line := fmt.Sprintf("%-8s %s", l.Name(), l.Description())
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select • enter convert • q quit"))
}

func (m *convertModel) viewConvert(b *strings.Builder) {
	l := m.layout()

	fmt.Fprintf(b, "Layout: %s (%s)\n\n", layoutStyle.Render(string(l.Name())), l.Description())

	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
		if m.fieldErr[i] != "" {
			b.WriteString("         ")
			b.WriteString(errorStyle.Render(m.fieldErr[i]))
			b.WriteString("\n")
		}
	}

	if bits := m.inputs[fieldBits].Value(); bits != "" && m.fieldErr[fieldBits] == "" {
		b.WriteString("\n")
		b.WriteString("grouped: ")
		b.WriteString(bitStyle.Render(codec.FormatBits(bits, l)))
		if hex := codec.BitsToHex(bits); hex != "" {
			b.WriteString("  ")
			b.WriteString(bitStyle.Render("0x" + codec.FormatHex(hex)))
		}
		b.WriteString("\n")
	}

	if m.maxPrecision() > 0 {
		fmt.Fprintf(b, "\nprecision: %d of %d  ([ / ] adjust)\n", m.precision, m.maxPrecision())
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(resultStyle.Render(m.status))
		b.WriteString("\n")
	}

	if m.hist.Len() > 0 {
		b.WriteString("\nHistory:\n")
		for _, item := range m.hist.Items() {
			fmt.Fprintf(b, "  #%-3d %-8s %s → %s\n",
				item.ID, item.Layout, item.Decimal, item.Hex)
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab next field • enter save • ctrl+y copy binary • esc layouts • ctrl+c quit"))
}

func runInteractive(initialLayout string) error {
	p := tea.NewProgram(newConvertModel(initialLayout), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
