package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/bridge-runtime/resolve"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	shapeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	treeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type explanation struct {
	err      error
	shape    string
	goType   string
	lowered  string
	boundary string
	tree     string
}

type explainModel struct {
	input   textinput.Model
	current *explanation
	history []string
	histIdx int
}

func newExplainModel() *explainModel {
	ti := textinput.New()
	ti.Placeholder = "list<option<tuple<string, u32>>>"
	ti.Prompt = "shape> "
	ti.Width = 60
	ti.Focus()
	return &explainModel{input: ti, histIdx: -1}
}

func (m *explainModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *explainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			expr := strings.TrimSpace(m.input.Value())
			if expr == "" {
				return m, nil
			}
			m.current = explain(expr)
			if m.current.err == nil {
				m.history = append(m.history, expr)
			}
			m.histIdx = -1
			m.input.SetValue("")
			return m, nil

		case "up":
			if len(m.history) > 0 {
				if m.histIdx == -1 {
					m.histIdx = len(m.history) - 1
				} else if m.histIdx > 0 {
					m.histIdx--
				}
				m.input.SetValue(m.history[m.histIdx])
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if m.histIdx != -1 {
				m.histIdx++
				if m.histIdx >= len(m.history) {
					m.histIdx = -1
					m.input.SetValue("")
				} else {
					m.input.SetValue(m.history[m.histIdx])
					m.input.CursorEnd()
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func explain(expr string) *explanation {
	rule, err := resolve.ParseShape(expr)
	if err != nil {
		return &explanation{shape: expr, err: err}
	}

	e := &explanation{
		shape:  rule.Shape(),
		goType: rule.Go,
		tree:   rule.Tree(),
	}
	if e.lowered, err = resolve.Emit(rule); err != nil {
		e.err = err
		return e
	}
	bt, err := resolve.BoundaryType(rule)
	if err != nil {
		e.err = err
		return e
	}
	e.boundary = witText(bt)
	return e
}

func (m *explainModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Shape Explainer"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if e := m.current; e != nil {
		if e.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", e.err)))
			b.WriteString("\n")
		} else {
			b.WriteString(labelStyle.Render("Shape:    "))
			b.WriteString(shapeStyle.Render(e.shape))
			b.WriteString("\n")
			b.WriteString(labelStyle.Render("Go type:  "))
			b.WriteString(e.goType)
			b.WriteString("\n")
			b.WriteString(labelStyle.Render("Lowering: "))
			b.WriteString(e.lowered)
			b.WriteString("\n")
			b.WriteString(labelStyle.Render("Boundary: "))
			b.WriteString(e.boundary)
			b.WriteString("\n\n")
			b.WriteString(treeStyle.Render(e.tree))
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter explain • ↑/↓ history • esc quit"))
	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newExplainModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
