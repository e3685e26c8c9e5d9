package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/xtp-cpp-bindgen/planner"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type entryKind int

const (
	entryObject entryKind = iota
	entryEnum
	entryImport
	entryExport
)

func (k entryKind) String() string {
	switch k {
	case entryObject:
		return "struct"
	case entryEnum:
		return "enum"
	case entryImport:
		return "import"
	default:
		return "export"
	}
}

// entry is one browsable line of the plan.
type entry struct {
	name    string
	summary string
	detail  string
	kind    entryKind
}

type modelState int

const (
	stateBrowse modelState = iota
	stateDetail
)

type interactiveModel struct {
	err      error
	planner  *planner.Planner
	filename string
	entries  []entry
	filter   textinput.Model
	selected int
	state    modelState
	loaded   bool
}

type loadedMsg struct {
	err     error
	entries []entry
}

func newInteractiveModel(filename string, p *planner.Planner) *interactiveModel {
	ti := textinput.New()
	ti.Prompt = "filter: "
	ti.Placeholder = "name"
	ti.Width = 40
	ti.Focus()
	return &interactiveModel{
		planner:  p,
		filename: filename,
		filter:   ti,
		state:    stateBrowse,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return tea.Batch(m.loadPlan, textinput.Blink)
}

func (m *interactiveModel) loadPlan() tea.Msg {
	plan, err := buildPlan(m.filename, m.planner)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{entries: planEntries(plan)}
}

// visible returns the entries matching the filter.
func (m *interactiveModel) visible() []entry {
	q := strings.ToLower(m.filter.Value())
	if q == "" {
		return m.entries
	}
	var res []entry
	for _, e := range m.entries {
		if strings.Contains(strings.ToLower(e.name), q) {
			res = append(res, e)
		}
	}
	return res
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state == stateDetail || m.err != nil {
				return m, tea.Quit
			}

		case "up":
			if m.state == stateBrowse && m.selected > 0 {
				m.selected--
			}
			return m, nil

		case "down":
			if m.state == stateBrowse && m.selected < len(m.visible())-1 {
				m.selected++
			}
			return m, nil

		case "enter":
			switch m.state {
			case stateBrowse:
				if len(m.visible()) > 0 {
					m.state = stateDetail
				}
			case stateDetail:
				m.state = stateBrowse
			}
			return m, nil

		case "esc":
			if m.state == stateDetail {
				m.state = stateBrowse
				return m, nil
			}
			m.filter.SetValue("")
			m.selected = 0
			return m, nil
		}

	case loadedMsg:
		m.loaded = true
		m.err = msg.err
		m.entries = msg.entries
		return m, nil
	}

	if m.state == stateBrowse {
		var cmd tea.Cmd
		before := m.filter.Value()
		m.filter, cmd = m.filter.Update(msg)
		if m.filter.Value() != before {
			m.selected = 0
		}
		return m, cmd
	}
	return m, nil
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if !m.loaded {
		return "Planning schema..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("XTP C++ Plan"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	opts := m.planner.Options()
	b.WriteString(helpStyle.Render(fmt.Sprintf("  threshold %d, import %q, export %q",
		opts.LargeThreshold, opts.ImportNamespace, opts.ExportNamespace)))
	b.WriteString("\n\n")

	visible := m.visible()
	switch m.state {
	case stateBrowse:
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
		if len(visible) == 0 {
			b.WriteString(helpStyle.Render("no matches"))
			b.WriteString("\n")
		}
		for i, e := range visible {
			line := fmt.Sprintf("%-7s %s %s", e.kind, nameStyle.Render(e.name), typeStyle.Render(e.summary))
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("type to filter • ↑/↓ select • enter details • esc clear • ctrl+c quit"))

	case stateDetail:
		e := visible[m.selected]
		b.WriteString(fmt.Sprintf("%s %s\n\n", e.kind, nameStyle.Render(e.name)))
		b.WriteString(e.detail)
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter back • q quit"))
	}

	return b.String()
}

// planEntries flattens a plan into browsable entries.
func planEntries(plan *planner.Plan) []entry {
	var entries []entry

	for _, o := range plan.Objects {
		var d strings.Builder
		fmt.Fprintf(&d, "size %d", o.Size)
		if o.Large {
			d.WriteString(" (large)")
		}
		d.WriteString("\n\nfields:\n")
		for _, f := range o.Fields {
			fmt.Fprintf(&d, "  %s %s  [%d]\n", typeStyle.Render(f.Member), f.Name, f.Size)
		}
		d.WriteString("\nconstructor order:\n")
		for _, f := range o.Init {
			opt := ""
			if !f.Required {
				opt = " (optional)"
			}
			fmt.Fprintf(&d, "  %s%s\n", f.Name, opt)
		}
		entries = append(entries, entry{
			name:    o.TypeName,
			summary: fmt.Sprintf("%d bytes", o.Size),
			detail:  d.String(),
			kind:    entryObject,
		})
	}

	for _, e := range plan.Enums {
		entries = append(entries, entry{
			name:    e.TypeName,
			summary: strings.Join(e.Cases, " | "),
			detail:  "cases:\n  " + strings.Join(e.Cases, "\n  "),
			kind:    entryEnum,
		})
	}

	for _, fn := range plan.Imports {
		entries = append(entries, functionEntry(fn, entryImport))
	}
	for _, fn := range plan.Exports {
		entries = append(entries, functionEntry(fn, entryExport))
	}
	return entries
}

func functionEntry(fn planner.FunctionPlan, kind entryKind) entry {
	summary := fn.Return + " (" + fn.Param + ")"

	var d strings.Builder
	fmt.Fprintf(&d, "wrapper:   %s %s(%s)\n", typeStyle.Render(fn.Return), fn.Name, typeStyle.Render(fn.Param))
	if fn.Convention != nil {
		fmt.Fprintf(&d, "passing:   %s\n", fn.Convention)
	}
	fmt.Fprintf(&d, "core:      %s\n", fn.Signature)
	if fn.Input != nil {
		fmt.Fprintf(&d, "input:     %s as %s, %s handle of %s\n", fn.Input.Type, fn.Input.ContentType, fn.Input.Accessor, fn.Input.Element)
	}
	if fn.Output != nil {
		fmt.Fprintf(&d, "output:    %s as %s, %s handle of %s\n", fn.Output.Type, fn.Output.ContentType, fn.Output.Accessor, fn.Output.Element)
	}
	if fn.Description != "" {
		fmt.Fprintf(&d, "\n%s\n", fn.Description)
	}

	return entry{
		name:    fn.Name,
		summary: summary,
		detail:  d.String(),
		kind:    kind,
	}
}

func runInteractive(filename string, p *planner.Planner) error {
	prog := tea.NewProgram(newInteractiveModel(filename, p), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}
