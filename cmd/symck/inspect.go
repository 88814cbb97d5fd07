package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"symck/internal/ast"
	"symck/internal/fixture"
	"symck/internal/source"
	"symck/internal/symtab"
	"symck/internal/symtype"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <fixture-file>",
	Short: "Browse a fixture's declared symbols in an interactive list",
	Long: `inspect loads a fixture file's declarations into a layer (the
same way check does) and opens a scrollable list of every symbol the
layer owns, tagged by its SymbolKind.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

// symbolItem adapts one declared symbol to list.DefaultItem.
type symbolItem struct {
	name, kind string
}

func (it symbolItem) Title() string       { return it.name }
func (it symbolItem) Description() string { return it.kind }
func (it symbolItem) FilterValue() string { return it.name }

func runInspect(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("inspect: %w", err)
	}

	strs := source.NewInterner()
	types := symtype.NewInterner()
	table := symtab.NewTable(types)
	layer := table.NewLayer(args[0], symtab.PolicyDefault)
	pool := ast.NewPool(0)

	if _, err := fixture.Load(bytes.NewReader(content), layer, types, pool, strs); err != nil {
		return fmt.Errorf("inspect: %w", err)
	}

	cache := table.Cache()
	names := layer.Names()
	items := make([]list.Item, 0, len(names))
	for _, name := range names {
		text, _ := strs.Lookup(name)
		items = append(items, symbolItem{name: text, kind: cache.KindOf(name).String()})
	}

	program := tea.NewProgram(newInspectModel(args[0], items), tea.WithAltScreen())
	_, err = program.Run()
	return err
}

type inspectModel struct {
	title string
	list  list.Model
}

func newInspectModel(title string, items []list.Item) *inspectModel {
	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, 0, 0)
	l.Title = fmt.Sprintf("symbols in %s", title)
	l.Styles.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	return &inspectModel{title: title, list: l}
}

func (m *inspectModel) Init() tea.Cmd { return nil }

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *inspectModel) View() string {
	return m.list.View()
}
