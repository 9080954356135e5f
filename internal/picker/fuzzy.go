package picker

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	fuzzyTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7C3AED")).
			Bold(true)

	itemStyle = lipgloss.NewStyle().PaddingLeft(2)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(0).
				Foreground(lipgloss.Color("#10B981"))

	randomItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B"))
)

// FuzzyPicker is the interactive backend: a filtering list widget where
// typing "/" narrows entries fuzzily, Enter opens, Esc or q quits.
type FuzzyPicker struct{}

func (FuzzyPicker) Pick(images []string) (Selection, error) {
	items := make([]list.Item, 0, len(images)+1)
	items = append(items, entry{label: RandomLabel, random: true})
	for _, p := range images {
		items = append(items, entry{label: p, path: p})
	}

	l := list.New(items, entryDelegate{}, 0, 0)
	l.Title = fmt.Sprintf("Select image (%d found)", len(images))
	l.Styles.Title = fuzzyTitleStyle
	l.SetShowStatusBar(false)
	l.DisableQuitKeybindings()

	final, err := tea.NewProgram(fuzzyModel{list: l}, tea.WithAltScreen()).Run()
	if err != nil {
		return Selection{}, fmt.Errorf("run picker: %w", err)
	}

	m, ok := final.(fuzzyModel)
	if !ok || m.quit || m.choice == nil {
		return Selection{Quit: true}, nil
	}
	if m.choice.random {
		return Selection{Random: true}, nil
	}
	return Selection{Path: m.choice.path}, nil
}

// entry is one selectable row.
type entry struct {
	label  string
	path   string
	random bool
}

func (e entry) FilterValue() string { return e.label }

// entryDelegate renders rows compactly, one line each.
type entryDelegate struct{}

func (d entryDelegate) Height() int                             { return 1 }
func (d entryDelegate) Spacing() int                            { return 0 }
func (d entryDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d entryDelegate) Render(w io.Writer, m list.Model, index int, li list.Item) {
	e, ok := li.(entry)
	if !ok {
		return
	}

	label := e.label
	if e.random {
		label = randomItemStyle.Render(label)
	}
	if index == m.Index() {
		fmt.Fprint(w, selectedItemStyle.Render("› "+label))
		return
	}
	fmt.Fprint(w, itemStyle.Render(label))
}

type fuzzyModel struct {
	list   list.Model
	choice *entry
	quit   bool
}

func (m fuzzyModel) Init() tea.Cmd { return nil }

func (m fuzzyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quit = true
			return m, tea.Quit
		}
		// While the filter input is live, every other key belongs to it.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "esc":
			m.quit = true
			return m, tea.Quit
		case "enter":
			if e, ok := m.list.SelectedItem().(entry); ok {
				m.choice = &e
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m fuzzyModel) View() string {
	return m.list.View()
}
