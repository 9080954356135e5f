package picker

import (
	"testing"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

func newFuzzyModel(images ...string) fuzzyModel {
	items := []list.Item{entry{label: RandomLabel, random: true}}
	for _, p := range images {
		items = append(items, entry{label: p, path: p})
	}
	return fuzzyModel{list: list.New(items, entryDelegate{}, 40, 12)}
}

func TestFuzzyModelQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		m := newFuzzyModel("a.png")
		updated, _ := m.Update(key)
		if !updated.(fuzzyModel).quit {
			t.Errorf("key %q should quit", key.String())
		}
	}
}

func TestFuzzyModelEnterSelectsEntry(t *testing.T) {
	m := newFuzzyModel("a.png", "b.png")
	m.list.Select(1)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	fm := updated.(fuzzyModel)
	if fm.choice == nil {
		t.Fatal("expected a choice")
	}
	if fm.choice.path != "a.png" || fm.choice.random {
		t.Errorf("choice = %+v", fm.choice)
	}
}

func TestFuzzyModelEnterOnRandomRow(t *testing.T) {
	m := newFuzzyModel("a.png")
	// The synthetic random entry is always the first row.
	m.list.Select(0)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	fm := updated.(fuzzyModel)
	if fm.choice == nil || !fm.choice.random {
		t.Errorf("expected the random entry, got %+v", fm.choice)
	}
}
