package prompt

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m selectModel, msgs ...tea.Msg) selectModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(selectModel)
		require.True(t, ok)
	}
	return m
}

func TestSelectModel_EnterPicksFirstOptionByDefault(t *testing.T) {
	m := newSelectModel([]string{"Fruit", "Vegetable"})

	m = update(t, m, key("enter"))

	assert.True(t, m.done)
	assert.False(t, m.cancelled)
	assert.Equal(t, 0, m.choice)
}

func TestSelectModel_ArrowKeysMoveCursor(t *testing.T) {
	m := newSelectModel([]string{"a", "b", "c"})

	m = update(t, m, key("down"), key("down"), key("up"), key("enter"))

	assert.True(t, m.done)
	assert.Equal(t, 1, m.choice)
}

func TestSelectModel_VimKeysMoveCursor(t *testing.T) {
	m := newSelectModel([]string{"a", "b", "c"})

	m = update(t, m, key("j"), key("j"), key("k"), key("enter"))

	assert.True(t, m.done)
	assert.Equal(t, 1, m.choice)
}

func TestSelectModel_EscCancels(t *testing.T) {
	m := newSelectModel([]string{"a", "b"})

	m = update(t, m, key("esc"))

	assert.True(t, m.cancelled)
	assert.False(t, m.done)
}

func TestSelectModel_CtrlCCancels(t *testing.T) {
	m := newSelectModel([]string{"a", "b"})

	m = update(t, m, key("ctrl+c"))

	assert.True(t, m.cancelled)
}

func TestSelectModel_ChoiceIsOriginalIndexAfterFiltering(t *testing.T) {
	m := newSelectModel([]string{"apple", "banana", "cherry"})

	// Filter down to "cherry", accept the filter, then pick it.
	m = update(t, m, key("/"), key("cherry"), key("enter"), key("enter"))

	assert.True(t, m.done)
	assert.Equal(t, 2, m.choice)
}

func TestSelectModel_ViewClearsOnceDecided(t *testing.T) {
	m := newSelectModel([]string{"a"})
	assert.NotEmpty(t, m.View())

	m = update(t, m, key("enter"))
	assert.Empty(t, m.View())
}

func TestPromptHeight(t *testing.T) {
	assert.Equal(t, 4, promptHeight(1))
	assert.Equal(t, 7, promptHeight(5))
	assert.Equal(t, 14, promptHeight(50))
}
