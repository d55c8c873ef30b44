// Package prompt implements the interactive single-select used during a
// descent. It renders a one-line-per-option list; enter picks the option
// under the cursor, esc or ctrl+c cancels. Cursor movement takes arrows and
// vim-style j/k, and "/" filters the visible options.
package prompt

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"github.com/whattopick/wtp/internal/picker"
)

// Select is a picker.Chooser backed by a terminal prompt.
type Select struct{}

func New() *Select {
	return &Select{}
}

// ChooseOne blocks until the user picks an option or cancels the prompt.
func (s *Select) ChooseOne(options []string) (int, error) {
	out, err := tea.NewProgram(newSelectModel(options)).Run()
	if err != nil {
		return 0, fmt.Errorf("running select prompt: %w", err)
	}
	m := out.(selectModel)
	if m.cancelled || !m.done {
		return 0, picker.ErrCancelled
	}
	return m.choice, nil
}

type optionItem struct {
	label string
	index int
}

func (i optionItem) Title() string       { return i.label }
func (i optionItem) FilterValue() string { return strings.ToLower(i.label) }

type selectModel struct {
	list      list.Model
	choice    int
	done      bool
	cancelled bool
}

func newSelectModel(options []string) selectModel {
	items := make([]list.Item, len(options))
	for i, label := range options {
		items[i] = optionItem{label: label, index: i}
	}

	l := list.New(items, newOptionDelegate(), 80, promptHeight(len(options)))
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.Select(0)

	return selectModel{list: l}
}

func promptHeight(n int) int {
	h := n + 2
	if h > 14 {
		h = 14
	}
	if h < 4 {
		h = 4
	}
	return h
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, promptHeight(len(m.list.Items())))
		return m, nil
	case tea.KeyMsg:
		// While a filter is being typed, every key belongs to the filter.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if it, ok := m.list.SelectedItem().(optionItem); ok {
				m.choice = it.index
				m.done = true
				return m, tea.Quit
			}
		case "esc", "ctrl+c", "q":
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	return m.list.View()
}

type optionDelegate struct {
	normal   lipgloss.Style
	selected lipgloss.Style
}

func newOptionDelegate() optionDelegate {
	return optionDelegate{
		normal: lipgloss.NewStyle().PaddingLeft(2),
		selected: lipgloss.NewStyle().
			PaddingLeft(0).
			Foreground(lipgloss.Color("6")).
			Bold(true),
	}
}

func (d optionDelegate) Height() int                             { return 1 }
func (d optionDelegate) Spacing() int                            { return 0 }
func (d optionDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d optionDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(optionItem)
	if !ok {
		return
	}

	line := it.label
	if index == m.Index() {
		line = d.selected.Render("> " + line)
	} else {
		line = d.normal.Render(line)
	}

	if width := m.Width(); width > 0 && xansi.StringWidth(line) > width {
		line = xansi.Cut(line, 0, width)
	}
	fmt.Fprint(w, line)
}
