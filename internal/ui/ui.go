package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	noticeStyle = lipgloss.NewStyle().Faint(true)
	treeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// ResultLine prints the leaf label a descent ended on.
func ResultLine(w io.Writer, label string) {
	fmt.Fprintln(w, resultStyle.Render(label))
}

// EmptyTreeLine explains that a tree has nothing to pick from.
func EmptyTreeLine(w io.Writer, name string) {
	fmt.Fprintln(w, noticeStyle.Render(
		fmt.Sprintf("nothing to pick from in %q — run `wtp edit %s` to add options", name, name)))
}

// TreeLine prints one row of `wtp list`.
func TreeLine(w io.Writer, name string) {
	fmt.Fprintln(w, treeStyle.Render(name))
}

// NoTreesLine explains that the store holds no pick trees yet.
func NoTreesLine(w io.Writer) {
	fmt.Fprintln(w, noticeStyle.Render("no pick trees yet — run `wtp edit <name>` to create one"))
}
