// Package picker walks a pick tree one interactive choice at a time.
package picker

import (
	"errors"
	"fmt"

	"github.com/whattopick/wtp/internal/outline"
)

// ErrCancelled is reported by a Chooser when the user aborts the prompt.
var ErrCancelled = errors.New("selection cancelled")

// Chooser presents an ordered, non-empty list of options and returns the
// 0-based index the user chose, or ErrCancelled.
type Chooser interface {
	ChooseOne(options []string) (int, error)
}

// ChooserFunc adapts a function to the Chooser interface.
type ChooserFunc func(options []string) (int, error)

func (f ChooserFunc) ChooseOne(options []string) (int, error) {
	return f(options)
}

// Result classifies how a descent ended.
type Result int

const (
	// Completed means a leaf was reached; its label accompanies the result.
	Completed Result = iota
	// EmptyTree means the root had no children and no prompt was issued.
	EmptyTree
	// Cancelled means the user aborted one of the prompts.
	Cancelled
)

// Descend walks from root toward a leaf, issuing exactly one prompt per
// level. It returns the leaf label on Completed; the label is empty for
// EmptyTree and Cancelled. A non-nil error is only returned when the chooser
// fails in a way that is not a cancellation, or violates its contract by
// returning an out-of-range index.
func Descend(root *outline.Node, chooser Chooser) (Result, string, error) {
	if root.IsLeaf() {
		return EmptyTree, "", nil
	}

	current := root
	for !current.IsLeaf() {
		i, err := chooser.ChooseOne(current.ChildLabels())
		if errors.Is(err, ErrCancelled) {
			return Cancelled, "", nil
		}
		if err != nil {
			return 0, "", fmt.Errorf("prompting for a choice: %w", err)
		}
		if i < 0 || i >= len(current.Children) {
			return 0, "", fmt.Errorf("choice index %d out of range [0, %d)", i, len(current.Children))
		}
		current = current.Children[i]
	}

	return Completed, current.Label, nil
}
