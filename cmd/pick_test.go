package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whattopick/wtp/internal/picker"
)

// setupStore points the store and config at throwaway directories and
// returns the store root.
func setupStore(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("WTP_DATA_DIR", root)
	t.Setenv("HOME", t.TempDir())
	return root
}

func writeTree(t *testing.T, root, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0o644))
}

func choices(indices ...int) picker.Chooser {
	return picker.ChooserFunc(func(options []string) (int, error) {
		i := indices[0]
		indices = indices[1:]
		return i, nil
	})
}

func cancelling() picker.Chooser {
	return picker.ChooserFunc(func(options []string) (int, error) {
		return 0, picker.ErrCancelled
	})
}

func TestPick_DescendsToLeaf(t *testing.T) {
	root := setupStore(t)
	writeTree(t, root, "food", `Fruit
    Apple
    Banana
Vegetable
    Carrot
`)

	var buf bytes.Buffer
	require.NoError(t, RunPick(&buf, choices(0, 1), "food"))

	assert.Contains(t, buf.String(), "Banana")
}

func TestPick_EmptyTreePrintsNotice(t *testing.T) {
	root := setupStore(t)
	writeTree(t, root, "empty", "")

	var buf bytes.Buffer
	require.NoError(t, RunPick(&buf, cancelling(), "empty"))

	assert.Contains(t, buf.String(), "nothing to pick from")
	assert.Contains(t, buf.String(), "empty")
}

func TestPick_CancelledPrintsNothing(t *testing.T) {
	root := setupStore(t)
	writeTree(t, root, "food", "Pizza\nSushi\n")

	var buf bytes.Buffer
	require.NoError(t, RunPick(&buf, cancelling(), "food"))

	assert.Empty(t, buf.String())
}

func TestPick_MissingTreeIsAnError(t *testing.T) {
	setupStore(t)

	var buf bytes.Buffer
	err := RunPick(&buf, cancelling(), "nope")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
	assert.Empty(t, buf.String())
}

func TestPick_NoNameUsesDefaultTree(t *testing.T) {
	root := setupStore(t)
	writeTree(t, root, "default", "Yes\nNo\n")

	var buf bytes.Buffer
	require.NoError(t, RunPick(&buf, choices(1), ""))

	assert.Contains(t, buf.String(), "No")
}

func TestPick_NoNameHonorsConfigDefaultTree(t *testing.T) {
	root := setupStore(t)
	home := os.Getenv("HOME")
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".config", "wtp"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(home, ".config", "wtp", "config.yaml"),
		[]byte("default_tree: lunch\n"), 0o644))
	writeTree(t, root, "lunch", "Ramen\n")

	var buf bytes.Buffer
	require.NoError(t, RunPick(&buf, choices(0), ""))

	assert.Contains(t, buf.String(), "Ramen")
}
