package cmd

import (
	"io"

	"github.com/whattopick/wtp/internal/config"
	"github.com/whattopick/wtp/internal/outline"
	"github.com/whattopick/wtp/internal/picker"
	"github.com/whattopick/wtp/internal/store"
	"github.com/whattopick/wtp/internal/ui"
)

// RunPick parses the named tree and descends it with the given chooser.
// A cancelled descent prints nothing and is not an error.
func RunPick(w io.Writer, chooser picker.Chooser, name string) error {
	name, err := resolveTreeName(name)
	if err != nil {
		return err
	}

	st, err := store.Default()
	if err != nil {
		return err
	}
	content, err := st.Read(name)
	if err != nil {
		return err
	}

	res, label, err := picker.Descend(outline.Parse(content), chooser)
	if err != nil {
		return err
	}

	switch res {
	case picker.Completed:
		ui.ResultLine(w, label)
	case picker.EmptyTree:
		ui.EmptyTreeLine(w, name)
	}
	return nil
}

// resolveTreeName applies the config default, then the built-in default.
func resolveTreeName(name string) (string, error) {
	if name != "" {
		return name, nil
	}
	cfg, err := config.Read()
	if err != nil {
		return "", err
	}
	if cfg.DefaultTree != "" {
		return cfg.DefaultTree, nil
	}
	return store.DefaultTree, nil
}
