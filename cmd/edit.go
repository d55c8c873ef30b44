package cmd

import (
	"github.com/spf13/cobra"

	"github.com/whattopick/wtp/internal/config"
	"github.com/whattopick/wtp/internal/editor"
	"github.com/whattopick/wtp/internal/store"
)

var editCmd = &cobra.Command{
	Use:   "edit [tree]",
	Short: "Create or edit a pick tree in your editor",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunEdit(treeArg(args))
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func RunEdit(name string) error {
	name, err := resolveTreeName(name)
	if err != nil {
		return err
	}
	cfg, err := config.Read()
	if err != nil {
		return err
	}
	st, err := store.Default()
	if err != nil {
		return err
	}
	if err := st.Ensure(); err != nil {
		return err
	}
	return editor.Open(editor.Command(cfg.Editor), st.Path(name))
}
