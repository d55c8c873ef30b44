package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/whattopick/wtp/internal/store"
	"github.com/whattopick/wtp/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all pick trees",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunList(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func RunList(w io.Writer) error {
	st, err := store.Default()
	if err != nil {
		return err
	}
	names, err := st.List()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		ui.NoTreesLine(w)
		return nil
	}
	for _, name := range names {
		ui.TreeLine(w, name)
	}
	return nil
}
