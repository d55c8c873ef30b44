package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/whattopick/wtp/internal/store"
)

var pathCmd = &cobra.Command{
	Use:   "path [tree]",
	Short: "Print the file path of a pick tree",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunPath(cmd.OutOrStdout(), treeArg(args))
	},
}

func init() {
	rootCmd.AddCommand(pathCmd)
}

// RunPath prints the resolved path unstyled so it composes with other tools.
func RunPath(w io.Writer, name string) error {
	name, err := resolveTreeName(name)
	if err != nil {
		return err
	}
	st, err := store.Default()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, st.Path(name))
	return nil
}
