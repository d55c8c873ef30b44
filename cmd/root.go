package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/whattopick/wtp/internal/prompt"
)

var rootCmd = &cobra.Command{
	Use:   "wtp [tree]",
	Short: "wtp — decision trees to help humans decide stuff",
	Long: `wtp walks you through a decision tree one choice at a time until you
reach an answer. Trees live as plain-text files: siblings share an
indentation level, children are indented deeper than their parent.

    A node in level 1
        Some child in level 2
        Another child in level 2
    Another node in level 1
        A child of the node above
            A node in level 3

With no tree name, wtp picks from the "default" tree (or the
default_tree from ~/.config/wtp/config.yaml).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("picking is interactive and needs a terminal")
		}
		return RunPick(cmd.OutOrStdout(), prompt.New(), treeArg(args))
	},
}

func treeArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
