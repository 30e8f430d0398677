package cmd

import (
	"math"
	"os"

	"github.com/spf13/cobra"

	"notetree/internal/application/commands"
)

var (
	treeDepth     int
	treeExpandAll bool
	treeJSON      bool
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Display the note tree from the effective root",
	Long: `Display the tree starting at the hoisted note, or the root when nothing
is hoisted. Folders follow their stored expansion state unless --depth or
--expand-all open them.

Example:
  notetree-cli tree
  notetree-cli tree --depth 2
  notetree-cli tree --expand-all --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := GetService(ctx)
		if err != nil {
			return err
		}

		depth := treeDepth
		if treeExpandAll {
			depth = math.MaxInt32
		}

		root, err := s.BuildRoot(ctx, depth)
		if err != nil {
			return err
		}

		if treeJSON {
			return printJSON(root)
		}
		return commands.WriteOutline(os.Stdout, root)
	},
}

func init() {
	treeCmd.Flags().IntVarP(&treeDepth, "depth", "d", 0, "expand collapsed folders down to this depth")
	treeCmd.Flags().BoolVar(&treeExpandAll, "expand-all", false, "expand every folder")
	treeCmd.Flags().BoolVar(&treeJSON, "json", false, "print display nodes as JSON")
	rootCmd.AddCommand(treeCmd)
}
