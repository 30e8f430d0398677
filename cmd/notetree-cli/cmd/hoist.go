package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var hoistClear bool

var hoistCmd = &cobra.Command{
	Use:   "hoist [note-id]",
	Short: "Make a note the effective root of the tree",
	Long: `Hoist a note so the tree starts at it, or return to the root.

Examples:
  notetree-cli hoist projects
  notetree-cli hoist --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := GetService(ctx)
		if err != nil {
			return err
		}

		var noteID string
		if len(args) == 1 {
			noteID = args[0]
		}

		result, err := s.SetHoist(ctx, noteID, hoistClear)
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	hoistCmd.Flags().BoolVar(&hoistClear, "clear", false, "return to the root")
	rootCmd.AddCommand(hoistCmd)
}
