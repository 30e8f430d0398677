package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var inspectJSON bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <note-id>",
	Short: "Show the icon, classes and visible children of a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := GetService(ctx)
		if err != nil {
			return err
		}

		info, err := s.Inspect(ctx, args[0])
		if err != nil {
			return err
		}

		if inspectJSON {
			return printJSON(info)
		}

		fmt.Printf("Note:     %s (%s)\n", info.NoteID, info.Title)
		fmt.Printf("Type:     %s [%s]\n", info.Type, info.Kind)
		fmt.Printf("Icon:     %s\n", info.Icon)
		fmt.Printf("Classes:  %s\n", info.ExtraClasses)
		fmt.Printf("Parents:  %s\n", strings.Join(info.ParentNoteIDs, ", "))
		fmt.Printf("Children: %s\n", strings.Join(info.VisibleChildIDs, ", "))
		if len(info.HiddenChildIDs) > 0 {
			fmt.Printf("Hidden:   %s\n", strings.Join(info.HiddenChildIDs, ", "))
		}
		return nil
	},
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "print the result as JSON")
	rootCmd.AddCommand(inspectCmd)
}
