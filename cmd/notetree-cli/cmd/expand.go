package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"notetree/internal/application/commands"
)

var expandJSON bool

var expandCmd = &cobra.Command{
	Use:   "expand <note-id>",
	Short: "List the display nodes under a note",
	Long: `Build the children of a note the way a lazy folder does when it is
opened. Search notes are refreshed first.

Example:
  notetree-cli expand projects`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := GetService(ctx)
		if err != nil {
			return err
		}

		children, err := s.Expand(ctx, args[0])
		if err != nil {
			return err
		}

		if expandJSON {
			return printJSON(children)
		}
		return commands.WriteNodes(os.Stdout, children)
	},
}

func init() {
	expandCmd.Flags().BoolVar(&expandJSON, "json", false, "print display nodes as JSON")
	rootCmd.AddCommand(expandCmd)
}
