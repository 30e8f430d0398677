package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"notetree/internal/adapters/fixture"
)

var seedCmd = &cobra.Command{
	Use:   "seed <file.yaml>",
	Short: "Load notes and branches from a YAML fixture",
	Long: `Write the notes, attributes and branches described in a YAML fixture
into the database. Existing records with the same IDs are replaced.

Example:
  notetree-cli seed notes.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := fixture.ParseFile(args[0])
		if err != nil {
			return err
		}

		set, err := fixture.Seed(cmd.Context(), svc.Store, doc)
		if err != nil {
			return err
		}

		fmt.Printf("Seeded %d notes and %d branches into %s\n", len(set.Notes), len(set.Branches), svc.Store.Path())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
