package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iksnae/power-annotate/internal"
)

// progressCmd represents the progress command
var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show how much of the case set is annotated",
	RunE: func(cmd *cobra.Command, args []string) error {
		cases, err := loadCases()
		if err != nil {
			return err
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		name := resolveAnnotator()
		count, err := st.Count(name)
		if err != nil {
			return err
		}

		progress := internal.Progress{Done: count, Total: len(cases)}
		fmt.Printf("%s  %s\n", countStyle.Render(name), progress.Render(40))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)
}
