package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iksnae/power-annotate/internal"
)

var (
	annotateCaseID string
	annotateWinner string
	annotateTags   []string
)

// annotateCmd represents the annotate command
var annotateCmd = &cobra.Command{
	Use:   "annotate",
	Short: "Record a power judgment for a case",
	Long: `Record which participant held conversational power in a case, with the
power-source tags behind that judgment.

Saving the same case again fully replaces the previous record for this
annotator. Other annotators' records are untouched.

Valid tags: ` + strings.Join(internal.PowerSourceTags, ", "),
	RunE: func(cmd *cobra.Command, args []string) error {
		cases, err := loadCases()
		if err != nil {
			return err
		}

		c := findCase(cases, annotateCaseID)
		if c == nil {
			return fmt.Errorf("case not found: %s (use 'power-annotate list' to see available cases)", annotateCaseID)
		}

		// Tags come from a closed vocabulary
		for _, tag := range annotateTags {
			if !internal.IsPowerSourceTag(tag) {
				return fmt.Errorf("unknown power source tag: %s (valid: %s)",
					tag, strings.Join(internal.PowerSourceTags, ", "))
			}
		}

		// Winner is stored as given, even off-list
		if !isWinnerOption(c, annotateWinner) {
			internal.PrintWarning(fmt.Sprintf("winner %q is not one of [%s], storing as given",
				annotateWinner, strings.Join(c.WinnerOptions(), ", ")))
		}

		name := resolveAnnotator()
		record := internal.NewAnnotationRecord(c, name, annotateWinner, annotateTags)

		st, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		if err := st.Upsert(record); err != nil {
			return err
		}

		count, err := st.Count(name)
		if err != nil {
			return err
		}

		progress := internal.Progress{Done: count, Total: len(cases)}
		internal.PrintSuccess(fmt.Sprintf("Saved %s for %s", c.ID, name))
		fmt.Println(progress.Render(30))
		return nil
	},
}

// isWinnerOption checks if winner is a valid choice for the case
func isWinnerOption(c *internal.Case, winner string) bool {
	for _, opt := range c.WinnerOptions() {
		if winner == opt {
			return true
		}
	}
	return false
}

func init() {
	rootCmd.AddCommand(annotateCmd)
	annotateCmd.Flags().StringVar(&annotateCaseID, "case", "", "Case id to annotate")
	annotateCmd.Flags().StringVar(&annotateWinner, "winner", "", "Participant holding power, or Tie")
	annotateCmd.Flags().StringSliceVar(&annotateTags, "tags", nil, "Power source tags (comma separated)")
	_ = annotateCmd.MarkFlagRequired("case")
	_ = annotateCmd.MarkFlagRequired("winner")
}
