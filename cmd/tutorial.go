package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iksnae/power-annotate/internal"
)

var (
	tutorialStep int
	tutorialList bool
)

// tutorialCmd represents the tutorial command
var tutorialCmd = &cobra.Command{
	Use:   "tutorial",
	Short: "Walk through the annotation tutorial",
	Long: `Step through worked examples showing how experienced reviewers label
conversational power. Each step shows a case, guidance, and a suggested
label. Steps are 1-based; out-of-range steps clamp to the nearest one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, err := internal.LoadTutorial(viper.GetString("tutorial"))
		if err != nil {
			return err
		}
		if len(steps) == 0 {
			internal.PrintWarning(fmt.Sprintf("No tutorial available at %s", viper.GetString("tutorial")))
			return nil
		}

		walkthrough := internal.NewWalkthrough(steps)

		if tutorialList {
			for i, step := range steps {
				fmt.Printf("%2d. %s\n", i+1, step.Title)
			}
			return nil
		}

		walkthrough.Jump(tutorialStep - 1)
		displayTutorialStep(walkthrough)
		return nil
	},
}

// displayTutorialStep prints the current step with its case and suggestion
func displayTutorialStep(w *internal.Walkthrough) {
	step := w.Current()

	fmt.Println(caseHeaderStyle.Render(fmt.Sprintf("📖 Step %d/%d: %s", w.Pos()+1, w.Len(), step.Title)))
	fmt.Println(step.Instruction)

	if step.Case != nil {
		fmt.Println()
		displayCase(step.Case)
	}

	if step.SuggestedLabel != nil {
		fmt.Println()
		internal.PrintInfo(fmt.Sprintf("Suggested label: winner=%s, tags=[%s]",
			step.SuggestedLabel.Winner, strings.Join(step.SuggestedLabel.PowerSources, ", ")))
	}

	if !w.AtEnd() {
		fmt.Println()
		fmt.Println(idStyle.Render(fmt.Sprintf("💡 Next: power-annotate tutorial --step %d", w.Pos()+2)))
	}
}

func init() {
	rootCmd.AddCommand(tutorialCmd)
	tutorialCmd.Flags().IntVar(&tutorialStep, "step", 1, "Tutorial step to show (1-based)")
	tutorialCmd.Flags().BoolVar(&tutorialList, "list", false, "List step titles")
}
