package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iksnae/power-annotate/internal"
)

var (
	healthcheckVerbose bool
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check if power-annotate can read its case source and store",
	Long: `Check the health of power-annotate by verifying:
  • Case source readability and id uniqueness
  • Tutorial availability
  • Annotation store access

Useful for debugging data issues before an annotation session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(sectionStyle.Render("🔍 Power Annotate Health Check"))
		fmt.Println()

		// Step 1: Load the case source
		fmt.Println(infoStyle.Render("Step 1: Loading case source..."))
		dataPath := viper.GetString("data")
		cases, err := internal.LoadCases(dataPath)
		if err != nil {
			fmt.Println(errorStyle.Render("❌ Failed to load cases:"), err)
			os.Exit(1)
		}
		fmt.Println(successStyle.Render(fmt.Sprintf("✅ Loaded %d case(s)", len(cases))))
		if healthcheckVerbose {
			fmt.Printf("   Source: %s\n", dataPath)
			for i, c := range cases {
				if i < 5 { // Show first 5
					fmt.Printf("   [%d] %s (%s)\n", i+1, c.ID, c.Meta.Relationship())
				}
			}
			if len(cases) > 5 {
				fmt.Printf("   ... and %d more\n", len(cases)-5)
			}
		}
		fmt.Println()

		// Step 2: Check id uniqueness
		fmt.Println(infoStyle.Render("Step 2: Checking case id uniqueness..."))
		seen := make(map[string]bool, len(cases))
		duplicates := 0
		for _, c := range cases {
			if seen[c.ID] {
				duplicates++
				if healthcheckVerbose {
					fmt.Printf("   Duplicate: %s\n", c.ID)
				}
			}
			seen[c.ID] = true
		}
		if duplicates > 0 {
			fmt.Println(warningStyle.Render(fmt.Sprintf("⚠️  %d duplicate case id(s) found", duplicates)))
			fmt.Println("   Later annotations will attach to the first case with each id")
		} else {
			fmt.Println(successStyle.Render("✅ All case ids unique"))
		}
		fmt.Println()

		// Step 3: Check the tutorial
		fmt.Println(infoStyle.Render("Step 3: Checking tutorial..."))
		tutorialPath := viper.GetString("tutorial")
		steps, err := internal.LoadTutorial(tutorialPath)
		switch {
		case err != nil:
			fmt.Println(errorStyle.Render("❌ Tutorial unreadable:"), err)
			os.Exit(1)
		case steps == nil:
			fmt.Println(warningStyle.Render("⚠️  No tutorial file found"))
			if healthcheckVerbose {
				fmt.Printf("   Expected: %s\n", tutorialPath)
			}
		default:
			fmt.Println(successStyle.Render(fmt.Sprintf("✅ Tutorial has %d step(s)", len(steps))))
		}
		fmt.Println()

		// Step 4: Open the annotation store
		fmt.Println(infoStyle.Render("Step 4: Testing annotation store access..."))
		st, err := openStore()
		if err != nil {
			fmt.Println(errorStyle.Render("❌ Failed to open store:"), err)
			os.Exit(1)
		}
		defer func() { _ = st.Close() }()

		name := resolveAnnotator()
		count, err := st.Count(name)
		if err != nil {
			fmt.Println(errorStyle.Render("❌ Failed to read store:"), err)
			os.Exit(1)
		}
		fmt.Println(successStyle.Render(fmt.Sprintf("✅ Store reachable, %d annotation(s) for %s", count, name)))
		fmt.Println()

		// Summary
		fmt.Println(sectionStyle.Render("📊 Summary"))
		fmt.Println()
		progress := internal.Progress{Done: count, Total: len(cases)}
		fmt.Println(progress.Render(30))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
	healthcheckCmd.Flags().BoolVar(&healthcheckVerbose, "details", false, "Show detailed check output")
}
