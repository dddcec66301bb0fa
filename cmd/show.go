package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/iksnae/power-annotate/internal"
)

var (
	// Styles for show command
	caseHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Padding(0, 1).
			MarginBottom(1)

	caseMetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	speaker1Style = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	speaker2Style = lipgloss.NewStyle().
			Foreground(lipgloss.Color("135")).
			Bold(true)

	turnStyle = lipgloss.NewStyle().
			Padding(0, 2)
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <case-id>",
	Short: "Show a case transcript and any existing annotation",
	Long:  `Display the full conversation for a case, its metadata, and the annotator's existing judgment if one is stored.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		caseID := args[0]

		cases, err := loadCases()
		if err != nil {
			return err
		}

		c := findCase(cases, caseID)
		if c == nil {
			return fmt.Errorf("case not found: %s (use 'power-annotate list' to see available cases)", caseID)
		}

		displayCase(c)

		st, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		name := resolveAnnotator()
		done, err := st.List(name)
		if err != nil {
			return err
		}

		fmt.Println()
		if rec, ok := done[c.ID]; ok {
			internal.PrintInfo(fmt.Sprintf("Annotated by %s at %s: winner=%s, tags=[%s]",
				rec.Annotator, rec.Timestamp, rec.Winner, strings.Join(rec.PowerSources, ", ")))
		} else {
			internal.PrintInfo(fmt.Sprintf("Not yet annotated by %s. Winner options: %s",
				name, strings.Join(c.WinnerOptions(), ", ")))
		}
		return nil
	},
}

// displayCase prints the case header, metadata, and transcript
func displayCase(c *internal.Case) {
	n1, n2 := c.Meta.DisplayNames()

	fmt.Println(caseHeaderStyle.Render("🗣  " + c.ID))
	fmt.Println(caseMetaStyle.Render(fmt.Sprintf("Relationship: %s", c.Meta.Relationship())))
	fmt.Println(caseMetaStyle.Render(fmt.Sprintf("Participants: %s vs %s", n1, n2)))
	if c.Meta.Role1 != "" || c.Meta.Role2 != "" {
		fmt.Println(caseMetaStyle.Render(fmt.Sprintf("Roles:        %s / %s", c.Meta.Role1, c.Meta.Role2)))
	}
	fmt.Println()

	if len(c.Raw.Script) == 0 {
		fmt.Println(turnStyle.Render("(no conversation available)"))
		return
	}

	for _, turn := range c.Raw.Script {
		style := speaker2Style
		if turn.Speaker == n1 {
			style = speaker1Style
		}
		fmt.Println(turnStyle.Render(style.Render(turn.Speaker+":") + " " + turn.Text))
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
}
