package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/iksnae/power-annotate/internal"
)

var (
	listUnannotated bool
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List cases and their annotation status",
	Long: `List every case in the source, marking the ones the annotator has
already labeled. Use --unannotated to see only the remaining work.`,
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
		done, err := st.List(name)
		if err != nil {
			return err
		}

		displayCases(cases, done, listUnannotated)

		progress := internal.Progress{Done: len(done), Total: len(cases)}
		fmt.Println()
		fmt.Printf("%s  %s\n", countStyle.Render(name), progress.Render(30))
		return nil
	},
}

// displayCases prints one row per case, skipping annotated ones when
// unannotatedOnly is set
func displayCases(cases []*internal.Case, done map[string]*internal.AnnotationRecord, unannotatedOnly bool) {
	if len(cases) == 0 {
		fmt.Println(headerStyle.Render("📋 No cases found"))
		return
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("📋 %d case(s)", len(cases))))
	fmt.Println()

	// Use tabwriter for aligned columns
	w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', 0)

	_, _ = fmt.Fprintln(w, "\t"+titleStyle.Render("#")+"\t"+titleStyle.Render("ID")+"\t"+titleStyle.Render("Relationship")+"\t"+titleStyle.Render("Participants")+"\t"+titleStyle.Render("Turns")+"\t")

	for i, c := range cases {
		_, annotated := done[c.ID]
		if unannotatedOnly && annotated {
			continue
		}

		mark := "⬜"
		if annotated {
			mark = "✅"
		}
		n1, n2 := c.Meta.DisplayNames()
		_, _ = fmt.Fprintf(w, "%s\t%05d\t%s\t%s\t%s\t%s\t\n",
			mark,
			i,
			idStyle.Render(c.ID),
			c.Meta.Relationship(),
			n1+" vs "+n2,
			strconv.Itoa(len(c.Raw.Script)),
		)
	}

	_ = w.Flush()

	if len(cases) > 0 {
		fmt.Println()
		fmt.Println(idStyle.Render("💡 Tip: annotate a case with ") +
			lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Render("power-annotate annotate --case "+cases[0].ID+" --winner <name> --tags ROLE"))
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listUnannotated, "unannotated", false, "Show only cases without an annotation")
}
