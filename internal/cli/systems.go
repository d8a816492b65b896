package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/verdantlab/lsys/pkg/system"
)

// systemsCommand creates the systems listing command.
func (c *CLI) systemsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "systems",
		Short: "List the built-in Lindenmayer systems",
		RunE: func(cmd *cobra.Command, args []string) error {
			printSystems(system.All())
			return nil
		},
	}
}

// printSystems renders the registry as a table.
func printSystems(systems []*system.System) {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(systems))
	for _, sys := range systems {
		random := "—"
		if sys.Random() {
			random = "✓"
		}
		rows = append(rows, []string{
			sys.Name,
			string(sys.Engine),
			string(sys.Axiom),
			random,
			sys.Description,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Engine", "Axiom", "Random", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			switch col {
			case 0:
				return StyleHighlight
			case 4:
				return StyleDim
			default:
				return StyleValue
			}
		})

	fmt.Println(t.Render())
	printNextStep("Derive one", "lsys derive algae -n 5")
}
