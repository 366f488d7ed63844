package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"ocimeta/internal/labels"
)

var (
	inspectHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	inspectKeyStyle    = lipgloss.NewStyle().Bold(true).Width(15)
	inspectEmptyStyle  = lipgloss.NewStyle().Faint(true)
)

// newInspectCmd creates the inspect command, the human-readable view of the
// label set.
func newInspectCmd() *cobra.Command {
	var ecoOverride string

	cmd := &cobra.Command{
		Use:   "inspect [path]",
		Short: "Show resolved metadata in a readable table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, cfg, err := loadProject(rootArg(args), ecoOverride)
			if err != nil {
				return err
			}

			assembler := labels.NewAssembler(res)
			assembler.VendorFallback = cfg.VendorFallback
			lines, err := assembler.Assemble()
			if err != nil {
				return err
			}

			var b strings.Builder
			header := fmt.Sprintf("%s (%s)", res.Root(), res.Ecosystem())
			b.WriteString(inspectHeaderStyle.Render(header))
			b.WriteByte('\n')
			for _, line := range lines {
				value := line.Value
				if value == "" {
					value = inspectEmptyStyle.Render("(empty)")
				}
				b.WriteString(inspectKeyStyle.Render(line.Key))
				b.WriteString(value)
				b.WriteByte('\n')
			}

			fmt.Fprint(cmd.OutOrStdout(), b.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&ecoOverride, "ecosystem", "e", "", "explicit ecosystem (node, python, rust, php, go); skips detection")

	return cmd
}
