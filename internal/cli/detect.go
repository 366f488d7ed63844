package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ocimeta/internal/ecosystem"
	"ocimeta/pkg/fileops"
)

// newDetectCmd creates the detect command.
func newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect [path]",
		Short: "Detect the project's packaging ecosystem",
		Long: `Detect which packaging ecosystem a project belongs to by probing for
manifest marker files in fixed priority order: package.json (node),
pyproject.toml (python), Cargo.toml (rust), composer.json (php), go.mod (go).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := fileops.ValidateProjectRoot(rootArg(args))
			if err != nil {
				return err
			}
			eco, err := ecosystem.Detect(root)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), eco.String())
			return nil
		},
	}
}
