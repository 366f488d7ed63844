package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ocimeta/internal/resolver"
)

// newGetCmd creates the get command for resolving a single field.
func newGetCmd() *cobra.Command {
	var ecoOverride string

	cmd := &cobra.Command{
		Use:   "get <field> [path]",
		Short: "Resolve a single metadata field",
		Long: `Resolve one logical field (title, description, version, authors, vendor,
licenses, url, documentation, source) and print its raw value. An
unresolvable field prints an empty line; only broken machinery (no
manifest, no parser) is an error.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := resolver.ParseField(args[0])
			if err != nil {
				return err
			}

			root := "."
			if len(args) == 2 {
				root = args[1]
			}
			res, _, err := loadProject(root, ecoOverride)
			if err != nil {
				return err
			}

			value, err := res.Resolve(field)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}

	cmd.Flags().StringVarP(&ecoOverride, "ecosystem", "e", "", "explicit ecosystem (node, python, rust, php, go); skips detection")

	return cmd
}
