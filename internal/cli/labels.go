package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ocimeta/internal/labels"
)

// newLabelsCmd creates the labels command, the build-arg file emitter.
func newLabelsCmd() *cobra.Command {
	var (
		ecoOverride string
		strict      bool
		output      string
	)

	cmd := &cobra.Command{
		Use:   "labels [path]",
		Short: "Emit the OCI label set as KEY=value lines",
		Long: `Emit the full OCI label set for a project as newline-delimited KEY=value
pairs: TITLE, DESCRIPTION, VERSION, AUTHORS, VENDOR, LICENSES, URL,
DOCUMENTATION, SOURCE, CREATED, REVISION. The output is consumed as a
build-argument file by a container build, which maps each key to an
org.opencontainers.image.* label.

Fields the manifest cannot answer are emitted with empty values. With
--strict the command fails instead when TITLE or VERSION is empty, which is
the contract a container build relies on.`,
		Args: cobra.MaximumNArgs(1),
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
			if strict {
				if err := labels.RequireCore(lines); err != nil {
					return err
				}
			}

			rendered := labels.Render(lines)
			if output != "" {
				if err := os.WriteFile(output, []byte(rendered), 0o644); err != nil {
					return fmt.Errorf("failed to write label file: %w", err)
				}
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}

	cmd.Flags().StringVarP(&ecoOverride, "ecosystem", "e", "", "explicit ecosystem (node, python, rust, php, go); skips detection")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when TITLE or VERSION resolve empty")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write labels to a file instead of stdout")

	return cmd
}
