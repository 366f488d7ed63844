// Package cli implements the ocimeta command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ocimeta/internal/config"
	"ocimeta/internal/logging"
	"ocimeta/internal/manifest"
	"ocimeta/internal/project"
	"ocimeta/internal/resolver"
)

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  = "none"
	date    = "unknown" // build timestamp
)

// SetVersion sets the version information displayed by --version. This is
// typically called by the main package with values injected via ldflags at
// build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the ocimeta CLI and returns an error if any command fails.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "ocimeta",
		Short:        "ocimeta extracts OCI image-label metadata from project manifests",
		Long:         `ocimeta inspects a project root, detects its packaging ecosystem (node, python, rust, php, go), and resolves the standard OCI image-label fields from its manifest. The label set is emitted as a KEY=value build-arg file for container builds.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logging.GetDefault().SetVerbose()
			}
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("ocimeta %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newLabelsCmd())
	root.AddCommand(newGetCmd())
	root.AddCommand(newDetectCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newMCPCmd())
	root.AddCommand(newConfigCmd())

	return root.Execute()
}

// rootArg returns the project root positional argument, defaulting to the
// current directory.
func rootArg(args []string) string {
	if len(args) > 0 {
		return args[len(args)-1]
	}
	return "."
}

// loadProject loads the config and builds a resolver for the given root,
// honoring the command-line ecosystem override, then the configured
// default, then marker detection.
func loadProject(root, override string) (*resolver.Resolver, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		logging.Warn("Failed to load config, using defaults", "error", err)
		defaults := config.DefaultConfig()
		cfg = &defaults
	}
	if override == "" {
		override = cfg.DefaultEcosystem
	}

	res, err := project.Load(root, override, manifest.DefaultRegistry())
	if err != nil {
		return nil, nil, err
	}
	return res, cfg, nil
}
