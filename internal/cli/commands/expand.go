package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wrapgen/wrapgen/internal/cli/config"
	"github.com/wrapgen/wrapgen/internal/codegen"
	"github.com/wrapgen/wrapgen/internal/scan"
	"github.com/wrapgen/wrapgen/internal/trace"
)

// NewExpandCommand creates the expand command
func NewExpandCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "expand [packages]",
		Short: "Print annotated resources with their wrapper families",
		Long: `Print, for every annotated resource, the original declaration followed
by the generated envelope, tag, collection and conversions. Useful for
inspecting what generate would emit without touching any file.

Examples:
  wrapgen expand
  wrapgen expand ./models`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if verbose || cfg.Verbose {
				trace.Enable()
			}
			defer trace.Sync()
			registerPlurals(cfg)

			patterns := args
			if len(patterns) == 0 {
				patterns = []string{"./..."}
			}

			resources, err := scan.Load(patterns...)
			if err != nil {
				return err
			}
			if len(resources) == 0 {
				return fmt.Errorf("no annotated resources found in %v", patterns)
			}

			out := cmd.OutOrStdout()
			for i, resource := range resources {
				generator := codegen.NewGenerator()
				generator.GenerateExpanded(buildNames(cfg, resource), resource.Source)

				file, err := generator.File(resource.Pkg, fmt.Sprintf("Expanded from %s", resource.File))
				if err != nil {
					return fmt.Errorf("failed to expand %s: %w", resource.Name, err)
				}
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprint(out, string(file))
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable diagnostic output")

	return cmd
}
