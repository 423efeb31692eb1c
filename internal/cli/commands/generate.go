package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wrapgen/wrapgen/internal/cli/config"
	"github.com/wrapgen/wrapgen/internal/codegen"
	"github.com/wrapgen/wrapgen/internal/directive"
	"github.com/wrapgen/wrapgen/internal/naming"
	"github.com/wrapgen/wrapgen/internal/scan"
	"github.com/wrapgen/wrapgen/internal/trace"
)

// NewGenerateCommand creates the generate command
func NewGenerateCommand() *cobra.Command {
	var (
		dryRun  bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:     "generate [packages]",
		Aliases: []string{"g"},
		Short:   "Generate collection wrappers for annotated resources",
		Long: `Scan the given packages (default ./...) for structs annotated with a
//wrapgen:resource directive and write a generated file with the
envelope, tag and collection types next to each resource.

Examples:
  wrapgen generate
  wrapgen generate ./models ./api
  wrapgen generate --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			successColor := color.New(color.FgGreen, color.Bold)
			infoColor := color.New(color.FgCyan)
			warningColor := color.New(color.FgYellow)

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
				warningColor.Println("No annotated resources found.")
				infoColor.Println("Annotate a struct with //wrapgen:resource to generate wrappers for it.")
				return nil
			}

			targets := make(map[string]*scan.Resource)
			for _, resource := range resources {
				names := buildNames(cfg, resource)

				target := filepath.Join(resource.Dir, names.NameSnake+cfg.Generate.Suffix)
				if previous, ok := targets[target]; ok {
					return fmt.Errorf("resources %s and %s both generate %s; override name_snake on one of them",
						previous.Name, resource.Name, target)
				}
				targets[target] = resource

				generator := codegen.NewGenerator()
				generator.GenerateFamily(names)
				out, err := generator.File(resource.Pkg, cfg.Generate.Header)
				if err != nil {
					return fmt.Errorf("failed to generate wrappers for %s: %w", resource.Name, err)
				}

				if dryRun {
					infoColor.Printf("would write %s (%s)\n", target, resource.Name)
					continue
				}
				if err := os.WriteFile(target, out, 0644); err != nil {
					return fmt.Errorf("failed to write %s: %w", target, err)
				}
				successColor.Printf("✓ %s (%s)\n", target, resource.Name)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show target files without writing them")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable diagnostic output")

	return cmd
}

// buildNames finalizes the identifier set for one resource. Config
// defaults apply first so directive attributes can override them.
func buildNames(cfg *config.Config, resource *scan.Resource) naming.Names {
	builder := naming.NewBuilder(resource.Name)
	if cfg.Defaults.Metadata != "" {
		builder.Set("metadata", cfg.Defaults.Metadata)
	}
	for _, pair := range directive.ParsePairs(resource.Args) {
		builder.Set(pair.Key, pair.Value)
	}
	return builder.Build()
}

func registerPlurals(cfg *config.Config) {
	for _, override := range cfg.Plurals {
		if override.Singular != "" && override.Plural != "" {
			naming.RegisterPlural(override.Singular, override.Plural)
		}
	}
}
