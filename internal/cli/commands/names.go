package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/wrapgen/wrapgen/internal/cli/config"
	"github.com/wrapgen/wrapgen/internal/cli/ui"
	"github.com/wrapgen/wrapgen/internal/directive"
	"github.com/wrapgen/wrapgen/internal/naming"
	"github.com/wrapgen/wrapgen/internal/trace"
)

// NewNamesCommand creates the names command
func NewNamesCommand() *cobra.Command {
	var (
		verbose bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "names <TypeName> [key=value...]",
		Short: "Show the derived identifier family for a resource name",
		Long: `Derive and print the full identifier set (wire keys, plural forms,
wrapper type names) for a base resource name, optionally applying the
same overrides a //wrapgen:resource directive would.

Examples:
  wrapgen names MappingRule
  wrapgen names Plan name_snake=application_plan metadata=PlanMetadata`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				trace.Enable()
			}
			defer trace.Sync()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			registerPlurals(cfg)

			builder := naming.NewBuilder(args[0])
			if cfg.Defaults.Metadata != "" {
				builder.Set("metadata", cfg.Defaults.Metadata)
			}
			for _, pair := range directive.ParsePairs(attributeText(args[1:])) {
				builder.Set(pair.Key, pair.Value)
			}
			names := builder.Build()

			table := ui.NewTable(cmd.OutOrStdout(), "FIELD", "VALUE")
			if noColor {
				table.DisableColor()
			}
			table.AddRow("name", names.Name)
			table.AddRow("name_snake", names.NameSnake)
			table.AddRow("name_and_metadata", names.Envelope)
			table.AddRow("name_tag", names.Tag)
			table.AddRow("plural", names.Plural)
			table.AddRow("plural_snake", names.PluralSnake)
			table.AddRow("metadata", names.MetadataType)
			table.Render()

			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable diagnostic output")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

// attributeText rebuilds directive attribute syntax from command line
// key=value arguments, quoting bare values so the shell does not have
// to.
func attributeText(args []string) string {
	entries := make([]string, 0, len(args))
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if found && !strings.HasPrefix(value, "\"") {
			arg = key + " = " + "\"" + value + "\""
		}
		entries = append(entries, arg)
	}
	return strings.Join(entries, ", ")
}
