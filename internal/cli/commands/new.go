package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wrapgen/wrapgen/internal/naming"
)

// NewNewCommand creates the new command
func NewNewCommand() *cobra.Command {
	var (
		pkgName     string
		dir         string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "new <TypeName>",
		Short: "Scaffold an annotated resource file",
		Long: `Create a Go file with an annotated resource struct and a metadata type
stub, ready for wrapgen generate.

Examples:
  wrapgen new Plan
  wrapgen new MappingRule --package api --dir ./api
  wrapgen new Plan --interactive`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			successColor := color.New(color.FgGreen, color.Bold)
			infoColor := color.New(color.FgCyan)

			name := args[0]
			if err := validateTypeName(name); err != nil {
				return err
			}

			var overrides []string
			metadataType := name + "Metadata"

			if interactive {
				answers := struct {
					NameSnake string
					Plural    string
					Metadata  string
				}{}
				questions := []*survey.Question{
					{
						Name:   "nameSnake",
						Prompt: &survey.Input{Message: "Singular wire key (empty for derived):"},
					},
					{
						Name:   "plural",
						Prompt: &survey.Input{Message: "Plural type name (empty for derived):"},
					},
					{
						Name:   "metadata",
						Prompt: &survey.Input{Message: fmt.Sprintf("Metadata type name (empty for %s):", metadataType)},
					},
				}
				if err := survey.Ask(questions, &answers); err != nil {
					return err
				}
				if answers.NameSnake != "" {
					overrides = append(overrides, fmt.Sprintf("name_snake = %q", answers.NameSnake))
				}
				if answers.Plural != "" {
					overrides = append(overrides, fmt.Sprintf("plural = %q", answers.Plural))
				}
				if answers.Metadata != "" {
					metadataType = answers.Metadata
				}
			}
			overrides = append(overrides, fmt.Sprintf("metadata = %q", metadataType))

			filename := filepath.Join(dir, naming.ToSnakeCase(name)+".go")
			if _, err := os.Stat(filename); err == nil {
				return fmt.Errorf("file %s already exists", filename)
			}

			content := fmt.Sprintf(`package %s

// %s carries the read-only fields the server merges into %s
// responses.
type %s struct {
	CreatedAt string `+"`json:\"created_at\"`"+`
	UpdatedAt string `+"`json:\"updated_at\"`"+`
}

//go:generate wrapgen generate .

//wrapgen:resource %s
type %s struct {
	ID uint64 `+"`json:\"id\"`"+`

	// Add your fields here
}
`, pkgName, metadataType, name, metadataType, strings.Join(overrides, ", "), name)

			if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}

			successColor.Printf("✓ Created %s\n", filename)
			infoColor.Println("\nNext steps:")
			fmt.Println("  1. Add fields to your resource and metadata types")
			fmt.Println("  2. Run 'wrapgen generate' to emit the collection wrappers")
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().StringVar(&pkgName, "package", "models", "Package name for the new file")
	cmd.Flags().StringVar(&dir, "dir", ".", "Directory for the new file")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Ask for directive overrides")

	return cmd
}

func validateTypeName(name string) error {
	if name == "" {
		return fmt.Errorf("type name cannot be empty")
	}
	for i, r := range name {
		if i == 0 && !unicode.IsUpper(r) {
			return fmt.Errorf("type name %q must be exported (start with an upper case letter)", name)
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return fmt.Errorf("type name %q must be a plain identifier", name)
		}
	}
	return nil
}
