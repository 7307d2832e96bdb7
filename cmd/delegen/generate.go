package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/delegen/delegen"
	"github.com/delegen/delegen/internal/cli"
	"github.com/delegen/delegen/pkg/generator"
	"github.com/delegen/delegen/pkg/project"
)

var (
	genSchema       string
	genDeclarations string
	genOutput       string
	genNamespace    string
	genAuxPrefix    string
	genClientImport string
	genCommand      []string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate delegate-projected client declarations",
	Long: `Run the external client generator and project the delegate hierarchy
over its type declarations.

When the schema has no delegate hierarchy, the original declarations are
used as-is and only the re-export module is written.`,
	Example: `  # Generate with settings from delegen.yaml
  delegen generate

  # Override the schema graph and output directory
  delegen generate --schema build/schema.json --output internal/client/

  # Skip the external generator (declarations already emitted)
  delegen generate --declarations client/declarations.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Resolve values: flags > config > defaults
		schemaPath := resolveString(genSchema, cfg.Schema)
		declarations := resolveString(genDeclarations, cfg.Generate.Declarations)
		output := resolveString(genOutput, cfg.Generate.Output)
		command := resolveCommand(genCommand, cfg.Generate.Command)

		if schemaPath == "" {
			return cli.ConfigError("--schema is required", nil)
		}
		if declarations == "" {
			return cli.ConfigError("--declarations is required", nil)
		}
		if output == "" {
			return cli.ConfigError("--output is required", nil)
		}

		result, err := generator.Run(cmd.Context(), generator.Options{
			SchemaPath:       schemaPath,
			GeneratorCommand: command,
			DeclarationsPath: declarations,
			OutputDir:        output,
			ClientImport:     resolveString(genClientImport, cfg.Generate.ClientImport),
			Project: project.Config{
				Namespace: resolveString(genNamespace, cfg.Generate.Namespace),
				AuxPrefix: resolveString(genAuxPrefix, cfg.Generate.AuxPrefix),
			},
		})
		if err != nil {
			if delegen.IsInvalidGraphErr(err) {
				return cli.SchemaError("generation failed", err)
			}
			return cli.GenerationError("generation failed", err)
		}

		for _, w := range result.Warnings {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
		}
		if !quiet {
			for _, name := range result.Artifacts {
				fmt.Printf("Generated %s/%s\n", output, name)
			}
			if !result.Projected {
				fmt.Println("No delegate hierarchy found; re-export points at the original client declarations")
			}
		}

		return nil
	},
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&genSchema, "schema", "", "path to the resolved schema graph document")
	f.StringVar(&genDeclarations, "declarations", "", "path of the client generator's declaration document")
	f.StringVar(&genOutput, "output", "", "artifact output directory")
	f.StringVar(&genNamespace, "namespace", "", "CRUD namespace in the declaration tree (default: Prisma)")
	f.StringVar(&genAuxPrefix, "aux-prefix", "", "reserved synthetic member prefix (default: delegate_aux)")
	f.StringVar(&genClientImport, "client-import", "", "module specifier of the original client declarations (default: ./client)")
	f.StringSliceVar(&genCommand, "command", nil, "external client generator invocation (argv)")
}
