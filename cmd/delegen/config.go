package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if configPath != "" {
			fmt.Printf("Config file: %s\n", configPath)
		} else {
			fmt.Println("Config file: (none found, using defaults)")
		}
		fmt.Printf("schema: %s\n", cfg.Schema)
		fmt.Printf("generate.command: %s\n", strings.Join(cfg.Generate.Command, " "))
		fmt.Printf("generate.declarations: %s\n", cfg.Generate.Declarations)
		fmt.Printf("generate.output: %s\n", cfg.Generate.Output)
		fmt.Printf("generate.namespace: %s\n", cfg.Generate.Namespace)
		fmt.Printf("generate.aux_prefix: %s\n", cfg.Generate.AuxPrefix)
		fmt.Printf("generate.client_import: %s\n", cfg.Generate.ClientImport)
		return nil
	},
}
