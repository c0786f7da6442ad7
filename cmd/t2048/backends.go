package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/registry"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List ledger storage backends",
	Long:  `Shows the registered ledger backends and their default locations.`,
	Args:  cobra.NoArgs,
	Run:   runBackends,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration after applying the search order
(--config, ~/.t2048/config.yaml, ./configs/t2048.yaml, built-in defaults)
and command-line overrides. The output is valid config YAML.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runBackends(cmd *cobra.Command, args []string) {
	backends := registry.List()

	maxNameLen := 4 // "Name" header
	for _, b := range backends {
		maxNameLen = max(maxNameLen, len(b.Name))
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Default path")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "------------")
	for _, b := range backends {
		fmt.Printf("  %-*s  %s\n", maxNameLen, b.Name, b.DefaultPath)
	}

	fmt.Println()
	fmt.Println("Select one with --backend <name> or storage.backend in the config.")
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig("")
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}
	fmt.Fprint(cmd.OutOrStdout(), string(out))
}
