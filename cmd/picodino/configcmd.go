package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"picodino/internal/config"
)

var (
	flagConfigOut   string
	flagConfigForce bool
	flagSchemaOut   string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show, write or describe the configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration the game would run with, after the config
file search order and the selected variant have been applied.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	Long: `Write the commented default configuration to ~/.picodino/config.yaml,
or to the path given with --out. Refuses to overwrite an existing file
unless --force is set.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the configuration JSON schema",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		out, err := config.Schema()
		if err != nil {
			return err
		}
		if flagSchemaOut != "" {
			if err := os.WriteFile(flagSchemaOut, out, 0o600); err != nil {
				return fmt.Errorf("cannot write schema: %w", err)
			}
			fmt.Printf("wrote %s\n", flagSchemaOut)
			return nil
		}
		fmt.Print(string(out))
		return nil
	},
}

func init() {
	configInitCmd.Flags().StringVar(&flagConfigOut, "out", "", "Destination path (default ~/.picodino/config.yaml)")
	configInitCmd.Flags().BoolVar(&flagConfigForce, "force", false, "Overwrite an existing file")
	configSchemaCmd.Flags().StringVar(&flagSchemaOut, "out", "", "Write the schema to a file instead of stdout")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSchemaCmd)
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	path := flagConfigOut
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot resolve home directory: %w", err)
		}
		path = filepath.Join(home, ".picodino", "config.yaml")
	}

	if !flagConfigForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists, use --force to overwrite", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}
	if err := os.WriteFile(path, config.DefaultYAML(), 0o600); err != nil {
		return fmt.Errorf("cannot write config: %w", err)
	}

	fmt.Printf("wrote %s\n", path)
	return nil
}
