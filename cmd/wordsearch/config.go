package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/wordsearch/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print the configuration after files, WORDSEARCH_* variables, flags and
the grid flags have been applied.

Use --defaults to print the built-in config file, a starting point for
~/.wordsearch/config.yaml.

Examples:
  wordsearch config
  wordsearch config --size 12
  wordsearch config --defaults > ~/.wordsearch/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	data, err := yaml.Marshal(app.cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	fmt.Fprintf(out, "# source: %s\n", app.cfg.Source)
	_, err = out.Write(data)
	return err
}
