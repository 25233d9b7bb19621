package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration",
	Long: `Print the configuration the game would run with, as YAML.

The file is looked up in this order: --config, ~/.pong/configs/pong.yaml,
./configs/pong.yaml, then the built-in defaults.

Examples:
  pong config
  pong config --defaults > ~/.pong/configs/pong.yaml
  pong config --config ./my-pong.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults with comments")
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		if _, err := os.Stdout.Write(config.DefaultYAML()); err != nil {
			fatalf("%v", err)
		}
		return
	}

	cfg, err := config.LoadPong(flagConfig)
	if err != nil {
		fatalf("loading config: %v", err)
	}
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		fatalf("encoding config: %v", err)
	}
	if err := enc.Close(); err != nil {
		fatalf("%v", err)
	}
}
