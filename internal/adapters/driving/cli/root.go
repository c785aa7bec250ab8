// Package cli implements the json-split command line.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/json-split/internal/core/ports/driven"
)

// version is set at build time via -ldflags "-X ...cli.version=...".
var version = "dev"

// configStore overrides the TOML config file when set. Used by tests.
var configStore driven.ConfigStore

var rootCmd = &cobra.Command{
	Use:   "json-split -a ARRAY_PATH -i ID_PATH [flags] FILE...",
	Short: "Split a JSON array of objects into one file per object",
	Long: `Splits the array found at a dotted JSON path into one file per element.
Each file is named ARRAY_PATH-ID_PATH-ID.json, where ID is the string found
at the dotted ID path inside the element.

IDs must be unique across all input files. With --collisions a duplicate ID
overwrites the earlier file and is flagged (DUPE!) instead of stopping the run.

Assumptions:
  The dotted path keys for array and ID don't contain periods.

Configuration:
  Defaults are read from ~/.json-split/config.toml (or --config):

    [split]
    array_path = "Apple.Banana"
    id_path = "id"
    pretty = true
    collisions = false
    output_dir = "out"

    [output]
    color = true

  Flags given on the command line always win.`,
	Example: `  # {"Apple":{"Banana":[{"id":"12",...},...]}} -> Apple.Banana-id-12.json
  json-split -a 'Apple.Banana' -i 'id' file.json

  # {"Apple":[{"Banana":{"id":"12",...}},...]} -> Apple-Banana.id-12.json
  json-split -a 'Apple' -i 'Banana.id' file.json

  # {"Apple":{"Banana":[{"Cherry":{"id":"12",...}},...]}} -> Apple.Banana-Cherry.id-12.json
  json-split -a 'Apple.Banana' -i 'Cherry.id' file.json`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSplit,
}

func init() {
	rootCmd.Version = version
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
