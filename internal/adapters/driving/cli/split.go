package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/json-split/internal/adapters/driven/config/file"
	"github.com/custodia-labs/json-split/internal/adapters/driven/filesystem"
	"github.com/custodia-labs/json-split/internal/adapters/driven/progress"
	"github.com/custodia-labs/json-split/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/json-split/internal/core/domain"
	"github.com/custodia-labs/json-split/internal/core/ports/driven"
	"github.com/custodia-labs/json-split/internal/core/services"
	"github.com/custodia-labs/json-split/internal/logger"
)

// Config keys, in flattened dot notation.
const (
	keyArrayPath  = "split.array_path"
	keyIDPath     = "split.id_path"
	keyPretty     = "split.pretty"
	keyCollisions = "split.collisions"
	keyOutputDir  = "split.output_dir"
	keyColor      = "output.color"
)

var (
	arrayPath  string
	idPath     string
	pretty     bool
	collisions bool
	outputDir  string
	dryRun     bool
	configPath string
	noColor    bool
	verbose    bool
)

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&arrayPath, "array-path", "a", "", "dotted JSON path to an array in the input file")
	flags.StringVarP(&idPath, "id-path", "i", "", "dotted JSON path to the ID in the array element")
	flags.BoolVarP(&pretty, "pretty", "p", false, "pretty print output files")
	flags.BoolVarP(&collisions, "collisions", "c", false,
		"allow ID collisions; still warns but duplicates overwrite previous files")
	flags.StringVarP(&outputDir, "output-dir", "o", "", "directory for output files (default current directory)")
	flags.BoolVar(&dryRun, "dry-run", false, "run every check but write nothing; list the files that would be written")
	flags.StringVar(&configPath, "config", "", "config file (default ~/.json-split/config.toml)")
	flags.BoolVar(&noColor, "no-color", false, "disable coloured progress output")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log resolution and write details")
}

// splitOptions is the merged view of flags and config file.
type splitOptions struct {
	request   domain.SplitRequest
	outputDir string
	dryRun    bool
	color     bool
}

func runSplit(cmd *cobra.Command, args []string) error {
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetVerbose(verbose)

	store, err := loadConfig()
	if err != nil {
		return err
	}

	opts, err := resolveOptions(cmd, store, args)
	if err != nil {
		return err
	}
	if err := opts.request.Validate(); err != nil {
		return err
	}

	var writer driven.ElementWriter
	var dryStore *memory.ElementStore
	if opts.dryRun {
		dryStore = memory.NewElementStore()
		writer = dryStore
	} else {
		writer = filesystem.NewWriter(opts.outputDir)
	}

	reporter := progress.NewReporter(cmd.ErrOrStderr(), opts.color)
	svc := services.NewSplitService(filesystem.NewReader(), writer, reporter)

	report, err := svc.Split(context.Background(), opts.request)
	if err != nil {
		if len(report.Written) > 0 {
			logger.Debug("%d file(s) written before the failure are left in place", len(report.Written))
		}
		return err
	}

	if dryStore != nil {
		printDryRun(cmd, dryStore, opts.outputDir)
	}
	return nil
}

// loadConfig returns the injected store, or the TOML file store.
// An explicit --config file must exist; the default one is optional.
func loadConfig() (driven.ConfigStore, error) {
	if configStore != nil {
		return configStore, nil
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", configPath)
		}
	}

	store, err := file.NewConfigStore(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger.Debug("Config: %s", store.Path())
	return store, nil
}

// resolveOptions merges flags with config values. A flag set on the command
// line always wins over the config file. Both paths must be given by one or
// the other; an empty value is a valid path.
func resolveOptions(cmd *cobra.Command, store driven.ConfigStore, files []string) (splitOptions, error) {
	flags := cmd.Flags()

	stringOpt := func(flag, key, value string) (string, bool) {
		if flags.Changed(flag) {
			return value, true
		}
		if _, ok := store.Get(key); ok {
			return store.GetString(key), true
		}
		return value, false
	}
	requiredPath := func(flag, key, value, field string) (domain.DottedPath, error) {
		v, ok := stringOpt(flag, key, value)
		if !ok {
			return domain.DottedPath{}, &domain.RequestError{
				Field:  field,
				Reason: fmt.Sprintf("is required (--%s or %s)", flag, key),
			}
		}
		return domain.ParsePath(v), nil
	}
	boolOpt := func(flag, key string, value bool) bool {
		if flags.Changed(flag) {
			return value
		}
		if _, ok := store.Get(key); ok {
			return store.GetBool(key)
		}
		return value
	}

	color := !noColor && progress.IsTerminal(cmd.ErrOrStderr())
	if _, ok := store.Get(keyColor); ok && !flags.Changed("no-color") {
		color = color && store.GetBool(keyColor)
	}

	arrays, err := requiredPath("array-path", keyArrayPath, arrayPath, "array path")
	if err != nil {
		return splitOptions{}, err
	}
	ids, err := requiredPath("id-path", keyIDPath, idPath, "ID path")
	if err != nil {
		return splitOptions{}, err
	}
	dir, _ := stringOpt("output-dir", keyOutputDir, outputDir)

	return splitOptions{
		request: domain.SplitRequest{
			ArrayPath:       arrays,
			IDPath:          ids,
			Pretty:          boolOpt("pretty", keyPretty, pretty),
			AllowCollisions: boolOpt("collisions", keyCollisions, collisions),
			Files:           files,
		},
		outputDir: dir,
		dryRun:    dryRun,
		color:     color,
	}, nil
}

func printDryRun(cmd *cobra.Command, store *memory.ElementStore, dir string) {
	if dir == "" {
		dir = "."
	}
	out := cmd.OutOrStdout()
	names := store.Names()
	fmt.Fprintf(out, "Dry run: %d file(s) would be written to %s\n", len(names), dir)
	for _, name := range names {
		data, _ := store.Get(name)
		fmt.Fprintf(out, "  %s (%d bytes)\n", name, len(data))
	}
}
