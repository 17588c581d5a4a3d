package cmd

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tnguyen-labs/submatch/errs"
	ccfg "github.com/tnguyen-labs/submatch/internal/config"
)

var (
	cfgFile   string
	cacheDir  string
	verbose   bool
	debugMode bool

	logger *log.Logger
	cfg    *ccfg.Config
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "submatch",
	Short: "Subgraph isomorphism counting and enumeration over multi-channel directed multigraphs",
	Long: `submatch counts and enumerates subgraph isomorphisms of a template
graph T inside a world graph W, where both graphs carry multiple edge
channels and integer edge multiplicities.`,
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		loaded, err := ccfg.Load(cfgFile)
		if err != nil {
			return err
		}
		if cacheDir != "" {
			loaded.Cache.Dir = cacheDir
		}
		if verbose {
			loaded.Log.Verbose = true
		}
		if debugMode {
			loaded.Log.Debug = true
		}
		cfg = loaded
		errs.Debug = cfg.Log.Debug

		logger = log.New(os.Stderr, "[submatch] ", log.LstdFlags)
		return nil
	},
}

// Execute runs the root command, exiting the process with a non-zero
// status on any error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml/json/toml)")
	rootCmd.PersistentFlags().StringVar(&cacheDir, "cache", "", "cache directory (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging and invariant panics")

	binName := BinName()
	rootCmd.Example = `  # Load a template and a world graph into the cache
  ` + binName + ` load --template t.txt --world w.txt --dataset demo

  # Run the filter pipeline against the cached dataset
  ` + binName + ` filter --dataset demo --filters all

  # Count isomorphisms
  ` + binName + ` match --dataset demo --count-only`
}

// BinName returns the executable's base name, used to render usage examples
// against however the binary was actually invoked.
func BinName() string {
	return filepath.Base(os.Args[0])
}
