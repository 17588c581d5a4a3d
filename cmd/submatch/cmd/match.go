package cmd

import (
	"context"
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/tnguyen-labs/submatch/cache"
	"github.com/tnguyen-labs/submatch/cs"
	"github.com/tnguyen-labs/submatch/match"
	"github.com/tnguyen-labs/submatch/partition"
)

var (
	matchDataset    string
	matchCapIso     string
	matchCapMatches int64
	matchMaxWorkers int
	matchCountOnly  bool
)

var matchCmd = &cobra.Command{
	Use:     "match",
	Short:   "Run the matcher against a cached, filtered dataset",
	Example: `  ` + BinName() + ` match --dataset demo --count-only`,
	RunE:    runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringVar(&matchDataset, "dataset", "", "dataset id/slug in the cache (required)")
	matchCmd.Flags().StringVar(&matchCapIso, "cap-iso", "", "halt once the isomorphism count strictly exceeds this decimal value (unbounded if empty)")
	matchCmd.Flags().Int64Var(&matchCapMatches, "cap-matches", 0, "halt after this many full-match events (0 = unbounded)")
	matchCmd.Flags().IntVar(&matchMaxWorkers, "max-workers", 0, "parallel branch fan-out width (<=1 disables parallelism, 0 = use config)")
	matchCmd.Flags().BoolVar(&matchCountOnly, "count-only", false, "print only the isomorphism count, not the signal-node set")
	matchCmd.MarkFlagRequired("dataset")
}

func runMatch(c *cobra.Command, args []string) error {
	store := cache.NewStore(cfg.Cache.Dir)
	tmpl, err := store.LoadGraph(matchDataset, "template", "template")
	if err != nil {
		return fmt.Errorf("loading cached template: %w", err)
	}
	world, err := store.LoadGraph(matchDataset, "world", "world")
	if err != nil {
		return fmt.Errorf("loading cached world: %w", err)
	}
	m, err := store.LoadMatrix(matchDataset)
	if err != nil {
		return fmt.Errorf("loading cached candidate matrix (run 'filter' first): %w", err)
	}

	part := partition.Structural(tmpl)
	candStruct := cs.New(tmpl, world, part)
	candStruct.M = m

	caps := match.Caps{
		MaxMatches: matchCapMatches,
		MaxWorkers: resolveMaxWorkers(),
	}
	if cfg.Log.Verbose || cfg.Log.Debug {
		caps.Logger = logger
	}
	if matchCapIso != "" {
		n, ok := new(big.Int).SetString(matchCapIso, 10)
		if !ok {
			return fmt.Errorf("--cap-iso %q is not a decimal integer", matchCapIso)
		}
		caps.MaxIsomorphisms = n
	} else if n := cfg.MaxIsomorphismsBigInt(); n != nil {
		caps.MaxIsomorphisms = n
	}

	ordering := match.New(tmpl, candStruct.Supernodes())
	matcher := match.NewMatcher(ordering, caps)

	logger.Printf("dataset %q: starting match (max-workers=%d)", matchDataset, caps.MaxWorkers)
	tree := matcher.Run(context.Background(), candStruct)

	fmt.Println(tree.Count().String())
	if tree.Partial() {
		logger.Printf("dataset %q: search was cancelled by a cap, count is a lower bound", matchDataset)
	}
	if !matchCountOnly {
		fmt.Printf("signal nodes: %s\n", tree.SignalNodes().String())
	}
	return nil
}

func resolveMaxWorkers() int {
	if matchMaxWorkers > 0 {
		return matchMaxWorkers
	}
	if cfg.Caps.MaxWorkers > 0 {
		return cfg.Caps.MaxWorkers
	}
	return 1
}
