package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tnguyen-labs/submatch/cache"
	"github.com/tnguyen-labs/submatch/cs"
	"github.com/tnguyen-labs/submatch/partition"
)

var (
	filterDataset string
	filterSet     string
)

var filterCmd = &cobra.Command{
	Use:     "filter",
	Short:   "Run the filter pipeline against a cached dataset and cache the resulting candidate matrix",
	Example: `  ` + BinName() + ` filter --dataset demo --filters all`,
	RunE:    runFilter,
}

func init() {
	rootCmd.AddCommand(filterCmd)

	filterCmd.Flags().StringVar(&filterDataset, "dataset", "", "dataset id/slug in the cache (required)")
	filterCmd.Flags().StringVar(&filterSet, "filters", "", "filter tier: cheap or all (defaults to config)")
	filterCmd.MarkFlagRequired("dataset")
}

func runFilter(c *cobra.Command, args []string) error {
	set := filterSet
	if set == "" {
		set = cfg.Filters.Set
	}
	if set != "cheap" && set != "all" {
		return fmt.Errorf("--filters must be %q or %q, got %q", "cheap", "all", set)
	}

	store := cache.NewStore(cfg.Cache.Dir)
	tmpl, err := store.LoadGraph(filterDataset, "template", "template")
	if err != nil {
		return fmt.Errorf("loading cached template: %w", err)
	}
	world, err := store.LoadGraph(filterDataset, "world", "world")
	if err != nil {
		return fmt.Errorf("loading cached world: %w", err)
	}

	part := partition.Structural(tmpl)
	candStruct := cs.New(tmpl, world, part)

	var unsat bool
	if set == "all" {
		unsat = candStruct.RunAllFilters()
	} else {
		unsat = candStruct.RunCheapFilters()
	}

	if err := store.SaveMatrix(filterDataset, candStruct.M); err != nil {
		return fmt.Errorf("caching candidate matrix: %w", err)
	}

	logger.Printf("dataset %q: ran %s filters, unsatisfiable=%v", filterDataset, set, unsat)
	if unsat {
		fmt.Println("unsatisfiable")
	} else {
		fmt.Println("satisfiable")
	}
	return nil
}
