// Command submatch is the CLI driver for the subgraph isomorphism engine:
// load on-disk graphs, run the filter pipeline, and run the matcher,
// grounded on junjiewwang-perf-analysis/cmd/cli's cobra/viper layout.
package main

import "github.com/tnguyen-labs/submatch/cmd/submatch/cmd"

func main() {
	cmd.Execute()
}
