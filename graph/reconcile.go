// File: reconcile.go
// Role: unify a template and a world graph's channel catalogs onto a common,
// shared index before they are ever compared channel-by-channel.
package graph

import "github.com/tnguyen-labs/submatch/errs"

// Reconcile unions the channel catalogs of tmpl and world into a single
// shared order: tmpl's channels first, in their existing registration order,
// followed by any channels world has that tmpl does not. Both graphs are then
// rewritten in place so that channel position c names the same channel on
// both sides afterward; a channel missing from one side is filled with an
// empty (all-zero) ChannelMatrix of the right shape, exactly as if it had
// been registered on that side with no edges.
//
// Every component downstream of loading (candidate construction, the filter
// pipeline, the matcher) loops over channel position 0..NumChannels() and
// assumes tmpl and world agree on what each position means; callers must run
// Reconcile before either graph is used anywhere else. Returns a
// DimensionMismatch error if either graph was already frozen, since
// reconciliation can no longer rewrite a frozen graph's channel catalog.
func Reconcile(tmpl, world *Graph) error {
	tmpl.muAdj.Lock()
	defer tmpl.muAdj.Unlock()
	world.muAdj.Lock()
	defer world.muAdj.Unlock()

	if tmpl.frozen || world.frozen {
		return errs.DimensionMismatchf("cannot reconcile channels of %q and %q: already frozen", tmpl.name, world.name)
	}

	order := append([]string(nil), tmpl.channels...)
	seen := make(map[string]bool, len(order))
	for _, name := range order {
		seen[name] = true
	}
	for _, name := range world.channels {
		if !seen[name] {
			seen[name] = true
			order = append(order, name)
		}
	}

	tmpl.rebuildChannelsLocked(order)
	world.rebuildChannelsLocked(order)
	return nil
}

// rebuildChannelsLocked rewrites g's channel catalog and adjacency slice to
// match order, carrying each existing channel's matrix over to its new
// position and inserting an empty matrix for channels g did not already have.
// Callers must already hold g.muAdj.
func (g *Graph) rebuildChannelsLocked(order []string) {
	newAdj := make([]ChannelMatrix, len(order))
	newIndex := make(map[string]int, len(order))
	for pos, name := range order {
		newIndex[name] = pos
		if oldPos, ok := g.chanIndex[name]; ok {
			newAdj[pos] = g.adj[oldPos]
		} else {
			newAdj[pos] = make(ChannelMatrix)
		}
	}
	g.channels = append([]string(nil), order...)
	g.chanIndex = newIndex
	g.adj = newAdj
	g.invalidateLocked()
}
