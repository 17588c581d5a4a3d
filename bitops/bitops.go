// Package bitops holds small bitset construction helpers shared by the
// candidate matrix and candidate structure packages, kept separate so
// neither has to import the other just for a constructor.
package bitops

import "github.com/bits-and-blooms/bitset"

// Singleton returns a length-n BitSet with only bit i set.
func Singleton(n, i uint) *bitset.BitSet {
	bs := bitset.New(n)
	bs.Set(i)
	return bs
}
