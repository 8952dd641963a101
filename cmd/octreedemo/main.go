package main

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/nchie/octree"
	"github.com/nchie/octree/octsync"
)

func main() {
	prng := rand.New(rand.NewPCG(42, 42))
	log.SetFlags(log.Lmicroseconds)

	const depth = 8

	ts := time.Now()
	tree := octree.New[int]()
	for i, loc := range randomLocations(prng, depth, 50_000) {
		if err := tree.Set(loc, i); err != nil {
			log.Fatalf("Set: %v", err)
		}
	}
	log.Printf("set 50000 leaves at depth %d: %v, len: %d", depth, time.Since(ts), tree.Len())

	ts = time.Now()
	tree.Sort()
	log.Printf("sort: %v, len after compaction: %d", time.Since(ts), tree.Len())

	root, err := tree.GetSlice(octree.NewRoot())
	if err != nil {
		log.Fatalf("GetSlice(root): %v", err)
	}
	log.Printf("root subtree size: %d, tree depth: %d", len(root), tree.Depth())

	sync := octsync.From(tree)
	for i, loc := range randomLocations(prng, depth, 1_000) {
		if err := sync.Set(loc, -i); err != nil {
			log.Fatalf("sync.Set: %v", err)
		}
	}
	sync.Sort()
	log.Printf("after 1000 writes through octsync, current version len: %d", sync.Load().Len())
}

func randomLocations(prng *rand.Rand, depth uint32, n int) []octree.NodeLocation {
	max := int32(1) << depth / 2

	locs := make([]octree.NodeLocation, 0, n)
	for len(locs) < n {
		x := prng.Int32N(2*max) - max
		y := prng.Int32N(2*max) - max
		z := prng.Int32N(2*max) - max

		loc, ok := octree.NewLocation(x, y, z, depth)
		if !ok {
			continue
		}
		locs = append(locs, loc)
	}
	return locs
}
