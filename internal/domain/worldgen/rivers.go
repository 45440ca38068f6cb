package worldgen

import (
	"math/rand"
	"sort"

	"evoworld/internal/domain/world"
)

const (
	riverBaseWidth   = 1.0
	riverWidthGrowth = 0.05
	riverMaxWidth    = 6.0
	bankMoistureBump = 0.15
	sourceMinElev    = 0.7
	sourcePoolSize   = 16
)

// Neighbor order is fixed N, E, S, W. Steepest-descent ties resolve to the
// earliest entry, which keeps traces reproducible across runs.
var neighborOrder = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// traceRivers carves cfg.RiverCount rivers into the terrain. The first
// trace starts at the global elevation maximum; later traces draw their
// source from the high-elevation candidate pool through the seeded RNG.
func traceRivers(t *world.Terrain, rng *rand.Rand) {
	cfg := t.Config
	if cfg.RiverCount == 0 {
		return
	}

	pool := sourceCandidates(t)
	if len(pool) == 0 {
		return
	}

	for r := 0; r < cfg.RiverCount && len(pool) > 0; r++ {
		var pick int
		if r > 0 {
			n := len(pool)
			if n > sourcePoolSize {
				n = sourcePoolSize
			}
			pick = rng.Intn(n)
		}
		src := pool[pick]
		pool = append(pool[:pick], pool[pick+1:]...)

		traceRiver(t, src)
	}
}

// sourceCandidates returns high-elevation land tiles sorted by elevation
// descending, ties broken row-major.
func sourceCandidates(t *world.Terrain) []world.Point {
	out := make([]world.Point, 0, 64)
	for y := 0; y < t.Height; y++ {
		for x := 0; x < t.Width; x++ {
			if t.Tiles[y*t.Width+x].Elevation >= sourceMinElev {
				out = append(out, world.Point{X: x, Y: y})
			}
		}
	}
	if len(out) == 0 {
		// Flat or low worlds still get rivers: fall back to the single
		// highest tile.
		out = append(out, t.HighestTile())
	}
	sort.SliceStable(out, func(i, j int) bool {
		ei := t.Tiles[out[i].Y*t.Width+out[i].X].Elevation
		ej := t.Tiles[out[j].Y*t.Width+out[j].X].Elevation
		return ei > ej
	})
	return out
}

// traceRiver walks steepest descent from src until it reaches sea level,
// merges with an existing river, bottoms out in a local minimum, or hits
// the MaxSteps cap. The cap is the safety invariant against flat or noisy
// terrain producing endless walks.
func traceRiver(t *world.Terrain, src world.Point) {
	cfg := t.Config
	x, y := src.X, src.Y

	for step := 0; step < cfg.RiverMaxSteps; step++ {
		tile := t.TileAt(x, y)

		if tile.River {
			return // merged into an existing river
		}

		width := riverBaseWidth + riverWidthGrowth*float64(step)
		if width > riverMaxWidth {
			width = riverMaxWidth
		}
		tile.River = true
		if width > tile.RiverWidth {
			tile.RiverWidth = width
		}
		markBanks(t, x, y, cfg.BankRadius)

		if tile.Elevation < cfg.SeaLevel {
			return // reached the sea
		}

		nx, ny, ok := lowestNeighbor(t, x, y)
		if !ok || t.TileAt(nx, ny).Elevation >= tile.Elevation {
			return // local minimum: river ends in a basin
		}
		x, y = nx, ny
	}
}

// lowestNeighbor scans the fixed N,E,S,W order and keeps the first
// strictly-lowest neighbor seen, so equal elevations never flip the pick.
func lowestNeighbor(t *world.Terrain, x, y int) (int, int, bool) {
	bestX, bestY := 0, 0
	best := 0.0
	found := false
	for _, n := range neighborOrder {
		nx, ny := x+n[0], y+n[1]
		tile := t.TileAt(nx, ny)
		if tile == nil {
			continue
		}
		if !found || tile.Elevation < best {
			found = true
			best = tile.Elevation
			bestX, bestY = nx, ny
		}
	}
	return bestX, bestY, found
}

// markBanks flags tiles within radius of a river tile and boosts their
// moisture once. Fertility/vegetation re-derive in the finalize pass.
func markBanks(t *world.Terrain, x, y, radius int) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			tile := t.TileAt(x+dx, y+dy)
			if tile == nil || tile.Riverbank {
				continue
			}
			tile.Riverbank = true
			tile.Moisture = clamp01(tile.Moisture + bankMoistureBump)
		}
	}
}
