package worldgen

// erode runs the thermal erosion pass: for each of cfg.ErosionIterations,
// every tile compares against its 4 neighbors, and where a neighbor sits
// more than threshold above it, a fraction of the excess moves downhill.
// Deltas accumulate in a separate buffer and apply after the full sweep,
// so the result does not depend on traversal order and mass is conserved
// up to the clamp at the [0,1] bounds.
func erode(elevation []float64, width, height, iterations int, threshold, rate float64) {
	if iterations <= 0 {
		return
	}
	deltas := make([]float64, len(elevation))

	for iter := 0; iter < iterations; iter++ {
		for i := range deltas {
			deltas[i] = 0
		}

		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				idx := y*width + x
				h := elevation[idx]

				for _, n := range [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
					nx, ny := x+n[0], y+n[1]
					if nx < 0 || nx >= width || ny < 0 || ny >= height {
						continue
					}
					nidx := ny*width + nx
					diff := elevation[nidx] - h
					if diff <= threshold {
						continue
					}
					// Move toward equilibrium at the threshold slope.
					transfer := (diff - threshold) / 2 * rate
					deltas[nidx] -= transfer
					deltas[idx] += transfer
				}
			}
		}

		for i := range elevation {
			elevation[i] = clamp01(elevation[i] + deltas[i])
		}
	}
}
