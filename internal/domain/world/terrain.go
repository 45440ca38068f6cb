package world

// Terrain is the immutable-after-generation grid. The generation passes
// (erosion, hydrology, placement) and the live weather hook are the only
// writers; everything else reads.
type Terrain struct {
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Seed   int64     `json:"seed"`
	Config GenConfig `json:"config"`
	Tiles  []Tile    `json:"tiles"` // row-major, y*Width+x
}

func NewTerrain(cfg GenConfig) *Terrain {
	return &Terrain{
		Width:  cfg.Width,
		Height: cfg.Height,
		Seed:   cfg.Seed,
		Config: cfg,
		Tiles:  make([]Tile, cfg.Width*cfg.Height),
	}
}

func (t *Terrain) InBounds(x, y int) bool {
	return x >= 0 && x < t.Width && y >= 0 && y < t.Height
}

func (t *Terrain) TileAt(x, y int) *Tile {
	if !t.InBounds(x, y) {
		return nil
	}
	return &t.Tiles[y*t.Width+x]
}

// Latitude maps a row to [-1,1], 0 at the equator (grid middle).
func (t *Terrain) Latitude(y int) float64 {
	if t.Height <= 1 {
		return 0
	}
	return 2*float64(y)/float64(t.Height-1) - 1
}

// RegionID maps a tile to its environmental region. Regions tile the grid
// in RegionSize squares, numbered row-major.
func (t *Terrain) RegionID(x, y int) int {
	size := t.Config.RegionSize
	perRow := (t.Width + size - 1) / size
	return (y/size)*perRow + x/size
}

func (t *Terrain) RegionCount() int {
	size := t.Config.RegionSize
	perRow := (t.Width + size - 1) / size
	perCol := (t.Height + size - 1) / size
	return perRow * perCol
}

// HighestTile returns the coordinates of the maximum-elevation tile,
// scanning row-major so ties resolve deterministically.
func (t *Terrain) HighestTile() Point {
	best := Point{}
	bestElev := -1.0
	for y := 0; y < t.Height; y++ {
		for x := 0; x < t.Width; x++ {
			if e := t.Tiles[y*t.Width+x].Elevation; e > bestElev {
				bestElev = e
				best = Point{X: x, Y: y}
			}
		}
	}
	return best
}

// Window copies the tiles inside the given radius around center. The copy
// keeps callers from mutating terrain through the snapshot.
func (t *Terrain) Window(center Point, radius int) []Tile {
	out := make([]Tile, 0, (2*radius+1)*(2*radius+1))
	for y := center.Y - radius; y <= center.Y+radius; y++ {
		for x := center.X - radius; x <= center.X+radius; x++ {
			if tile := t.TileAt(x, y); tile != nil {
				out = append(out, *tile)
			}
		}
	}
	return out
}
