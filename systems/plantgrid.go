package systems

// PlantGrid provides cell-based radius queries over the plant collection.
// It stores slice indices, so it must be rebuilt after any structural change
// to the plant slice (compaction shifts indices). Rebuilding once per tick is
// cheap relative to per-creature linear scans.
type PlantGrid struct {
	cellSize float32
	cols     int
	rows     int
	cells    [][]int
}

// NewPlantGrid creates a grid covering the given world size.
func NewPlantGrid(bounds Bounds, cellSize float32) *PlantGrid {
	cols := int(bounds.Width/cellSize) + 1
	rows := int(bounds.Height/cellSize) + 1

	cells := make([][]int, cols*rows)
	for i := range cells {
		cells[i] = make([]int, 0, 8)
	}

	return &PlantGrid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    cells,
	}
}

// Rebuild clears the grid and reinserts every plant.
func (g *PlantGrid) Rebuild(plants []Plant) {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
	for i := range plants {
		idx := g.cellIndex(plants[i].X, plants[i].Y)
		if idx >= 0 && idx < len(g.cells) {
			g.cells[idx] = append(g.cells[idx], i)
		}
	}
}

// Nearest returns the index of the closest plant within radius whose size is
// at least minSize, or -1 if none qualifies.
func (g *PlantGrid) Nearest(plants []Plant, x, y, radius, minSize float32) int {
	minCol := int((x - radius) / g.cellSize)
	maxCol := int((x + radius) / g.cellSize)
	minRow := int((y - radius) / g.cellSize)
	maxRow := int((y + radius) / g.cellSize)

	if minCol < 0 {
		minCol = 0
	}
	if minRow < 0 {
		minRow = 0
	}
	if maxCol >= g.cols {
		maxCol = g.cols - 1
	}
	if maxRow >= g.rows {
		maxRow = g.rows - 1
	}

	best := -1
	bestDistSq := radius * radius

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			for _, i := range g.cells[row*g.cols+col] {
				p := &plants[i]
				if p.Size < minSize {
					continue
				}
				d := distanceSq(x, y, p.X, p.Y)
				if d <= bestDistSq {
					best = i
					bestDistSq = d
				}
			}
		}
	}

	return best
}

// cellIndex returns the flat grid index for a world position.
func (g *PlantGrid) cellIndex(x, y float32) int {
	col := int(x / g.cellSize)
	row := int(y / g.cellSize)
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return -1
	}
	return row*g.cols + col
}
