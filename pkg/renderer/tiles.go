package renderer

// BBox is an axis-aligned sub-rectangle of the image, in pixel
// coordinates, used as the unit of parallel work.
type BBox struct {
	X, Y, W, H int
}

// Tiles returns the N*N tiles covering a W x H image, each of size
// (W/N) x (H/N), visiting grid cells in a clockwise inward spiral
// starting at cell (0,0) heading right. Requires W and H to be evenly
// divisible by N; this is a documented precondition, not something
// the generator silently patches around — callers validate it via
// Settings.Validate before rendering begins.
func Tiles(width, height, n int) []BBox {
	cellW := width / n
	cellH := height / n

	cells := spiralCells(n)

	tiles := make([]BBox, len(cells))
	for i, c := range cells {
		tiles[i] = BBox{X: c.x * cellW, Y: c.y * cellH, W: cellW, H: cellH}
	}
	return tiles
}

type cell struct{ x, y int }

// spiralCells walks an N x N grid of cells in a clockwise inward
// spiral starting at (0,0) heading right. It maintains the current
// position and four shrinking bounds; every time a side of the
// current ring completes, it turns clockwise and tightens the bound
// for the side it just finished.
func spiralCells(n int) []cell {
	if n <= 0 {
		return nil
	}

	cells := make([]cell, 0, n*n)

	x, y := 0, 0
	startx, starty := 0, 1
	limx, limy := n-1, n-1

	// direction: 0=right, 1=down, 2=left, 3=up
	dir := 0

	for i := 0; i < n*n; i++ {
		cells = append(cells, cell{x, y})

		switch dir {
		case 0: // right
			x++
			if x == limx {
				dir = 1
				limx--
			}
		case 1: // down
			y++
			if y == limy {
				dir = 2
				limy--
			}
		case 2: // left
			x--
			if x == startx {
				dir = 3
				startx++
			}
		case 3: // up
			y--
			if y == starty {
				dir = 0
				starty++
			}
		}
	}

	return cells
}
