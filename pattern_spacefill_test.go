package hatch

import "testing"

func TestHilbertD2XY_VisitsAllCells(t *testing.T) {
	for _, depth := range []int{1, 2, 3} {
		n := 1 << depth
		visited := make([][]bool, n)
		for i := range visited {
			visited[i] = make([]bool, n)
		}

		for d := 0; d < n*n; d++ {
			x, y := hilbertD2XY(n, d)
			if x < 0 || x >= n || y < 0 || y >= n {
				t.Fatalf("depth %d: cell (%d, %d) out of bounds", depth, x, y)
			}
			if visited[x][y] {
				t.Fatalf("depth %d: cell (%d, %d) visited twice", depth, x, y)
			}
			visited[x][y] = true
		}

		for x := range visited {
			for y := range visited[x] {
				if !visited[x][y] {
					t.Fatalf("depth %d: cell (%d, %d) never visited", depth, x, y)
				}
			}
		}
	}
}

func TestHilbertD2XY_Adjacent(t *testing.T) {
	n := 8
	px, py := hilbertD2XY(n, 0)
	for d := 1; d < n*n; d++ {
		x, y := hilbertD2XY(n, d)
		dx := abs(x - px)
		dy := abs(y - py)
		if dx+dy != 1 {
			t.Fatalf("steps %d and %d not adjacent: (%d,%d) -> (%d,%d)", d-1, d, px, py, x, y)
		}
		px, py = x, y
	}
}

func TestPeano_VisitsAllCells(t *testing.T) {
	for _, size := range []int{3, 9} {
		var cells [][2]int
		peanoRecurse(0, 0, size, false, false, &cells)

		if len(cells) != size*size {
			t.Fatalf("size %d: visited %d cells, want %d", size, len(cells), size*size)
		}

		visited := make(map[[2]int]bool, len(cells))
		for _, c := range cells {
			if c[0] < 0 || c[0] >= size || c[1] < 0 || c[1] >= size {
				t.Fatalf("size %d: cell %v out of bounds", size, c)
			}
			if visited[c] {
				t.Fatalf("size %d: cell %v visited twice", size, c)
			}
			visited[c] = true
		}
	}
}

func TestPeano_Continuous(t *testing.T) {
	var cells [][2]int
	peanoRecurse(0, 0, 9, false, false, &cells)

	for i := 1; i < len(cells); i++ {
		dx := abs(cells[i][0] - cells[i-1][0])
		dy := abs(cells[i][1] - cells[i-1][1])
		if dx+dy != 1 {
			t.Fatalf("cells %d and %d not adjacent: %v -> %v", i-1, i, cells[i-1], cells[i])
		}
	}
}

func TestSpaceFillingCurves_DepthScalesWithSpacing(t *testing.T) {
	sq := square100()

	for _, p := range []Pattern{Hilbert, Peano} {
		dense := p.Generate(sq, 5, 0)
		sparse := p.Generate(sq, 20, 0)
		if len(dense) <= len(sparse) {
			t.Errorf("%v: dense %d <= sparse %d", p, len(dense), len(sparse))
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
