package tilemap_test

import (
	"testing"

	"github.com/go-theft-auto/tilemap"
)

var testAtlas = tilemap.Atlas{TileSizePx: 32, TilesPerRow: 4, Padding: 0.005}

// testMap returns a 3x3 map with a distinct tile index per cell.
func testMap(t *testing.T) *tilemap.Tilemap {
	t.Helper()
	tm := tilemap.New(3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			tm.Set(x, y, uint32(y*3+x))
		}
	}
	return tm
}

func TestAppendTileVerticesCount(t *testing.T) {
	tm := testMap(t)

	verts := tilemap.AppendTileVertices(nil, tm, testAtlas)
	if len(verts) != 54 {
		t.Fatalf("3x3 map expanded to %d vertices, want 54", len(verts))
	}

	if len(tm.Tiles()) != 9 {
		t.Fatalf("3x3 map point buffer has %d entries, want 9", len(tm.Tiles()))
	}
}

func TestTileQuadWinding(t *testing.T) {
	tm := tilemap.New(1, 1)
	tm.Set(0, 0, 5)

	verts := tilemap.AppendTileVertices(nil, tm, testAtlas)
	if len(verts) != 6 {
		t.Fatalf("got %d vertices, want 6", len(verts))
	}

	tx0, ty0, size := testAtlas.Region(5)
	want := []tilemap.Vertex{
		{Pos: [2]float32{0, 0}, TexCoord: [2]float32{tx0, ty0}},               // top left
		{Pos: [2]float32{1, 0}, TexCoord: [2]float32{tx0 + size, ty0}},        // top right
		{Pos: [2]float32{0, 1}, TexCoord: [2]float32{tx0, ty0 + size}},        // bottom left
		{Pos: [2]float32{1, 0}, TexCoord: [2]float32{tx0 + size, ty0}},        // top right
		{Pos: [2]float32{0, 1}, TexCoord: [2]float32{tx0, ty0 + size}},        // bottom left
		{Pos: [2]float32{1, 1}, TexCoord: [2]float32{tx0 + size, ty0 + size}}, // bottom right
	}

	for i, w := range want {
		if verts[i] != w {
			t.Errorf("vertex %d = %+v, want %+v", i, verts[i], w)
		}
	}
}

// TestExpansionModeParity proves both layout modes emit the same quad
// for every tile: the per-tile CPU expansion and the point expansion
// the geometry stage mirrors.
func TestExpansionModeParity(t *testing.T) {
	tm := testMap(t)

	// Index the CPU expansion by tile grid position. AppendTileVertices
	// iterates x-major, six vertices per tile.
	verts := tilemap.AppendTileVertices(nil, tm, testAtlas)
	quadAt := func(x, y int) [6]tilemap.Vertex {
		var q [6]tilemap.Vertex
		copy(q[:], verts[(x*tm.Rows+y)*6:])
		return q
	}

	for i, tile := range tm.Tiles() {
		got := tilemap.ExpandPoint(tile, i, tm.Cols, testAtlas)
		want := quadAt(i%tm.Cols, i/tm.Cols)
		if got != want {
			t.Errorf("point %d (tile %d): expansion mismatch\n got %+v\nwant %+v", i, tile, got, want)
		}
	}
}

func TestRecalculateReflectsEdits(t *testing.T) {
	tm := tilemap.New(2, 2)

	before := tilemap.AppendTileVertices(nil, tm, testAtlas)

	tm.Set(1, 1, 7)
	after := tilemap.AppendTileVertices(nil, tm, testAtlas)

	if len(before) != len(after) {
		t.Fatalf("vertex count changed after edit: %d -> %d", len(before), len(after))
	}

	// Only the edited tile's quad may differ, and it must differ.
	changed := 0
	for i := range before {
		if before[i] != after[i] {
			changed++
			if before[i].Pos != after[i].Pos {
				t.Errorf("vertex %d position changed after tile edit: %+v -> %+v",
					i, before[i].Pos, after[i].Pos)
			}
		}
	}
	if changed != 6 {
		t.Errorf("%d vertices changed after one tile edit, want 6", changed)
	}

	tx0, ty0, _ := testAtlas.Region(7)
	// Tile (1,1) is the last quad in x-major order.
	last := after[len(after)-6]
	if !closeTo(last.TexCoord[0], tx0) || !closeTo(last.TexCoord[1], ty0) {
		t.Errorf("edited tile texcoord = %+v, want corner (%v, %v)", last.TexCoord, tx0, ty0)
	}
}

func TestTilemapAccessors(t *testing.T) {
	tm := tilemap.New(4, 3)

	if tm.Len() != 12 {
		t.Fatalf("Len() = %d, want 12", tm.Len())
	}

	tm.Set(2, 1, 9)
	if got := tm.At(2, 1); got != 9 {
		t.Errorf("At(2,1) = %d, want 9", got)
	}
	if got := tm.Tiles()[1*4+2]; got != 9 {
		t.Errorf("backing buffer entry = %d, want 9", got)
	}
}
