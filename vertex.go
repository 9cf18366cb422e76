package tilemap

// Vertex is one vertex of a tile quad.
// Memory layout matches the GL vertex attribute pointers set by the
// backend: two floats of position followed by two floats of texcoord.
type Vertex struct {
	Pos      [2]float32 // Position in tile-grid units
	TexCoord [2]float32 // Normalized atlas coordinates
}

// VerticesPerTile is the number of vertices emitted per tile: two
// triangles of three vertices each.
const VerticesPerTile = 6

// AppendTileVertices appends the full vertex expansion of the tilemap
// to dst and returns the extended slice. Each tile becomes six
// vertices in the order top-left, top-right, bottom-left, top-right,
// bottom-left, bottom-right.
//
// Passing dst with zero length and retained capacity lets a renderer
// reuse one scratch slice across Recalculate calls.
func AppendTileVertices(dst []Vertex, m *Tilemap, atlas Atlas) []Vertex {
	for x := 0; x < m.Cols; x++ {
		for y := 0; y < m.Rows; y++ {
			dst = append(dst, tileQuad(m.At(x, y), x, y, atlas)...)
		}
	}
	return dst
}

// ExpandPoint expands the point-mode record at linear index i of a
// grid with the given column count into the six vertices of its quad.
// It is the CPU reference for the geometry-shader stage, which
// performs the identical computation per point; tests use it to prove
// the two expansion modes agree.
func ExpandPoint(tile uint32, i, cols int, atlas Atlas) [VerticesPerTile]Vertex {
	x := i % cols
	y := i / cols

	var out [VerticesPerTile]Vertex
	copy(out[:], tileQuad(tile, x, y, atlas))
	return out
}

func tileQuad(tile uint32, x, y int, atlas Atlas) []Vertex {
	tx0, ty0, size := atlas.Region(tile)

	x0, y0 := float32(x), float32(y)
	x1, y1 := x0+1, y0+1
	tx1, ty1 := tx0+size, ty0+size

	tl := Vertex{Pos: [2]float32{x0, y0}, TexCoord: [2]float32{tx0, ty0}}
	tr := Vertex{Pos: [2]float32{x1, y0}, TexCoord: [2]float32{tx1, ty0}}
	bl := Vertex{Pos: [2]float32{x0, y1}, TexCoord: [2]float32{tx0, ty1}}
	br := Vertex{Pos: [2]float32{x1, y1}, TexCoord: [2]float32{tx1, ty1}}

	return []Vertex{tl, tr, bl, tr, bl, br}
}
