package tilemap

// Tilemap is a fixed-size 2D grid of tile-type indices, stored
// row-major. Renderers read it; they never write it.
//
// Tile indices are not range-checked against the atlas: keeping every
// value below the atlas tile count is the caller's responsibility.
type Tilemap struct {
	Cols, Rows int

	// Texture is the GL handle of the atlas texture holding the tile
	// images. Set by the caller after uploading the atlas.
	Texture uint32

	tiles []uint32
}

// New creates an empty (all zero) tilemap with the given dimensions.
func New(cols, rows int) *Tilemap {
	return &Tilemap{
		Cols:  cols,
		Rows:  rows,
		tiles: make([]uint32, cols*rows),
	}
}

// At returns the tile index at grid position (x, y).
func (m *Tilemap) At(x, y int) uint32 {
	return m.tiles[y*m.Cols+x]
}

// Set writes the tile index at grid position (x, y). Renderers do not
// watch for changes; call Recalculate on the affected renderer after
// editing.
func (m *Tilemap) Set(x, y int, tile uint32) {
	m.tiles[y*m.Cols+x] = tile
}

// Len returns the number of tiles in the map.
func (m *Tilemap) Len() int {
	return len(m.tiles)
}

// Tiles returns the row-major backing buffer. It is the buffer the
// geometry-shader variant uploads verbatim; callers must treat it as
// read-only.
func (m *Tilemap) Tiles() []uint32 {
	return m.tiles
}
