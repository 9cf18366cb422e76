package tilemap

// Atlas describes the layout of a texture atlas holding square tile
// images in a fixed grid.
type Atlas struct {
	// TileSizePx is the edge length of one tile image in pixels.
	TileSizePx int

	// TilesPerRow is the number of tile images per atlas row.
	TilesPerRow int

	// Padding is an inset, in normalized texture coordinates, applied
	// to every side of a tile's UV rectangle. It suppresses bleeding
	// from neighboring atlas entries under linear filtering.
	Padding float32
}

// TileSize returns the edge length of one tile in normalized texture
// coordinates.
func (a Atlas) TileSize() float32 {
	return 1 / float32(a.TilesPerRow)
}

// Region returns the normalized UV rectangle of the given tile index:
// its top-left corner and its edge length, already inset by Padding.
func (a Atlas) Region(tile uint32) (tx0, ty0, size float32) {
	perRow := uint32(a.TilesPerRow)
	tx0 = float32(tile%perRow)*a.TileSize() + a.Padding
	ty0 = float32(tile/perRow)*a.TileSize() + a.Padding
	size = a.TileSize() - 2*a.Padding
	return tx0, ty0, size
}
