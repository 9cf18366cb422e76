package tilemap

import "github.com/go-gl/mathgl/mgl32"

// Projection returns the combined projection·view·model matrix for a
// tilemap of the given dimensions.
//
// Tile coordinates have their origin at one corner of the grid with
// each tile spanning one unit. The model matrix translates the grid so
// its center sits at the origin, the view matrix is the identity, and
// the projection scales the grid to fill clip space exactly: corner
// (0,0) maps to (-1,-1) and corner (cols,rows) to (1,1).
func Projection(cols, rows int) mgl32.Mat4 {
	model := mgl32.Translate3D(-float32(cols)/2, -float32(rows)/2, 0)
	view := mgl32.Ident4()
	proj := mgl32.Scale3D(2/float32(cols), 2/float32(rows), 0)

	return proj.Mul4(view).Mul4(model)
}
