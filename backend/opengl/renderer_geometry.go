package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/tilemap"
)

// GeometryRenderer draws the tilemap from a point buffer holding only
// the raw tile indices, one point per tile. A geometry shader expands
// each point into the same two triangles the CPU expansion produces.
//
// The atlas layout reaches the geometry stage as uniforms set once at
// construction, so editing the tilemap only ever re-uploads indices.
type GeometryRenderer struct {
	tm    *tilemap.Tilemap
	atlas tilemap.Atlas

	program  *Program
	projLoc  int32
	vao, vbo uint32
}

var _ tilemap.Renderer = (*GeometryRenderer)(nil)

// NewGeometryRenderer creates the renderer, compiles its three shader
// stages, allocates its buffers and uploads the initial indices. A
// compile, link or uniform-resolution failure aborts construction.
func NewGeometryRenderer(tm *tilemap.Tilemap, atlas tilemap.Atlas) (*GeometryRenderer, error) {
	program, err := NewProgram(pointVertexSource, pointFragmentSource, pointGeometrySource)
	if err != nil {
		return nil, fmt.Errorf("geometry renderer: %w", err)
	}

	r := &GeometryRenderer{tm: tm, atlas: atlas, program: program}

	r.projLoc, err = program.UniformLocation("projection")
	if err == nil {
		err = program.SetInt("atlas", 0)
	}
	if err == nil {
		err = program.SetInt("cols", int32(tm.Cols))
	}
	if err == nil {
		err = program.SetInt("tilesPerRow", int32(atlas.TilesPerRow))
	}
	if err == nil {
		err = program.SetFloat("tileSize", atlas.TileSize())
	}
	if err == nil {
		err = program.SetFloat("padding", atlas.Padding)
	}
	if err != nil {
		program.Delete()
		return nil, fmt.Errorf("geometry renderer: %w", err)
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	// One record per tile: a single unsigned int, the tile index.
	gl.VertexAttribIPointerWithOffset(0, 1, gl.UNSIGNED_INT, int32(unsafe.Sizeof(uint32(0))), 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)

	r.Recalculate()

	return r, nil
}

// Recalculate re-uploads the tilemap's backing buffer as the point
// records.
func (r *GeometryRenderer) Recalculate() {
	tiles := r.tm.Tiles()
	if len(tiles) == 0 {
		return
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(tiles)*int(unsafe.Sizeof(uint32(0))),
		gl.Ptr(tiles), gl.STATIC_DRAW)
}

// Draw issues one point-list draw with one point per tile; the
// geometry stage does the rest.
func (r *GeometryRenderer) Draw() {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.tm.Texture)

	proj := tilemap.Projection(r.tm.Cols, r.tm.Rows)
	gl.ProgramUniformMatrix4fv(r.program.handle, r.projLoc, 1, false, &proj[0])

	r.program.Use()
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.POINTS, 0, int32(r.tm.Len()))
	gl.BindVertexArray(0)
}

// Delete releases the renderer's GL resources.
func (r *GeometryRenderer) Delete() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	r.program.Delete()
}
