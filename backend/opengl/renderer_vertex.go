package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/tilemap"
)

// VertexRenderer draws the tilemap from a fully expanded vertex
// buffer: six position+texcoord vertices per tile, built on the CPU
// and uploaded by Recalculate. Draw is one triangle-list call.
type VertexRenderer struct {
	tm    *tilemap.Tilemap
	atlas tilemap.Atlas

	program  *Program
	projLoc  int32
	vao, vbo uint32

	// Scratch slice reused across Recalculate calls.
	vertices []tilemap.Vertex
}

var _ tilemap.Renderer = (*VertexRenderer)(nil)

// NewVertexRenderer creates the renderer, compiles its shaders,
// allocates its buffers and uploads the initial geometry. A compile,
// link or uniform-resolution failure aborts construction.
func NewVertexRenderer(tm *tilemap.Tilemap, atlas tilemap.Atlas) (*VertexRenderer, error) {
	program, err := NewProgram(tileVertexSource, tileFragmentSource, "")
	if err != nil {
		return nil, fmt.Errorf("vertex renderer: %w", err)
	}

	r := &VertexRenderer{tm: tm, atlas: atlas, program: program}

	// Resolve every uniform now so a missing one fails construction,
	// not the first frame.
	r.projLoc, err = program.UniformLocation("projection")
	if err == nil {
		err = program.SetInt("atlas", 0)
	}
	if err != nil {
		program.Delete()
		return nil, fmt.Errorf("vertex renderer: %w", err)
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	// Vertex layout: Pos (2 floats) + TexCoord (2 floats).
	stride := int32(unsafe.Sizeof(tilemap.Vertex{}))

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(tilemap.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	r.Recalculate()

	return r, nil
}

// Recalculate rebuilds the vertex expansion from the current tilemap
// contents and re-uploads the buffer.
func (r *VertexRenderer) Recalculate() {
	r.vertices = tilemap.AppendTileVertices(r.vertices[:0], r.tm, r.atlas)
	if len(r.vertices) == 0 {
		return
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.vertices)*int(unsafe.Sizeof(tilemap.Vertex{})),
		gl.Ptr(r.vertices), gl.STATIC_DRAW)
}

// Draw issues one triangle-list draw of the whole tilemap.
func (r *VertexRenderer) Draw() {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.tm.Texture)

	proj := tilemap.Projection(r.tm.Cols, r.tm.Rows)
	gl.ProgramUniformMatrix4fv(r.program.handle, r.projLoc, 1, false, &proj[0])

	r.program.Use()
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(r.tm.Len()*tilemap.VerticesPerTile))
	gl.BindVertexArray(0)
}

// Delete releases the renderer's GL resources.
func (r *VertexRenderer) Delete() {
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
