/*
Package tilemap renders a 2D grid of textured tiles from a single
texture atlas, with interchangeable rendering strategies.

# Overview

The root package is pure CPU code: the tile grid itself, the atlas
UV math, the orthographic projection and the vertex layout builders.
Everything that touches OpenGL lives in backend/opengl, which provides
three implementations of the Renderer interface:

  - BlitRenderer copies atlas sub-rectangles to the framebuffer one
    tile at a time, every frame. No vertex buffers; the slowest and
    simplest variant.
  - VertexRenderer expands every tile to six vertices on the CPU and
    uploads them once per Recalculate. Draw is a single triangle-list
    draw call.
  - GeometryRenderer uploads one point per tile carrying only the tile
    index; a geometry shader expands each point into the same two
    triangles on the GPU.

All three produce the same image for the same tilemap and atlas.

# Quick Start

	tm := tilemap.New(16, 12)
	tm.Texture = atlasTextureID // caller-owned GL texture

	atlas := tilemap.Atlas{TileSizePx: 32, TilesPerRow: 4, Padding: 1.0 / 512}

	r, err := opengl.NewVertexRenderer(tm, atlas)
	if err != nil {
	    // shader compile/link failure, with the driver's log attached
	}
	defer r.Delete()

	for !window.ShouldClose() {
	    if edited {
	        tm.Set(x, y, newTile)
	        r.Recalculate()
	    }
	    r.Draw()
	    window.SwapBuffers()
	}

Renderer methods must run on the thread that owns the GL context.
The package does no locking of its own.
*/
package tilemap
