package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/tilemap"
)

// BlitRenderer is the naive variant: no shaders, no vertex buffers.
// The atlas texture is attached to a read framebuffer and Draw copies
// one tile-sized rectangle per tile into the bound draw framebuffer,
// every frame.
//
// Destination rectangles are in pixels with one tile spanning
// TileSizePx, grid origin at the framebuffer origin. A window sized
// cols*TileSizePx by rows*TileSizePx shows the same image as the
// buffered variants.
type BlitRenderer struct {
	tm    *tilemap.Tilemap
	atlas tilemap.Atlas

	fbo uint32
}

var _ tilemap.Renderer = (*BlitRenderer)(nil)

// NewBlitRenderer creates the renderer and attaches the tilemap's
// atlas texture to a read framebuffer.
func NewBlitRenderer(tm *tilemap.Tilemap, atlas tilemap.Atlas) (*BlitRenderer, error) {
	r := &BlitRenderer{tm: tm, atlas: atlas}

	gl.GenFramebuffers(1, &r.fbo)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, r.fbo)
	gl.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, tm.Texture, 0)

	status := gl.CheckFramebufferStatus(gl.READ_FRAMEBUFFER)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		gl.DeleteFramebuffers(1, &r.fbo)
		return nil, fmt.Errorf("blit renderer: atlas framebuffer incomplete (status 0x%x)", status)
	}

	return r, nil
}

// Recalculate is a no-op: Draw re-reads the tilemap every frame.
func (r *BlitRenderer) Recalculate() {}

// Draw blits every tile's atlas rectangle to the framebuffer.
func (r *BlitRenderer) Draw() {
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, r.fbo)

	px := int32(r.atlas.TileSizePx)
	perRow := uint32(r.atlas.TilesPerRow)

	for x := 0; x < r.tm.Cols; x++ {
		for y := 0; y < r.tm.Rows; y++ {
			tile := r.tm.At(x, y)

			srcX := int32(tile%perRow) * px
			srcY := int32(tile/perRow) * px
			dstX := int32(x) * px
			dstY := int32(y) * px

			gl.BlitFramebuffer(srcX, srcY, srcX+px, srcY+px,
				dstX, dstY, dstX+px, dstY+px,
				gl.COLOR_BUFFER_BIT, gl.NEAREST)
		}
	}

	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
}

// Delete releases the read framebuffer. The atlas texture is owned by
// the caller and is left alone.
func (r *BlitRenderer) Delete() {
	if r.fbo != 0 {
		gl.DeleteFramebuffers(1, &r.fbo)
		r.fbo = 0
	}
}
