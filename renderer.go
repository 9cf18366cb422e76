package tilemap

// Renderer draws one complete tilemap. The three implementations in
// backend/opengl are interchangeable and produce the same pixels for
// the same tilemap and atlas.
//
// Renderers are single-threaded: every method must run on the thread
// owning the GL context, and none are reentrant.
type Renderer interface {
	// Recalculate rebuilds any GPU-resident geometry from the current
	// tilemap contents. Call it after editing the tilemap; it may be
	// called any number of times.
	Recalculate()

	// Draw issues one complete draw of the tilemap.
	Draw()

	// Delete releases the renderer's GPU resources. It is idempotent,
	// and calling it after the GL context is gone is a harmless no-op.
	Delete()
}
