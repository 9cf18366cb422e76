package opengl

import _ "embed"

// Shader sources are embedded so the renderers have no runtime asset
// dependency. The geometry shader takes its atlas constants as
// uniforms; nothing is substituted into the source text.

//go:embed shaders/tile.vert
var tileVertexSource string

//go:embed shaders/tile.frag
var tileFragmentSource string

//go:embed shaders/point.vert
var pointVertexSource string

//go:embed shaders/point.geom
var pointGeometrySource string

//go:embed shaders/point.frag
var pointFragmentSource string
