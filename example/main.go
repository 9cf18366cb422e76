// Example renders one tilemap with the three renderer variants.
//
// Keys 1, 2 and 3 switch between the blit, vertex-buffered and
// geometry-shader renderers; they draw the same image. Space assigns
// a random tile type to a random cell and recalculates, Escape quits.
// The window title reports the active variant and the frame rate.
package main

import (
	"fmt"
	"image/color"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/image/colornames"

	"github.com/go-theft-auto/tilemap"
	"github.com/go-theft-auto/tilemap/backend/opengl"
)

const (
	mapCols = 16
	mapRows = 12

	tileSizePx  = 32
	tilesPerRow = 4
)

// tileColors are the atlas entries, one solid swatch per tile type.
var tileColors = []color.RGBA{
	colornames.Forestgreen,
	colornames.Saddlebrown,
	colornames.Steelblue,
	colornames.Goldenrod,
	colornames.Darkslategray,
	colornames.Firebrick,
	colornames.Mediumpurple,
	colornames.Lightseagreen,
	colornames.Darkorange,
	colornames.Slategray,
	colornames.Olivedrab,
	colornames.Indianred,
	colornames.Cadetblue,
	colornames.Peru,
	colornames.Dimgray,
	colornames.Khaki,
}

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(mapCols*tileSizePx, mapRows*tileSizePx, "tilemap example", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	atlas := tilemap.Atlas{
		TileSizePx:  tileSizePx,
		TilesPerRow: tilesPerRow,
		Padding:     0.5 / float32(tileSizePx*tilesPerRow),
	}

	tm := tilemap.New(mapCols, mapRows)
	for i := range tm.Tiles() {
		tm.Set(i%mapCols, i/mapCols, uint32(rand.Intn(len(tileColors))))
	}
	tm.Texture = createAtlasTexture(atlas)
	defer gl.DeleteTextures(1, &tm.Texture)

	blit, err := opengl.NewBlitRenderer(tm, atlas)
	if err != nil {
		return fmt.Errorf("blit renderer: %w", err)
	}
	defer blit.Delete()

	vertex, err := opengl.NewVertexRenderer(tm, atlas)
	if err != nil {
		return fmt.Errorf("vertex renderer: %w", err)
	}
	defer vertex.Delete()

	geometry, err := opengl.NewGeometryRenderer(tm, atlas)
	if err != nil {
		return fmt.Errorf("geometry renderer: %w", err)
	}
	defer geometry.Delete()

	variants := []struct {
		name     string
		renderer tilemap.Renderer
	}{
		{"blit", blit},
		{"vertex", vertex},
		{"geometry", geometry},
	}
	active := 1 // start on the vertex-buffered variant

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.Key1, glfw.Key2, glfw.Key3:
			active = int(key - glfw.Key1)
		case glfw.KeySpace:
			tm.Set(rand.Intn(mapCols), rand.Intn(mapRows), uint32(rand.Intn(len(tileColors))))
			for _, v := range variants {
				v.renderer.Recalculate()
			}
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		}
	})

	frames := 0
	second := time.Tick(time.Second)

	for !window.ShouldClose() {
		gl.ClearColor(0, 0, 0, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		variants[active].renderer.Draw()

		window.SwapBuffers()
		glfw.PollEvents()

		frames++
		select {
		case <-second:
			window.SetTitle(fmt.Sprintf("tilemap example | %s | FPS: %d", variants[active].name, frames))
			frames = 0
		default:
		}
	}

	return nil
}

// createAtlasTexture builds the atlas procedurally: one solid color
// swatch per tile type with a darkened border, so tile boundaries and
// padding artifacts stay visible.
func createAtlasTexture(atlas tilemap.Atlas) uint32 {
	px := atlas.TileSizePx
	texWidth := px * atlas.TilesPerRow
	texHeight := px * ((len(tileColors) + atlas.TilesPerRow - 1) / atlas.TilesPerRow)

	data := make([]byte, texWidth*texHeight*4)

	for tile, c := range tileColors {
		col := tile % atlas.TilesPerRow
		row := tile / atlas.TilesPerRow

		for y := 0; y < px; y++ {
			for x := 0; x < px; x++ {
				r, g, b := c.R, c.G, c.B
				if x == 0 || y == 0 || x == px-1 || y == px-1 {
					r, g, b = r/2, g/2, b/2
				}

				i := ((row*px+y)*texWidth + col*px + x) * 4
				data[i+0] = r
				data[i+1] = g
				data[i+2] = b
				data[i+3] = 255
			}
		}
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(texWidth), int32(texHeight), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(data))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return tex
}
