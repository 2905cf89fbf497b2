package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"runtime"

	"metropolis/internal/config"
	"metropolis/internal/graphics"
	"metropolis/internal/noise"
	"metropolis/internal/render"
	"metropolis/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

const vertexSrc = `#version 410 core
layout(location = 0) in vec2 position;
layout(location = 1) in vec2 uv;
out vec2 fragUV;
void main() {
	fragUV = uv;
	gl_Position = vec4(position, 0.0, 1.0);
}`

const fragmentSrc = `#version 410 core
in vec2 fragUV;
out vec4 fragColor;
uniform sampler2D cells;
void main() {
	fragColor = texture(cells, fragUV);
}`

// Fullscreen quad: position (NDC) + uv. Image row 0 is the top, so v is flipped.
var quadVertices = []float32{
	-1, -1, 0, 1,
	1, -1, 1, 1,
	1, 1, 1, 0,
	-1, -1, 0, 1,
	1, 1, 1, 0,
	-1, 1, 0, 0,
}

// view is the part of the source plane on screen.
type view struct {
	originX, originZ int
	zoom             int
	size             int
	shaded           bool
	mode             noise.OffsetMode
	dirty            bool
}

func (v *view) handleKey(key glfw.Key) {
	step := v.size / 8 * v.zoom
	switch key {
	case glfw.KeyLeft:
		v.originX -= step
	case glfw.KeyRight:
		v.originX += step
	case glfw.KeyUp:
		v.originZ -= step
	case glfw.KeyDown:
		v.originZ += step
	case glfw.KeyEqual:
		if v.zoom > 1 {
			v.zoom /= 2
		}
	case glfw.KeyMinus:
		if v.zoom < 64 {
			v.zoom *= 2
		}
	case glfw.KeyS:
		v.shaded = !v.shaded
	case glfw.KeyL:
		if v.mode == noise.OffsetsLegacy {
			v.mode = noise.OffsetsPure
		} else {
			v.mode = noise.OffsetsLegacy
		}
	default:
		return
	}
	v.dirty = true
}

func main() {
	seed := flag.Int64("seed", config.GetSeed(), "world seed")
	freq := flag.Float64("freq", config.GetFrequency(), "cell frequency")
	metric := flag.String("metric", config.GetMetric(), fmt.Sprintf("distance metric %v", noise.MetricNames()))
	pure := flag.Bool("pure", false, "use pure offsets instead of the legacy derivation")
	size := flag.Int("size", config.GetPreviewSize(), "window edge length in pixels")
	flag.Parse()

	config.SetSeed(*seed)
	config.SetFrequency(*freq)
	config.SetMetric(*metric)
	config.SetPreviewSize(*size)
	if *pure {
		config.SetOffsetMode(noise.OffsetsPure)
	}

	palette, err := noise.NewPalette(world.CityBlocks...)
	if err != nil {
		log.Fatal(err)
	}

	v := &view{
		zoom:   config.GetPreviewZoom(),
		size:   config.GetPreviewSize(),
		shaded: config.GetPreviewShaded(),
		mode:   config.GetOffsetMode(),
	}
	v.originX, v.originZ = -v.size/2, -v.size/2

	// Build the first raster before opening a window so configuration errors surface early
	img, err := rasterize(v, palette)
	if err != nil {
		log.Fatal(err)
	}

	if err := glfw.Init(); err != nil {
		log.Fatal(err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(v.size, v.size, "metropolis preview", nil, nil)
	if err != nil {
		log.Fatal(err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		log.Fatal(err)
	}

	shader, err := graphics.NewShader(vertexSrc, fragmentSrc)
	if err != nil {
		log.Fatal(err)
	}
	defer shader.Delete()

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	defer gl.DeleteBuffers(1, &vbo)
	defer gl.DeleteVertexArrays(1, &vao)

	texture := graphics.UploadRGBA(img)
	defer gl.DeleteTextures(1, &texture)

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		if key == glfw.KeyEscape {
			w.SetShouldClose(true)
			return
		}
		v.handleKey(key)
	})

	shader.Use()
	shader.SetInt("cells", 0)
	gl.ClearColor(0, 0, 0, 1)

	for !window.ShouldClose() {
		if v.dirty {
			v.dirty = false
			img, err := rasterize(v, palette)
			if err != nil {
				log.Printf("preview: %v", err)
			} else {
				graphics.UpdateRGBA(texture, img)
			}
			window.SetTitle(fmt.Sprintf("metropolis preview (%d, %d) zoom %d %v", v.originX, v.originZ, v.zoom, v.mode))
		}

		gl.Clear(gl.COLOR_BUFFER_BIT)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, texture)
		gl.BindVertexArray(vao)
		gl.DrawArrays(gl.TRIANGLES, 0, 6)

		window.SwapBuffers()
		glfw.PollEvents()
	}
}

func rasterize(v *view, palette *noise.Palette[world.BlockType]) (*image.RGBA, error) {
	settings := config.Snapshot()
	settings.OffsetMode = v.mode
	gen, err := settings.NewGenerator()
	if err != nil {
		return nil, err
	}
	return render.Raster(gen, palette, render.Options{
		OriginX: v.originX,
		OriginZ: v.originZ,
		Width:   v.size,
		Height:  v.size,
		Zoom:    v.zoom,
		Shaded:  v.shaded,
	}), nil
}
