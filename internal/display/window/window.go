package window

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"termcraft/internal/display/canvas"
	"termcraft/internal/input"
)

// quad covers the viewport; UVs flip Y so row 0 of the image is on top.
var quad = []float32{
	// x, y, u, v
	-1, -1, 0, 1,
	1, -1, 1, 1,
	1, 1, 1, 0,
	-1, -1, 0, 1,
	1, 1, 1, 0,
	-1, 1, 0, 0,
}

// Display shows a glyph canvas in a GLFW window. The canvas is rendered on
// the CPU and uploaded as one texture per frame. Must be used from the main
// thread.
type Display struct {
	*canvas.Canvas

	window  *glfw.Window
	shader  *Shader
	vao     uint32
	vbo     uint32
	texture uint32

	im *input.InputManager
}

// New opens a window sized to fit cols x rows glyph cells.
func New(cols, rows int) (*Display, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("init glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(cols*canvas.CellWidth, rows*canvas.CellHeight, "termcraft", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(0)

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("init gl: %w", err)
	}

	shader, err := NewShader(vertexShader, fragmentShader)
	if err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, err
	}

	d := &Display{
		Canvas: canvas.New(cols, rows),
		window: win,
		shader: shader,
	}
	d.setupQuad()
	d.setupTexture()
	win.SetKeyCallback(d.onKey)
	return d, nil
}

func (d *Display) setupQuad() {
	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
}

func (d *Display) setupTexture() {
	img := d.Image()
	gl.GenTextures(1, &d.texture)
	gl.BindTexture(gl.TEXTURE_2D, d.texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(img.Rect.Size().X),
		int32(img.Rect.Size().Y),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)

	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Show renders the canvas, uploads it and swaps buffers.
func (d *Display) Show() error {
	if err := d.Canvas.Show(); err != nil {
		return err
	}

	img := d.Image()
	fbW, fbH := d.window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.BindTexture(gl.TEXTURE_2D, d.texture)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0,
		int32(img.Rect.Size().X), int32(img.Rect.Size().Y),
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	d.shader.Use()
	d.shader.SetInt("frame", 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindVertexArray(d.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(quad)/4))
	gl.BindVertexArray(0)

	d.window.SwapBuffers()
	return nil
}

// Poll pumps GLFW events; key callbacks fire from inside PollEvents.
func (d *Display) Poll(im *input.InputManager) {
	d.im = im
	glfw.PollEvents()
	if d.window.ShouldClose() {
		im.HandleKeyEvent(input.CodeKey(input.KeyInterrupt), true)
	}
}

func (d *Display) onKey(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if d.im == nil || action == glfw.Repeat {
		return
	}
	k, ok := mapKey(key)
	if !ok {
		return
	}
	d.im.HandleKeyEvent(k, action == glfw.Press)
}

func mapKey(key glfw.Key) (input.Key, bool) {
	switch {
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		return input.RuneKey(rune('a' + (key - glfw.KeyA))), true
	case key >= glfw.Key0 && key <= glfw.Key9:
		return input.RuneKey(rune('0' + (key - glfw.Key0))), true
	}

	switch key {
	case glfw.KeySpace:
		return input.RuneKey(' '), true
	case glfw.KeyUp:
		return input.CodeKey(input.KeyUp), true
	case glfw.KeyDown:
		return input.CodeKey(input.KeyDown), true
	case glfw.KeyLeft:
		return input.CodeKey(input.KeyLeft), true
	case glfw.KeyRight:
		return input.CodeKey(input.KeyRight), true
	case glfw.KeyEnter:
		return input.CodeKey(input.KeyEnter), true
	case glfw.KeyEscape:
		return input.CodeKey(input.KeyEscape), true
	default:
		return input.Key{}, false
	}
}

func (d *Display) Close() error {
	gl.DeleteTextures(1, &d.texture)
	gl.DeleteBuffers(1, &d.vbo)
	gl.DeleteVertexArrays(1, &d.vao)
	d.shader.Delete()
	d.window.Destroy()
	glfw.Terminate()
	return nil
}
