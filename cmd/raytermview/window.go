package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/kestrelgfx/rastercore/raster"
)

// Presenter owns the GLFW window and the single textured quad used to
// blit a CPU-rendered raster.Bitmap to the screen every frame. It never
// touches scene geometry: the only GL draw call is a full-screen quad,
// keeping the "no GPU offload" non-goal intact.
type Presenter struct {
	window *glfw.Window
	vao    uint32
	vbo    uint32
	tex    uint32
	prog   uint32

	texW, texH int
}

const (
	quadVertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;

out vec2 TexCoord;

void main() {
    gl_Position = vec4(aPos, 0.0, 1.0);
    TexCoord = aUV;
}
` + "\x00"

	quadFragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
out vec4 FragColor;

uniform sampler2D screenTexture;

void main() {
    FragColor = texture(screenTexture, TexCoord);
}
` + "\x00"
)

// quadVertices is a full-screen NDC quad, two triangles, interleaved
// (x, y, u, v). The v coordinate is flipped relative to position so
// that row 0 of the uploaded Bitmap (the top of the rendered image)
// lands at the top of the window despite OpenGL's bottom-left texture
// origin.
var quadVertices = []float32{
	-1, -1, 0, 1,
	1, -1, 1, 1,
	-1, 1, 0, 0,

	-1, 1, 0, 0,
	1, -1, 1, 1,
	1, 1, 1, 0,
}

// NewPresenter opens a GLFW window of the given size and prepares the
// blit pipeline. Must be called on the main OS thread.
func NewPresenter(width, height int, title string) (*Presenter, error) {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("raytermview: init glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("raytermview: create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("raytermview: init gl: %w", err)
	}

	p := &Presenter{window: window, texW: width, texH: height}

	prog, err := buildQuadProgram()
	if err != nil {
		return nil, err
	}
	p.prog = prog

	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)

	gl.GenBuffers(1, &p.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	const stride = 4 * 4
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(1)

	gl.GenTextures(1, &p.tex)
	gl.BindTexture(gl.TEXTURE_2D, p.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(0, 0, 0, 1)

	return p, nil
}

func buildQuadProgram() (uint32, error) {
	vs, err := compileShader(quadVertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("raytermview: quad vertex shader: %w", err)
	}
	defer gl.DeleteShader(vs)

	fs, err := compileShader(quadFragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("raytermview: quad fragment shader: %w", err)
	}
	defer gl.DeleteShader(fs)

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(prog, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("raytermview: link quad program: %v", log)
	}
	return prog, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("failed to compile shader: %v", log)
	}
	return shader, nil
}

// Present uploads bmp as the quad's texture and draws a single frame.
// bmp must match the presenter's configured size; callers that resize
// should build a new Presenter.
func (p *Presenter) Present(bmp raster.Bitmap) {
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.BindTexture(gl.TEXTURE_2D, p.tex)
	if bmp.Width == p.texW && bmp.Height == p.texH && len(bmp.Pixels) > 0 {
		rgba := make([]uint8, len(bmp.Pixels)*4)
		for i, c := range bmp.Pixels {
			rgba[i*4+0] = c.R
			rgba[i*4+1] = c.G
			rgba[i*4+2] = c.B
			rgba[i*4+3] = 255
		}
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(bmp.Width), int32(bmp.Height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba))
	}

	gl.UseProgram(p.prog)
	gl.BindVertexArray(p.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	p.window.SwapBuffers()
	glfw.PollEvents()
}

// ShouldClose reports whether the user asked to close the window.
func (p *Presenter) ShouldClose() bool {
	return p.window.ShouldClose()
}

// Window exposes the underlying GLFW window for input polling.
func (p *Presenter) Window() *glfw.Window {
	return p.window
}

// Close tears down the window and terminates GLFW.
func (p *Presenter) Close() {
	glfw.Terminate()
}
