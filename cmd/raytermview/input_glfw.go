package main

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfwKeys tracks the WASD/arrow/QE layout through GLFW's key
// callback, the windowed-mode counterpart to KeyReader's terminal
// polling loop.
type glfwKeys struct {
	mu   sync.Mutex
	down map[glfw.Key]bool
}

func newGLFWKeys() *glfwKeys {
	return &glfwKeys{down: make(map[glfw.Key]bool)}
}

func (k *glfwKeys) callback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action == glfw.Repeat {
		return
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	k.down[key] = action == glfw.Press
}

func (k *glfwKeys) state() InputState {
	k.mu.Lock()
	defer k.mu.Unlock()
	return InputState{
		Forward:  k.down[glfw.KeyW],
		Backward: k.down[glfw.KeyS],
		Left:     k.down[glfw.KeyA],
		Right:    k.down[glfw.KeyD],
		Up:       k.down[glfw.KeyE],
		Down:     k.down[glfw.KeyQ],
		RotLeft:  k.down[glfw.KeyJ] || k.down[glfw.KeyLeft],
		RotRight: k.down[glfw.KeyL] || k.down[glfw.KeyRight],
		RotUp:    k.down[glfw.KeyI] || k.down[glfw.KeyUp],
		RotDown:  k.down[glfw.KeyK] || k.down[glfw.KeyDown],
		Quit:     k.down[glfw.KeyEscape] || k.down[glfw.KeyX],
	}
}

// makeGLFWKeyCallback builds a GLFW key callback and the key-state
// tracker it feeds; the caller still drives a CameraRig's Update once
// per frame with the returned state.
func makeGLFWKeyCallback() (func(*glfw.Window, glfw.Key, int, glfw.Action, glfw.ModifierKey), *glfwKeys) {
	k := newGLFWKeys()
	return k.callback, k
}
