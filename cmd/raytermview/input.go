package main

import (
	"sync"

	"github.com/charmbracelet/harmonica"
	"github.com/eiannone/keyboard"

	"github.com/kestrelgfx/rastercore/vecmath"
)

// InputState is the set of camera controls read once per frame, the
// same WASD/IJKL/QE layout the terminal demo host used.
type InputState struct {
	Forward, Backward bool
	Left, Right       bool
	Up, Down          bool
	RotLeft, RotRight bool
	RotUp, RotDown    bool
	Quit              bool
}

// KeyReader reads keyboard input without blocking the render loop,
// mirroring the teacher's silent terminal input manager: a background
// goroutine drains raw key events into a set, and the render loop
// snapshots that set once per frame.
type KeyReader struct {
	mu      sync.RWMutex
	keys    map[rune]bool
	running bool
	stop    chan struct{}
}

// NewKeyReader constructs a reader that has not yet opened the keyboard.
func NewKeyReader() *KeyReader {
	return &KeyReader{keys: make(map[rune]bool), stop: make(chan struct{})}
}

// Start opens the keyboard and begins the background read loop.
func (kr *KeyReader) Start() error {
	if kr.running {
		return nil
	}
	if err := keyboard.Open(); err != nil {
		return err
	}
	kr.running = true

	go func() {
		for {
			select {
			case <-kr.stop:
				return
			default:
				char, key, err := keyboard.GetKey()
				if err != nil {
					continue
				}
				kr.mu.Lock()
				if char != 0 {
					kr.keys[char] = true
				}
				switch key {
				case keyboard.KeyEsc:
					kr.keys['x'] = true
				case keyboard.KeyArrowUp:
					kr.keys['i'] = true
				case keyboard.KeyArrowDown:
					kr.keys['k'] = true
				case keyboard.KeyArrowLeft:
					kr.keys['j'] = true
				case keyboard.KeyArrowRight:
					kr.keys['l'] = true
				}
				kr.mu.Unlock()
			}
		}
	}()
	return nil
}

// Stop closes the keyboard and stops the background goroutine.
func (kr *KeyReader) Stop() {
	if !kr.running {
		return
	}
	kr.running = false
	kr.stop <- struct{}{}
	keyboard.Close()
}

// State snapshots the current key set into an InputState.
func (kr *KeyReader) State() InputState {
	kr.mu.RLock()
	defer kr.mu.RUnlock()
	return InputState{
		Forward:  kr.keys['w'] || kr.keys['W'],
		Backward: kr.keys['s'] || kr.keys['S'],
		Left:     kr.keys['a'] || kr.keys['A'],
		Right:    kr.keys['d'] || kr.keys['D'],
		Up:       kr.keys['e'] || kr.keys['E'],
		Down:     kr.keys['q'] || kr.keys['Q'],
		RotLeft:  kr.keys['j'] || kr.keys['J'],
		RotRight: kr.keys['l'] || kr.keys['L'],
		RotUp:    kr.keys['i'] || kr.keys['I'],
		RotDown:  kr.keys['k'] || kr.keys['K'],
		Quit:     kr.keys['x'] || kr.keys['X'],
	}
}

// ClearKeys drops all currently-latched key states.
func (kr *KeyReader) ClearKeys() {
	kr.mu.Lock()
	defer kr.mu.Unlock()
	kr.keys = make(map[rune]bool)
}

// axisSpring smooths one scalar input axis the way taigrr's
// RotationAxis does: Velocity is animated toward a target via a
// harmonica spring, accel is the spring's own internal state.
type axisSpring struct {
	velocity, accel float64
}

func (a *axisSpring) update(s harmonica.Spring, target float64) float64 {
	a.velocity, a.accel = s.Update(a.velocity, a.accel, target)
	return a.velocity
}

// CameraRig drives a scene.Camera's position/rotation from InputState,
// easing the raw per-frame input through a harmonica spring per axis
// so the camera settles rather than snapping to a stop.
type CameraRig struct {
	Position vecmath.V3
	Rotation vecmath.V3

	axisX, axisY, axisZ     axisSpring
	axisYaw, axisPitch      axisSpring
	springPos, springRotate harmonica.Spring

	moveSpeed float64
	rotSpeed  float64
}

// NewCameraRig builds a rig whose springs are tuned for fps frames per
// second, critically damped so the camera decelerates without overshoot.
func NewCameraRig(position, rotation vecmath.V3, fps int) *CameraRig {
	return &CameraRig{
		Position:     position,
		Rotation:     rotation,
		springPos:    harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
		springRotate: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
		moveSpeed:    0.08,
		rotSpeed:     1.2,
	}
}

// Update advances the rig by one frame given the current input.
func (c *CameraRig) Update(in InputState) {
	var targetX, targetZ, targetY, targetYaw, targetPitch float64
	if in.Forward {
		targetZ = c.moveSpeed
	}
	if in.Backward {
		targetZ = -c.moveSpeed
	}
	if in.Right {
		targetX = c.moveSpeed
	}
	if in.Left {
		targetX = -c.moveSpeed
	}
	if in.Up {
		targetY = c.moveSpeed
	}
	if in.Down {
		targetY = -c.moveSpeed
	}
	if in.RotRight {
		targetYaw = c.rotSpeed
	}
	if in.RotLeft {
		targetYaw = -c.rotSpeed
	}
	if in.RotUp {
		targetPitch = -c.rotSpeed
	}
	if in.RotDown {
		targetPitch = c.rotSpeed
	}

	velX := c.axisX.update(c.springPos, targetX)
	velY := c.axisY.update(c.springPos, targetY)
	velZ := c.axisZ.update(c.springPos, targetZ)
	velYaw := c.axisYaw.update(c.springRotate, targetYaw)
	velPitch := c.axisPitch.update(c.springRotate, targetPitch)

	forward := vecmath.Rotation3(c.Rotation).MulV3(vecmath.V3{Z: 1})
	right := vecmath.Rotation3(c.Rotation).MulV3(vecmath.V3{X: 1})

	c.Position = c.Position.
		Add(forward.Scale(float32(velZ))).
		Add(right.Scale(float32(velX))).
		Add(vecmath.V3{Y: float32(velY)})
	c.Rotation.Y += float32(velYaw)
	c.Rotation.X += float32(velPitch)
}
