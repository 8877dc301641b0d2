// Command raytermview is the demo host for the rastercore rasterizer:
// an external process that owns the window and event loop, calls
// render.Render once per frame, and blits the resulting bitmap to the
// screen. It is the "host FFI shell" the core package deliberately
// does not implement.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/kestrelgfx/rastercore/internal/ppmio"
	"github.com/kestrelgfx/rastercore/internal/scenefile"
	"github.com/kestrelgfx/rastercore/raster"
	"github.com/kestrelgfx/rastercore/render"
	"github.com/kestrelgfx/rastercore/scene"
)

func main() {
	width := flag.Int("width", 640, "framebuffer width in pixels")
	height := flag.Int("height", 480, "framebuffer height in pixels")
	fps := flag.Int("fps", 60, "target frames per second")
	headless := flag.Bool("headless", false, "run without opening a window")
	framesFlag := flag.Int("frames", 120, "frames to render in -headless mode before exiting")
	scenePath := flag.String("scene", "", "glTF/GLB scene to load; defaults to a built-in demo scene")
	out := flag.String("out", "", "write the final frame to this path (.webp or .png)")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile := flag.String("memprofile", "", "write memory profile to file")
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Printf("could not create CPU profile: %v\n", err)
			return
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Printf("could not start CPU profile: %v\n", err)
			return
		}
		defer pprof.StopCPUProfile()
	}
	if *memprofile != "" {
		defer func() {
			f, err := os.Create(*memprofile)
			if err != nil {
				fmt.Printf("could not create memory profile: %v\n", err)
				return
			}
			defer f.Close()
			if err := pprof.WriteHeapProfile(f); err != nil {
				fmt.Printf("could not write memory profile: %v\n", err)
			}
		}()
	}

	s, err := loadScene(*scenePath)
	if err != nil {
		fmt.Printf("raytermview: %v\n", err)
		os.Exit(1)
	}

	if *headless {
		runHeadless(s, *width, *height, *fps, *framesFlag, *out)
		return
	}
	runWindowed(s, *width, *height, *fps, *out)
}

func loadScene(path string) (scene.Scene, error) {
	if path == "" {
		return demoScene(), nil
	}
	return scenefile.Load(path)
}

// runWindowed opens a GLFW window, polls WASD/arrow input each frame
// through a CameraRig, and blits render.Render's output via Presenter.
func runWindowed(s scene.Scene, width, height, fps int, out string) {
	presenter, err := NewPresenter(width, height, "rastercore")
	if err != nil {
		fmt.Printf("raytermview: %v\n", err)
		os.Exit(1)
	}
	defer presenter.Close()

	rig := NewCameraRig(s.Camera.Position, s.Camera.Rotation, fps)
	callback, keys := makeGLFWKeyCallback()
	presenter.Window().SetKeyCallback(callback)

	frameInterval := time.Second / time.Duration(fps)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	var lastBitmap raster.Bitmap
	for !presenter.ShouldClose() {
		<-ticker.C
		rig.Update(keys.state())
		if keys.state().Quit {
			break
		}
		s.Camera.Position = rig.Position
		s.Camera.Rotation = rig.Rotation

		lastBitmap = render.Render(raster.ScreenSize{Width: width, Height: height}, s)
		presenter.Present(lastBitmap)
	}

	writeOut(out, lastBitmap)
}

// runHeadless drives the same pipeline without a window, for scripted
// capture: it reads terminal keys to steer the camera and renders a
// fixed number of frames before writing the last one to -out.
func runHeadless(s scene.Scene, width, height, fps, frames int, out string) {
	keys := NewKeyReader()
	if err := keys.Start(); err == nil {
		defer keys.Stop()
	}

	rig := NewCameraRig(s.Camera.Position, s.Camera.Rotation, fps)

	var bmp raster.Bitmap
	for i := 0; i < frames; i++ {
		input := keys.State()
		if input.Quit {
			break
		}
		rig.Update(input)
		keys.ClearKeys()

		s.Camera.Position = rig.Position
		s.Camera.Rotation = rig.Rotation
		bmp = render.Render(raster.ScreenSize{Width: width, Height: height}, s)
	}

	writeOut(out, bmp)
}

func writeOut(path string, bmp raster.Bitmap) {
	if path == "" || bmp.Pixels == nil {
		return
	}
	var err error
	switch ext(path) {
	case ".png":
		err = ppmio.WritePNG(path, bmp)
	default:
		err = ppmio.WriteWebP(path, bmp)
	}
	if err != nil {
		fmt.Printf("raytermview: write %q: %v\n", path, err)
	}
}

func ext(path string) string {
	for i := len(path) - 1; i >= 0 && path[i] != '/'; i-- {
		if path[i] == '.' {
			return path[i:]
		}
	}
	return ""
}
