// planetarium - Terminal solar system viewer
// A software-rendered solar system with procedurally shaded planets,
// drawn in the terminal with half-block cells.
//
// Controls:
//
//	Left/Right   - Orbit the camera around the scene
//	W/S          - Orbit up/down
//	A/D          - Pan left/right
//	Q/E          - Pan up/down
//	Up/Down      - Zoom in/out
//	J/L/I/K      - Steer the craft
//	B            - Toggle bird's-eye view
//	O            - Toggle orbit rings
//	G            - Toggle ecliptic grid
//	Esc / Ctrl+C - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/solterm/planetarium/pkg/math3d"
	"github.com/solterm/planetarium/pkg/render"
	"github.com/solterm/planetarium/pkg/scene"
)

var (
	craftPath     = flag.String("craft", "", "Path to craft model (.obj or .glb)")
	texturePath   = flag.String("texture", "", "Path to craft texture image (PNG/JPG)")
	normalMapPath = flag.String("normalmap", "", "Path to craft normal map image (PNG/JPG)")
	targetFPS     = flag.Int("fps", 30, "Target FPS")
	starCount     = flag.Int("stars", 50000, "Number of skybox stars")
	flatShading   = flag.Bool("flat", false, "Flat-shade the craft (faceted low-poly look)")
	starSeed      = flag.Int64("seed", 0, "Skybox RNG seed (0 = time-based)")
	bgColor       = flag.String("bg", "51,51,85", "Background color (R,G,B)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "planetarium - Terminal solar system viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: planetarium [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Left/Right  - Orbit the camera\n")
		fmt.Fprintf(os.Stderr, "  W/S         - Orbit up/down\n")
		fmt.Fprintf(os.Stderr, "  A/D, Q/E    - Pan\n")
		fmt.Fprintf(os.Stderr, "  Up/Down     - Zoom\n")
		fmt.Fprintf(os.Stderr, "  J/L/I/K     - Steer the craft\n")
		fmt.Fprintf(os.Stderr, "  B           - Bird's-eye view\n")
		fmt.Fprintf(os.Stderr, "  O           - Toggle orbit rings\n")
		fmt.Fprintf(os.Stderr, "  G           - Toggle ecliptic grid\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// ControlAxis tracks a control velocity with harmonica spring decay, so
// held keys accelerate and released keys coast to a stop.
type ControlAxis struct {
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64 // internal spring velocity
}

// NewControlAxis creates an axis with a critically damped spring.
func NewControlAxis(fps int) ControlAxis {
	return ControlAxis{
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update decays the velocity toward zero and returns the step to apply
// this frame.
func (a *ControlAxis) Update() float64 {
	v := a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
	return v
}

// Impulse adds to the axis velocity.
func (a *ControlAxis) Impulse(v float64) {
	a.Velocity += v
}

func run() error {
	// Parse background color
	var bgR, bgG, bgB uint8 = 51, 51, 85
	fmt.Sscanf(*bgColor, "%d,%d,%d", &bgR, &bgG, &bgB)

	// Create terminal
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	// Create renderer
	termRenderer := render.NewTerminalRenderer(term, width, height)
	fbWidth, fbHeight := termRenderer.FramebufferSize()
	fb := render.NewFramebuffer(fbWidth, fbHeight)
	fb.SetBackground(render.RGB(bgR, bgG, bgB))

	// Camera starts above and behind the sun, looking at the origin.
	defaultEye := math3d.V3(0, 10, 30)
	defaultCenter := math3d.V3(0, 0, 0)
	camera := render.NewCamera(defaultEye, defaultCenter, math3d.Up())
	camera.SetAspectRatio(float64(fbWidth) / float64(fbHeight))
	camera.SetFOV(math.Pi / 3)
	camera.SetClipPlanes(0.1, 1000)

	// Skybox
	seed := *starSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sky := render.NewSkybox(*starCount, rand.New(rand.NewSource(seed)))

	// Optional craft
	var craft *scene.Craft
	if *craftPath != "" {
		craft, err = scene.NewCraft(*craftPath, math3d.V3(5.5, 1.5, 0), 0.5, render.MaterialMoon)
		if err != nil {
			return err
		}
		// A .glb with an embedded texture renders textured out of the box.
		if craft.Texture != nil {
			craft.Material = render.MaterialTextured
		}
		if *flatShading {
			craft.Mesh.CalculateNormals()
		}
	}

	world := scene.New(scene.SolarSystem(), craft, sky, camera)

	if *texturePath != "" {
		tex, err := render.LoadTexture(*texturePath)
		if err != nil {
			return fmt.Errorf("load texture: %w", err)
		}
		world.Texture = tex
		if craft != nil {
			craft.Material = render.MaterialTextured
		}
	}
	if *normalMapPath != "" {
		nm, err := render.LoadNormalMap(*normalMapPath)
		if err != nil {
			return fmt.Errorf("load normal map: %w", err)
		}
		world.NormalMap = nm
	}

	// Control state
	const (
		orbitSpeed = math.Pi / 60
		panSpeed   = 0.9
		zoomSpeed  = 0.1
		craftSpeed = 0.1
	)
	yaw := NewControlAxis(*targetFPS)
	pitch := NewControlAxis(*targetFPS)
	zoom := NewControlAxis(*targetFPS)
	birdsEye := false

	// Context for clean shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Event handler
	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				termRenderer = render.NewTerminalRenderer(term, width, height)
				fbWidth, fbHeight = termRenderer.FramebufferSize()
				fb = render.NewFramebuffer(fbWidth, fbHeight)
				fb.SetBackground(render.RGB(bgR, bgG, bgB))
				camera.SetAspectRatio(float64(fbWidth) / float64(fbHeight))

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("left"):
					yaw.Impulse(orbitSpeed)
				case ev.MatchString("right"):
					yaw.Impulse(-orbitSpeed)
				case ev.MatchString("w"):
					pitch.Impulse(-orbitSpeed)
				case ev.MatchString("s"):
					pitch.Impulse(orbitSpeed)
				case ev.MatchString("a"):
					camera.Pan(math3d.V3(-panSpeed, 0, 0))
				case ev.MatchString("d"):
					camera.Pan(math3d.V3(panSpeed, 0, 0))
				case ev.MatchString("q"):
					camera.Pan(math3d.V3(0, panSpeed, 0))
				case ev.MatchString("e"):
					camera.Pan(math3d.V3(0, -panSpeed, 0))
				case ev.MatchString("up"):
					zoom.Impulse(zoomSpeed)
				case ev.MatchString("down"):
					zoom.Impulse(-zoomSpeed)
				case ev.MatchString("j"):
					if craft != nil {
						craft.Move(math3d.V3(-craftSpeed, 0, 0))
					}
				case ev.MatchString("l"):
					if craft != nil {
						craft.Move(math3d.V3(craftSpeed, 0, 0))
					}
				case ev.MatchString("i"):
					if craft != nil {
						craft.Move(math3d.V3(0, craftSpeed, 0))
					}
				case ev.MatchString("k"):
					if craft != nil {
						craft.Move(math3d.V3(0, -craftSpeed, 0))
					}
				case ev.MatchString("o"):
					world.ShowOrbits = !world.ShowOrbits
				case ev.MatchString("g"):
					world.ShowGrid = !world.ShowGrid
				case ev.MatchString("b"):
					if birdsEye {
						camera.SetEye(defaultEye)
						camera.SetCenter(defaultCenter)
					} else {
						camera.SetEye(math3d.V3(0, 41.3, 4.1))
						camera.SetCenter(math3d.V3(-3.9, 0, 2.7))
					}
					birdsEye = !birdsEye
				}
			}
		}
	}()

	// Main loop
	targetDuration := time.Second / time.Duration(*targetFPS)

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		now := time.Now()

		// Apply spring-damped controls
		camera.Orbit(yaw.Update(), pitch.Update())
		camera.Zoom(zoom.Update())

		world.RenderFrame(fb)

		// Display
		termRenderer.Render(fb)
		if err := termRenderer.Flush(); err != nil {
			cleanup()
			return fmt.Errorf("flush: %w", err)
		}

		// Frame timing
		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
