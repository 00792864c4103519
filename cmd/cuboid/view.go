package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"
	"github.com/taigrr/cuboid/pkg/math3d"
	"github.com/taigrr/cuboid/pkg/models"
	"github.com/taigrr/cuboid/pkg/pose"
	"github.com/taigrr/cuboid/pkg/render"
)

const (
	torqueStrength = 240.0 // degrees per second squared while a key is held
	torqueDecay    = 0.9   // per frame, key release events are unreliable
	impulseScale   = 180.0 // random impulse range in degrees per second
	zoomStep       = 1.1
)

type viewConfig struct {
	scene   sceneFlags
	fps     int
	logPath string
}

func newViewCmd() *cobra.Command {
	cfg := &viewConfig{scene: defaultSceneFlags()}
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Show the rotating cuboid in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runView(cmd.Context(), cfg)
		},
	}
	fs := cmd.Flags()
	cfg.scene.registerPose(fs)
	cfg.scene.registerRender(fs)
	cfg.scene.registerView(fs)
	fs.IntVar(&cfg.fps, "fps", 30, "Target FPS")
	fs.StringVar(&cfg.logPath, "log", "", "Write debug logs to this file")
	return cmd
}

// newLogger returns a logger writing to path, or discarding everything when
// path is empty. The terminal is in the alt screen, so logs cannot go there.
func newLogger(path string) (*slog.Logger, func() error, error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, f.Close, nil
}

func runView(ctx context.Context, cfg *viewConfig) error {
	if cfg.fps <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", cfg.fps)
	}
	sc, err := cfg.scene.resolve()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg.logPath)
	if err != nil {
		return err
	}
	defer closeLog()

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

	// Enable mouse mode
	fmt.Fprint(os.Stdout, "\x1b[?1003h") // Enable any-event mouse tracking
	fmt.Fprint(os.Stdout, "\x1b[?1006h") // Enable SGR extended mouse mode

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}
	defer cleanup()

	termRenderer := render.NewTerminalRenderer(term, width, height, sc.halfBlock)
	fb := render.NewFramebuffer(termRenderer.FramebufferSize())
	rasterizer := sc.newRasterizer(fb)
	wireframe := render.NewWireframe(fb)
	driver := pose.NewDriver(sc.cuboid, sc.spin)
	hud := NewHUD(os.Stdout)
	vs := viewState{shading: sc.shading, interp: sc.interp}

	logger.Info("view started",
		"cols", width, "rows", height,
		"buffer", fmt.Sprintf("%dx%d", fb.Width, fb.Height),
		"shading", vs.shading, "interp", vs.interp, "workers", sc.workers)

	// Context for clean shutdown
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	// Input state
	var torque math3d.Vec3 // pitch, yaw, roll
	var mouseDown bool
	var lastMouseX, lastMouseY int

	handle := func(ev uv.Event) {
		switch ev := ev.(type) {
		case uv.WindowSizeEvent:
			width, height = ev.Width, ev.Height
			term.Erase()
			term.Resize(width, height)
			termRenderer = render.NewTerminalRenderer(term, width, height, sc.halfBlock)
			fb.Resize(termRenderer.FramebufferSize())
			logger.Debug("resize", "cols", width, "rows", height)

		case uv.KeyPressEvent:
			switch {
			case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
				cancel()
			case ev.MatchString("w", "up"):
				torque.X = -torqueStrength
			case ev.MatchString("s", "down"):
				torque.X = torqueStrength
			case ev.MatchString("a", "left"):
				torque.Y = -torqueStrength
			case ev.MatchString("d", "right"):
				torque.Y = torqueStrength
			case ev.MatchString("q"):
				torque.Z = -torqueStrength
			case ev.MatchString("e"):
				torque.Z = torqueStrength
			case ev.MatchString("space"):
				driver.ApplyImpulse(
					(rand.Float64()-0.5)*impulseScale,
					(rand.Float64()-0.5)*impulseScale,
					(rand.Float64()-0.5)*impulseScale,
				)
			case ev.MatchString("r"):
				driver.Reset()
			case ev.MatchString("x"):
				vs.wireframe = !vs.wireframe
			case ev.MatchString("f"):
				vs.shading = vs.shading.Next()
				rasterizer.Shading = vs.shading
				logger.Debug("shading", "mode", vs.shading)
			case ev.MatchString("i"):
				vs.interp = vs.interp.Next()
				rasterizer.Interpolation = vs.interp
				logger.Debug("interpolation", "mode", vs.interp)
			case ev.MatchString("+", "="):
				driver.Zoom(zoomStep)
			case ev.MatchString("-", "_"):
				driver.Zoom(1 / zoomStep)
			case ev.MatchString("?"), ev.MatchString("shift+/"):
				vs.showHUD = !vs.showHUD
			}

		case uv.KeyReleaseEvent:
			switch {
			case ev.MatchString("w"), ev.MatchString("up"), ev.MatchString("s"), ev.MatchString("down"):
				torque.X = 0
			case ev.MatchString("a"), ev.MatchString("left"), ev.MatchString("d"), ev.MatchString("right"):
				torque.Y = 0
			case ev.MatchString("q"), ev.MatchString("e"):
				torque.Z = 0
			}

		case uv.MouseClickEvent:
			mouseDown = true
			lastMouseX, lastMouseY = ev.X, ev.Y

		case uv.MouseReleaseEvent:
			mouseDown = false

		case uv.MouseMotionEvent:
			if mouseDown {
				driver.Drag(ev.X-lastMouseX, ev.Y-lastMouseY)
				lastMouseX, lastMouseY = ev.X, ev.Y
			}

		case uv.MouseWheelEvent:
			switch ev.Button {
			case uv.MouseWheelUp:
				driver.Zoom(zoomStep)
			case uv.MouseWheelDown:
				driver.Zoom(1 / zoomStep)
			}
		}
	}

	// Main loop
	ticker := time.NewTicker(time.Second / time.Duration(cfg.fps))
	defer ticker.Stop()
	events := term.Events()
	lastFrame := time.Now()

	for {
		select {
		case <-ctx.Done():
			logger.Info("view stopped")
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			handle(ev)
			continue
		case <-ticker.C:
		}

		now := time.Now()
		dt := min(now.Sub(lastFrame).Seconds(), 0.1)
		lastFrame = now

		// Apply input torque and decay it
		driver.ApplyImpulse(torque.X*dt, torque.Y*dt, torque.Z*dt)
		torque = torque.Scale(torqueDecay)
		driver.Update(dt)

		c := driver.Pose()
		drawFrame(fb, rasterizer, wireframe, c, vs.wireframe)

		// Display
		termRenderer.Render(fb)
		if err := termRenderer.Flush(); err != nil {
			logger.Error("flush", "err", err)
			return fmt.Errorf("flush: %w", err)
		}

		hud.UpdateFPS()
		hud.Render(width, height, fb, rasterizer.Stats, c, vs)
	}
}

// drawFrame clears the buffer and draws c either filled or, in x-ray mode,
// as the axes under a grey outline with the front faces in palette colours.
// Both renderers draw into fb.
func drawFrame(fb *render.Framebuffer, r *render.Rasterizer, w *render.Wireframe, c models.Cuboid, xray bool) {
	fb.Clear()
	if !xray {
		r.DrawCuboid(c)
		return
	}
	faces := c.Faces()
	w.DrawAxes(1)
	w.DrawCuboid(c, render.RGB(64, 64, 64))
	w.DrawFaceOutlines(c, render.Cull(faces[:], r.Forward))
}
