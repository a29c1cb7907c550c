package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"glitch-corridor/app"
	"glitch-corridor/config"
	"glitch-corridor/controls"
	"glitch-corridor/corridor"
	"glitch-corridor/hud"
	"glitch-corridor/input"
	"glitch-corridor/internal/logger"
	"glitch-corridor/internal/platform"
	"glitch-corridor/math"
	"glitch-corridor/movement"
	"glitch-corridor/postfx"
	"glitch-corridor/renderer"
	"glitch-corridor/scene"
)

const (
	cameraFOV  = 70.0
	cameraNear = 0.1
	cameraFar  = 1000.0
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	writeConfig := flag.String("write-config", "", "write the default config to this path and exit")
	logLevel := flag.String("log-level", "", "override log.level (debug, info, warn, error)")
	flag.Parse()

	if *writeConfig != "" {
		if err := config.SaveConfig(config.DefaultConfig(), *writeConfig); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	cfg := config.DefaultConfig()
	var cfgErr error
	if *configPath != "" {
		cfg, cfgErr = config.LoadConfig(*configPath)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	log, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Close()
	if cfgErr != nil {
		log.Warnf("%v", cfgErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	wc := platform.DefaultWindowConfig()
	wc.Width, wc.Height = cfg.Window.Width, cfg.Window.Height
	wc.Title = cfg.Window.Title
	wc.VSync = cfg.Window.VSync
	wc.Fullscreen = cfg.Window.Fullscreen
	window, err := platform.NewWindow(wc)
	if err != nil {
		log.Errorf("window: %v", err)
		log.Close()
		os.Exit(1)
	}
	defer window.Destroy()

	if err := run(ctx, cfg, window, log); err != nil && !errors.Is(err, context.Canceled) {
		log.Errorf("%v", err)
	}
	log.Info("shutting down")
}

func newLogger(c config.LogConfig) (*logger.Logger, error) {
	if c.File == "" {
		return logger.NewLogger(c.Level), nil
	}
	return logger.NewMultiLogger(c.Level, c.File)
}

func run(ctx context.Context, cfg *config.Config, window *platform.Window, log *logger.Logger) error {
	overlay := hud.NewOverlay(cfg.Window.Title)

	fbW, fbH := window.GetFramebufferSize()
	engine, err := renderer.NewRenderEngine(fbW, fbH, log)
	if err != nil {
		app.RunError(ctx, window, nil, overlay, log, err)
		return nil
	}
	defer engine.Destroy()

	dims := corridor.DefaultDimensions()
	loader := scene.NewAsyncTextureLoader()
	mats := corridor.CreateMaterials(loader, cfg.Assets.TextureDir, dims, log)
	level := corridor.BuildLevel(dims, mats)
	log.Infof("corridor built: %d segments, %d lights", len(level.Segments), len(level.Scene.Lights()))

	camera := scene.NewViewportCamera(math.Radians(cameraFOV), fbW, fbH, cameraNear, cameraFar)
	camera.SetPosition(level.SpawnPoint())

	look := controls.NewPointerLock(camera, window)
	look.PointerSpeed = cfg.Controls.PointerSpeed

	state := &input.State{}
	keyboard := input.NewKeyboard(state, input.KeyMap{
		platform.KeyW:     input.DirForward,
		platform.KeyUp:    input.DirForward,
		platform.KeyS:     input.DirBackward,
		platform.KeyDown:  input.DirBackward,
		platform.KeyA:     input.DirLeft,
		platform.KeyLeft:  input.DirLeft,
		platform.KeyD:     input.DirRight,
		platform.KeyRight: input.DirRight,
	})

	a := &app.App{
		Scene:      level.Scene,
		Camera:     camera,
		Controls:   look,
		Integrator: movement.NewIntegrator(movement.CorridorBounds(dims.Width, dims.Length, len(level.Segments))),
		Input:      state,
		Overlay:    overlay,
		Renderer:   engine,
		Surface:    engine,
		Window:     window,
		Log:        log,
		Pollers:    []func(){func() { loader.Poll() }},

		ResetVelocityOnUnlock: cfg.Controls.ResetVelocityOnUnlock,
	}

	lookup := func(string) input.Control { return nil }
	if cfg.Controls.Gamepad {
		pad := input.NewGamepadPad()
		lookup = pad.Control
		a.Gamepad = pad
		a.ReadPad = func() input.DPad {
			d := platform.ReadDPad()
			return input.DPad{Present: d.Present, Up: d.Up, Down: d.Down, Left: d.Left, Right: d.Right}
		}
	}
	a.Touch = input.BindTouchControls(state, lookup, log)

	uniforms := glitchUniforms(cfg.Glitch)
	if err := engine.EnableGlitch(level.Scene, camera, uniforms); err == nil {
		a.Chain = engine.Composer()
		a.Glitch = uniforms
	}

	a.Bind()
	window.SetKeyCallback(func(key int, pressed bool) {
		if key == platform.KeyEscape {
			if pressed {
				a.Escape()
			}
			return
		}
		keyboard.HandleKey(key, pressed)
	})
	window.SetMouseButtonCallback(func(button int, pressed bool) {
		if button == platform.MouseButtonLeft && pressed && !look.IsLocked() {
			a.Click()
		}
	})
	window.SetMouseMoveCallback(look.HandleMouseMove)
	window.SetResizeCallback(a.Resize)
	window.SetFocusCallback(a.Focus)

	statsLogged := false
	a.Pollers = append(a.Pollers, func() {
		if statsLogged {
			return
		}
		if drawn, culled := engine.DrawStats(); drawn+culled > 0 {
			log.Debugf("first frame: %d meshes drawn, %d culled", drawn, culled)
			statsLogged = true
		}
	})

	log.Info("ready: click the window to enter")
	return a.Run(ctx)
}

func glitchUniforms(c config.GlitchConfig) *postfx.GlitchUniforms {
	u := postfx.DefaultGlitchUniforms()
	u.Bypass = !c.Enabled
	u.Amount = c.Amount
	u.Angle = c.Angle
	u.Seed = c.Seed
	u.DistortionX = c.DistortionX
	u.DistortionY = c.DistortionY
	u.ColS = c.ColS
	return u
}
