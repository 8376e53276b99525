package main

import (
	"context"
	"errors"
	"flag"
	"runtime"

	"github.com/xlab/closer"

	"termcraft/internal/config"
	"termcraft/internal/display/canvas"
	"termcraft/internal/game"
	"termcraft/internal/input"
	"termcraft/internal/logging"
	"termcraft/internal/store"
	"termcraft/internal/world"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML config file (default $"+config.EnvConfigPath+")")
		seed       = flag.Int64("seed", 0, "world generator seed")
		load       = flag.Bool("load", false, "load the world from the storage slot instead of generating one")
		surface    = flag.String("surface", "", "output surface: term, window or png")
		snapshot   = flag.String("snapshot", "", "render one frame to this PNG file and exit")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		closer.Fatalln(err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.World.Seed = *seed
		case "surface":
			cfg.Display.Surface = *surface
		}
	})
	if *snapshot != "" {
		cfg.Display.Surface = "png"
	}
	config.Apply(cfg)

	if err := logging.Init(cfg.Log.Path, logging.ParseLevel(cfg.Log.Level)); err != nil {
		closer.Fatalln(err)
	}
	closer.Bind(logging.Close)

	st, err := store.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		closer.Fatalln(err)
	}
	closer.Bind(func() {
		if err := st.Close(); err != nil {
			logging.Error("Close store: %v", err)
		}
	})

	g, err := startingWorld(cfg, st, *load)
	if err != nil {
		closer.Fatalln(err)
	}
	logging.Info("World ready: size %d, checksum %016x", g.Size(), g.Checksum())

	d, err := game.OpenDisplay(cfg)
	if err != nil {
		closer.Fatalln(err)
	}
	closer.Bind(func() {
		if err := d.Close(); err != nil {
			logging.Error("Close display: %v", err)
		}
	})

	app, err := game.NewApp(d, input.NewInputManager(), game.NewSession(cfg, g, st), cfg)
	if err != nil {
		closer.Fatalln(err)
	}
	closer.Bind(app.Close)

	if *snapshot != "" {
		if err := app.Step(); err != nil {
			closer.Fatalln(err)
		}
		if err := d.(*canvas.Canvas).SavePNG(*snapshot); err != nil {
			closer.Fatalln(err)
		}
		logging.Info("Wrote snapshot %s", *snapshot)
		closer.Close()
		return
	}

	if err := app.Run(context.Background()); err != nil {
		logging.Error("Run: %v", err)
		closer.Fatalln(err)
	}
	closer.Close()
}

// startingWorld loads the configured slot when asked, otherwise generates a
// fresh grid. A missing slot is an error only when loading was requested.
func startingWorld(cfg config.Config, st store.Store, load bool) (*world.Grid, error) {
	if !load {
		return game.NewWorld(cfg.World)
	}
	g, err := st.Load(cfg.Storage.Slot, cfg.World.Size, world.MaxBlockType)
	if errors.Is(err, store.ErrNotFound) {
		return nil, errors.New("no saved world in slot " + cfg.Storage.Slot)
	}
	return g, err
}
