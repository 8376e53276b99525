package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable consulted when no config
// path is given on the command line.
const EnvConfigPath = "TERMCRAFT_CONFIG"

// Config is the root of the YAML configuration file.
type Config struct {
	World    WorldConfig    `yaml:"world"`
	Mesh     MeshConfig     `yaml:"mesh"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Controls ControlsConfig `yaml:"controls"`
	Display  DisplayConfig  `yaml:"display"`
	Storage  StorageConfig  `yaml:"storage"`
	Log      LogConfig      `yaml:"log"`
}

type WorldConfig struct {
	Size      int    `yaml:"size"`
	Generator string `yaml:"generator"` // classic | noise
	Seed      int64  `yaml:"seed"`
}

type MeshConfig struct {
	MaxVertices  int `yaml:"max_vertices"`
	MaxTriangles int `yaml:"max_triangles"`
}

// PhysicsConfig values are per tick; TickRate converts seconds to ticks.
type PhysicsConfig struct {
	TickRate         float64 `yaml:"tick_rate"`
	Gravity          float64 `yaml:"gravity"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	JumpVelocity     float64 `yaml:"jump_velocity"`
	MaxFrameTicks    float64 `yaml:"max_frame_ticks"`
	VoidDepth        float64 `yaml:"void_depth"`
}

type ControlsConfig struct {
	WalkSpeed float64       `yaml:"walk_speed"`
	LookSpeed float64       `yaml:"look_speed"`
	KeyHold   time.Duration `yaml:"key_hold"`
}

type DisplayConfig struct {
	Surface  string `yaml:"surface"` // term | window | png
	FPSLimit int    `yaml:"fps_limit"`
	Cols     int    `yaml:"cols"`
	Rows     int    `yaml:"rows"`
	HUD      bool   `yaml:"hud"`
}

type StorageConfig struct {
	Backend string `yaml:"backend"` // file | leveldb
	Path    string `yaml:"path"`
	Slot    string `yaml:"slot"`
}

type LogConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		World: WorldConfig{Size: 16, Generator: "classic"},
		Mesh:  MeshConfig{MaxVertices: 3000, MaxTriangles: 3000},
		Physics: PhysicsConfig{
			TickRate:         60,
			Gravity:          0.02,
			TerminalVelocity: 0.9,
			JumpVelocity:     0.3,
			MaxFrameTicks:    10,
			VoidDepth:        -32,
		},
		Controls: ControlsConfig{WalkSpeed: 0.25, LookSpeed: 3, KeyHold: 120 * time.Millisecond},
		Display:  DisplayConfig{Surface: "term", FPSLimit: 60, Cols: 120, Rows: 40, HUD: true},
		Storage:  StorageConfig{Backend: "file", Path: ".", Slot: "world.txt"},
		Log:      LogConfig{Path: "termcraft.log", Level: "info"},
	}
}

// Load reads the YAML file at path over Default. An empty path falls back
// to $TERMCRAFT_CONFIG; with neither set the defaults are returned as is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvConfigPath)
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the engine cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.World.Size <= 0 {
		errs = append(errs, fmt.Errorf("world.size must be positive, got %d", c.World.Size))
	}
	switch c.World.Generator {
	case "classic", "noise":
	default:
		errs = append(errs, fmt.Errorf("world.generator: unknown generator %q", c.World.Generator))
	}
	if c.Mesh.MaxVertices < 0 || c.Mesh.MaxTriangles < 0 {
		errs = append(errs, errors.New("mesh capacities must not be negative"))
	}
	if c.Physics.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("physics.tick_rate must be positive, got %v", c.Physics.TickRate))
	}
	if c.Physics.MaxFrameTicks <= 0 {
		errs = append(errs, fmt.Errorf("physics.max_frame_ticks must be positive, got %v", c.Physics.MaxFrameTicks))
	}
	switch c.Display.Surface {
	case "term", "window", "png":
	default:
		errs = append(errs, fmt.Errorf("display.surface: unknown surface %q", c.Display.Surface))
	}
	if c.Display.Cols <= 0 || c.Display.Rows <= 0 {
		errs = append(errs, errors.New("display.cols and display.rows must be positive"))
	}
	switch c.Storage.Backend {
	case "file", "leveldb":
	default:
		errs = append(errs, fmt.Errorf("storage.backend: unknown backend %q", c.Storage.Backend))
	}
	return errors.Join(errs...)
}
