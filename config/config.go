// Package config provides configuration loading and access for the prototype.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all tuning parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Arena     ArenaConfig     `yaml:"arena"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Control   ControlConfig   `yaml:"control"`
	Heat      HeatConfig      `yaml:"heat"`
	Particles ParticlesConfig `yaml:"particles"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// ArenaConfig holds arena geometry in world units.
// The arena is a closed rectangle centered on the origin.
type ArenaConfig struct {
	HalfWidth       float64 `yaml:"half_width"`       // Half-extent along X
	HalfHeight      float64 `yaml:"half_height"`      // Half-extent along Y
	WallRestitution float64 `yaml:"wall_restitution"` // Bounce factor against walls and hulls
	Scale           float64 `yaml:"scale"`            // Pixels per world unit
}

// PhysicsConfig holds integration parameters.
type PhysicsConfig struct {
	DT         float64 `yaml:"dt"`          // Seconds per simulation tick
	HullRadius float64 `yaml:"hull_radius"` // Collision radius of a hull, world units
}

// ControlConfig holds the actuation constants consumed by the control step.
type ControlConfig struct {
	ImpulseMagnitude     float64 `yaml:"impulse_magnitude"`     // One-shot kick strength
	ForceMagnitude       float64 `yaml:"force_magnitude"`       // Sustained thrust strength
	AccelerationFactor   float64 `yaml:"acceleration_factor"`   // Boost impulse = velocity * this
	DefaultDamping       float64 `yaml:"default_damping"`       // Linear damping while maneuvering
	StabilisationDamping float64 `yaml:"stabilisation_damping"` // Linear damping while braking
	CooldownSeconds      float64 `yaml:"cooldown_seconds"`      // Shared impulse/boost cooldown
}

// HeatConfig holds the heat accumulator increments per action.
type HeatConfig struct {
	ImpulseIncrement float64 `yaml:"impulse_increment"` // Added per impulse or boost
	ForceIncrement   float64 `yaml:"force_increment"`   // Added per tick of thrust
	StabiliseDrain   float64 `yaml:"stabilise_drain"`   // Removed per brake press
}

// ParticlesConfig holds VFX pool parameters.
type ParticlesConfig struct {
	MaxParticles int `yaml:"max_particles"`
	BurstCount   int `yaml:"burst_count"` // Particles per impulse/boost burst
	PuffCount    int `yaml:"puff_count"`  // Particles per thrust puff
}

// TelemetryConfig holds action-log output parameters.
type TelemetryConfig struct {
	FlushInterval int `yaml:"flush_interval"` // Ticks between recorder flushes
}

// DerivedConfig holds values derived from loaded config.
type DerivedConfig struct {
	DT32       float32 // Physics.DT as float32
	ScreenW32  float32 // Screen.Width as float32
	ScreenH32  float32 // Screen.Height as float32
	ArenaW32   float32 // Arena half-width as float32
	ArenaH32   float32 // Arena half-height as float32
	Scale32    float32 // Arena.Scale as float32
	HullRadius float32 // Physics.HullRadius as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	// A negative tick length would run the cooldowns backwards.
	if c.Physics.DT < 0 {
		c.Physics.DT = 0
	}
	c.Derived.DT32 = float32(c.Physics.DT)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.ArenaW32 = float32(c.Arena.HalfWidth)
	c.Derived.ArenaH32 = float32(c.Arena.HalfHeight)
	c.Derived.Scale32 = float32(c.Arena.Scale)
	c.Derived.HullRadius = float32(c.Physics.HullRadius)
}

// WriteYAML saves the configuration to a file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
