// Package config provides configuration loading and access for the visualization.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all tunable parameters for the scene.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Foliage   FoliageConfig   `yaml:"foliage"`
	Lights    LightsConfig    `yaml:"lights"`
	Ornaments OrnamentsConfig `yaml:"ornaments"`
	Topper    TopperConfig    `yaml:"topper"`
	Gifts     GiftsConfig     `yaml:"gifts"`
	Camera    CameraConfig    `yaml:"camera"`
	PostFX    PostFXConfig    `yaml:"postfx"`
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

// FoliageConfig holds parameters for the GPU-animated needle cloud.
type FoliageConfig struct {
	Count            int     `yaml:"count"`
	Height           float64 `yaml:"height"`      // cone height in world units
	BaseRadius       float64 `yaml:"base_radius"` // cone radius at the ground
	Jitter           float64 `yaml:"jitter"`      // bounded uniform offset per axis
	ScatterRadius    float64 `yaml:"scatter_radius"`
	SpriteSize       float64 `yaml:"sprite_size"`
	BreatheAmplitude float64 `yaml:"breathe_amplitude"`
	ClumpFrequency   float64 `yaml:"clump_frequency"` // simplex noise frequency for brightness clumping
	Tau              float64 `yaml:"tau"`             // progress time constant, seconds
}

// LightsConfig holds parameters for the fairy light string.
type LightsConfig struct {
	Count         int     `yaml:"count"`
	RadiusOffset  float64 `yaml:"radius_offset"` // bulbs sit this far outside the cone surface
	ScatterRadius float64 `yaml:"scatter_radius"`
	BulbRadius    float64 `yaml:"bulb_radius"`
	Tau           float64 `yaml:"tau"`
}

// OrnamentsConfig holds parameters for the hanging baubles.
type OrnamentsConfig struct {
	Count          int     `yaml:"count"`
	RadiusOffset   float64 `yaml:"radius_offset"`
	ScatterRadius  float64 `yaml:"scatter_radius"`
	BaubleRadius   float64 `yaml:"bauble_radius"`
	FloatAmplitude float64 `yaml:"float_amplitude"`
	SpinSpeed      float64 `yaml:"spin_speed"`
	Tau            float64 `yaml:"tau"`
}

// TopperConfig holds parameters for the tree-top star.
type TopperConfig struct {
	HeightOffset  float64 `yaml:"height_offset"` // above the cone apex
	Scale         float64 `yaml:"scale"`
	SpinSpeed     float64 `yaml:"spin_speed"`
	ScatterRadius float64 `yaml:"scatter_radius"`
	Tau           float64 `yaml:"tau"`
}

// GiftsConfig holds parameters for the ground accent boxes.
type GiftsConfig struct {
	Count         int     `yaml:"count"`
	Spread        float64 `yaml:"spread"`     // max distance from the trunk
	MaxHeight     float64 `yaml:"max_height"` // placement height cap, ground-biased
	MinSize       float64 `yaml:"min_size"`
	MaxSize       float64 `yaml:"max_size"`
	ScatterRadius float64 `yaml:"scatter_radius"`
}

// CameraConfig holds orbit camera parameters.
type CameraConfig struct {
	Distance    float64 `yaml:"distance"`
	MinDistance float64 `yaml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance"`
	PitchDeg    float64 `yaml:"pitch_deg"`
	OrbitSpeed  float64 `yaml:"orbit_speed"` // radians per second when auto-orbiting
	FovY        float64 `yaml:"fovy"`
}

// PostFXConfig holds post-processing parameters.
type PostFXConfig struct {
	Bloom        bool    `yaml:"bloom"`
	BloomSamples float64 `yaml:"bloom_samples"`
	BloomQuality float64 `yaml:"bloom_quality"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow     float64 `yaml:"stats_window"` // seconds per stats window
	PerfWindow      int     `yaml:"perf_window"`  // frames in the rolling perf window
	ConvergeEpsilon float64 `yaml:"converge_epsilon"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ApexY       float32 // cone apex height
	TopperY     float32 // topper resting height
	TotalOnTree int     // particle count across all layers
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

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ApexY = float32(c.Foliage.Height)
	c.Derived.TopperY = float32(c.Foliage.Height + c.Topper.HeightOffset)
	c.Derived.TotalOnTree = c.Foliage.Count + c.Lights.Count + c.Ornaments.Count + c.Gifts.Count + 1
}

// WriteYAML writes the configuration to a YAML file.
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
