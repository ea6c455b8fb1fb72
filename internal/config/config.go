package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"ghostcursor/internal/motion"
)

// Config carries every tunable of the cursor. The motion constants are
// empirically tuned magic numbers; they live here so deployments can adjust
// them without recompiling.
type Config struct {
	Log struct {
		Debug bool   `yaml:"debug"`
		Dir   string `yaml:"dir"`
	} `yaml:"log"`

	Browser struct {
		// ControlURL attaches to an already-running browser. Empty means
		// launch a fresh one.
		ControlURL string `yaml:"controlUrl"`
		Bin        string `yaml:"bin"`
		Headless   bool   `yaml:"headless"`
	} `yaml:"browser"`

	Motion motion.Params `yaml:"motion"`

	Trace struct {
		// StepDelayMs adds a randomized pause of roughly this many
		// milliseconds between dispatched points. Zero leaves the transport
		// round-trip as the pacing.
		StepDelayMs int `yaml:"stepDelayMs"`
	} `yaml:"trace"`

	Idle struct {
		Enabled       bool `yaml:"enabled"`
		MinIntervalMs int  `yaml:"minIntervalMs"`
		MaxIntervalMs int  `yaml:"maxIntervalMs"`
	} `yaml:"idle"`

	Click struct {
		HoldMinMs   int `yaml:"holdMinMs"`
		HoldMaxMs   int `yaml:"holdMaxMs"`
		SettleMaxMs int `yaml:"settleMaxMs"`
	} `yaml:"click"`
}

// Default returns a configuration that works with no file present.
func Default() Config {
	cfg := Config{}
	cfg.Browser.Headless = true
	cfg.Motion = motion.DefaultParams()
	cfg.Idle.Enabled = true
	cfg.Idle.MinIntervalMs = 400
	cfg.Idle.MaxIntervalMs = 2000
	cfg.Click.HoldMinMs = 35
	cfg.Click.HoldMaxMs = 110
	cfg.Click.SettleMaxMs = 2000
	return cfg
}

// Load reads path over the defaults. A missing file is not an error: the
// defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("error reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("error parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Idle.MinIntervalMs < 0 || c.Idle.MaxIntervalMs < c.Idle.MinIntervalMs {
		return fmt.Errorf("idle interval window [%d, %d] is invalid", c.Idle.MinIntervalMs, c.Idle.MaxIntervalMs)
	}
	if c.Click.HoldMinMs < 0 || c.Click.HoldMaxMs < c.Click.HoldMinMs {
		return fmt.Errorf("click hold window [%d, %d] is invalid", c.Click.HoldMinMs, c.Click.HoldMaxMs)
	}
	if c.Click.SettleMaxMs < 0 {
		return fmt.Errorf("click settle ceiling %d is invalid", c.Click.SettleMaxMs)
	}
	if c.Trace.StepDelayMs < 0 {
		return fmt.Errorf("trace step delay %d is invalid", c.Trace.StepDelayMs)
	}
	return nil
}
