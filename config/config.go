package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nstehr/bumblebee/rules"
)

// DefaultTeam is the name the host attributes this agent's entities to.
const DefaultTeam = "Bumblebeeeeee"

// DefaultConvertRadius is how far from its nearest own base a stuck ship
// must be before it founds a new base.
const DefaultConvertRadius = 40.0

type Config struct {
	Team          string           `yaml:"team"`
	Seed          uint64           `yaml:"seed"` // 0 = seed from the clock
	BuildOrder    rules.BuildOrder `yaml:"build_order"`
	ConvertRadius float64          `yaml:"convert_radius"`
	SocketPath    string           `yaml:"socket_path"`
	WSAddr        string           `yaml:"ws_addr"`     // empty disables the websocket listener
	JournalDir    string           `yaml:"journal_dir"` // empty disables the decision journal
}

func Default() Config {
	return Config{
		Team:          DefaultTeam,
		BuildOrder:    rules.DefaultBuildOrder(),
		ConvertRadius: DefaultConvertRadius,
		SocketPath:    "/tmp/bumblebee.sock",
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	c := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate rejects settings the agent cannot run with and clamps the build order.
func (c *Config) Validate() error {
	if c.Team == "" {
		return errors.New("team must not be empty")
	}
	if c.ConvertRadius < 0 {
		return fmt.Errorf("convert_radius must be >= 0, got %v", c.ConvertRadius)
	}
	if c.SocketPath == "" && c.WSAddr == "" {
		return errors.New("one of socket_path or ws_addr is required")
	}
	c.BuildOrder.Validate()
	return nil
}
