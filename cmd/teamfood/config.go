package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fwojciec/teamfood"
	"github.com/fwojciec/teamfood/fs"
	"github.com/fwojciec/teamfood/goquery"
	"gopkg.in/yaml.v3"
)

// DefaultURL is the TeamFood weekly menu page.
const DefaultURL = "http://www.teamfood.eu/index.php?target=tf/speisekarte_dyn"

// Config holds everything a run needs. It is built once in Main.Run and
// passed down; nothing is read from package state.
type Config struct {
	URL       string        `yaml:"url"`
	Output    string        `yaml:"output"`
	AnchorID  string        `yaml:"anchor_id"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
	Strict    bool          `yaml:"strict"`
	Print     bool          `yaml:"print"`
	Render    bool          `yaml:"render"`
	Verbose   bool          `yaml:"verbose"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		URL:      DefaultURL,
		Output:   fs.DefaultFileName,
		AnchorID: goquery.DefaultAnchorID,
		Timeout:  10 * time.Second,
	}
}

// LoadConfig reads a YAML config file on top of cfg. Keys missing from the
// file keep their current value.
func LoadConfig(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// Validate returns an error if the configuration cannot be used for a run.
func (c *Config) Validate() error {
	if c.URL == "" {
		return teamfood.Errorf(teamfood.EINVALID, "menu URL required")
	}
	if c.Output == "" {
		return teamfood.Errorf(teamfood.EINVALID, "output path required")
	}
	if c.AnchorID == "" {
		return teamfood.Errorf(teamfood.EINVALID, "anchor id required")
	}
	if c.Timeout <= 0 {
		return teamfood.Errorf(teamfood.EINVALID, "timeout must be positive, got %s", c.Timeout)
	}
	return nil
}
