package config

import (
	"fmt"
	"gopkg.in/yaml.v2"
	"io/ioutil"
	"os"
	"time"
)

// DefaultPath is where the watcher looks for its optional config file,
// relative to the working directory.
const DefaultPath = "signaller.yaml"

type Config struct {
	LogFile    string   `yaml:"log-file"`
	Interval   string   `yaml:"interval"`
	Metric     Metrics  `yaml:"metrics"`
	ContinueOn []string `yaml:"continue-on,flow"`
}

type Metrics struct {
	Address string `yaml:"address"`
}

var DefaultConfig = Config{
	LogFile:  "signaller.log",
	Interval: "1s",
}

// HeartbeatInterval returns the parsed interval. Load validates it, so on a
// loaded Config this cannot fail; the zero Config falls back to one second.
func (c Config) HeartbeatInterval() time.Duration {
	d, err := time.ParseDuration(c.Interval)
	if err != nil || d <= 0 {
		return time.Second
	}

	return d
}

// Load reads the config file at f. A missing file is not an error: the
// config is optional and its absence yields DefaultConfig.
func Load(f string) (Config, error) {
	data, err := ioutil.ReadFile(f)

	if os.IsNotExist(err) {
		return DefaultConfig, nil
	}

	if err != nil {
		return Config{}, fmt.Errorf("load file %s: %w", f, err)
	}

	cfg := DefaultConfig

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("load file %s: %w", f, err)
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.LogFile == "" {
		return fmt.Errorf("empty log-file")
	}

	d, err := time.ParseDuration(cfg.Interval)
	if err != nil {
		return fmt.Errorf("interval: %w", err)
	}

	if d <= 0 {
		return fmt.Errorf("interval must be positive, got %s", cfg.Interval)
	}

	return nil
}
