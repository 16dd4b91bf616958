package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// config holds everything needed to run a cartridge headlessly. It can
// be read from a YAML file, with command line flags taking precedence.
type config struct {
	ROM      string  `yaml:"rom"`
	Boot     string  `yaml:"boot"`
	Frames   int     `yaml:"frames"`    // 0 runs until interrupted
	Speed    float64 `yaml:"speed"`     // 0 runs unpaced
	LogLevel string  `yaml:"log_level"` // a logrus level
	Serial   bool    `yaml:"serial"`    // echo serial output to stdout
}

func defaultConfig() config {
	return config{
		Speed:    1,
		LogLevel: "info",
		Serial:   true,
	}
}

// loadConfig reads a YAML config from path over the defaults. Unknown
// keys are rejected.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c config) validate() error {
	switch {
	case c.ROM == "":
		return errors.New("config: no rom given")
	case c.Frames < 0:
		return fmt.Errorf("config: invalid frame count %d", c.Frames)
	case c.Speed < 0:
		return fmt.Errorf("config: invalid speed %v", c.Speed)
	}
	return nil
}
