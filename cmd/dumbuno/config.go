package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mgnsk/dumbuno"
)

type config struct {
	Players     int     `yaml:"players"`
	MinHandSize int     `yaml:"min-hand-size"`
	MaxHandSize int     `yaml:"max-hand-size"`
	Seed        *uint64 `yaml:"seed"`
}

func defaultConfig() config {
	return config{
		Players:     dumbuno.DefaultPlayers,
		MinHandSize: dumbuno.DefaultMinHandSize,
		MaxHandSize: dumbuno.DefaultMaxHandSize,
	}
}

// loadConfig overlays the YAML file at path on cfg.
func loadConfig(path string, cfg *config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("cannot parse config %q: %w", path, err)
	}

	return nil
}

func (cfg config) gameOptions() []dumbuno.Option {
	opts := []dumbuno.Option{
		dumbuno.WithPlayers(cfg.Players),
		dumbuno.WithHandSize(cfg.MinHandSize, cfg.MaxHandSize),
	}

	if cfg.Seed != nil {
		opts = append(opts, dumbuno.WithSource(dumbuno.NewSeededSource(*cfg.Seed)))
	}

	return opts
}
