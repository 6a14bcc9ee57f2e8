package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"igctrack/internal/igc"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Decode DecodeConfig `yaml:"decode"`
	Replay ReplayConfig `yaml:"replay"`
}

type ServerConfig struct {
	Listen    string `yaml:"listen"`
	TracksDir string `yaml:"tracks_dir"`
}

type DecodeConfig struct {
	AltitudeMode string `yaml:"altitude_mode"`
}

type ReplayConfig struct {
	Speed float64 `yaml:"speed"`
	Loop  bool    `yaml:"loop"`
}

func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}

	if cfg.Server.TracksDir == "" {
		return Config{}, fmt.Errorf("server.tracks_dir is required")
	}
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if _, err := igc.ParseAltitudeMode(cfg.Decode.AltitudeMode); err != nil {
		return Config{}, fmt.Errorf("decode.altitude_mode: %v", err)
	}
	if cfg.Replay.Speed == 0 {
		cfg.Replay.Speed = 1.0
	}
	if cfg.Replay.Speed < 0 {
		return Config{}, fmt.Errorf("replay.speed must be > 0")
	}

	return cfg, nil
}

// AltitudeMode returns the parsed altitude mode. Load has already
// validated the string form.
func (c Config) AltitudeMode() igc.AltitudeMode {
	m, _ := igc.ParseAltitudeMode(c.Decode.AltitudeMode)
	return m
}
