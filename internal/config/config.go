package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings is the .easel.yaml settings file.
type Settings struct {
	Defaults struct {
		Model       string `yaml:"model"`
		AspectRatio string `yaml:"aspect_ratio"`
	} `yaml:"defaults"`
	Render struct {
		APIKeyEnv string `yaml:"api_key_env"` // env var holding the API key
		Quality   string `yaml:"quality"`     // "standard" or "hd"
	} `yaml:"render"`
}

// Default returns the built-in settings used when no file is found.
func Default() *Settings {
	s := &Settings{}
	s.Defaults.Model = "dall-e-3"
	s.Defaults.AspectRatio = "1:1"
	s.Render.APIKeyEnv = "OPENAI_API_KEY"
	s.Render.Quality = "standard"
	return s
}

// Load reads settings from a YAML file, filling unset fields from Default.
func Load(path string) (*Settings, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	s := Default()
	if err := yaml.Unmarshal(b, s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if s.Defaults.Model == "" {
		s.Defaults.Model = Default().Defaults.Model
	}
	if s.Defaults.AspectRatio == "" {
		s.Defaults.AspectRatio = Default().Defaults.AspectRatio
	}
	if s.Render.APIKeyEnv == "" {
		s.Render.APIKeyEnv = Default().Render.APIKeyEnv
	}
	return s, nil
}

// Discover finds settings using priority: env > flag > walk-up > defaults.
// A missing file is not an error; built-in defaults apply.
func Discover(flagPath string) (*Settings, error) {
	// 1. Environment variable
	if envPath := os.Getenv("EASEL_CONFIG"); envPath != "" {
		return Load(envPath)
	}

	// 2. CLI flag
	if flagPath != "" {
		return Load(flagPath)
	}

	// 3. Walk up from CWD
	dir, err := os.Getwd()
	if err == nil {
		for {
			candidate := filepath.Join(dir, ".easel.yaml")
			if _, err := os.Stat(candidate); err == nil {
				return Load(candidate)
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	// 4. Built-in defaults
	return Default(), nil
}
