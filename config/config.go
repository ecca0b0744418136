// Package config loads the renderer's INI configuration file: the scene
// and output paths, canvas dimensions, and the Feature/* toggles.
package config

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// Config is the fully resolved render configuration.
type Config struct {
	ScenePath  string
	OutputPath string

	Width, Height int

	Shadows      bool
	Reflect      bool
	Refract      bool
	Texture      bool
	Parallel     bool
	SuperSample  bool
	Acceleration bool
	DepthOfField bool
}

// Load reads and validates an INI file at path. A missing required key is
// a configuration error per the renderer's error-handling policy.
func Load(path string) (*Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	io := file.Section("IO")
	canvas := file.Section("Canvas")
	feature := file.Section("Feature")

	cfg := &Config{}

	cfg.ScenePath, err = requiredString(io, "scene")
	if err != nil {
		return nil, err
	}
	cfg.OutputPath, err = requiredString(io, "output")
	if err != nil {
		return nil, err
	}

	cfg.Width, err = requiredInt(canvas, "width")
	if err != nil {
		return nil, err
	}
	cfg.Height, err = requiredInt(canvas, "height")
	if err != nil {
		return nil, err
	}

	cfg.Shadows = feature.Key("shadows").MustBool(false)
	cfg.Reflect = feature.Key("reflect").MustBool(false)
	cfg.Refract = feature.Key("refract").MustBool(false)
	cfg.Texture = feature.Key("texture").MustBool(false)
	cfg.Parallel = feature.Key("parallel").MustBool(false)
	cfg.SuperSample = feature.Key("super-sample").MustBool(false)
	cfg.Acceleration = feature.Key("acceleration").MustBool(false)
	cfg.DepthOfField = feature.Key("depthoffield").MustBool(false)

	return cfg, nil
}

func requiredString(sec *ini.Section, key string) (string, error) {
	k := sec.Key(key)
	if k.String() == "" {
		return "", fmt.Errorf("config: missing required key %s/%s", sec.Name(), key)
	}
	return k.String(), nil
}

func requiredInt(sec *ini.Section, key string) (int, error) {
	if !sec.HasKey(key) {
		return 0, fmt.Errorf("config: missing required key %s/%s", sec.Name(), key)
	}
	return sec.Key(key).Int()
}
