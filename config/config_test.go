package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempIni(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "render.ini")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadParsesAllKnownKeys(t *testing.T) {
	path := writeTempIni(t, `
[IO]
scene = scenes/cornell.xml
output = out.png

[Canvas]
width = 640
height = 480

[Feature]
shadows = true
reflect = true
refract = false
super-sample = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ScenePath != "scenes/cornell.xml" || cfg.OutputPath != "out.png" {
		t.Errorf("IO paths mismatch: %+v", cfg)
	}
	if cfg.Width != 640 || cfg.Height != 480 {
		t.Errorf("canvas mismatch: %+v", cfg)
	}
	if !cfg.Shadows || !cfg.Reflect || cfg.Refract {
		t.Errorf("feature toggles mismatch: %+v", cfg)
	}
	if cfg.Texture || cfg.Parallel || cfg.Acceleration || cfg.DepthOfField {
		t.Errorf("unset toggles should default false: %+v", cfg)
	}
}

func TestLoadMissingRequiredKeyIsAnError(t *testing.T) {
	path := writeTempIni(t, `
[IO]
scene = scenes/cornell.xml

[Canvas]
width = 100
height = 100
`)
	if _, err := Load(path); err == nil {
		t.Fatal("Load: expected an error for a missing IO/output key")
	}
}

func TestLoadMissingFileIsAnError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.ini")); err == nil {
		t.Fatal("Load: expected an error for a nonexistent file")
	}
}
