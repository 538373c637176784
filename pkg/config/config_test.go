package config

import (
	"os"
	"path/filepath"
	"testing"
)

const testYaml = `
window:
  backend: glfw
  width: 320
gl:
  version: "4.1"
  depth: true
render:
  clearcolor:
    r: 0.5
shaders:
  vertex: a.vert
  fragment: a.frag
monitoring:
  metric_enabled: true
`

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testYaml), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadConfig(t *testing.T) {
	dir := writeConfig(t)
	t.Setenv("GLSTACK_WINDOW_HEIGHT", "200")

	var conf Config
	if err := LoadConfig(&conf, dir); err != nil {
		t.Fatal(err)
	}

	if conf.Window.Backend != "glfw" || conf.Window.Width != 320 {
		t.Errorf("file values are not loaded: %+v", conf.Window)
	}
	if conf.Window.Height != 200 {
		t.Errorf("env override is not applied: %v", conf.Window.Height)
	}
	if conf.Window.Title != "glstack" || conf.GL.Profile != "core" || conf.Monitoring.Port != 9090 {
		t.Errorf("defaults are not applied: %+v", conf)
	}
	if conf.Render.ClearColor.R != 0.5 || conf.Render.ClearColor.A != 1 {
		t.Errorf("wrong clear color %+v", conf.Render.ClearColor)
	}
	if !conf.Shaders.FromFiles() || !conf.Monitoring.IsEnabled() || !conf.GL.Depth {
		t.Errorf("wrong flags %+v", conf)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	var conf Config
	if err := LoadConfig(&conf, t.TempDir()); err == nil {
		t.Errorf("expected error for a custom path without config.yaml")
	}
}

func TestLoadFlags(t *testing.T) {
	dir := writeConfig(t)

	conf, err := Load("test", []string{"--config", dir, "--width", "1024", "-n", "3", "--profile", "es"})
	if err != nil {
		t.Fatal(err)
	}
	if conf.Window.Width != 1024 || conf.Render.Frames != 3 || conf.GL.Profile != "es" {
		t.Errorf("flags are not applied: %+v", conf)
	}
	if conf.Window.Backend != "glfw" {
		t.Errorf("file value lost: %v", conf.Window.Backend)
	}
}

func TestVersionNumbers(t *testing.T) {
	tests := []struct {
		gl       GL
		maj, min int
		wantErr  bool
	}{
		{gl: GL{Version: "3.3"}, maj: 3, min: 3},
		{gl: GL{Version: "4"}, maj: 4},
		{gl: GL{Version: "4.x"}, wantErr: true},
		{gl: GL{Profile: "core"}, maj: 3, min: 3},
		{gl: GL{Profile: "compat"}, maj: 3, min: 3},
		{gl: GL{Profile: "es"}, maj: 3, min: 0},
		{gl: GL{Profile: "es", Version: "3.2"}, maj: 3, min: 2},
	}
	for _, tt := range tests {
		maj, min, err := tt.gl.VersionNumbers()
		if (err != nil) != tt.wantErr {
			t.Errorf("VersionNumbers(%+v) error = %v", tt.gl, err)
			continue
		}
		if maj != tt.maj || min != tt.min {
			t.Errorf("VersionNumbers(%+v) = %v.%v", tt.gl, maj, min)
		}
	}
}
