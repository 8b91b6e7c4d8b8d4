package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoadYAML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.yaml", "addr: :9999\nstate_path: /tmp/state.json\nlevel_temps: [-18, 2, 10]\nsections_per_level: 3\nsoon_window_days: 1\n")
	cfg, err := Load(p)
	if err != nil { t.Fatalf("load: %v", err) }
	if cfg.Addr != ":9999" || cfg.StatePath != "/tmp/state.json" || cfg.SectionsPerLevel != 3 || cfg.SoonWindowDays != 1 {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	if len(cfg.LevelTemps) != 3 || cfg.LevelTemps[0] != -18 || cfg.LevelTemps[2] != 10 {
		t.Fatalf("unexpected level temps: %+v", cfg.LevelTemps)
	}
}

func TestLoadJSON(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.json", `{"addr":":7070","state_path":"/s.json","sections_per_level":2,"vision_base_url":"http://v:8000","vision_model":"qwen-vl-plus"}`)
	cfg, err := Load(p)
	if err != nil { t.Fatalf("load: %v", err) }
	if cfg.Addr != ":7070" || cfg.StatePath != "/s.json" || cfg.SectionsPerLevel != 2 || cfg.VisionBaseURL != "http://v:8000" || cfg.VisionModel != "qwen-vl-plus" {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
}

func TestLoadTOML(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.toml", "addr=\":8081\"\nstate_path=\"/x.json\"\nsoon_window_days=4\ncors_enabled=true\ncors_allowed_origins=[\"http://localhost:5173\"]\n")
	cfg, err := Load(p)
	if err != nil { t.Fatalf("load: %v", err) }
	if cfg.Addr != ":8081" || cfg.StatePath != "/x.json" || cfg.SoonWindowDays != 4 || !cfg.CORSEnabled {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "http://localhost:5173" {
		t.Fatalf("unexpected origins: %+v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); err == nil { t.Fatalf("expected error on empty path") }
	if _, err := Load("/nonexistent/cfg.yaml"); err == nil { t.Fatalf("expected error on missing file") }
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.txt", "not supported")
	if _, err := Load(p); err == nil { t.Fatalf("expected unsupported extension error") }
}
