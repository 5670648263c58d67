package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skycast.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
locations:
  home:
    lat: 51.2
    lon: -1.8
  teide:
    lat: 28.27
    lon: -16.64
defaults:
  unit: metric
  lang: en
  tzshift: 1
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	home, ok := cfg.Lookup("home")
	if !ok {
		t.Fatal("Expected location home to resolve")
	}
	if home.Lat != 51.2 || home.Lon != -1.8 {
		t.Errorf("Unexpected coordinates: %+v", home)
	}

	if cfg.Defaults.Unit != "metric" || cfg.Defaults.Lang != "en" {
		t.Errorf("Unexpected defaults: %+v", cfg.Defaults)
	}
	if cfg.Defaults.Tzshift == nil || *cfg.Defaults.Tzshift != 1 {
		t.Errorf("Expected tzshift 1, got %v", cfg.Defaults.Tzshift)
	}

	if _, ok := cfg.Lookup("office"); ok {
		t.Error("Expected unknown location to not resolve")
	}
}

func TestLoad_MissingDefaultFileIsEmpty(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Expected missing default file to be tolerated, got %v", err)
	}
	if len(cfg.Locations) != 0 {
		t.Errorf("Expected empty config, got %+v", cfg)
	}
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing explicit config path")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "locations: [not a map")
	if _, err := Load(path); err == nil {
		t.Error("Expected parse error")
	}
}

func TestLoad_InvalidConfigRejected(t *testing.T) {
	path := writeConfig(t, `
locations:
  broken:
    lat: 123.4
    lon: 0
`)
	if _, err := Load(path); err == nil {
		t.Error("Expected out-of-range latitude to be rejected")
	}
}
