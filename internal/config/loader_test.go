package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg PatienceConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultPatienceConfig() {
		t.Errorf("embedded = %+v, hardcoded = %+v", cfg, DefaultPatienceConfig())
	}
}

func TestLoadPatienceCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("deal:\n  suits: 2\n  columns: 5\nplay:\n  auto_resolve: false\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPatience(path)
	if err != nil {
		t.Fatalf("LoadPatience() error: %v", err)
	}

	if cfg.Deal.Suits != 2 || cfg.Deal.Columns != 5 {
		t.Errorf("deal = %+v, want suits 2 columns 5", cfg.Deal)
	}
	// Unset keys keep their defaults.
	if cfg.Deal.Dragons != 3 || cfg.Deal.MaxRank != 9 {
		t.Errorf("missing keys should default, got %+v", cfg.Deal)
	}
	if cfg.Play.AutoResolve {
		t.Error("auto_resolve should be false")
	}
	if !cfg.Play.ShowHints {
		t.Error("show_hints should keep its default")
	}
}

func TestLoadPatienceErrors(t *testing.T) {
	if _, err := LoadPatience(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("deal: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPatience(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	want := DefaultPatienceConfig()
	want.Deal.Columns = 9

	data, err := Marshal(want)
	if err != nil {
		t.Fatal(err)
	}

	var got PatienceConfig
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset  Preset
		columns int
	}{
		{PresetClassic, 7},
		{PresetSmall, 6},
		{PresetLarge, 10},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultPatienceConfig()
			cfg.Deal.Columns = 7
			ApplyPreset(&cfg, tc.preset)
			if cfg.Deal.Columns != tc.columns {
				t.Errorf("columns = %d, want %d", cfg.Deal.Columns, tc.columns)
			}
			if tc.preset.Description() == "" {
				t.Error("preset should have a description")
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset("large")
	if err != nil || p != PresetLarge {
		t.Errorf("ParsePreset(large) = %q, %v", p, err)
	}
	if _, err := ParsePreset("huge"); err == nil {
		t.Error("expected error for unknown preset")
	}
}
