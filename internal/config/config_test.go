package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if len(cfg.Shape) != 2 || cfg.Shape[0] != 51 || cfg.Shape[1] != 51 {
		t.Errorf("default shape = %v", cfg.Shape)
	}
	if cfg.Iterations != 1000 {
		t.Errorf("default iterations = %d", cfg.Iterations)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("loop")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if len(cfg.Wires) != 6 {
		t.Errorf("loop preset has %d wires, want 6", len(cfg.Wires))
	}

	cfg.Shape[0] = 9
	if GetPreset("loop").Shape[0] != 51 {
		t.Error("GetPreset should return an independent copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	found := false
	for _, n := range names {
		if n == "loop" {
			found = true
		}
	}
	if !found {
		t.Error("preset list should contain loop")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Error("preset list should be sorted")
		}
	}
}

func TestBuildWorld(t *testing.T) {
	world, err := GetPreset("loop").BuildWorld()
	if err != nil {
		t.Fatal(err)
	}
	if w, h := world.Shape(); w != 51 || h != 51 {
		t.Errorf("world shape = (%d, %d)", w, h)
	}
	if got := len(world.Wires()); got != 6 {
		t.Errorf("wire count = %d, want 6", got)
	}
	if got := len(world.Circuits()); got != 1 {
		t.Errorf("circuit count = %d, want 1", got)
	}
}

func TestBuildWorld_BadWire(t *testing.T) {
	cfg := &Config{
		Shape: []int{10, 10},
		Wires: []WireSpec{
			{Start: []int{0, 0}, Stop: []int{3, 4}, Current: []float64{1, 0}, Voltage: 1},
		},
	}
	if _, err := cfg.BuildWorld(); err == nil {
		t.Error("diagonal wire should fail")
	}

	cfg.Wires[0] = WireSpec{Start: []int{0}, Stop: []int{3, 0}, Current: []float64{1, 0}}
	if _, err := cfg.BuildWorld(); err == nil {
		t.Error("short start coordinate should fail")
	}

	cfg.Wires[0] = WireSpec{Start: []int{0, 0}, Stop: []int{3, 0}, Current: []float64{1}}
	if _, err := cfg.BuildWorld(); err == nil {
		t.Error("1-component current should fail")
	}
}

func TestLoadSave_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.yaml")

	cfg := GetPreset("loop")
	cfg.Iterations = 250
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Iterations != 250 {
		t.Errorf("iterations = %d, want 250", loaded.Iterations)
	}
	if len(loaded.Wires) != 6 {
		t.Errorf("wires = %d, want 6", len(loaded.Wires))
	}
	if loaded.Wires[0].Voltage != 4.5 {
		t.Errorf("first wire voltage = %v", loaded.Wires[0].Voltage)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/world.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}
