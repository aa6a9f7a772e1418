package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.CanvasHeight != 300 {
		t.Errorf("CanvasHeight = %v, want 300", cfg.CanvasHeight)
	}
	if cfg.GroundOffset != 10 {
		t.Errorf("GroundOffset = %v, want 10", cfg.GroundOffset)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("CANVAS_HEIGHT", "420")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Port)
	}
	if cfg.CanvasHeight != 420 {
		t.Errorf("CanvasHeight = %v, want 420", cfg.CanvasHeight)
	}
}
