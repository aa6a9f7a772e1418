package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port           int     `envconfig:"PORT" default:"8080"`
	ControlSecret  string  `envconfig:"CONTROL_SECRET" default:"dev-secret-change-in-production"`
	AllowedOrigins string  `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	StaticDir      string  `envconfig:"STATIC_DIR" default:"./web/dist"`
	CanvasHeight   float64 `envconfig:"CANVAS_HEIGHT" default:"300"`
	GroundOffset   float64 `envconfig:"GROUND_OFFSET" default:"10"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
