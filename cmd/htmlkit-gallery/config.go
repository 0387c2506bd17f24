package main

import "os"

// Config captures gallery configuration from the environment so main
// stays lean.
type Config struct {
	// Addr is the listen address, from GALLERY_ADDR.
	Addr string
	// ThemePath optionally points at a theme YAML file, from
	// GALLERY_THEME. Empty means the embedded default theme.
	ThemePath string
}

// ConfigFromEnv builds a Config from environment variables.
func ConfigFromEnv() Config {
	addr := os.Getenv("GALLERY_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		Addr:      addr,
		ThemePath: os.Getenv("GALLERY_THEME"),
	}
}
