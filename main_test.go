package main

import (
	"testing"

	"github.com/peerhut/rendezvous/config"
)

func TestConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if AppName == "" {
		t.Error("AppName should not be empty")
	}
}

func TestFlagDefaults(t *testing.T) {
	// Unset flags defer to the environment config.
	if *port != 0 {
		t.Errorf("Port flag should default to unset, got %d", *port)
	}
	if *origin != "" {
		t.Errorf("Origin flag should default to unset, got %q", *origin)
	}
	if *ngrokEnabled {
		t.Error("Ngrok should be disabled by default")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("HOST", "")
	t.Setenv("ALLOWED_ORIGIN", "")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}

	if cfg.Port != config.DefaultPort {
		t.Errorf("Expected default port %d, got %d", config.DefaultPort, cfg.Port)
	}
	if cfg.AllowedOrigin != config.DefaultAllowedOrigin {
		t.Errorf("Expected default origin, got %q", cfg.AllowedOrigin)
	}
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	if _, err := loadConfig(); err == nil {
		t.Error("Expected error for invalid PORT")
	}
}
