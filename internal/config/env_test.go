package config

import (
	"bytes"
	"testing"
	"time"
)

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"ALPHA", "0.01")
	t.Setenv(EnvPrefix+"PLOT_DIR", "/tmp/figs")
	t.Setenv(EnvPrefix+"PLOT_FORMAT", "PDF")
	t.Setenv(EnvPrefix+"NO_DISPLAY", "yes")
	t.Setenv(EnvPrefix+"TIMEOUT", "2m")
	t.Setenv(EnvPrefix+"LOG_LEVEL", "info")

	var buf bytes.Buffer
	cfg, err := ParseConfig("pvadjust", nil, &buf)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}

	if cfg.Alpha != 0.01 {
		t.Errorf("Alpha = %v, want 0.01", cfg.Alpha)
	}
	if cfg.PlotDir != "/tmp/figs" {
		t.Errorf("PlotDir = %q, want /tmp/figs", cfg.PlotDir)
	}
	if cfg.PlotFormat != "pdf" {
		t.Errorf("PlotFormat = %q, want pdf", cfg.PlotFormat)
	}
	if !cfg.NoDisplay {
		t.Error("NoDisplay should be enabled from the environment")
	}
	if cfg.Timeout != 2*time.Minute {
		t.Errorf("Timeout = %v, want 2m", cfg.Timeout)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestApplyEnvOverrides_FlagWins(t *testing.T) {
	t.Setenv(EnvPrefix+"ALPHA", "0.01")
	t.Setenv(EnvPrefix+"NO_DISPLAY", "true")

	var buf bytes.Buffer
	cfg, err := ParseConfig("pvadjust", []string{"-alpha", "0.2", "-no-display=false"}, &buf)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Alpha != 0.2 {
		t.Errorf("Alpha = %v, want 0.2 from the flag", cfg.Alpha)
	}
	if cfg.NoDisplay {
		t.Error("explicit -no-display=false should win over the environment")
	}
}

func TestApplyEnvOverrides_InvalidValuesIgnored(t *testing.T) {
	t.Setenv(EnvPrefix+"ALPHA", "not-a-number")
	t.Setenv(EnvPrefix+"TIMEOUT", "soon")
	t.Setenv(EnvPrefix+"NO_COLOR", "maybe")

	var buf bytes.Buffer
	cfg, err := ParseConfig("pvadjust", nil, &buf)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Alpha != DefaultAlpha {
		t.Errorf("Alpha = %v, want default %v", cfg.Alpha, DefaultAlpha)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want default %v", cfg.Timeout, DefaultTimeout)
	}
	if cfg.NoColor {
		t.Error("unrecognized boolean should keep the default")
	}
}

func TestParseBoolEnv(t *testing.T) {
	tests := []struct {
		val        string
		defaultVal bool
		want       bool
	}{
		{"true", false, true},
		{"YES", false, true},
		{"1", false, true},
		{"false", true, false},
		{"No", true, false},
		{"0", true, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}

	for _, tt := range tests {
		if got := parseBoolEnv(tt.val, tt.defaultVal); got != tt.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.val, tt.defaultVal, got, tt.want)
		}
	}
}
