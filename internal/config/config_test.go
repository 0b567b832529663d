package config

import (
	"errors"
	"os"
	"testing"
)

// clearEnvVars unsets every variable read by Load for the duration of the test.
func clearEnvVars(t *testing.T) {
	t.Helper()

	for _, name := range []string{EnvLogLevel, EnvDays, EnvInventoryPath, EnvMetricsEnabled} {
		t.Setenv(name, "")
		if err := os.Unsetenv(name); err != nil {
			t.Fatalf("unsetting %s: %v", name, err)
		}
	}
}

func TestLoad_DefaultValues(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg, err := Load()

	// Assert
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %s, want %s", cfg.LogLevel, DefaultLogLevel)
	}
	if cfg.Days != DefaultDays {
		t.Errorf("Days = %d, want %d", cfg.Days, DefaultDays)
	}
	if cfg.MetricsEnabled != DefaultMetricsEnabled {
		t.Errorf("MetricsEnabled = %v, want %v", cfg.MetricsEnabled, DefaultMetricsEnabled)
	}
	if cfg.InventoryPath != "" {
		t.Errorf("InventoryPath = %s, want empty string", cfg.InventoryPath)
	}
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(*testing.T, *Config)
	}{
		{
			name:    "custom log level",
			envVars: map[string]string{EnvLogLevel: "debug"},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.LogLevel != "debug" {
					t.Errorf("LogLevel = %s, want debug", cfg.LogLevel)
				}
			},
		},
		{
			name:    "custom days",
			envVars: map[string]string{EnvDays: "30"},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Days != 30 {
					t.Errorf("Days = %d, want 30", cfg.Days)
				}
			},
		},
		{
			name:    "zero days",
			envVars: map[string]string{EnvDays: "0"},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Days != 0 {
					t.Errorf("Days = %d, want 0", cfg.Days)
				}
			},
		},
		{
			name:    "inventory path",
			envVars: map[string]string{EnvInventoryPath: "/etc/gildedrose/stock.yaml"},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.InventoryPath != "/etc/gildedrose/stock.yaml" {
					t.Errorf("InventoryPath = %s, want /etc/gildedrose/stock.yaml", cfg.InventoryPath)
				}
			},
		},
		{
			name:    "metrics disabled",
			envVars: map[string]string{EnvMetricsEnabled: "false"},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.MetricsEnabled {
					t.Error("MetricsEnabled = true, want false")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			clearEnvVars(t)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			// Act
			cfg, err := Load()

			// Assert
			if err != nil {
				t.Fatalf("Load() returned unexpected error: %v", err)
			}
			tt.validate(t, cfg)
		})
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		wantErr error
	}{
		{
			name:    "unparsable days",
			envVars: map[string]string{EnvDays: "a week"},
		},
		{
			name:    "unparsable metrics flag",
			envVars: map[string]string{EnvMetricsEnabled: "maybe"},
		},
		{
			name:    "negative days",
			envVars: map[string]string{EnvDays: "-1"},
			wantErr: ErrInvalidDays,
		},
		{
			name:    "unknown log level",
			envVars: map[string]string{EnvLogLevel: "verbose"},
			wantErr: ErrInvalidLogLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			clearEnvVars(t)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			// Act
			cfg, err := Load()

			// Assert
			if err == nil {
				t.Fatal("Load() expected error, got nil")
			}
			if cfg != nil {
				t.Error("Load() should return nil config on error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{name: "valid", cfg: Config{LogLevel: "warn", Days: 5}},
		{name: "empty log level", cfg: Config{Days: 5}, wantErr: ErrInvalidLogLevel},
		{name: "negative days", cfg: Config{LogLevel: "info", Days: -3}, wantErr: ErrInvalidDays},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
