// Package config provides configuration loading and validation for the
// entry-type service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Editor    EditorConfig    `koanf:"editor"`
	Catalog   CatalogConfig   `koanf:"catalog"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// EditorConfig holds the preferences that influence field-editor choice.
type EditorConfig struct {
	// TimestampField always gets a date editor.
	TimestampField string `koanf:"timestamp_field"`

	// TimestampFormat is a Go time layout, e.g. "2006-01-02".
	TimestampFormat string `koanf:"timestamp_format"`
}

// CatalogConfig holds entry-type catalog settings.
type CatalogConfig struct {
	// StandardTypesFile replaces the embedded standard catalog when set.
	StandardTypesFile string `koanf:"standard_types_file"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
