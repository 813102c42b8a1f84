package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Telemetry.validate(),
		c.Editor.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

func (e *EditorConfig) validate() error {
	var errs []error

	if strings.TrimSpace(e.TimestampField) == "" {
		errs = append(errs, errors.New("editor.timestamp_field must not be empty"))
	}
	if strings.TrimSpace(e.TimestampFormat) == "" {
		errs = append(errs, errors.New("editor.timestamp_format must not be empty"))
	} else if !hasDateVerb(e.TimestampFormat) {
		errs = append(errs, fmt.Errorf("editor.timestamp_format must be a Go time layout, got %q", e.TimestampFormat))
	}

	return errors.Join(errs...)
}

// hasDateVerb reports whether layout contains at least one Go reference-time
// element for a year, month or day.
func hasDateVerb(layout string) bool {
	for _, verb := range []string{"2006", "06", "01", "Jan", "02", "_2"} {
		if strings.Contains(layout, verb) {
			return true
		}
	}
	return false
}
