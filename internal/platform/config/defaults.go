package config

import "github.com/jsamuelsen11/bibtypes/internal/domain/fieldeditor"

const defaultServerPort = 8080

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "bibtypes",

		"editor.timestamp_field":  fieldeditor.DefaultTimestampField,
		"editor.timestamp_format": fieldeditor.DefaultTimestampLayout,

		"catalog.standard_types_file": "",
	}
}
