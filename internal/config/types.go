// Copyright (c) 2026 The relaybridge Authors

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package config

// Config represents the root structure of the YAML configuration file.
// This struct is used to unmarshal configuration data from Viper.
type Config struct {
	Controller Controller `mapstructure:"controller"`
	API        API        `mapstructure:"api"`
	Telemetry  Telemetry  `mapstructure:"telemetry"`
	Log        Log        `mapstructure:"log"`
	// Debug enable or disable debug option set from CLI.
	Debug bool `mapstructure:"debug"`
}

// Controller settings for locating the relay controller executable.
type Controller struct {
	// Binary is the controller file name. Empty selects relay or relay.exe.
	Binary string `mapstructure:"binary"`
	// Path is an explicit controller path, checked before any other location.
	Path string `mapstructure:"path"`
	// AppDir is the application executable directory reported by the host
	// front end.
	AppDir string `mapstructure:"app_dir"`
	// InstallRoot is the build or install root holding bin/.
	InstallRoot string `mapstructure:"install_root"`
}

// API configuration settings for the local HTTP bridge.
type API struct {
	// Host the server will bind to.
	Host string `mapstructure:"host"`
	// Port the server will bind to.
	Port int `mapstructure:"port" validate:"min=1,max=65535"`
	// CORS Cross-Origin Resource Sharing (CORS) settings for the server.
	CORS CORS `mapstructure:"cors"`
}

// CORS represents the CORS (Cross-Origin Resource Sharing) settings.
type CORS struct {
	// List of origins allowed to access the server (e.g., "tauri://localhost").
	AllowOrigins []string `mapstructure:"allow_origins,omitempty"`
}

// Telemetry configuration settings.
type Telemetry struct {
	Tracing TracingConfig `mapstructure:"tracing,omitempty"`
	Metrics MetricsConfig `mapstructure:"metrics,omitempty"`
}

// MetricsConfig configuration settings for Prometheus metrics.
type MetricsConfig struct {
	// Path is the HTTP path for the Prometheus scrape endpoint.
	// Defaults to "/metrics" when empty.
	Path string `mapstructure:"path" validate:"omitempty,startswith=/"`
}

// TracingConfig configuration settings for distributed tracing.
type TracingConfig struct {
	// Enabled enables or disables tracing.
	Enabled bool `mapstructure:"enabled"`
	// Exporter selects the trace exporter: "stdout" or "otlp".
	Exporter string `mapstructure:"exporter" validate:"omitempty,oneof=none stdout otlp"`
	// OTLPEndpoint is the gRPC endpoint for the OTLP exporter (e.g., "localhost:4317").
	OTLPEndpoint string `mapstructure:"otlp_endpoint" validate:"required_if=Exporter otlp"`
}

// Log settings for the optional rotated log file. Records always go to
// stderr as well.
type Log struct {
	// File is the log file path. Empty disables file logging.
	File string `mapstructure:"file"`
	// MaxSizeMB is the size in megabytes at which the file is rotated.
	MaxSizeMB int `mapstructure:"max_size_mb" validate:"min=0"`
	// MaxBackups is the number of rotated files kept.
	MaxBackups int `mapstructure:"max_backups" validate:"min=0"`
	// MaxAgeDays is the number of days rotated files are kept.
	MaxAgeDays int `mapstructure:"max_age_days" validate:"min=0"`
}
