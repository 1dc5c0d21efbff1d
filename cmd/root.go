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

package cmd

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/dstur/relaybridge/internal/cli"
	"github.com/dstur/relaybridge/internal/config"
	"github.com/dstur/relaybridge/internal/telemetry"
)

var (
	appConfig  config.Config
	logger     = slog.New(slog.NewTextHandler(os.Stderr, nil))
	jsonOutput bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "relaybridge",
	Short: "Bridge front ends to an 8-channel relay controller.",
	Long: `Locate the relay controller executable, translate relay operations into
its command line, and run it without flashing a console window.

Operations are available from the command line, a local HTTP API
and an MCP tool server.
`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initLogger)

	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable or disable debug mode")
	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Enable JSON output")

	rootCmd.PersistentFlags().
		StringP("config", "f", defaultConfigFile, "Path to config file")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("configFile", rootCmd.PersistentFlags().Lookup("config"))

	setDefaults()
}

const defaultConfigFile = "relaybridge.yaml"

// setDefaults registers every key so environment overrides reach
// viper.Unmarshal even without a config file.
func setDefaults() {
	viper.SetDefault("controller.binary", "")
	viper.SetDefault("controller.path", "")
	viper.SetDefault("controller.app_dir", "")
	viper.SetDefault("controller.install_root", "")
	viper.SetDefault("api.host", "127.0.0.1")
	viper.SetDefault("api.port", 8321)
	viper.SetDefault("api.cors.allow_origins", []string{})
	viper.SetDefault("telemetry.tracing.enabled", false)
	viper.SetDefault("telemetry.tracing.exporter", "")
	viper.SetDefault("telemetry.tracing.otlp_endpoint", "")
	viper.SetDefault("telemetry.metrics.path", telemetry.DefaultMetricsPath)
	viper.SetDefault("log.file", "")
	viper.SetDefault("log.max_size_mb", 10)
	viper.SetDefault("log.max_backups", 3)
	viper.SetDefault("log.max_age_days", 28)
}

func initConfig() {
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetConfigType("yaml")
	viper.AutomaticEnv()
	viper.SetEnvPrefix("relaybridge")
	viper.SetConfigFile(viper.GetString("configFile"))

	// The config file is optional unless named explicitly.
	if err := viper.ReadInConfig(); err != nil {
		explicit := rootCmd.PersistentFlags().Changed("config")
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			cli.LogFatal(logger, "failed to read config", err, "configFile", viper.ConfigFileUsed())
		}
	}

	if err := viper.Unmarshal(&appConfig); err != nil {
		cli.LogFatal(logger, "failed to unmarshal config", err, "configFile", viper.ConfigFileUsed())
	}

	// Auto-enable tracing in debug mode so trace_id appears in log lines.
	// No exporter is set, just log correlation.
	if appConfig.Debug && !appConfig.Telemetry.Tracing.Enabled {
		appConfig.Telemetry.Tracing.Enabled = true
	}

	err := config.Validate(&appConfig)
	if err != nil {
		cli.LogFatal(logger, "validation failed", err, "configFile", viper.ConfigFileUsed())
	}
}

func initLogger() {
	// The file is closed by process exit.
	w, _ := telemetry.LogWriter(os.Stderr, appConfig.Log)

	logger = telemetry.NewLogger(w, telemetry.LogOptions{
		Debug:   viper.GetBool("debug"),
		JSON:    jsonOutput,
		NoColor: !term.IsTerminal(int(os.Stderr.Fd())),
	})
}
