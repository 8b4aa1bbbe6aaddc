package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a backend address (URL or host:port)
//	-configs-path request path of the XML config list endpoint
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-refresh-interval config list refresh interval, 0 disables
//	-log-level minimum log level
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var address string
	var configsPath string
	var requestTimeout, refreshInterval time.Duration
	var logLevel string
	var jsonConfigPath string

	fs := flag.NewFlagSet("lab-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&address, "a", "", "Lab Manager backend address (URL or host:port)")
	fs.StringVar(&configsPath, "configs-path", "", "Request path of the config list endpoint")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Config list refresh interval (e.g., 1m), 0 disables")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			ConfigsPath:    configsPath,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
