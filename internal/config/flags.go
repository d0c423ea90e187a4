package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagListen    = flag.String("listen", "", "HTTP listen address")
	flagMaxWidth  = flag.Int("max-width", 0, "Maximum image width")
	flagMaxHeight = flag.Int("max-height", 0, "Maximum image height")
	flagLogFile   = flag.String("log-file", "", "Path to log file")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagListen != "" {
		cfg.Server.Listen = *flagListen
	}
	if *flagMaxWidth > 0 {
		cfg.Image.MaxWidth = *flagMaxWidth
	}
	if *flagMaxHeight > 0 {
		cfg.Image.MaxHeight = *flagMaxHeight
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
