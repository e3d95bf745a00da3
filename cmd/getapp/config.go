package main

import (
	"flag"
	"io"
	"time"
)

type cliConfig struct {
	BaseURL      string        `env:"GETAPP_BASE_URL" envDefault:"http://localhost:8080"`
	EndpointPath string        `env:"GETAPP_ENDPOINT_PATH" envDefault:"/api/collect-email"`
	TargetsFile  string        `env:"GETAPP_TARGETS_FILE"`
	OutputDir    string        `env:"GETAPP_OUTPUT_DIR" envDefault:"."`
	Timeout      time.Duration `env:"GETAPP_TIMEOUT" envDefault:"30s"`
	Verbose      bool          `env:"GETAPP_VERBOSE" envDefault:"false"`

	Email    string
	Platform string
}

// parseFlags overrides environment defaults with command line flags.
func parseFlags(args []string, cfg *cliConfig, out io.Writer) error {
	fs := flag.NewFlagSet("getapp", flag.ContinueOnError)
	fs.SetOutput(out)

	fs.StringVar(&cfg.Email, "email", "", "email address to register (required)")
	fs.StringVar(&cfg.Platform, "platform", "", "platform to download, for example mac (required)")
	fs.StringVar(&cfg.BaseURL, "url", cfg.BaseURL, "landing site origin")
	fs.StringVar(&cfg.EndpointPath, "path", cfg.EndpointPath, "collection endpoint path")
	fs.StringVar(&cfg.TargetsFile, "targets", cfg.TargetsFile, "YAML file mapping platforms to download paths")
	fs.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "directory for the downloaded installer")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "overall timeout")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose logging")

	return fs.Parse(args)
}
