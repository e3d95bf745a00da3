// Command getapp registers an email on the landing endpoint and downloads
// the installer for the chosen platform.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"

	"github.com/msprojectmerger/landing/pkg/config"
	"github.com/msprojectmerger/landing/pkg/logger"
	"github.com/msprojectmerger/landing/svc/submit"
)

var errUsage = errors.New("email and platform are required")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var cfg cliConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}
	if err := parseFlags(args, &cfg, stderr); err != nil {
		return err
	}
	if cfg.Email == "" || cfg.Platform == "" {
		return errUsage
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	log := logger.New(
		logger.WithOutput(stderr),
		logger.WithFormat(logger.FormatText),
		logger.WithLevel(level),
		logger.WithEmailRedaction(true),
	)

	targets := submit.DefaultTargets()
	if cfg.TargetsFile != "" {
		t, err := submit.LoadTargets(cfg.TargetsFile)
		if err != nil {
			return err
		}
		targets = t
	}

	endpoint, err := url.JoinPath(cfg.BaseURL, cfg.EndpointPath)
	if err != nil {
		return fmt.Errorf("%w: %w", submit.ErrInvalidEndpoint, err)
	}

	// One deadline covers the submission and the download; Ctrl-C cancels both.
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	httpClient := &http.Client{}
	view := newTerminalView(stdout, stderr)
	downloads := submit.NewFileDownloader(ctx, cfg.OutputDir, httpClient, log)

	client, err := submit.New(endpoint, targets,
		submit.WithView(view),
		submit.WithDownloader(downloads),
		submit.WithHTTPClient(httpClient),
		submit.WithLogger(log),
	)
	if err != nil {
		return err
	}

	if err := client.Submit(ctx, cfg.Email, cfg.Platform); err != nil {
		return err
	}

	files, err := downloads.Wait()
	for _, f := range files {
		fmt.Fprintln(stdout, "saved", f)
	}
	return err
}
