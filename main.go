package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/khaliullov/max-ws-config/internal/config"
	"github.com/khaliullov/max-ws-config/internal/domain"
	"github.com/khaliullov/max-ws-config/internal/handshake"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("maxconf", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "config.json", "Path to the configuration file")
	quiet := fs.Bool("quiet", false, "Do not echo the raw and parsed configuration")
	format := fs.String("format", "", "Render the loaded configuration as json or yaml")
	defaults := fs.Bool("defaults", false, "Print the default handshake headers and exit")
	showRequest := fs.Bool("request", false, "Print the upgrade request headers handed to the dialer")
	debug := fs.Bool("debug", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).Level(level).With().Timestamp().Logger()

	if *defaults {
		for _, f := range domain.DefaultHeaders().Fields() {
			fmt.Fprintf(stdout, "%s: %s\n", f.Name, f.Value)
		}
		return 0
	}

	echo := stdout
	if *quiet {
		echo = io.Discard
	}
	cfg, err := config.NewLoader(echo, logger).Load(*configPath)
	if err != nil {
		logger.Error().Err(err).Msg("loadConfig error")
		return 1
	}

	if *format != "" {
		b, err := render(cfg, *format)
		if err != nil {
			logger.Error().Err(err).Msg("render error")
			return 1
		}
		if _, err := stdout.Write(b); err != nil {
			logger.Error().Err(err).Msg("write config")
			return 1
		}
	}

	if *showRequest {
		logger.Debug().Str("url", handshake.URL(cfg.Headers, "/")).Msg("handshake target")
		if err := handshake.RequestHeader(cfg.Headers).Write(stdout); err != nil {
			logger.Error().Err(err).Msg("write request headers")
			return 1
		}
	}
	return 0
}

func render(cfg *domain.Config, format string) ([]byte, error) {
	switch format {
	case "json":
		b, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case "yaml":
		return yaml.Marshal(cfg)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
