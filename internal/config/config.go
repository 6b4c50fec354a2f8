package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/khaliullov/max-ws-config/internal/domain"
)

// Loader reads a JSON config file. The raw and parsed config are echoed to Out.
type Loader struct {
	Out    io.Writer
	Logger zerolog.Logger
}

// NewLoader returns a Loader echoing to out. A nil out discards the echo.
func NewLoader(out io.Writer, logger zerolog.Logger) *Loader {
	if out == nil {
		out = io.Discard
	}
	return &Loader{Out: out, Logger: logger}
}

// LoadConfig loads the config at configPath, echoing to stdout.
func LoadConfig(configPath string) (*domain.Config, error) {
	return NewLoader(os.Stdout, zerolog.Nop()).Load(configPath)
}

// Load reads and parses the config at configPath.
func (l *Loader) Load(configPath string) (*domain.Config, error) {
	log := l.Logger.With().Str("path", configPath).Logger()

	b, err := os.ReadFile(configPath)
	if err != nil {
		log.Error().Err(err).Msg("read config")
		return nil, fmt.Errorf("%w: %w", ErrReadConfig, err)
	}
	if !utf8.Valid(b) {
		log.Error().Msg("config is not valid UTF-8")
		return nil, fmt.Errorf("%w: %s is not valid UTF-8", ErrReadConfig, configPath)
	}
	log.Debug().Int("bytes", len(b)).Msg("config read")

	fmt.Fprintf(l.out(), "Raw config: %s\n", b)

	var config domain.Config
	if err := json.Unmarshal(b, &config); err != nil {
		log.Error().Err(err).Msg("parse config")
		return nil, fmt.Errorf("%w: %w", ErrParseConfig, err)
	}

	fmt.Fprintf(l.out(), "Parsed config: %s\n", config)
	return &config, nil
}

func (l *Loader) out() io.Writer {
	if l.Out == nil {
		return io.Discard
	}
	return l.Out
}
