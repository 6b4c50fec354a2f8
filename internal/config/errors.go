package config

import "errors"

var (
	// ErrReadConfig is returned when the config file cannot be read or is not UTF-8 text.
	ErrReadConfig = errors.New("failed to read config file")

	// ErrParseConfig is returned when the config file is not valid JSON or does not match the schema.
	ErrParseConfig = errors.New("failed to parse config file")
)
