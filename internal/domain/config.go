package domain

import "encoding/json"

// Config is the on-disk client configuration.
type Config struct {
	Headers  Headers          `json:"headers" yaml:"headers"`
	MaxAgent DeviceDescriptor `json:"maxAgent" yaml:"maxAgent"`
}

func (c *Config) UnmarshalJSON(data []byte) error {
	var out Config
	err := decodeObject("config", data, false, []field{
		{name: "headers", dst: &out.Headers},
		{name: "maxAgent", dst: &out.MaxAgent},
	})
	if err != nil {
		return err
	}
	*c = out
	return nil
}

// String renders the config as indented JSON.
func (c Config) String() string {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(b)
}
