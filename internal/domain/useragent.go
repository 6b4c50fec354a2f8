package domain

import "strings"

// Tokens of the default desktop Chrome User-Agent line.
const (
	DefaultProduct       = "Mozilla/5.0"
	DefaultPlatform      = "(Windows NT 10.0; Win64; x64)"
	DefaultEngine        = "AppleWebKit/537.36"
	DefaultCompatibility = "(KHTML, like Gecko)"
	DefaultBrowser       = "Chrome/142.0.0.0"
	DefaultSafari        = "Safari/537.36"

	DefaultUserAgent = DefaultProduct + " " + DefaultPlatform + " " + DefaultEngine + " " +
		DefaultCompatibility + " " + DefaultBrowser + " " + DefaultSafari
)

// BrowserUserAgent holds the six tokens of a User-Agent header line.
type BrowserUserAgent struct {
	Product       string `json:"compatibility_token" yaml:"compatibility_token"`
	Platform      string `json:"platform" yaml:"platform"`
	Engine        string `json:"rendering_engine" yaml:"rendering_engine"`
	Compatibility string `json:"compatibility_tags" yaml:"compatibility_tags"`
	Browser       string `json:"browser_identity" yaml:"browser_identity"`
	Safari        string `json:"safari_compatibility" yaml:"safari_compatibility"`
}

func NewBrowserUserAgent() BrowserUserAgent {
	return BrowserUserAgent{
		Product:       DefaultProduct,
		Platform:      DefaultPlatform,
		Engine:        DefaultEngine,
		Compatibility: DefaultCompatibility,
		Browser:       DefaultBrowser,
		Safari:        DefaultSafari,
	}
}

// String renders the tokens verbatim, separated by single spaces.
func (u BrowserUserAgent) String() string {
	return strings.Join([]string{
		u.Product,
		u.Platform,
		u.Engine,
		u.Compatibility,
		u.Browser,
		u.Safari,
	}, " ")
}
