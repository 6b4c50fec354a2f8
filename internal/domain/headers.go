package domain

import "net/http"

// Wire names of the upgrade request headers.
const (
	HeaderHost                  = "Host"
	HeaderAcceptEncoding        = "Accept-Encoding"
	HeaderAcceptLanguage        = "Accept-Language"
	HeaderConnection            = "Connection"
	HeaderOrigin                = "Origin"
	HeaderPragma                = "Pragma"
	HeaderSecWebsocketExtension = "Sec-Websocket-Extension"
	HeaderSecWebsocketKey       = "Sec-Websocket-Key"
	HeaderSecWebsocketVersion   = "Sec-Websocket-Version"
	HeaderUpgrade               = "Upgrade"
	HeaderUserAgent             = "User-Agent"
)

// Headers is the request header set sent with the WebSocket upgrade.
// Every field is required when decoding from JSON.
type Headers struct {
	Host                  string `json:"Host" yaml:"Host"`
	AcceptEncoding        string `json:"Accept-Encoding" yaml:"Accept-Encoding"`
	AcceptLanguage        string `json:"Accept-Language" yaml:"Accept-Language"`
	Connection            string `json:"Connection" yaml:"Connection"`
	Origin                string `json:"Origin" yaml:"Origin"`
	Pragma                string `json:"Pragma" yaml:"Pragma"`
	SecWebsocketExtension string `json:"Sec-Websocket-Extension" yaml:"Sec-Websocket-Extension"`
	SecWebsocketKey       string `json:"Sec-Websocket-Key" yaml:"Sec-Websocket-Key"`
	SecWebsocketVersion   string `json:"Sec-Websocket-Version" yaml:"Sec-Websocket-Version"`
	Upgrade               string `json:"Upgrade" yaml:"Upgrade"`
	UserAgent             string `json:"User-Agent" yaml:"User-Agent"`
}

// HeaderField is a single header name and value.
type HeaderField struct {
	Name  string
	Value string
}

// DefaultHeaders returns the desktop browser handshake for ws-api.oneme.ru.
func DefaultHeaders() Headers {
	return Headers{
		Host:                  "ws-api.oneme.ru",
		AcceptEncoding:        "gzip, deflate, br, zstd",
		AcceptLanguage:        "en-US,en;q=0.9",
		Connection:            "Upgrade",
		Origin:                "https://web.max.ru",
		Pragma:                "no-cache",
		SecWebsocketExtension: "permessage-deflate; client_max_window_bits",
		SecWebsocketKey:       "MEBa2ZnucwlWNZrrLRbmIQ",
		SecWebsocketVersion:   "13",
		Upgrade:               "websocket",
		UserAgent:             NewBrowserUserAgent().String(),
	}
}

// Fields returns the headers in wire order.
func (h Headers) Fields() []HeaderField {
	return []HeaderField{
		{HeaderHost, h.Host},
		{HeaderAcceptEncoding, h.AcceptEncoding},
		{HeaderAcceptLanguage, h.AcceptLanguage},
		{HeaderConnection, h.Connection},
		{HeaderOrigin, h.Origin},
		{HeaderPragma, h.Pragma},
		{HeaderSecWebsocketExtension, h.SecWebsocketExtension},
		{HeaderSecWebsocketKey, h.SecWebsocketKey},
		{HeaderSecWebsocketVersion, h.SecWebsocketVersion},
		{HeaderUpgrade, h.Upgrade},
		{HeaderUserAgent, h.UserAgent},
	}
}

func (h Headers) HTTPHeader() http.Header {
	hdr := make(http.Header, 11)
	for _, f := range h.Fields() {
		hdr.Set(f.Name, f.Value)
	}
	return hdr
}

func (h *Headers) UnmarshalJSON(data []byte) error {
	var out Headers
	err := decodeObject("headers", data, true, []field{
		{name: HeaderHost, dst: &out.Host},
		{name: HeaderAcceptEncoding, dst: &out.AcceptEncoding},
		{name: HeaderAcceptLanguage, dst: &out.AcceptLanguage},
		{name: HeaderConnection, dst: &out.Connection},
		{name: HeaderOrigin, dst: &out.Origin},
		{name: HeaderPragma, dst: &out.Pragma},
		{name: HeaderSecWebsocketExtension, dst: &out.SecWebsocketExtension},
		{name: HeaderSecWebsocketKey, dst: &out.SecWebsocketKey},
		{name: HeaderSecWebsocketVersion, dst: &out.SecWebsocketVersion},
		{name: HeaderUpgrade, dst: &out.Upgrade},
		{name: HeaderUserAgent, dst: &out.UserAgent},
	})
	if err != nil {
		return err
	}
	*h = out
	return nil
}
