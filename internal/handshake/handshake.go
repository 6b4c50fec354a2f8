// Package handshake turns a configured header set into the request a
// gorilla/websocket Dialer sends for the upgrade.
package handshake

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/khaliullov/max-ws-config/internal/domain"
)

// Headers the dialer writes itself and refuses to take from the caller.
// The configured Sec-Websocket-Key is dropped: the dialer generates a fresh
// nonce per connection.
var dialerOwned = []string{
	domain.HeaderConnection,
	domain.HeaderUpgrade,
	domain.HeaderSecWebsocketKey,
	domain.HeaderSecWebsocketVersion,
	domain.HeaderSecWebsocketExtension,
	"Sec-Websocket-Extensions",
}

// RequestHeader returns the headers to pass to Dialer.Dial. Host is kept and
// becomes the request Host.
func RequestHeader(h domain.Headers) http.Header {
	hdr := h.HTTPHeader()
	for _, k := range dialerOwned {
		hdr.Del(k)
	}
	return hdr
}

// NewDialer returns a dialer that negotiates permessage-deflate when the
// configured extension header offers it.
func NewDialer(h domain.Headers) *websocket.Dialer {
	return &websocket.Dialer{
		Proxy:             http.ProxyFromEnvironment,
		HandshakeTimeout:  45 * time.Second,
		EnableCompression: offersDeflate(h.SecWebsocketExtension),
	}
}

// URL returns the wss:// endpoint on the configured host.
func URL(h domain.Headers, path string) string {
	u := url.URL{Scheme: "wss", Host: h.Host, Path: path}
	return u.String()
}

func offersDeflate(extensions string) bool {
	for _, ext := range strings.Split(extensions, ",") {
		name, _, _ := strings.Cut(ext, ";")
		if strings.EqualFold(strings.TrimSpace(name), "permessage-deflate") {
			return true
		}
	}
	return false
}
