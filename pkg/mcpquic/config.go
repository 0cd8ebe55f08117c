// Package mcpquic carries MCP JSON-RPC over one bidirectional QUIC stream.
//
// The client opens the stream and writes the magic bytes; from then on both
// sides exchange newline-delimited JSON-RPC messages.
package mcpquic

import (
	"crypto/tls"
	"time"

	"github.com/quic-go/quic-go"
)

const (
	// ALPN is the TLS application protocol negotiated for MCP sessions.
	ALPN = "lowerlay-mcp-v1"
	// Magic opens every MCP stream.
	Magic = "LLY1"

	MaxMessageSize     = 4 << 20
	DefaultIdleTimeout = 5 * time.Minute
	DefaultKeepAlive   = 30 * time.Second
	DefaultInitTimeout = 10 * time.Second
)

// QUICConfig returns the QUIC settings shared by the listener, the chassis
// and the client.
func QUICConfig() *quic.Config {
	return &quic.Config{
		MaxStreamReceiveWindow:     MaxMessageSize,
		MaxConnectionReceiveWindow: 4 * MaxMessageSize,
		MaxIdleTimeout:             DefaultIdleTimeout,
		KeepAlivePeriod:            DefaultKeepAlive,
	}
}

// ClientTLSConfig offers only the MCP protocol. insecure skips certificate
// verification, for self-signed development servers.
func ClientTLSConfig(insecure bool) *tls.Config {
	return &tls.Config{
		NextProtos:         []string{ALPN},
		MinVersion:         tls.VersionTLS13,
		InsecureSkipVerify: insecure,
	}
}
