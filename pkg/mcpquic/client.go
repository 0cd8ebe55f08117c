package mcpquic

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/client/transport"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/quic-go/quic-go"
)

// ClientName is reported to servers during MCP initialization.
const ClientName = "lowerlay-quic-client"

// Client is an initialized MCP session over QUIC.
type Client struct {
	conn   *quic.Conn
	stream *quic.Stream
	mcp    *client.Client
}

// Dial connects to addr, opens the MCP stream and runs the MCP handshake.
// A nil tlsCfg trusts any certificate.
func Dial(ctx context.Context, addr string, tlsCfg *tls.Config) (*Client, error) {
	if tlsCfg == nil {
		tlsCfg = ClientTLSConfig(true)
	}
	conn, err := quic.DialAddr(ctx, addr, tlsCfg, QUICConfig())
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	if alpn := conn.ConnectionState().TLS.NegotiatedProtocol; alpn != ALPN {
		conn.CloseWithError(ConnErrorUnsupportedALPN, "unsupported ALPN")
		return nil, fmt.Errorf("%w: got %q", ErrUnsupportedALPN, alpn)
	}

	c := &Client{conn: conn}
	c.stream, err = conn.OpenStreamSync(ctx)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("open stream: %w", err)
	}
	if err := WriteMagic(c.stream); err != nil {
		c.Close()
		return nil, err
	}

	c.mcp = client.NewClient(transport.NewIO(c.stream, c.stream, io.NopCloser(eofReader{})))
	if err := c.mcp.Start(ctx); err != nil {
		c.Close()
		return nil, fmt.Errorf("mcp start: %w", err)
	}

	var init mcp.InitializeRequest
	init.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	init.Params.ClientInfo = mcp.Implementation{Name: ClientName, Version: "1.0.0"}
	initCtx, cancel := context.WithTimeout(ctx, DefaultInitTimeout)
	defer cancel()
	if _, err := c.mcp.Initialize(initCtx, init); err != nil {
		c.Close()
		return nil, fmt.Errorf("mcp initialize: %w", err)
	}
	return c, nil
}

func (c *Client) ListTools(ctx context.Context) (*mcp.ListToolsResult, error) {
	if c.mcp == nil {
		return nil, ErrNotConnected
	}
	return c.mcp.ListTools(ctx, mcp.ListToolsRequest{})
}

func (c *Client) CallTool(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	if c.mcp == nil {
		return nil, ErrNotConnected
	}
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return c.mcp.CallTool(ctx, req)
}

// Close ends the session and the connection.
func (c *Client) Close() error {
	if c.mcp != nil {
		c.mcp.Close()
	}
	if c.stream != nil {
		c.stream.Close()
	}
	return c.conn.CloseWithError(ConnErrorNoError, "client closing")
}

// eofReader stands in for the stderr pipe the stdio transport expects.
type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }
