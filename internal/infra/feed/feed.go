// Package feed consumes the push channel of the remote swap service over a
// websocket and turns raw frames into typed events for the reconciler.
package feed

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"bookswap-engine/internal/usecase/events"

	"github.com/gorilla/websocket"
)

// Config tunes reconnect and keepalive behavior.
type Config struct {
	// ReconnectDelay is the initial delay before a reconnect attempt.
	ReconnectDelay time.Duration
	// MaxReconnectDelay caps the exponential backoff between attempts.
	MaxReconnectDelay time.Duration
	// PingInterval is the interval between ping frames.
	PingInterval time.Duration
	// ReadTimeout is the per-message read deadline; a pong resets it.
	ReadTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		ReconnectDelay:    1 * time.Second,
		MaxReconnectDelay: 30 * time.Second,
		PingInterval:      30 * time.Second,
		ReadTimeout:       60 * time.Second,
	}
}

const (
	handshakeTimeout = 10 * time.Second
	writeTimeout     = 10 * time.Second
	eventBuffer      = 64
)

// Consumer owns the websocket connection and its reconnect loop. Events
// come out of Events() in arrival order; the channel is closed when Run
// returns.
type Consumer struct {
	endpoint string
	token    string
	config   Config
	logger   *slog.Logger
	out      chan events.Event
}

func NewConsumer(endpoint, token string, config *Config, logger *slog.Logger) *Consumer {
	cfg := DefaultConfig()
	if config != nil {
		cfg = *config
	}
	return &Consumer{
		endpoint: endpoint,
		token:    token,
		config:   cfg,
		logger:   logger,
		out:      make(chan events.Event, eventBuffer),
	}
}

func (c *Consumer) Events() <-chan events.Event {
	return c.out
}

// Run connects and keeps consuming until ctx is cancelled, reconnecting
// with exponential backoff on any connection failure. The backoff resets
// after a connection that actually delivered traffic.
func (c *Consumer) Run(ctx context.Context) error {
	defer close(c.out)

	delay := c.config.ReconnectDelay
	for {
		if ctx.Err() != nil {
			return nil
		}

		conn, err := c.connect(ctx)
		if err != nil {
			c.logger.Warn("push feed dial failed", "endpoint", c.endpoint, "error", err, "retry_in", delay)
			if !sleep(ctx, delay) {
				return nil
			}
			delay = nextDelay(delay, c.config.MaxReconnectDelay)
			continue
		}

		c.logger.Info("push feed connected", "endpoint", c.endpoint)
		delivered := c.consume(ctx, conn)
		_ = conn.Close()

		if ctx.Err() != nil {
			return nil
		}
		if delivered {
			delay = c.config.ReconnectDelay
		} else {
			delay = nextDelay(delay, c.config.MaxReconnectDelay)
		}
		c.logger.Warn("push feed disconnected", "endpoint", c.endpoint, "retry_in", delay)
		if !sleep(ctx, delay) {
			return nil
		}
	}
}

func (c *Consumer) connect(ctx context.Context) (*websocket.Conn, error) {
	dialer := websocket.Dialer{HandshakeTimeout: handshakeTimeout}
	header := http.Header{}
	if c.token != "" {
		header.Set("Authorization", "Bearer "+c.token)
	}
	conn, _, err := dialer.DialContext(ctx, c.endpoint, header)
	return conn, err
}

// consume reads frames until the connection dies, reporting whether any
// event made it through. A malformed or unknown frame is logged and
// skipped; only transport errors end the session.
func (c *Consumer) consume(ctx context.Context, conn *websocket.Conn) bool {
	_ = conn.SetReadDeadline(time.Now().Add(c.config.ReadTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(c.config.ReadTimeout))
	})

	pingCtx, cancelPing := context.WithCancel(ctx)
	defer cancelPing()
	go c.pingLoop(pingCtx, conn)

	delivered := false
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) && ctx.Err() == nil {
				c.logger.Warn("push feed read failed", "error", err)
			}
			return delivered
		}
		_ = conn.SetReadDeadline(time.Now().Add(c.config.ReadTimeout))

		ev, err := Decode(raw)
		if err != nil {
			if errors.Is(err, ErrUnknownEventType) {
				c.logger.Debug("skipping unknown push event", "error", err)
			} else {
				c.logger.Warn("skipping malformed push frame", "error", err)
			}
			continue
		}

		select {
		case c.out <- ev:
			delivered = true
		case <-ctx.Done():
			return delivered
		}
	}
}

func (c *Consumer) pingLoop(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(c.config.PingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deadline := time.Now().Add(writeTimeout)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return
			}
		}
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func nextDelay(current, max time.Duration) time.Duration {
	next := current * 2
	if next > max {
		return max
	}
	return next
}
