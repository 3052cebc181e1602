//go:build unit

package feed_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"bookswap-engine/internal/infra/feed"
	"bookswap-engine/internal/usecase/events"
	"bookswap-engine/tests/common/builder"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var upgrader = websocket.Upgrader{}

func testConfig() *feed.Config {
	return &feed.Config{
		ReconnectDelay:    10 * time.Millisecond,
		MaxReconnectDelay: 50 * time.Millisecond,
		PingInterval:      time.Minute,
		ReadTimeout:       time.Minute,
	}
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func sendFrame(t *testing.T, conn *websocket.Conn, eventType string, payload any) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	frame := []byte(`{"type":"` + eventType + `","payload":` + string(body) + `}`)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, frame))
}

func TestConsumerDeliversEvents(t *testing.T) {
	b := builder.NewSwapBuilder()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		sendFrame(t, conn, "swap_accepted", b.RemoteSnapshot())
		sendFrame(t, conn, "swap_teleported", b.RemoteSnapshot()) // unknown, skipped
		sendFrame(t, conn, "swap_confirmed", b.RemoteSnapshot())

		// hold the connection open until the client goes away
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	consumer := feed.NewConsumer(wsURL(srv), "secret", testConfig(), slog.Default())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = consumer.Run(ctx)
		close(done)
	}()

	expect := func(want events.Type) {
		select {
		case ev := <-consumer.Events():
			assert.Equal(t, want, ev.EventType())
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for %s", want)
		}
	}
	expect(events.TypeSwapAccepted)
	expect(events.TypeSwapConfirmed)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop on context cancel")
	}

	// channel closes once Run returns
	_, open := <-consumer.Events()
	assert.False(t, open)
}

func TestConsumerReconnects(t *testing.T) {
	b := builder.NewSwapBuilder()
	var dials atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := dials.Add(1)
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		if n == 1 {
			// first session dies without delivering anything
			return
		}

		sendFrame(t, conn, "swap_accepted", b.RemoteSnapshot())
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	consumer := feed.NewConsumer(wsURL(srv), "secret", testConfig(), slog.Default())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = consumer.Run(ctx) }()

	select {
	case ev := <-consumer.Events():
		assert.Equal(t, events.TypeSwapAccepted, ev.EventType())
	case <-time.After(5 * time.Second):
		t.Fatal("no event after reconnect")
	}
	assert.GreaterOrEqual(t, dials.Load(), int32(2))
}
