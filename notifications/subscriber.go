// Package notifications subscribes to resource change notifications
// over the Solid WebSocket pubsub protocol. After subscribing to a
// resource URI with a "sub <uri>" frame, the server announces every
// change to it with a "pub <uri>" frame; an editor uses this to learn
// that a document it synchronizes with was modified elsewhere.
package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
)

// Subscriber is a connection to a pod's updates WebSocket. Updates are
// delivered on the Updates channel until the connection closes.
type Subscriber struct {
	conn   *websocket.Conn
	logger *slog.Logger

	writeMu sync.Mutex
	updates chan string

	closeOnce sync.Once
}

// Option configures a Subscriber.
type Option func(*Subscriber)

// WithLogger sets the logger. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Subscriber) { s.logger = logger }
}

// Dial connects to a pod's updates WebSocket endpoint and starts the
// read loop.
func Dial(ctx context.Context, url string, opts ...Option) (*Subscriber, error) {
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	s := &Subscriber{
		conn:    conn,
		logger:  slog.Default(),
		updates: make(chan string, 16),
	}
	for _, opt := range opts {
		opt(s)
	}

	go s.readLoop()
	return s, nil
}

// Subscribe asks the server to announce changes to resource.
func (s *Subscriber) Subscribe(resource string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.conn.WriteMessage(websocket.TextMessage, []byte("sub "+resource)); err != nil {
		return fmt.Errorf("subscribe %s: %w", resource, err)
	}
	s.logger.Debug("subscribed to resource", "resource", resource)
	return nil
}

// Updates returns the channel of changed resource URIs. The channel is
// closed when the connection closes.
func (s *Subscriber) Updates() <-chan string {
	return s.updates
}

// Close closes the connection and, through the read loop, the Updates
// channel.
func (s *Subscriber) Close() error {
	var err error
	s.closeOnce.Do(func() {
		err = s.conn.Close()
	})
	return err
}

// readLoop parses incoming frames and forwards "pub" announcements.
func (s *Subscriber) readLoop() {
	defer close(s.updates)
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			s.logger.Debug("updates connection closed", "error", err)
			return
		}
		msg := strings.TrimSpace(string(data))
		resource, ok := strings.CutPrefix(msg, "pub ")
		if !ok {
			// ack, protocol banner or unknown frame
			continue
		}
		select {
		case s.updates <- resource:
		default:
			s.logger.Warn("dropping update, consumer is behind", "resource", resource)
		}
	}
}
