package transport

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// WSSink serves one websocket client and forwards frames to it as
// binary messages. It stands in for the radio stack during host-side
// development: a paired desktop client connects, and the sink reports
// ready only while that connection is alive.
//
// Like the radio, it accepts one peer at a time; a second client is
// rejected until the first disconnects.
type WSSink struct {
	// MaxPayload bounds accepted frames, matching the simulated
	// negotiated MTU; zero means unbounded.
	MaxPayload int

	log      logrus.FieldLogger
	upgrader websocket.Upgrader

	mu   sync.Mutex
	conn *websocket.Conn
}

// NewWSSink creates a sink with no client attached.
func NewWSSink(maxPayload int, log logrus.FieldLogger) *WSSink {
	if log == nil {
		log = logrus.New()
	}
	return &WSSink{
		MaxPayload: maxPayload,
		log:        log,
		upgrader: websocket.Upgrader{
			// Local development tool: accept any origin.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the request and attaches the client. Implements
// http.Handler so the simulator can mount it directly.
func (w *WSSink) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	w.mu.Lock()
	busy := w.conn != nil
	w.mu.Unlock()
	if busy {
		http.Error(rw, "client already attached", http.StatusConflict)
		return
	}

	conn, err := w.upgrader.Upgrade(rw, r, nil)
	if err != nil {
		w.log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	w.mu.Lock()
	w.conn = conn
	w.mu.Unlock()
	w.log.WithField("remote", conn.RemoteAddr().String()).Info("client attached")

	// Drain reads to observe the close; the pendant protocol is
	// one-way on this channel.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				w.detach(conn)
				return
			}
		}
	}()
}

// IsReady implements Sink.
func (w *WSSink) IsReady() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn != nil
}

// Send implements Sink, forwarding the frame as one binary message.
// A write failure detaches the client, flipping IsReady to false so
// the connection monitor aborts in-flight sessions.
func (w *WSSink) Send(frame []byte) error {
	if w.MaxPayload > 0 && len(frame) > w.MaxPayload {
		return ErrPayloadTooLarge
	}

	w.mu.Lock()
	conn := w.conn
	w.mu.Unlock()
	if conn == nil {
		return ErrNotReady
	}

	if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
		w.detach(conn)
		return err
	}
	return nil
}

// Close detaches any client.
func (w *WSSink) Close() {
	w.mu.Lock()
	conn := w.conn
	w.conn = nil
	w.mu.Unlock()
	if conn != nil {
		conn.Close()
	}
}

func (w *WSSink) detach(conn *websocket.Conn) {
	w.mu.Lock()
	if w.conn == conn {
		w.conn = nil
	}
	w.mu.Unlock()
	conn.Close()
	w.log.Info("client detached")
}
