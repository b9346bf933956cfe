package transmit

import (
	"github.com/sirupsen/logrus"

	"github.com/e7canasta/pendant-core/transmit/internal/session"
	"github.com/e7canasta/pendant-core/transport"
	"github.com/e7canasta/pendant-core/wire"
)

// NewSession creates an idle session for one stream type over a
// transport with the given maximum payload.
func NewSession(typ byte, transportMax int, releaser Releaser, sink transport.Sink, log logrus.FieldLogger) *Session {
	return session.NewSession(typ, transportMax, releaser, sink, log)
}

// NewSet creates the photo and video sessions over one sink, in the
// photo-first service order.
func NewSet(transportMax int, photoReleaser, videoReleaser Releaser, sink transport.Sink, log logrus.FieldLogger) *Set {
	return session.NewSet(
		session.NewSession(wire.TypePhoto, transportMax, photoReleaser, sink, log),
		session.NewSession(wire.TypeVideo, transportMax, videoReleaser, sink, log),
	)
}
