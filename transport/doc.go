// Package transport defines the sink boundary to the radio stack.
//
// The radio itself (connection establishment, characteristic writes,
// MTU negotiation) lives outside this module. A stack integrates by
// implementing Sink: IsReady reports link-up with notifications
// enabled, Send pushes one transport-sized frame.
//
// MemorySink is the test double: it records every frame and lets tests
// toggle readiness to simulate link loss mid-transfer. WSSink streams
// frames to a desktop client over a websocket for host-side
// development, honoring the same bounded-payload contract as the
// radio.
package transport
