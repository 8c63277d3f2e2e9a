// Package websocket provides the WebSocket transport for the signaling
// router.
//
// Each connection gets two goroutines: a read pump that feeds inbound
// frames to the router in arrival order, and a write pump that drains a
// buffered send channel. All reads happen on the read pump and all
// writes on the write pump, as gorilla/websocket requires.
//
// Outbound delivery is best-effort. Send marshals the message and drops
// it silently when the connection is closing or its send buffer is
// full; the protocol has no acknowledgment or retry.
//
// Connection Lifecycle:
//
//  1. HTTP request upgraded to a WebSocket
//  2. Connection attached to the router (gets its connection ID)
//  3. Frames dispatched until the socket closes or errors
//  4. Router detach tears down room membership and notifies the peer
package websocket
