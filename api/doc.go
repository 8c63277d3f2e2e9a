// Package api provides the HTTP surface of the signaling server: the
// WebSocket endpoint, a liveness probe, and the cross-origin policy.
//
// Routes:
//   - GET /health — liveness probe returning a fixed status document
//   - /ws — WebSocket upgrade for the signaling protocol
//
// Cross-origin access is restricted to a single configured origin. The
// same origin gates both the CORS response headers and the WebSocket
// upgrade check; "*" opens access for development.
package api
