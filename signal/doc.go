// Package signal implements the signaling protocol for peer rendezvous.
//
// The signal package implements:
//   - The wire protocol: a flat JSON envelope with a "type" discriminator
//   - The connection registry mapping connection IDs to transport handles
//   - The message router dispatching inbound messages to handlers
//   - Best-effort fan-out of messages to room members
//
// Message Protocol:
//
// Clients drive the protocol with eight message kinds: create-room and
// join-room establish a pairing under a shared room name; offer, answer,
// and ice-candidate carry opaque negotiation payloads that are relayed
// verbatim to the other room member; toggle-video and toggle-audio
// propagate media state; get-room-info queries room occupancy.
//
// Delivery is at-most-once and fire-and-forget. The router never waits
// for acknowledgment and a peer whose transport is not open simply
// misses the message.
//
// Usage:
//
//	router := signal.NewRouter(room.NewRegistry())
//
//	id := router.Attach(peer)       // transport opened
//	router.Dispatch(id, frame)      // each inbound frame, in order
//	router.Detach(id)               // transport closed
package signal
