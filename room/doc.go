// Package room tracks named rendezvous rooms and their members.
//
// The room package implements:
//   - Room lifecycle (create, join, leave, automatic teardown)
//   - The user directory mapping connections to their profile and room
//   - Capacity enforcement (rooms pair exactly two peers)
//
// Rooms are keyed by a caller-supplied name. Names are matched exactly:
// no case folding, no trimming. A room always comes into existence with
// its creator as the sole member and is deleted the moment its last
// member leaves, so an empty room is never observable.
//
// A connection belongs to at most one room at a time. The Registry owns
// both the room table and the user directory under a single lock, so
// every operation is atomic with respect to the others.
//
// Usage:
//
//	reg := room.NewRegistry()
//
//	r, err := reg.Create("r1", connID, "Alice")
//	members, err := reg.Join("r1", otherID, "Bob")
//	name, remaining, ok := reg.Leave(otherID)
package room
