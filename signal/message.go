package signal

import (
	"encoding/json"

	"github.com/peerhut/rendezvous/room"
)

// Kind is the type discriminator carried by every message.
type Kind string

// Inbound message kinds.
const (
	KindCreateRoom  Kind = "create-room"
	KindJoinRoom    Kind = "join-room"
	KindOffer       Kind = "offer"
	KindAnswer      Kind = "answer"
	KindICE         Kind = "ice-candidate"
	KindToggleVideo Kind = "toggle-video"
	KindToggleAudio Kind = "toggle-audio"
	KindRoomInfo    Kind = "get-room-info"
)

// Outbound message kinds.
const (
	KindRoomCreated Kind = "room-created"
	KindRoomJoined  Kind = "room-joined"
	KindUserJoined  Kind = "user-joined"
	KindVideoToggle Kind = "user-video-toggle"
	KindAudioToggle Kind = "user-audio-toggle"
	KindRoomInfoMsg Kind = "room-info"
	KindUserLeft    Kind = "user-left"
	KindRoomError   Kind = "room-error"
	KindError       Kind = "error"
)

// Envelope is the flat wire format of every inbound message. Only the
// fields relevant to the Type are populated by the sender; the offer,
// answer and candidate payloads are opaque and relayed verbatim.
type Envelope struct {
	Type      Kind            `json:"type"`
	RoomName  string          `json:"roomName,omitempty"`
	UserName  string          `json:"userName,omitempty"`
	Offer     json.RawMessage `json:"offer,omitempty"`
	Answer    json.RawMessage `json:"answer,omitempty"`
	Candidate json.RawMessage `json:"candidate,omitempty"`
	Enabled   bool            `json:"enabled"`
}

// RoomCreated confirms room creation to the creator.
type RoomCreated struct {
	Type     Kind   `json:"type"`
	RoomName string `json:"roomName"`
	UserName string `json:"userName"`
}

// RoomJoined confirms a successful join to the joiner and carries the
// room's full member list.
type RoomJoined struct {
	Type     Kind          `json:"type"`
	RoomName string        `json:"roomName"`
	UserName string        `json:"userName"`
	Users    []room.Member `json:"users"`
}

// UserJoined notifies the existing member that a peer arrived.
type UserJoined struct {
	Type     Kind          `json:"type"`
	UserID   string        `json:"userId"`
	UserName string        `json:"userName"`
	Users    []room.Member `json:"users"`
}

// Relay carries an opaque negotiation payload (offer, answer or ICE
// candidate) to the other room member. Exactly one payload field is set,
// matching the Type.
type Relay struct {
	Type      Kind            `json:"type"`
	Offer     json.RawMessage `json:"offer,omitempty"`
	Answer    json.RawMessage `json:"answer,omitempty"`
	Candidate json.RawMessage `json:"candidate,omitempty"`
	From      string          `json:"from"`
}

// Toggle propagates a peer's media toggle state.
type Toggle struct {
	Type    Kind   `json:"type"`
	UserID  string `json:"userId"`
	Enabled bool   `json:"enabled"`
}

// RoomInfo answers a get-room-info query.
type RoomInfo struct {
	Type Kind `json:"type"`
	room.Info
}

// UserLeft notifies remaining members that a peer disconnected.
type UserLeft struct {
	Type     Kind          `json:"type"`
	UserID   string        `json:"userId"`
	UserName string        `json:"userName"`
	Users    []room.Member `json:"users"`
}

// ErrorReply reports a failure to the sender. Kind is room-error for
// room operation failures and error for malformed envelopes.
type ErrorReply struct {
	Type    Kind   `json:"type"`
	Message string `json:"message"`
}
