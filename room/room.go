package room

import "time"

// MaxMembers is the hard capacity of every room. Rooms exist to pair
// exactly two peers for a direct connection.
const MaxMembers = 2

// Member is one participant of a room.
type Member struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
}

// Room is a named rendezvous point for up to two peers.
type Room struct {
	// Name is the caller-supplied key. Room existence and the key are
	// the same thing; there is no separate existence flag.
	Name string

	// CreatorID is the connection that created the room.
	CreatorID string

	// CreatedAt is when the room was created.
	CreatedAt time.Time

	// Members is the ordered member list, creator first.
	Members []Member
}

// Info describes a room for the get-room-info query. MemberCount and
// MaxMembers are only populated when the room exists.
type Info struct {
	Exists      bool `json:"exists"`
	MemberCount int  `json:"memberCount,omitempty"`
	MaxMembers  int  `json:"maxMembers,omitempty"`
}

// user is a directory entry for a live connection.
type user struct {
	name     string
	roomName string
}
