package room

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrRoomExists   = errors.New("room already exists")
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomFull     = errors.New("room is full")
)

// Registry owns all active rooms and the user directory. One lock covers
// both maps so create/join/leave are each atomic.
type Registry struct {
	rooms map[string]*Room
	users map[string]*user
	mu    sync.RWMutex
}

// NewRegistry creates an empty room registry.
func NewRegistry() *Registry {
	return &Registry{
		rooms: make(map[string]*Room),
		users: make(map[string]*user),
	}
}

// Create creates a room with the given name and the creator as its sole
// member. It fails with ErrRoomExists if the name is already taken.
func (reg *Registry) Create(name, connID, userName string) (*Room, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if _, ok := reg.rooms[name]; ok {
		return nil, ErrRoomExists
	}

	// A connection is in at most one room; creating a new room ends any
	// old membership first.
	reg.leaveLocked(connID)

	r := &Room{
		Name:      name,
		CreatorID: connID,
		CreatedAt: time.Now(),
		Members:   []Member{{UserID: connID, UserName: userName}},
	}
	reg.rooms[name] = r
	reg.users[connID] = &user{name: userName, roomName: name}

	return r, nil
}

// Join adds a member to an existing room and returns the room's full
// member list. It fails with ErrRoomNotFound if no room has that name,
// or ErrRoomFull if the room already holds MaxMembers members.
func (reg *Registry) Join(name, connID, userName string) ([]Member, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	r, ok := reg.rooms[name]
	if !ok {
		return nil, ErrRoomNotFound
	}

	// Joining the room the connection is already in just refreshes the
	// display name; it must not count against capacity or tear the room
	// down.
	if u, bound := reg.users[connID]; bound && u.roomName == name {
		for i := range r.Members {
			if r.Members[i].UserID == connID {
				r.Members[i].UserName = userName
			}
		}
		u.name = userName
		return append([]Member(nil), r.Members...), nil
	}

	if len(r.Members) >= MaxMembers {
		return nil, ErrRoomFull
	}

	// A connection is in at most one room; joining a new room ends any
	// old membership first.
	reg.leaveLocked(connID)

	r.Members = append(r.Members, Member{UserID: connID, UserName: userName})
	reg.users[connID] = &user{name: userName, roomName: name}

	return append([]Member(nil), r.Members...), nil
}

// Leave removes the connection from whatever room it is in. It returns
// the room name and the members remaining after removal, so the caller
// can notify them. ok is false when the connection had no room. The room
// is deleted the instant its member count reaches zero; the directory
// entry is removed unconditionally.
func (reg *Registry) Leave(connID string) (roomName string, remaining []Member, ok bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	return reg.leaveLocked(connID)
}

// leaveLocked removes the connection's membership and directory entry,
// tearing the room down when it empties. Caller holds the lock.
func (reg *Registry) leaveLocked(connID string) (roomName string, remaining []Member, ok bool) {
	u, found := reg.users[connID]
	if !found {
		return "", nil, false
	}
	delete(reg.users, connID)

	r, found := reg.rooms[u.roomName]
	if !found {
		return "", nil, false
	}

	members := r.Members[:0]
	for _, m := range r.Members {
		if m.UserID != connID {
			members = append(members, m)
		}
	}
	r.Members = members

	if len(r.Members) == 0 {
		delete(reg.rooms, r.Name)
	}

	return r.Name, append([]Member(nil), r.Members...), true
}

// Members returns a copy of the current member list of a room, or nil if
// the room does not exist.
func (reg *Registry) Members(name string) []Member {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	r, ok := reg.rooms[name]
	if !ok {
		return nil
	}
	return append([]Member(nil), r.Members...)
}

// UserName returns the display name recorded for a connection.
func (reg *Registry) UserName(connID string) (string, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	u, ok := reg.users[connID]
	if !ok {
		return "", false
	}
	return u.name, true
}

// Info reports whether a room exists and how full it is.
func (reg *Registry) Info(name string) Info {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	r, ok := reg.rooms[name]
	if !ok {
		return Info{Exists: false}
	}
	return Info{
		Exists:      true,
		MemberCount: len(r.Members),
		MaxMembers:  MaxMembers,
	}
}

// Count returns the number of active rooms.
func (reg *Registry) Count() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.rooms)
}
