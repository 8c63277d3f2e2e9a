package signal

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/peerhut/rendezvous/room"
)

// Router is the protocol state machine. It owns the connection registry,
// dispatches decoded inbound messages to their handlers, and fans
// replies out to room members.
//
// Router methods are synchronous. Each connection's transport calls
// Dispatch from a single goroutine, so messages from one connection are
// handled in arrival order; the registries are internally locked, so
// connections do not need to coordinate with each other.
type Router struct {
	conns *Conns
	rooms *room.Registry
}

// NewRouter creates a router over the given room registry.
func NewRouter(rooms *room.Registry) *Router {
	return &Router{
		conns: NewConns(),
		rooms: rooms,
	}
}

// Rooms exposes the room registry.
func (r *Router) Rooms() *room.Registry { return r.rooms }

// Conns exposes the connection registry.
func (r *Router) Conns() *Conns { return r.conns }

// Attach registers a newly opened transport and returns its connection
// ID. A connection starts out unbound; it acquires a room only through
// a successful create-room or join-room.
func (r *Router) Attach(p Peer) string {
	id := r.conns.Add(p)
	log.Printf("Connection attached: %s", id)
	return id
}

// Detach handles a closed transport. If the connection was in a room it
// is removed from it, the room is torn down when it empties, and any
// remaining member is told the peer left. The connection entry is
// removed unconditionally. Called once per transport lifecycle.
func (r *Router) Detach(id string) {
	userName, _ := r.rooms.UserName(id)

	if roomName, remaining, ok := r.rooms.Leave(id); ok {
		log.Printf("Connection %s left room %s (%d remaining)", id, roomName, len(remaining))
		if len(remaining) > 0 {
			r.SendToRoom(roomName, &UserLeft{
				Type:     KindUserLeft,
				UserID:   id,
				UserName: userName,
				Users:    remaining,
			}, id)
		}
	}

	r.conns.Remove(id)
	log.Printf("Connection detached: %s", id)
}

// Dispatch decodes one inbound frame from the given connection and
// routes it. Unparseable frames earn an error reply and the connection
// stays open; unknown kinds are logged and ignored.
func (r *Router) Dispatch(id string, frame []byte) {
	var env Envelope
	if err := json.Unmarshal(frame, &env); err != nil {
		log.Printf("Invalid message from %s: %v", id, err)
		r.reply(id, &ErrorReply{Type: KindError, Message: "Invalid message format"})
		return
	}

	switch env.Type {
	case KindCreateRoom:
		r.handleCreateRoom(id, &env)
	case KindJoinRoom:
		r.handleJoinRoom(id, &env)
	case KindOffer:
		r.relay(id, env.RoomName, &Relay{Type: KindOffer, Offer: env.Offer, From: id})
	case KindAnswer:
		r.relay(id, env.RoomName, &Relay{Type: KindAnswer, Answer: env.Answer, From: id})
	case KindICE:
		r.relay(id, env.RoomName, &Relay{Type: KindICE, Candidate: env.Candidate, From: id})
	case KindToggleVideo:
		r.relay(id, env.RoomName, &Toggle{Type: KindVideoToggle, UserID: id, Enabled: env.Enabled})
	case KindToggleAudio:
		r.relay(id, env.RoomName, &Toggle{Type: KindAudioToggle, UserID: id, Enabled: env.Enabled})
	case KindRoomInfo:
		r.reply(id, &RoomInfo{Type: KindRoomInfoMsg, Info: r.rooms.Info(env.RoomName)})
	default:
		log.Printf("Unknown message type %q from %s", env.Type, id)
	}
}

func (r *Router) handleCreateRoom(id string, env *Envelope) {
	if _, err := r.rooms.Create(env.RoomName, id, env.UserName); err != nil {
		r.replyRoomError(id, err)
		return
	}

	log.Printf("Room created: %s by %s (%s)", env.RoomName, env.UserName, id)
	r.reply(id, &RoomCreated{
		Type:     KindRoomCreated,
		RoomName: env.RoomName,
		UserName: env.UserName,
	})
}

func (r *Router) handleJoinRoom(id string, env *Envelope) {
	members, err := r.rooms.Join(env.RoomName, id, env.UserName)
	if err != nil {
		r.replyRoomError(id, err)
		return
	}

	log.Printf("Room joined: %s by %s (%s)", env.RoomName, env.UserName, id)
	r.reply(id, &RoomJoined{
		Type:     KindRoomJoined,
		RoomName: env.RoomName,
		UserName: env.UserName,
		Users:    members,
	})
	r.SendToRoom(env.RoomName, &UserJoined{
		Type:     KindUserJoined,
		UserID:   id,
		UserName: env.UserName,
		Users:    members,
	}, id)
}

// relay forwards a message to the other members of the named room. The
// room name is taken from the sender as-is, without checking that the
// sender is a member; that matches the historical protocol contract.
func (r *Router) relay(id, roomName string, msg any) {
	r.SendToRoom(roomName, msg, id)
}

// SendToRoom delivers msg to every current member of the named room
// except excludeID. Members whose transport is gone are skipped; there
// is no queueing and no retry.
func (r *Router) SendToRoom(roomName string, msg any, excludeID string) {
	for _, m := range r.rooms.Members(roomName) {
		if m.UserID == excludeID {
			continue
		}
		if p, ok := r.conns.Get(m.UserID); ok {
			p.Send(msg)
		}
	}
}

// reply sends a message back to the originating connection.
func (r *Router) reply(id string, msg any) {
	if p, ok := r.conns.Get(id); ok {
		p.Send(msg)
	}
}

func (r *Router) replyRoomError(id string, err error) {
	log.Printf("Room operation failed for %s: %v", id, err)
	r.reply(id, &ErrorReply{Type: KindRoomError, Message: roomErrorMessage(err)})
}

// roomErrorMessage maps registry failures to the protocol's error
// strings.
func roomErrorMessage(err error) string {
	switch {
	case errors.Is(err, room.ErrRoomExists):
		return "Room already exists"
	case errors.Is(err, room.ErrRoomNotFound):
		return "Room not found"
	case errors.Is(err, room.ErrRoomFull):
		return "Room is full"
	default:
		return err.Error()
	}
}
