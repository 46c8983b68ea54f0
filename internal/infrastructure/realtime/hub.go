package realtime

import "sync"

// Session is the hub's view of a realtime connection. Connection implements
// it; tests may substitute their own.
type Session interface {
	ID() string
	UserID() int64
	Deliver(payload []byte) error
	Shutdown(code int, reason string)
}

// Hub tracks realtime sessions and their chat-room subscriptions and fans
// committed messages out to every session subscribed to a chat. Membership
// checks happen before Join is called; the hub itself only routes.
type Hub struct {
	mu           sync.RWMutex
	sessions     map[string]Session            // session id -> session
	rooms        map[int64]map[string]Session  // chat id -> session id -> session
	sessionRooms map[string]map[int64]struct{} // session id -> chat ids
}

func NewHub() *Hub {
	return &Hub{
		sessions:     make(map[string]Session),
		rooms:        make(map[int64]map[string]Session),
		sessionRooms: make(map[string]map[int64]struct{}),
	}
}

// Attach registers a session with the hub.
func (h *Hub) Attach(s Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions[s.ID()] = s
}

// Detach removes a session and all its room subscriptions.
func (h *Hub) Detach(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.sessions, sessionID)
	for chatID := range h.sessionRooms[sessionID] {
		h.leaveLocked(chatID, sessionID)
	}
	delete(h.sessionRooms, sessionID)
}

// Join subscribes the session to a chat room.
func (h *Hub) Join(chatID int64, s Session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.sessions[s.ID()]; !ok {
		return
	}
	room := h.rooms[chatID]
	if room == nil {
		room = make(map[string]Session)
		h.rooms[chatID] = room
	}
	room[s.ID()] = s

	subs := h.sessionRooms[s.ID()]
	if subs == nil {
		subs = make(map[int64]struct{})
		h.sessionRooms[s.ID()] = subs
	}
	subs[chatID] = struct{}{}
}

// Leave unsubscribes the session from a chat room.
func (h *Hub) Leave(chatID int64, sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.leaveLocked(chatID, sessionID)
}

// Broadcast delivers payload to every session subscribed to the chat and
// returns the number of sessions reached. Delivery failures drop the session
// from the room; the persisted message is the source of truth.
func (h *Hub) Broadcast(chatID int64, payload []byte) int {
	h.mu.RLock()
	room := h.rooms[chatID]
	targets := make([]Session, 0, len(room))
	for _, s := range room {
		targets = append(targets, s)
	}
	h.mu.RUnlock()

	delivered := 0
	for _, s := range targets {
		if err := s.Deliver(payload); err != nil {
			h.Detach(s.ID())
			continue
		}
		delivered++
	}
	return delivered
}

// Close terminates all tracked sessions and clears hub state.
func (h *Hub) Close() {
	h.mu.Lock()
	sessions := make([]Session, 0, len(h.sessions))
	for _, s := range h.sessions {
		sessions = append(sessions, s)
	}
	h.sessions = make(map[string]Session)
	h.rooms = make(map[int64]map[string]Session)
	h.sessionRooms = make(map[string]map[int64]struct{})
	h.mu.Unlock()

	for _, s := range sessions {
		s.Shutdown(1001, "hub shutdown")
	}
}

func (h *Hub) leaveLocked(chatID int64, sessionID string) {
	room := h.rooms[chatID]
	if room == nil {
		return
	}
	delete(room, sessionID)
	if len(room) == 0 {
		delete(h.rooms, chatID)
	}
	if subs, ok := h.sessionRooms[sessionID]; ok {
		delete(subs, chatID)
		if len(subs) == 0 {
			delete(h.sessionRooms, sessionID)
		}
	}
}
