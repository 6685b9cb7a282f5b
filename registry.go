package main

import (
	"bullscows/code"
	"sync"
)

// Registry owns every live Room, keyed by room code.
type Registry struct {
	rooms map[string]*Room
	lock  sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{rooms: make(map[string]*Room)}
}

// CreateRoom generates an unused code and stores a fresh room with owner
// as its first player.
func (s *Registry) CreateRoom(owner SessionID) (string, *Room) {
	s.lock.Lock()
	defer s.lock.Unlock()
	var roomCode string
	for {
		roomCode = code.GenerateRandom()
		if _, exists := s.rooms[roomCode]; !exists {
			break
		}
	}
	room := NewRoom(roomCode, owner)
	s.rooms[roomCode] = room
	return roomCode, room
}

// Join appends joiner to the room's player list, failing with
// ErrRoomNotFound or ErrRoomFull. The returned player list is a snapshot
// taken under the room lock, safe to broadcast with.
func (s *Registry) Join(roomCode string, joiner SessionID) (*Room, []SessionID, error) {
	room, exists := s.Get(roomCode)
	if !exists {
		return nil, nil, ErrRoomNotFound
	}
	room.lock.Lock()
	defer room.lock.Unlock()
	if err := room.Join(joiner); err != nil {
		return nil, nil, err
	}
	return room, room.Players(), nil
}

func (s *Registry) Get(roomCode string) (*Room, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	room, exists := s.rooms[roomCode]
	return room, exists
}

func (s *Registry) Remove(roomCode string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	delete(s.rooms, roomCode)
}

// FindByParticipant scans for the room holding id. Used on disconnect,
// where only the session is known. Rooms are snapshotted first so no room
// lock is taken while the registry lock is held.
func (s *Registry) FindByParticipant(id SessionID) (string, *Room, bool) {
	s.lock.RLock()
	rooms := make([]*Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		rooms = append(rooms, room)
	}
	s.lock.RUnlock()
	for _, room := range rooms {
		room.lock.Lock()
		found := room.slot(id) != -1
		room.lock.Unlock()
		if found {
			return room.Code, room, true
		}
	}
	return "", nil, false
}
