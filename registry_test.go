package main

import (
	"errors"
	"testing"
)

func TestCreateAndGetRoom(t *testing.T) {
	registry := NewRegistry()
	roomCode, room := registry.CreateRoom("p1")
	if len(roomCode) != 6 {
		t.Errorf("wrong code length expected: 6 got %d", len(roomCode))
	}
	stored, exists := registry.Get(roomCode)
	if !exists || stored != room {
		t.Error("created room not retrievable by its code")
	}
	if players := room.Players(); len(players) != 1 || players[0] != "p1" {
		t.Errorf("wrong initial players: %v", players)
	}
}

func TestJoinRoom(t *testing.T) {
	registry := NewRegistry()
	if _, _, err := registry.Join("NOSUCH", "p2"); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("expected ErrRoomNotFound got: %v", err)
	}
	if _, exists := registry.Get("NOSUCH"); exists {
		t.Error("failed join created a room")
	}

	roomCode, _ := registry.CreateRoom("p1")
	_, players, err := registry.Join(roomCode, "p2")
	if err != nil {
		t.Fatalf("join failed: %v", err)
	}
	if len(players) != 2 || players[0] != "p1" || players[1] != "p2" {
		t.Errorf("wrong players after join: %v", players)
	}
	if _, _, err := registry.Join(roomCode, "p3"); !errors.Is(err, ErrRoomFull) {
		t.Errorf("expected ErrRoomFull got: %v", err)
	}
}

func TestFindByParticipant(t *testing.T) {
	registry := NewRegistry()
	roomCode, room := registry.CreateRoom("p1")

	foundCode, foundRoom, found := registry.FindByParticipant("p1")
	if !found || foundCode != roomCode || foundRoom != room {
		t.Error("participant not found in their room")
	}
	if _, _, found := registry.FindByParticipant("stranger"); found {
		t.Error("found a room for a session that joined nothing")
	}

	registry.Remove(roomCode)
	if _, exists := registry.Get(roomCode); exists {
		t.Error("room still retrievable after Remove")
	}
	if _, _, found := registry.FindByParticipant("p1"); found {
		t.Error("participant scan found a removed room")
	}
}
