package main

import (
	"strings"
	"sync"
)

// Gateway binds live connections to rooms: it dispatches each inbound
// command to the owning room and delivers the resulting events to every
// participant. Validation failures go back to the sender only.
type Gateway struct {
	registry *Registry
	sessions map[SessionID]*Client
	lock     sync.RWMutex
}

func NewGateway(registry *Registry) *Gateway {
	return &Gateway{registry: registry, sessions: make(map[SessionID]*Client)}
}

// Register makes c reachable for broadcasts. A resumed session replaces
// the previous client under the same id.
func (g *Gateway) Register(c *Client) {
	g.lock.Lock()
	defer g.lock.Unlock()
	g.sessions[c.session] = c
}

// Teardown handles a closed connection: the session is unregistered and
// removed from its room, deleting the room when it empties out. Safe to
// call twice for the same client; the second call is a no-op. A client
// superseded by a resumed session does not tear the session down.
func (g *Gateway) Teardown(c *Client) {
	g.lock.Lock()
	if g.sessions[c.session] != c {
		g.lock.Unlock()
		return
	}
	delete(g.sessions, c.session)
	g.lock.Unlock()

	roomCode, room, found := g.registry.FindByParticipant(c.session)
	if !found {
		return
	}
	room.lock.Lock()
	removed, empty := room.RemoveParticipant(c.session)
	players := room.Players()
	if empty {
		g.registry.Remove(roomCode)
	}
	room.lock.Unlock()
	if !removed {
		return
	}
	if empty {
		LogRemovingRoom(roomCode)
		return
	}
	g.broadcast(players, NewPlayerLeftMessage(c.session))
}

func (g *Gateway) Handle(c *Client, command any) {
	switch m := command.(type) {
	case CreateRoomCommand:
		g.handleCreateRoom(c)
	case JoinRoomCommand:
		g.handleJoinRoom(c, m)
	case SetSecretCommand:
		g.handleSetSecret(c, m)
	case MakeGuessCommand:
		g.handleMakeGuess(c, m)
	case ChatCommand:
		g.handleChat(c, m)
	}
}

func (g *Gateway) handleCreateRoom(c *Client) {
	roomCode, _ := g.registry.CreateRoom(c.session)
	c.SendRoomCreated(roomCode)
	LogCreatedRoom(roomCode, c.session)
}

func (g *Gateway) handleJoinRoom(c *Client, m JoinRoomCommand) {
	roomCode := normalizeRoomCode(m.RoomCode)
	_, players, err := g.registry.Join(roomCode, c.session)
	if err != nil {
		c.SendJoinError(err.Error())
		return
	}
	LogJoinedRoom(roomCode, c.session)
	g.broadcast(players, NewGameStartMessage(players, roomCode))
}

func (g *Gateway) handleSetSecret(c *Client, m SetSecretCommand) {
	room, exists := g.registry.Get(normalizeRoomCode(m.RoomCode))
	if !exists {
		c.SendError(ErrGameNotFound.Error())
		return
	}
	room.lock.Lock()
	allSet, err := room.SetSecret(c.session, m.SecretNumber)
	players := room.Players()
	room.lock.Unlock()
	if err != nil {
		c.SendError(err.Error())
		return
	}
	if allSet {
		g.broadcast(players, NewAllSecretsSetMessage())
	}
}

func (g *Gateway) handleMakeGuess(c *Client, m MakeGuessCommand) {
	roomCode := normalizeRoomCode(m.RoomCode)
	room, exists := g.registry.Get(roomCode)
	if !exists {
		c.SendError(ErrGameNotFound.Error())
		return
	}
	room.lock.Lock()
	outcome, err := room.MakeGuess(c.session, m.Guess)
	players := room.Players()
	if err == nil && outcome.Finished {
		g.registry.Remove(roomCode)
	}
	room.lock.Unlock()
	if err != nil {
		c.SendError(err.Error())
		return
	}
	g.broadcast(players, NewGuessMadeMessage(c.session, m.Guess, outcome.Bulls, outcome.Cows))
	if outcome.Finished {
		g.broadcast(players, NewGameOverMessage(outcome.Winner, outcome.Attempts))
		LogGameOver(roomCode, outcome.Winner)
	} else if outcome.Solved {
		g.broadcast(players, NewPlayerGuessedCorrectlyMessage(c.session))
	}
}

func (g *Gateway) handleChat(c *Client, m ChatCommand) {
	if strings.TrimSpace(m.Message) == "" {
		c.SendError(ErrEmptyChatMessage.Error())
		return
	}
	room, exists := g.registry.Get(normalizeRoomCode(m.RoomCode))
	if !exists {
		c.SendError(ErrGameNotFound.Error())
		return
	}
	room.lock.Lock()
	players := room.Players()
	room.lock.Unlock()
	g.broadcast(players, NewChatRelayMessage(c.session, m.Message))
}

// broadcast is fire-and-forget: a failed write is logged and the
// connection's own read loop deals with the broken socket.
func (g *Gateway) broadcast(players []SessionID, message any) {
	for _, id := range players {
		g.lock.RLock()
		c, online := g.sessions[id]
		g.lock.RUnlock()
		if !online {
			continue
		}
		if err := c.Send(message); err != nil {
			LogBroadcastFailed(err, id)
		}
	}
}

func normalizeRoomCode(roomCode string) string {
	return strings.ToUpper(roomCode)
}
