package main

import (
	"encoding/json"
	"errors"
	"net"
	"sync"

	"github.com/gobwas/ws/wsutil"
)

var ErrUnknownCommand = errors.New("unknown command")

// Client wraps one websocket connection. Sends may come from the reader
// goroutine and from broadcasts triggered by the other player, so writes
// are serialized by a lock.
type Client struct {
	conn    net.Conn
	session SessionID
	lock    sync.Mutex
}

func NewClient(conn net.Conn, session SessionID) *Client {
	return &Client{conn: conn, session: session}
}

func (c *Client) Session() SessionID {
	return c.session
}

func (c *Client) Send(message any) error {
	encoded, _ := json.Marshal(message)
	c.lock.Lock()
	defer c.lock.Unlock()
	return wsutil.WriteServerText(c.conn, encoded)
}

func (c *Client) SendSession(resumeKey string) error {
	return c.Send(SessionMessage{Type: "session", ID: c.session, ResumeKey: resumeKey})
}

func (c *Client) SendRoomCreated(roomCode string) error {
	return c.Send(RoomCreatedMessage{Type: "room-created", RoomCode: roomCode})
}

func (c *Client) SendJoinError(text string) error {
	return c.Send(JoinErrorMessage{Type: "join-error", Error: text})
}

func (c *Client) SendError(text string) error {
	return c.Send(ErrorMessage{Type: "error", Error: text})
}

// ReadCommand blocks for the next client frame and returns one of the
// command structs from messages.go. ErrUnknownCommand is recoverable; any
// other error means the connection is gone.
func (c *Client) ReadCommand() (any, error) {
	msg, err := wsutil.ReadClientText(c.conn)
	if err != nil {
		return nil, err
	}
	message := UnmarshalJSON[struct {
		Type string `json:"type"`
	}](msg)
	var command any
	switch message.Type {
	case "create-room":
		command = CreateRoomCommand{}
	case "join-room":
		command = UnmarshalJSON[JoinRoomCommand](msg)
	case "set-secret":
		command = UnmarshalJSON[SetSecretCommand](msg)
	case "make-guess":
		command = UnmarshalJSON[MakeGuessCommand](msg)
	case "chat-message":
		command = UnmarshalJSON[ChatCommand](msg)
	default:
		return nil, ErrUnknownCommand
	}
	return command, nil
}
