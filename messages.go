package main

// Inbound commands. Each client text frame carries a "type" field naming
// the command; the rest of the frame is the payload.

type CreateRoomCommand struct{}

type JoinRoomCommand struct {
	RoomCode string `json:"roomCode"`
}

type SetSecretCommand struct {
	RoomCode     string `json:"roomCode"`
	SecretNumber string `json:"secretNumber"`
}

type MakeGuessCommand struct {
	RoomCode string `json:"roomCode"`
	Guess    string `json:"guess"`
}

type ChatCommand struct {
	RoomCode string `json:"roomCode"`
	Message  string `json:"message"`
}

// Outbound events.

type SessionMessage struct {
	Type      string    `json:"type"`
	ID        SessionID `json:"id"`
	ResumeKey string    `json:"resumeKey"`
}

type RoomCreatedMessage struct {
	Type     string `json:"type"`
	RoomCode string `json:"roomCode"`
}

type GameStartMessage struct {
	Type     string      `json:"type"`
	Players  []SessionID `json:"players"`
	RoomCode string      `json:"roomCode"`
}

type AllSecretsSetMessage struct {
	Type string `json:"type"`
}

type GuessMadeMessage struct {
	Type   string    `json:"type"`
	Player SessionID `json:"player"`
	Guess  string    `json:"guess"`
	Bulls  int       `json:"bulls"`
	Cows   int       `json:"cows"`
}

type PlayerGuessedCorrectlyMessage struct {
	Type   string    `json:"type"`
	Player SessionID `json:"player"`
}

type GameOverMessage struct {
	Type            string    `json:"type"`
	Winner          SessionID `json:"winner"`
	Player1Attempts int       `json:"player1Attempts"`
	Player2Attempts int       `json:"player2Attempts"`
}

type PlayerLeftMessage struct {
	Type   string    `json:"type"`
	Player SessionID `json:"player"`
}

type ChatRelayMessage struct {
	Type    string    `json:"type"`
	Sender  SessionID `json:"sender"`
	Message string    `json:"message"`
}

type JoinErrorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

type ErrorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

func NewGameStartMessage(players []SessionID, roomCode string) GameStartMessage {
	return GameStartMessage{Type: "game-start", Players: players, RoomCode: roomCode}
}

func NewAllSecretsSetMessage() AllSecretsSetMessage {
	return AllSecretsSetMessage{Type: "all-secrets-set"}
}

func NewGuessMadeMessage(player SessionID, guess string, bulls, cows int) GuessMadeMessage {
	return GuessMadeMessage{Type: "guess-made", Player: player, Guess: guess, Bulls: bulls, Cows: cows}
}

func NewPlayerGuessedCorrectlyMessage(player SessionID) PlayerGuessedCorrectlyMessage {
	return PlayerGuessedCorrectlyMessage{Type: "player-guessed-correctly", Player: player}
}

func NewGameOverMessage(winner SessionID, attempts [maxPlayers]int) GameOverMessage {
	return GameOverMessage{Type: "game-over", Winner: winner, Player1Attempts: attempts[0], Player2Attempts: attempts[1]}
}

func NewPlayerLeftMessage(player SessionID) PlayerLeftMessage {
	return PlayerLeftMessage{Type: "player-left", Player: player}
}

func NewChatRelayMessage(sender SessionID, message string) ChatRelayMessage {
	return ChatRelayMessage{Type: "chat-message", Sender: sender, Message: message}
}
