package main

import (
	"errors"
	"sync"
)

// SessionID identifies one client connection. Opaque; never parsed.
type SessionID string

var (
	ErrRoomNotFound          = errors.New("room not found")
	ErrRoomFull              = errors.New("room is full")
	ErrGameNotFound          = errors.New("game not found")
	ErrNotInRoom             = errors.New("player not in room")
	ErrInvalidSecret         = errors.New("number must be 4 distinct digits")
	ErrSecretAlreadySet      = errors.New("secret number already set")
	ErrOpponentSecretMissing = errors.New("opponent has not set their secret number yet")
	ErrEmptyChatMessage      = errors.New("empty chat message")
)

const maxPlayers = 2

// Room holds one two-player game. A player's index in players is their
// slot and indexes secrets, attempts and solved. Methods do not lock; the
// caller holds lock across an operation and the broadcasts it produces.
type Room struct {
	Code string
	lock sync.Mutex

	players  []SessionID
	secrets  [maxPlayers]string
	attempts [maxPlayers]int
	solved   [maxPlayers]bool
	finished bool
}

func NewRoom(code string, owner SessionID) *Room {
	return &Room{Code: code, players: []SessionID{owner}}
}

// Players returns a copy of the participant list in join order.
func (r *Room) Players() []SessionID {
	players := make([]SessionID, len(r.players))
	copy(players, r.players)
	return players
}

func (r *Room) slot(id SessionID) int {
	for i, player := range r.players {
		if player == id {
			return i
		}
	}
	return -1
}

func (r *Room) Join(id SessionID) error {
	if len(r.players) >= maxPlayers {
		return ErrRoomFull
	}
	r.players = append(r.players, id)
	return nil
}

// SetSecret records the player's secret. A secret is immutable once set;
// a second attempt is rejected. Reports whether both secrets are now
// present, which happens on exactly one call per room.
func (r *Room) SetSecret(id SessionID, secret string) (allSet bool, err error) {
	slot := r.slot(id)
	if slot == -1 {
		return false, ErrNotInRoom
	}
	if !IsValidCode(secret) {
		return false, ErrInvalidSecret
	}
	if r.secrets[slot] != "" {
		return false, ErrSecretAlreadySet
	}
	r.secrets[slot] = secret
	return r.secrets[0] != "" && r.secrets[1] != "", nil
}

// GuessOutcome is what one accepted guess produced. Finished means both
// players have solved and the room must be deleted by the caller.
type GuessOutcome struct {
	Bulls    int
	Cows     int
	Solved   bool
	Finished bool
	Winner   SessionID
	Attempts [maxPlayers]int
}

// MakeGuess scores a guess against the opponent's secret. Rejected guesses
// do not increment the attempt count. When the guess makes both players
// solved, the winner is the player with fewer attempts, player 1 on a tie.
func (r *Room) MakeGuess(id SessionID, guess string) (GuessOutcome, error) {
	if r.finished {
		// The room is pending deletion; a racing guess must not
		// produce a second game-over.
		return GuessOutcome{}, ErrGameNotFound
	}
	slot := r.slot(id)
	if slot == -1 {
		return GuessOutcome{}, ErrNotInRoom
	}
	if !IsValidCode(guess) {
		return GuessOutcome{}, ErrInvalidSecret
	}
	secret := r.secrets[1-slot]
	if secret == "" {
		return GuessOutcome{}, ErrOpponentSecretMissing
	}
	bulls, cows := Score(secret, guess)
	r.attempts[slot]++
	outcome := GuessOutcome{Bulls: bulls, Cows: cows}
	if bulls == codeDigits {
		r.solved[slot] = true
		outcome.Solved = true
		if r.solved[0] && r.solved[1] {
			r.finished = true
			outcome.Finished = true
			outcome.Attempts = r.attempts
			if r.attempts[0] <= r.attempts[1] {
				outcome.Winner = r.players[0]
			} else {
				outcome.Winner = r.players[1]
			}
		}
	}
	return outcome, nil
}

// RemoveParticipant takes id out of the room. Reports whether id was a
// participant and whether the room is now empty and must be deleted.
func (r *Room) RemoveParticipant(id SessionID) (removed, empty bool) {
	slot := r.slot(id)
	if slot == -1 {
		return false, false
	}
	r.players = append(r.players[:slot], r.players[slot+1:]...)
	return true, len(r.players) == 0
}
