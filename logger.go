package main

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}

type SessionLogger struct {
	zerolog zerolog.Logger
}

func GetSessionLogger(ip string, session SessionID) SessionLogger {
	return SessionLogger{log.With().Str("ip", ip).Str("session", string(session)).Logger()}
}

func (l SessionLogger) Connected() {
	l.zerolog.Info().Msg("Connected")
}

func (l SessionLogger) Resumed() {
	l.zerolog.Info().Msg("Resumed session")
}

func (l SessionLogger) Disconnected() {
	l.zerolog.Info().Msg("Disconnected")
}

func LogCreatedRoom(roomCode string, session SessionID) {
	log.Info().Str("room-code", roomCode).Str("session", string(session)).Msg("Created room")
}

func LogJoinedRoom(roomCode string, session SessionID) {
	log.Info().Str("room-code", roomCode).Str("session", string(session)).Msg("Joined room")
}

func LogGameOver(roomCode string, winner SessionID) {
	log.Info().Str("room-code", roomCode).Str("winner", string(winner)).Msg("Game over")
}

func LogRemovingRoom(roomCode string) {
	log.Info().Str("room-code", roomCode).Msg("Removing room")
}

func LogBroadcastFailed(err error, session SessionID) {
	log.Error().Err(err).Str("session", string(session)).Msg("Broadcast failed")
}

func LogStartedServer(port string) {
	log.Info().Msgf("Starting server on port %v", port)
}

func LogErrorWhileUpgradingHTTP(err error) {
	log.Error().Err(err).Msg("Error while upgrading HTTP")
}
