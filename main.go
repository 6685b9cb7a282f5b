package main

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

func main() {
	config := MustLoadConfig()
	registry := NewRegistry()
	gateway := NewGateway(registry)
	sessions := NewSessionJWT(config.JwtSecret)
	handler := NewHTTPServer(registry, gateway, sessions)

	LogStartedServer(config.Port)
	if err := http.ListenAndServe(":"+config.Port, handler); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
