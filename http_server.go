package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/gobwas/ws"
	"github.com/google/uuid"
)

type HTTPHandler struct {
	Registry *Registry
	Gateway  *Gateway
	Sessions *SessionJWT
}

func NewHTTPServer(registry *Registry, gateway *Gateway, sessions *SessionJWT) http.Handler {
	httpHandler := HTTPHandler{registry, gateway, sessions}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET"},
		AllowCredentials: false,
	}))
	r.Use(middleware.RealIP)
	r.Use(httprate.Limit(60, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP, httprate.KeyByEndpoint)))
	r.Use(middleware.Heartbeat("/"))

	r.Get("/ws", httpHandler.websocket())
	r.Get("/room/{roomCode}", httpHandler.getRoomInfo())
	return r
}

func (h HTTPHandler) websocket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resumeKey := r.URL.Query().Get("resumeKey")
		conn, _, _, err := ws.UpgradeHTTP(r, w)
		if err != nil {
			LogErrorWhileUpgradingHTTP(err)
			return
		}
		defer conn.Close()

		session := h.Sessions.SessionFromResumeKey(resumeKey)
		resumed := session != ""
		if !resumed {
			session = SessionID(uuid.NewString())
		}
		client := NewClient(conn, session)

		key, err := h.Sessions.GenerateResumeKey(session)
		if err != nil {
			return
		}
		if err := client.SendSession(key); err != nil {
			return
		}

		h.Gateway.Register(client)
		defer h.Gateway.Teardown(client)
		logger := GetSessionLogger(r.RemoteAddr, session)
		if resumed {
			logger.Resumed()
		} else {
			logger.Connected()
		}

		for {
			command, err := client.ReadCommand()
			if err != nil {
				if errors.Is(err, ErrUnknownCommand) {
					client.SendError(ErrUnknownCommand.Error())
					continue
				}
				logger.Disconnected()
				break
			}
			h.Gateway.Handle(client, command)
		}
	}
}

// Advisory pre-join lookup; the websocket join is still authoritative.
func (h HTTPHandler) getRoomInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roomCode := normalizeRoomCode(chi.URLParam(r, "roomCode"))
		room, exists := h.Registry.Get(roomCode)
		if !exists {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		room.lock.Lock()
		players := len(room.Players())
		room.lock.Unlock()
		w.Header().Set("Content-Type", "application/json")
		encoded, _ := json.Marshal(map[string]any{"roomCode": roomCode, "players": players})
		w.Write(encoded)
	}
}
