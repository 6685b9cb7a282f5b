package main

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const resumeKeyLifetime = time.Minute * 2

// SessionJWT issues and verifies resume keys: signed proof of a session
// id that lets a reconnecting client keep its identity. Purely a
// transport convenience; no game state is replayed on resume.
type SessionJWT struct {
	jwtSecret string
}

func NewSessionJWT(jwtSecret string) *SessionJWT {
	return &SessionJWT{jwtSecret}
}

func (s SessionJWT) GenerateResumeKey(session SessionID) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"session": string(session), "exp": jwt.NewNumericDate(time.Now().Add(resumeKeyLifetime))})
	return token.SignedString([]byte(s.jwtSecret))
}

// SessionFromResumeKey returns the session id carried by a valid resume
// key, or "" for a missing, expired or tampered one.
func (s SessionJWT) SessionFromResumeKey(tokenString string) SessionID {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	session, ok := claims["session"].(string)
	if !ok {
		return ""
	}
	return SessionID(session)
}
