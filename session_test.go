package main

import "testing"

func TestResumeKeyRoundTrip(t *testing.T) {
	sessions := NewSessionJWT("test-secret")
	key, err := sessions.GenerateResumeKey("p1")
	if err != nil {
		t.Fatalf("generating resume key failed: %v", err)
	}
	if got := sessions.SessionFromResumeKey(key); got != "p1" {
		t.Errorf("wrong session expected: p1 got: %v", got)
	}
}

func TestResumeKeyRejection(t *testing.T) {
	sessions := NewSessionJWT("test-secret")
	if got := sessions.SessionFromResumeKey("not-a-token"); got != "" {
		t.Errorf("garbage token resolved to session %q", got)
	}
	if got := sessions.SessionFromResumeKey(""); got != "" {
		t.Errorf("empty token resolved to session %q", got)
	}

	other := NewSessionJWT("other-secret")
	key, _ := other.GenerateResumeKey("p1")
	if got := sessions.SessionFromResumeKey(key); got != "" {
		t.Errorf("foreign-signed token resolved to session %q", got)
	}
}
