package session

import (
	"testing"
	"time"
)

func TestTokenCodecRoundTrip(t *testing.T) {
	codec := NewTokenCodec("test-secret-key", time.Hour)

	token, err := codec.Encode("session-123")
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	sessionID, err := codec.Decode(token)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if sessionID != "session-123" {
		t.Fatalf("session id want session-123 got %s", sessionID)
	}
}

func TestTokenCodecRejectsWrongSecret(t *testing.T) {
	codec := NewTokenCodec("test-secret-key", time.Hour)
	other := NewTokenCodec("another-secret-key", time.Hour)

	token, err := codec.Encode("session-123")
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if _, err := other.Decode(token); err == nil {
		t.Fatalf("token signed with other secret should be rejected")
	}
}

func TestTokenCodecRejectsGarbage(t *testing.T) {
	codec := NewTokenCodec("test-secret-key", time.Hour)

	if _, err := codec.Decode("not-a-token"); err == nil {
		t.Fatalf("garbage token should be rejected")
	}

	token, err := codec.Encode("session-123")
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	tampered := token[:len(token)-2] + "xx"
	if _, err := codec.Decode(tampered); err == nil {
		t.Fatalf("tampered token should be rejected")
	}
}

func TestTokenCodecRejectsEmptySessionID(t *testing.T) {
	codec := NewTokenCodec("test-secret-key", time.Hour)

	token, err := codec.Encode("")
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if _, err := codec.Decode(token); err == nil {
		t.Fatalf("token without session id should be rejected")
	}
}
