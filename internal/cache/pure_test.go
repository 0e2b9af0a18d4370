package cache

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHashIP_Deterministic(t *testing.T) {
	t.Parallel()

	ip := "192.168.1.100"

	hash1 := hashIP(ip)
	hash2 := hashIP(ip)

	if hash1 != hash2 {
		t.Error("Same IP should produce same hash")
	}
}

func TestHashIP_Length(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ip   string
	}{
		{"IPv4", "192.168.1.1"},
		{"IPv4 localhost", "127.0.0.1"},
		{"IPv6 localhost", "::1"},
		{"IPv6 full", "2001:0db8:85a3:0000:0000:8a2e:0370:7334"},
		{"empty", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hash := hashIP(tt.ip)
			// hashIP uses first 8 bytes of SHA256, encoded as 16 hex chars
			if len(hash) != 16 {
				t.Errorf("hashIP(%q) length = %d, want 16", tt.ip, len(hash))
			}
		})
	}
}

func TestHashIP_Different(t *testing.T) {
	t.Parallel()

	hash1 := hashIP("10.0.0.1")
	hash2 := hashIP("10.0.0.2")

	if hash1 == hash2 {
		t.Error("Different IPs should produce different hashes")
	}
}

func TestCachedProfile_NeverCarriesHash(t *testing.T) {
	t.Parallel()

	cached := CachedProfile{
		ID:        "user-1",
		Name:      "Alice",
		Email:     "a@x.com",
		CreatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(cached)
	if err != nil {
		t.Fatalf("marshal cached profile: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unmarshal cached profile: %v", err)
	}

	if _, ok := fields["password_hash"]; ok {
		t.Error("cached profile must not contain a password hash field")
	}
}
