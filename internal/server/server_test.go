package server

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"donut-tell-me/internal/config"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		expect string
	}{
		{"normal short name", "Alice", "Alice"},
		{"exactly 16 bytes", "1234567890123456", "1234567890123456"},
		{"long name truncated", "ThisIsAVeryLongUsername", "ThisIsAVeryLongU"},
		{"control chars stripped", "he\x00ll\x1bo", "hello"},
		{"ansi escape partial", "he\x1b[31mllo", "he[31mllo"},
		{"empty input", "", ""},
		{"pure control chars", "\x00\x01\x02\x1b", ""},
		{"multi-byte runes kept whole", "日本語のテスト", "日本語のテ"},
		{"emoji kept whole", "🍩Baker🍩Donut", "🍩Baker🍩Don"},
		{"tabs stripped", "hello\tworld", "helloworld"},
		{"newlines stripped", "hello\nworld", "helloworld"},
		{"spaces stripped", "jo smith", "josmith"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := sanitizeName(tc.input)
			if got != tc.expect {
				t.Errorf("sanitizeName(%q) = %q, want %q", tc.input, got, tc.expect)
			}
			if len(got) > maxNameBytes {
				t.Errorf("sanitizeName(%q) is %d bytes; max %d", tc.input, len(got), maxNameBytes)
			}
		})
	}
}

func TestLoadOrCreateHostKeyPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")

	first, err := loadOrCreateHostKey(path, zap.NewNop())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("host key not written: %v", err)
	}
	second, err := loadOrCreateHostKey(path, zap.NewNop())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !bytes.Equal(first.PublicKey().Marshal(), second.PublicKey().Marshal()) {
		t.Fatal("reloaded host key differs from the generated one")
	}
}

func TestLoadOrCreateHostKeyReplacesGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")
	if err := os.WriteFile(path, []byte("not a key"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := loadOrCreateHostKey(path, zap.NewNop()); err != nil {
		t.Fatalf("garbage key file should be replaced, got %v", err)
	}
}

func TestAdmitEnforcesMaxSessions(t *testing.T) {
	s := &Server{
		opts:    Options{Config: config.ServerConfig{MaxSessions: 2}},
		limiter: rate.NewLimiter(rate.Inf, 1),
	}

	r1, _ := s.admit()
	r2, _ := s.admit()
	if r1 == nil || r2 == nil {
		t.Fatal("first two sessions should be admitted")
	}
	if r3, reason := s.admit(); r3 != nil || reason == "" {
		t.Fatal("third session should be refused while two are active")
	}
	r1()
	if r4, _ := s.admit(); r4 == nil {
		t.Fatal("a slot should free up after release")
	}
}

func TestAdmitRateLimited(t *testing.T) {
	s := &Server{
		opts:    Options{Config: config.ServerConfig{MaxSessions: 100}},
		limiter: rate.NewLimiter(rate.Limit(0.001), 1),
	}
	if r, _ := s.admit(); r == nil {
		t.Fatal("burst should admit the first connection")
	}
	if r, reason := s.admit(); r != nil || reason == "" {
		t.Fatal("second immediate connection should be rate limited")
	}
}
