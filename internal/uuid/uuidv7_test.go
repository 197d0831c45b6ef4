package uuid

import (
	"regexp"
	"testing"

	googleuuid "github.com/google/uuid"
)

func TestNew_IsVersion7(t *testing.T) {
	id := New()

	parsed, err := googleuuid.Parse(id)
	if err != nil {
		t.Fatalf("expected valid UUID, got %q: %v", id, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
}

func TestNew_TimeOrdered(t *testing.T) {
	prev := New()
	for i := 0; i < 50; i++ {
		next := New()
		if next <= prev {
			t.Fatalf("expected %q > %q", next, prev)
		}
		prev = next
	}
}

func TestNewReferralCode(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9A-F]{10}$`)
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		code := NewReferralCode()
		if !pattern.MatchString(code) {
			t.Fatalf("unexpected referral code format %q", code)
		}
		seen[code] = true
	}
	if len(seen) < 100 {
		t.Errorf("expected 100 distinct codes, got %d", len(seen))
	}
}

func TestParseAndIsValid(t *testing.T) {
	if IsValid("not-a-uuid") {
		t.Error("expected invalid UUID to be rejected")
	}

	id := New()
	parsed, err := Parse(id)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if parsed != id {
		t.Errorf("expected %q, got %q", id, parsed)
	}
}
