package utils

import (
	"strings"
	"testing"
)

func TestNewBoardingCodeFormat(t *testing.T) {
	code := NewBoardingCode()
	if !strings.HasPrefix(code, "RES-") {
		t.Fatalf("expected RES- prefix, got %s", code)
	}
	if len(code) != 10 {
		t.Fatalf("expected 10 chars, got %d (%s)", len(code), code)
	}
	for _, r := range code[4:] {
		if !strings.ContainsRune(codeAlphabet, r) {
			t.Fatalf("character %q outside alphabet in %s", r, code)
		}
	}
}

func TestNewBoardingCodeVaries(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[NewBoardingCode()] = true
	}
	if len(seen) < 2 {
		t.Fatal("50 generated codes were all identical")
	}
}

func TestLooksLikeEmail(t *testing.T) {
	valid := []string{"ana@example.com", " a@b.c "}
	for _, s := range valid {
		if !LooksLikeEmail(s) {
			t.Fatalf("expected %q to be accepted", s)
		}
	}
	invalid := []string{"", "@example.com", "ana@", "ana", "a@@b"}
	for _, s := range invalid {
		if LooksLikeEmail(s) {
			t.Fatalf("expected %q to be rejected", s)
		}
	}
}

func TestNormalizeSpace(t *testing.T) {
	if got := NormalizeSpace("  Ana   María  "); got != "Ana María" {
		t.Fatalf("got %q", got)
	}
}
