package service

import (
	"strings"
	"testing"
)

func TestIsManagedURL(t *testing.T) {
	s := NewUploadService(t.TempDir(), 0)

	cases := []struct {
		url  string
		want bool
	}{
		{"/uploads/photo.png", true},
		{"  /uploads/photo.png", true},
		{"https://cdn.example.com/photo.png", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := s.IsManagedURL(tc.url); got != tc.want {
			t.Fatalf("IsManagedURL(%q) = %v, want %v", tc.url, got, tc.want)
		}
	}
}

func TestEnsureInitialAvatarReusesFile(t *testing.T) {
	s := NewUploadService(t.TempDir(), 0)

	first, err := s.EnsureInitialAvatar("Jane")
	if err != nil {
		t.Fatalf("EnsureInitialAvatar: %v", err)
	}
	if !strings.HasPrefix(first, "/uploads/avatar-initial-j") {
		t.Fatalf("got %q", first)
	}

	second, err := s.EnsureInitialAvatar("jason")
	if err != nil {
		t.Fatalf("EnsureInitialAvatar: %v", err)
	}
	if first != second {
		t.Fatalf("same initial must reuse the image: %q vs %q", first, second)
	}

	if !s.IsInitialAvatar(first) {
		t.Fatal("generated avatar not recognised")
	}
}

func TestEnsureInitialAvatarEmptyName(t *testing.T) {
	s := NewUploadService(t.TempDir(), 0)

	url, err := s.EnsureInitialAvatar("   ")
	if err != nil {
		t.Fatalf("EnsureInitialAvatar: %v", err)
	}
	if url != "" {
		t.Fatalf("expected no avatar for blank name, got %q", url)
	}
}

func TestResolveInitialNonASCII(t *testing.T) {
	glyph, key := resolveInitial("Žana")
	if glyph != "Ž" {
		t.Fatalf("got glyph %q", glyph)
	}
	if !strings.HasPrefix(key, "u") {
		t.Fatalf("non-ascii initials need a codepoint key, got %q", key)
	}
}
