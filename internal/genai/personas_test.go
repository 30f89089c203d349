package genai

import "testing"

func TestResolvePersona(t *testing.T) {
	for _, key := range []string{"coach", "mindful", "drill"} {
		p := ResolvePersona(key)
		if p.Key != key {
			t.Errorf("ResolvePersona(%q).Key = %q", key, p.Key)
		}
	}

	if p := ResolvePersona("unknown"); p.Key != DefaultPersonaKey {
		t.Errorf("unknown persona resolved to %q, want %q", p.Key, DefaultPersonaKey)
	}
	if p := ResolvePersona(""); p.Key != DefaultPersonaKey {
		t.Errorf("empty persona resolved to %q, want %q", p.Key, DefaultPersonaKey)
	}
}

func TestResolveLength(t *testing.T) {
	for _, key := range []string{"short", "medium", "long"} {
		l := ResolveLength(key)
		if l.Key != key {
			t.Errorf("ResolveLength(%q).Key = %q", key, l.Key)
		}
	}

	if l := ResolveLength("epic"); l.Key != DefaultLengthKey {
		t.Errorf("unknown length resolved to %q, want %q", l.Key, DefaultLengthKey)
	}
}

func TestKnownCatalogs(t *testing.T) {
	if !KnownPersona("coach") || KnownPersona("zen") {
		t.Error("KnownPersona misclassified a key")
	}
	if !KnownLength("long") || KnownLength("huge") {
		t.Error("KnownLength misclassified a key")
	}
}
