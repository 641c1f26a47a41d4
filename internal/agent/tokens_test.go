package agent

import "testing"

func TestMatchesAny(t *testing.T) {
	if !matchesAny("selam", greetingTokens) {
		t.Fatal("expected selam to match greeting tokens")
	}
	if matchesAny("selam nasilsiniz ustaya", greetingTokens) {
		t.Fatal("matchesAny should require an exact match, not a substring")
	}
}

func TestContainsAny(t *testing.T) {
	phrase, ok := containsAny("istanbuldan her yere yuk ariyorum", herYereTokens)
	if !ok || phrase != "her yere" {
		t.Fatalf("expected to find 'her yere', got %q ok=%v", phrase, ok)
	}
	if _, ok := containsAny("ankara istanbul arasi", herYereTokens); ok {
		t.Fatal("expected no match")
	}
}

func TestContainsProfanity(t *testing.T) {
	if !containsProfanity("siktir git burdan") {
		t.Fatal("expected profanity match")
	}
	if containsProfanity("merhaba nasilsin") {
		t.Fatal("expected no profanity match")
	}
}
