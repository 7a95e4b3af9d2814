package nlp

import (
	"testing"
)

func TestProseTokenizerSplitsPunctuation(t *testing.T) {
	tokenizer, err := NewProseTokenizer()
	if err != nil {
		t.Fatalf("new tokenizer: %v", err)
	}

	tokens, err := tokenizer.Tokens("I know Python, Java and Docker.")
	if err != nil {
		t.Fatalf("tokens: %v", err)
	}

	seen := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		seen[tok] = true
	}
	for _, want := range []string{"Python", "Java", "Docker"} {
		if !seen[want] {
			t.Fatalf("expected token %q in %v", want, tokens)
		}
	}
	if seen["Docker."] {
		t.Fatalf("trailing punctuation should be split from token: %v", tokens)
	}
}

func TestProseTokenizerEmptyText(t *testing.T) {
	tokenizer, err := NewProseTokenizer()
	if err != nil {
		t.Fatalf("new tokenizer: %v", err)
	}
	tokens, err := tokenizer.Tokens("")
	if err != nil {
		t.Fatalf("tokens: %v", err)
	}
	if len(tokens) != 0 {
		t.Fatalf("expected no tokens, got %v", tokens)
	}
}
