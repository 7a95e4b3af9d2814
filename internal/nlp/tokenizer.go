// Package nlp wraps linguistic tokenization behind a small interface so the
// parser service receives it as an injected dependency.
package nlp

import (
	"fmt"

	"github.com/jdkato/prose/v2"
)

// Tokenizer produces linguistic tokens from free text.
type Tokenizer interface {
	Tokens(text string) ([]string, error)
}

// ProseTokenizer implements Tokenizer on top of the prose English model.
// It is stateless after construction and safe to share across requests.
type ProseTokenizer struct{}

// NewProseTokenizer constructs the tokenizer and runs a probe tokenization
// so a missing or broken model surfaces at startup, not mid-request.
func NewProseTokenizer() (*ProseTokenizer, error) {
	t := &ProseTokenizer{}
	if _, err := t.Tokens("probe"); err != nil {
		return nil, fmt.Errorf("tokenizer model unavailable: %w", err)
	}
	return t, nil
}

// Tokens splits text into linguistic tokens.
func (t *ProseTokenizer) Tokens(text string) ([]string, error) {
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}
	tokens := doc.Tokens()
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Text)
	}
	return out, nil
}
