package resumes

import (
	"context"
	"time"

	"resume-parser/internal/extract"
	"resume-parser/internal/fields"
	"resume-parser/internal/nlp"
	"resume-parser/internal/shared/metrics"
	"resume-parser/internal/shared/telemetry"
)

// Service runs the parse pipeline: extract text, then match fields.
// The tokenizer is injected by the owning shell.
type Service struct {
	Tokenizer nlp.Tokenizer
}

// NewService constructs a Service.
func NewService(tokenizer nlp.Tokenizer) *Service {
	return &Service{Tokenizer: tokenizer}
}

// Parse extracts text and fields from an in-memory resume document.
// Extraction failure yields a ParsedResume whose only populated field is
// Error; there is no partial-success mode.
func (s *Service) Parse(ctx context.Context, data []byte, fileName string) ParsedResume {
	metrics.IncParseStarted()
	start := time.Now()

	text, err := extract.Text(ctx, data, fileName)
	if err != nil {
		telemetry.Error("parse.extract_failed", map[string]any{
			"file_name": fileName,
			"err":       err.Error(),
		})
		metrics.IncParseFailed()
		return ParsedResume{Error: err.Error()}
	}

	tokens, err := s.Tokenizer.Tokens(text)
	if err != nil {
		telemetry.Error("parse.tokenize_failed", map[string]any{
			"file_name": fileName,
			"err":       err.Error(),
		})
		metrics.IncParseFailed()
		return ParsedResume{Error: err.Error()}
	}

	result := ParsedResume{
		Email:     fields.Email(text),
		Phone:     fields.Phone(text),
		Skills:    fields.Skills(tokens),
		Education: fields.Education(text),
		RawText:   text,
	}

	metrics.IncParseCompleted()
	metrics.ObserveParseDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	telemetry.Info("parse.complete", map[string]any{
		"file_name":   fileName,
		"email_found": result.Email != "",
		"phone_found": result.Phone != "",
		"skill_count": len(result.Skills),
		"text_bytes":  len(result.RawText),
	})
	return result
}
