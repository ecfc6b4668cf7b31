// Package generator produces schema-shaped candidate service requests from
// an opaque text-generation backend.
package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"autointake/models"
)

// ParseError reports backend output that could not be reduced to one valid
// JSON object.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse generated record: %s: %v", e.Reason, e.Err)
	}
	return "parse generated record: " + e.Reason
}

func (e *ParseError) Unwrap() error { return e.Err }

// Service turns a free-text backend into a candidate record source.
type Service struct {
	Client TextGenerator
}

func NewService(client TextGenerator) *Service {
	return &Service{Client: client}
}

// GenerateRequest asks the backend for one record and parses it. The result
// is a syntactic candidate only; strict validation is the orchestrator's
// job, after overrides are applied.
func (s *Service) GenerateRequest(ctx context.Context) (models.ServiceRequest, error) {
	var rec models.ServiceRequest

	text, err := s.Client.GenerateText(ctx, BuildPrompt())
	if err != nil {
		return rec, fmt.Errorf("generation backend: %w", err)
	}
	return ParseRecord(text)
}

// ParseRecord reduces raw backend output to a ServiceRequest. Output not
// starting with "{" (fenced code blocks, stray prose) is searched for its
// first top-level JSON object by brace matching.
func ParseRecord(text string) (models.ServiceRequest, error) {
	var rec models.ServiceRequest

	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "{") {
		obj, ok := extractObject(text)
		if !ok {
			return rec, &ParseError{Reason: "no JSON object in backend output"}
		}
		text = obj
	}

	if err := json.Unmarshal([]byte(text), &rec); err != nil {
		return rec, &ParseError{Reason: "invalid JSON from backend", Err: err}
	}
	return rec, nil
}

// extractObject returns the first balanced top-level {...} in s. Braces
// inside JSON strings are not counted.
func extractObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
