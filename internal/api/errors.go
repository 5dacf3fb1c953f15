package api

import (
	"encoding/json"
	"sort"
	"strings"

	"storefront/internal/domain"
)

// Error is a failed backend call reduced to a single human-readable message,
// the way the slices surface it. kind carries a domain sentinel for the two
// auth cases screens branch on.
type Error struct {
	StatusCode int
	Message    string
	kind       error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.kind }

type errorBody struct {
	Message string              `json:"message"`
	Title   string              `json:"title"`
	Errors  map[string][]string `json:"errors"`
}

func newError(status int, raw []byte) *Error {
	msg := messageFromBody(raw)
	if msg == "" {
		msg = "request failed"
	}
	return &Error{StatusCode: status, Message: msg, kind: classify(msg)}
}

// messageFromBody extracts a display message in priority order: body
// `message`, then `title`, then a flattened validation-errors map, then the
// raw body text.
func messageFromBody(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		if m := strings.TrimSpace(body.Message); m != "" {
			return m
		}
		if t := strings.TrimSpace(body.Title); t != "" {
			return t
		}
		if len(body.Errors) > 0 {
			return flattenValidation(body.Errors)
		}
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return strings.TrimSpace(asString)
	}
	return strings.TrimSpace(string(raw))
}

func flattenValidation(errs map[string][]string) string {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var parts []string
	for _, k := range keys {
		parts = append(parts, errs[k]...)
	}
	return strings.Join(parts, ", ")
}

// classify sniffs the two auth cases screens special-case. Keyword matching
// on backend wording is brittle but it is the contract we have.
func classify(msg string) error {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "confirm") && strings.Contains(lower, "email"):
		return domain.ErrEmailNotConfirmed
	case strings.Contains(lower, "invalid") && (strings.Contains(lower, "credential") || strings.Contains(lower, "password")):
		return domain.ErrInvalidCredentials
	}
	return nil
}
