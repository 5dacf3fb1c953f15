package api

import (
	"errors"
	"testing"

	"storefront/internal/domain"
)

func TestMessageFromBodyPriority(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"message wins over title", `{"message":"Bad cart","title":"Error"}`, "Bad cart"},
		{"title when no message", `{"title":"One or more validation errors occurred."}`, "One or more validation errors occurred."},
		{
			"validation map flattened in key order",
			`{"errors":{"password":["Password too short"],"email":["Email is required","Email is invalid"]}}`,
			"Email is required, Email is invalid, Password too short",
		},
		{"json string body", `"Service unavailable"`, "Service unavailable"},
		{"raw text fallback", `upstream timeout`, "upstream timeout"},
		{"whitespace trimmed", `{"message":"  spaced  "}`, "spaced"},
	}
	for _, tc := range cases {
		if got := messageFromBody([]byte(tc.raw)); got != tc.want {
			t.Fatalf("%s: got %q want %q", tc.name, got, tc.want)
		}
	}
}

func TestNewErrorEmptyBody(t *testing.T) {
	err := newError(502, nil)
	if err.Message != "request failed" {
		t.Fatalf("empty body: got %q", err.Message)
	}
	if err.StatusCode != 502 {
		t.Fatalf("status: got %d", err.StatusCode)
	}
}

func TestClassifyAuthSentinels(t *testing.T) {
	confirm := newError(401, []byte(`{"message":"Please confirm your email address before signing in"}`))
	if !errors.Is(confirm, domain.ErrEmailNotConfirmed) {
		t.Fatalf("confirmation message not classified")
	}

	creds := newError(401, []byte(`{"message":"Invalid credentials"}`))
	if !errors.Is(creds, domain.ErrInvalidCredentials) {
		t.Fatalf("credentials message not classified")
	}

	password := newError(400, []byte(`{"message":"Invalid password"}`))
	if !errors.Is(password, domain.ErrInvalidCredentials) {
		t.Fatalf("password wording not classified")
	}

	plain := newError(500, []byte(`{"message":"Something went wrong"}`))
	if errors.Is(plain, domain.ErrInvalidCredentials) || errors.Is(plain, domain.ErrEmailNotConfirmed) {
		t.Fatalf("generic message wrongly classified")
	}
}
