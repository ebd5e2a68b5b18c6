package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeAuthLoginFailed, "login failed")

	if err.Code != ErrCodeAuthLoginFailed {
		t.Errorf("expected code %s, got %s", ErrCodeAuthLoginFailed, err.Code)
	}
	if err.Message != "login failed" {
		t.Errorf("expected message 'login failed', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Error("expected nil cause")
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(ErrCodeAPINetwork, "request failed", cause)

	if err.Cause != cause {
		t.Error("expected cause to be preserved")
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to match the wrapped cause")
	}
}

func TestError_Format(t *testing.T) {
	err := New(ErrCodeAuthNotLoggedIn, "not logged in").
		WithSuggestion("Run 'clinbook auth login' to authenticate").
		WithDocs("https://example.com/docs")

	msg := err.Error()

	if !strings.Contains(msg, "[AUTH-002]") {
		t.Errorf("expected error code in message, got: %s", msg)
	}
	if !strings.Contains(msg, "Suggestions:") {
		t.Errorf("expected suggestions section, got: %s", msg)
	}
	if !strings.Contains(msg, "https://example.com/docs") {
		t.Errorf("expected docs URL, got: %s", msg)
	}
}

func TestError_FormatWithCause(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(ErrCodeStoreWriteFailed, "failed to persist session", cause)

	msg := err.Error()
	if !strings.Contains(msg, "disk full") {
		t.Errorf("expected cause in message, got: %s", msg)
	}
}

func TestWithSuggestions(t *testing.T) {
	err := New(ErrCodeConfigInvalid, "bad config").
		WithSuggestions("fix the file", "or delete it")

	if len(err.Suggestions) != 2 {
		t.Errorf("expected 2 suggestions, got %d", len(err.Suggestions))
	}
}

func TestErrorsAs(t *testing.T) {
	var target *ClinbookError
	err := fmt.Errorf("outer: %w", New(ErrCodeAPIServer, "server exploded"))

	if !errors.As(err, &target) {
		t.Fatal("expected errors.As to find ClinbookError")
	}
	if target.Code != ErrCodeAPIServer {
		t.Errorf("expected code %s, got %s", ErrCodeAPIServer, target.Code)
	}
}

func TestCommonConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *ClinbookError
		wantCode ErrorCode
	}{
		{"not logged in", NewNotLoggedInError(), ErrCodeAuthNotLoggedIn},
		{"login failed", NewLoginFailedError("bad password"), ErrCodeAuthLoginFailed},
		{"admin required", NewAdminRequiredError("user management"), ErrCodeAuthForbidden},
		{"config invalid", NewConfigInvalidError("bad yaml", nil), ErrCodeConfigInvalid},
		{"file not found", NewFileNotFoundError("/tmp/missing"), ErrCodeFileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, tt.err.Code)
			}
			if len(tt.err.Suggestions) == 0 {
				t.Error("expected at least one suggestion")
			}
		})
	}
}
