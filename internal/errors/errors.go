package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Auth/session errors (AUTH-001 to AUTH-099)
	ErrCodeAuthLoginFailed    ErrorCode = "AUTH-001"
	ErrCodeAuthNotLoggedIn    ErrorCode = "AUTH-002"
	ErrCodeAuthSessionInvalid ErrorCode = "AUTH-003"
	ErrCodeAuthTokenMalformed ErrorCode = "AUTH-004"
	ErrCodeAuthRoleUnknown    ErrorCode = "AUTH-005"
	ErrCodeAuthForbidden      ErrorCode = "AUTH-006"

	// Credential store errors (STORE-001 to STORE-099)
	ErrCodeStoreWriteFailed ErrorCode = "STORE-001"
	ErrCodeStoreClearFailed ErrorCode = "STORE-002"

	// API errors (API-001 to API-099)
	ErrCodeAPINetwork      ErrorCode = "API-001"
	ErrCodeAPIClient       ErrorCode = "API-002"
	ErrCodeAPIUnauthorized ErrorCode = "API-003"
	ErrCodeAPIServer       ErrorCode = "API-004"
	ErrCodeAPIDecode       ErrorCode = "API-005"

	// Navigation errors (NAV-001 to NAV-099)
	ErrCodeNavIllegalTransition ErrorCode = "NAV-001"
	ErrCodeNavAlreadyBooted     ErrorCode = "NAV-002"

	// Configuration errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigInvalid ErrorCode = "CONFIG-001"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileNotFound    ErrorCode = "IO-001"
	ErrCodeFileReadFailed  ErrorCode = "IO-002"
	ErrCodeFileWriteFailed ErrorCode = "IO-003"
	ErrCodeDirectoryFailed ErrorCode = "IO-004"
	ErrCodeFileUnmarshal   ErrorCode = "IO-005"
	ErrCodeFileMarshal     ErrorCode = "IO-006"
)

// ClinbookError represents an enhanced error with code, suggestions, and documentation
type ClinbookError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	DocsURL     string
	Cause       error
}

// Error implements the error interface
func (e *ClinbookError) Error() string {
	var b strings.Builder

	// Error code and message
	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	// Add cause if present
	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	// Add suggestions
	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	// Add documentation link
	if e.DocsURL != "" {
		b.WriteString(fmt.Sprintf("\n\nDocumentation: %s", e.DocsURL))
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *ClinbookError) Unwrap() error {
	return e.Cause
}

// New creates a new ClinbookError
func New(code ErrorCode, message string) *ClinbookError {
	return &ClinbookError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new ClinbookError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *ClinbookError {
	return &ClinbookError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *ClinbookError) WithSuggestion(suggestion string) *ClinbookError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *ClinbookError) WithSuggestions(suggestions ...string) *ClinbookError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithDocs adds a documentation URL to the error
func (e *ClinbookError) WithDocs(url string) *ClinbookError {
	e.DocsURL = url
	return e
}

// Common error constructors for frequently used errors

// NewNotLoggedInError creates an error for operations that require a session
func NewNotLoggedInError() *ClinbookError {
	return New(ErrCodeAuthNotLoggedIn, "not logged in").
		WithSuggestion("Run 'clinbook auth login' to authenticate").
		WithSuggestion("Run 'clinbook auth register' if you don't have an account yet")
}

// NewLoginFailedError creates a login failure error
func NewLoginFailedError(details string) *ClinbookError {
	return New(ErrCodeAuthLoginFailed, fmt.Sprintf("login failed: %s", details)).
		WithSuggestion("Check your email and password").
		WithSuggestion("Run 'clinbook auth register' if you don't have an account yet")
}

// NewAdminRequiredError creates an error for admin-only operations
func NewAdminRequiredError(operation string) *ClinbookError {
	return New(ErrCodeAuthForbidden, fmt.Sprintf("administrator role required for: %s", operation)).
		WithSuggestion("Log in with an administrator account").
		WithSuggestion("Run 'clinbook auth status' to see your current role")
}

// NewConfigInvalidError creates a configuration validation error
func NewConfigInvalidError(details string, cause error) *ClinbookError {
	return Wrap(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", details), cause).
		WithSuggestion("Check ~/.clinbook/config.yaml for syntax errors").
		WithSuggestion("Run 'clinbook config init' to regenerate a default configuration")
}

// NewFileNotFoundError creates a file not found error
func NewFileNotFoundError(path string) *ClinbookError {
	return New(ErrCodeFileNotFound, fmt.Sprintf("file not found: %s", path)).
		WithSuggestion("Check if the file path is correct").
		WithSuggestion("Verify the file exists and you have read permissions")
}

// NewFileUnmarshalError creates an unmarshal error
func NewFileUnmarshalError(path string, format string, cause error) *ClinbookError {
	return Wrap(ErrCodeFileUnmarshal, fmt.Sprintf("failed to parse %s file: %s", format, path), cause).
		WithSuggestion("Check the file syntax and format").
		WithSuggestion(fmt.Sprintf("Ensure the file is valid %s", format))
}
