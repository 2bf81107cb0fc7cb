package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidSchema, "link %d: missing %q attribute", 3, "from")

	if err.Code != ErrCodeInvalidSchema {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidSchema)
	}

	if err.Message != `link 3: missing "from" attribute` {
		t.Errorf("Message = %v", err.Message)
	}

	expected := `INVALID_SCHEMA: link 3: missing "from" attribute`
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeIORead, cause, "open network.xml")

	if err.Code != ErrCodeIORead {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeIORead)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeUnknownNode, "test"),
			code:     ErrCodeUnknownNode,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeUnknownNode, "test"),
			code:     ErrCodeNumeric,
			expected: false,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			code:     ErrCodeUnknownNode,
			expected: false,
		},
		{
			name:     "wrapped structured error",
			err:      fmt.Errorf("context: %w", New(ErrCodeNumeric, "test")),
			code:     ErrCodeNumeric,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeIOWrite, "test")); got != ErrCodeIOWrite {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeIOWrite)
	}
	if got := GetCode(errors.New("plain")); got != Code("") {
		t.Errorf("GetCode() = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeNumeric, "zero freespeed on link 2->3")
	if got := UserMessage(err); got != "zero freespeed on link 2->3" {
		t.Errorf("UserMessage() = %v", got)
	}

	plain := errors.New("plain error")
	if got := UserMessage(plain); got != "plain error" {
		t.Errorf("UserMessage() = %v", got)
	}
}
