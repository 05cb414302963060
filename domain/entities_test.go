package domain

import (
	"strconv"
	"testing"
)

func TestNewVerificationCode(t *testing.T) {
	seen := map[string]bool{}

	for i := 0; i < 200; i++ {
		code, err := NewVerificationCode()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(code) != VerificationCodeLength {
			t.Fatalf("expected %d digits, got %q", VerificationCodeLength, code)
		}
		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("code %q is not numeric: %v", code, err)
		}
		if n < 10000 || n > 99999 {
			t.Fatalf("code %d out of range", n)
		}
		seen[code] = true
	}

	// A constant code would mean the factory was evaluated once
	if len(seen) < 2 {
		t.Error("expected distinct codes across constructions")
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name          string
		password      string
		expectedError error
	}{
		{
			name:          "valid password",
			password:      "abc12345",
			expectedError: nil,
		},
		{
			name:          "too short",
			password:      "ab1",
			expectedError: ErrPasswordTooShort,
		},
		{
			name:          "exactly seven characters with digit",
			password:      "abcdef1",
			expectedError: ErrPasswordTooShort,
		},
		{
			name:          "long enough but no digit",
			password:      "abcdefgh",
			expectedError: ErrPasswordNoDigit,
		},
		{
			name:          "digit at the end",
			password:      "abcdefg9",
			expectedError: nil,
		},
		{
			name:          "empty",
			password:      "",
			expectedError: ErrPasswordTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if err != tt.expectedError {
				t.Errorf("expected error %v, got %v", tt.expectedError, err)
			}
		})
	}
}
