package password_test

import (
	"errors"
	"strings"
	"testing"

	"tm30/shared/password"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		expectError bool
	}{
		{
			name:        "valid password",
			password:    "validPassword123",
			expectError: false,
		},
		{
			name:        "empty password",
			password:    "",
			expectError: true,
		},
		{
			name:        "password with special characters",
			password:    "P@ssw0rd!#$%^&*()",
			expectError: false,
		},
		{
			name:        "password longer than bcrypt's 72 byte limit",
			password:    strings.Repeat("a", 100),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)

			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				if hash != "" {
					t.Errorf("expected empty hash when error occurs, got %s", hash)
				}

				return
			}

			if err != nil {
				t.Errorf("expected no error, got %v", err)
			}
			if !strings.HasPrefix(hash, "$2a$") && !strings.HasPrefix(hash, "$2b$") && !strings.HasPrefix(hash, "$2y$") {
				t.Errorf("expected bcrypt hash format, got %s", hash)
			}
			if err := password.Verify(tt.password, hash); err != nil {
				t.Errorf("expected verification to succeed, got error: %v", err)
			}
		})
	}
}

func TestVerify(t *testing.T) {
	validHash, err := password.Hash("testPassword123")
	if err != nil {
		t.Fatalf("failed to create test hash: %v", err)
	}

	tests := []struct {
		name          string
		password      string
		hash          string
		expectedError error
	}{
		{
			name:     "valid password and hash",
			password: "testPassword123",
			hash:     validHash,
		},
		{
			name:          "wrong password",
			password:      "wrongPassword",
			hash:          validHash,
			expectedError: password.ErrInvalidPassword,
		},
		{
			name:          "empty password",
			password:      "",
			hash:          validHash,
			expectedError: password.ErrInvalidPassword,
		},
		{
			name:          "empty hash",
			password:      "testPassword123",
			hash:          "",
			expectedError: password.ErrInvalidPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.expectedError == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}

				return
			}

			if !errors.Is(err, tt.expectedError) {
				t.Errorf("expected error %v, got %v", tt.expectedError, err)
			}
		})
	}

	t.Run("malformed hash", func(t *testing.T) {
		if err := password.Verify("testPassword123", "not_a_bcrypt_hash"); err == nil {
			t.Error("expected error for malformed hash, got nil")
		}
	})
}

func TestHashUsesSalt(t *testing.T) {
	first, err := password.Hash("samePassword")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	second, err := password.Hash("samePassword")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	if first == second {
		t.Errorf("expected different hashes for the same password, got identical: %s", first)
	}

	if err := password.Verify("samePassword", first); err != nil {
		t.Errorf("failed to verify first hash: %v", err)
	}
	if err := password.Verify("samePassword", second); err != nil {
		t.Errorf("failed to verify second hash: %v", err)
	}
}
