package password_test

import (
	"errors"
	"testing"

	"campusbook/shared/password"
)

func TestHash(t *testing.T) {
	t.Run("valid password produces a verifiable hash", func(t *testing.T) {
		hash, err := password.Hash("validPassword123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if hash == "" || hash == "validPassword123" {
			t.Errorf("expected a non-empty hash distinct from the input, got %s", hash)
		}

		if err := password.Verify("validPassword123", hash); err != nil {
			t.Errorf("expected hash to verify, got %v", err)
		}
	})

	t.Run("empty password is rejected", func(t *testing.T) {
		if _, err := password.Hash(""); err == nil {
			t.Error("expected an error for an empty password")
		}
	})

	t.Run("hashing is salted", func(t *testing.T) {
		first, err := password.Hash("samePassword")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		second, err := password.Hash("samePassword")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if first == second {
			t.Error("expected two hashes of the same password to differ")
		}
	})
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("correctPassword")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name        string
		password    string
		hash        string
		expectedErr error
	}{
		{
			name:        "correct password",
			password:    "correctPassword",
			hash:        hash,
			expectedErr: nil,
		},
		{
			name:        "wrong password",
			password:    "wrongPassword",
			hash:        hash,
			expectedErr: password.ErrInvalidPassword,
		},
		{
			name:        "empty password",
			password:    "",
			hash:        hash,
			expectedErr: password.ErrInvalidPassword,
		},
		{
			name:        "empty hash",
			password:    "correctPassword",
			hash:        "",
			expectedErr: password.ErrInvalidPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.expectedErr == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
			} else if !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected %v, got %v", tt.expectedErr, err)
			}
		})
	}
}
