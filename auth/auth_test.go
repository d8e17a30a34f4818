// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestGenerateAdminKey(t *testing.T) {
	tests := []struct {
		name  string
		scope string
		salt  string
	}{
		{"standard", ScopeDebug, "secret-salt"},
		{"empty scope", "", "salt"},
		{"empty salt", ScopeDebug, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := GenerateAdminKey(tt.scope, tt.salt)

			// Should not be empty
			if key == "" {
				t.Error("GenerateAdminKey() returned empty string")
			}

			// Should be deterministic
			key2 := GenerateAdminKey(tt.scope, tt.salt)
			if key != key2 {
				t.Error("GenerateAdminKey() is not deterministic")
			}

			// URL-safe, no padding
			if strings.ContainsAny(key, "+/=") {
				t.Errorf("GenerateAdminKey() is not URL-safe: %s", key)
			}

			// Different inputs should produce different keys
			if tt.salt != "" {
				differentKey := GenerateAdminKey(tt.scope+"x", tt.salt)
				if key == differentKey {
					t.Error("GenerateAdminKey() produced same key for different scopes")
				}
			}
		})
	}
}

func TestValidateAdminKey(t *testing.T) {
	salt := "test-salt"
	valid := GenerateAdminKey(ScopeDebug, salt)

	tests := []struct {
		name    string
		scope   string
		key     string
		salt    string
		wantErr error
	}{
		{"valid key", ScopeDebug, valid, salt, nil},
		{"wrong key", ScopeDebug, "not-the-key", salt, ErrInvalidAdminKey},
		{"empty key", ScopeDebug, "", salt, ErrInvalidAdminKey},
		{"wrong scope", "other", valid, salt, ErrInvalidAdminKey},
		{"wrong salt", ScopeDebug, valid, "other-salt", ErrInvalidAdminKey},
		{"disabled", ScopeDebug, valid, "", ErrAdminDisabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAdminKey(tt.scope, tt.key, tt.salt)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAdminKey() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
