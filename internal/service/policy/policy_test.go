package policy

import (
	"strings"
	"testing"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/stretchr/testify/require"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		wantErr   error
	}{
		{"ok simple", "alice", nil},
		{"ok with underscore and digits", "bob_42", nil},
		{"ok min length", "abc", nil},
		{"ok max length", strings.Repeat("a", 20), nil},
		{"too short", "ab", common.ErrInvalidUsername},
		{"too long", strings.Repeat("a", 21), common.ErrInvalidUsername},
		{"empty", "", common.ErrInvalidUsername},
		{"space", "ali ce", common.ErrInvalidUsername},
		{"dash", "ali-ce", common.ErrInvalidUsername},
		{"unicode", "алиса", common.ErrInvalidUsername},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.candidate)
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		wantErr   error
	}{
		{"ok", "Passw0rd!", nil},
		{"ok minimal", "Aa1!bb", nil},
		{"too short", "Aa1!b", common.ErrWeakPassword},
		{"too long", "Aa1!" + strings.Repeat("x", 47), common.ErrWeakPassword},
		{"no uppercase", "passw0rd!", common.ErrWeakPassword},
		{"no lowercase", "PASSW0RD!", common.ErrWeakPassword},
		{"no digit", "Password!", common.ErrWeakPassword},
		{"no special", "Passw0rd", common.ErrWeakPassword},
		{"spec example short", "short", common.ErrWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.candidate)
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestStrength(t *testing.T) {
	require.Equal(t, "Weak", Strength("abc"))
	require.Equal(t, "Medium", Strength("Passwd1"))
	require.Equal(t, "Strong", Strength("Passw0rd!"))
}
