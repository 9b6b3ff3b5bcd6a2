package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateSize(t *testing.T) {
	tests := []struct {
		input   int
		wantErr bool
	}{
		{2, false},
		{800, false},
		{1, true},
		{0, true},
		{-4, true},
	}

	for _, tt := range tests {
		err := ValidateSize(tt.input)
		if !tt.wantErr {
			require.NoError(t, err, "ValidateSize(%d)", tt.input)
			continue
		}
		require.Error(t, err, "ValidateSize(%d)", tt.input)
		require.True(t, Is(err, ErrCodeInvalidInput), "ValidateSize(%d) code: %v", tt.input, err)
	}
}

func TestValidateCostRange(t *testing.T) {
	tests := []struct {
		name    string
		lo, hi  int64
		wantErr bool
	}{
		{"default", 1, 1000, false},
		{"single value", 5, 5, false},
		{"zero min", 0, 10, true},
		{"negative min", -3, 10, true},
		{"inverted", 10, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCostRange(tt.lo, tt.hi)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateLimit(t *testing.T) {
	for _, ok := range []int{0, 2, 25} {
		require.NoError(t, ValidateLimit("brute-force", ok), "ValidateLimit(%d)", ok)
	}
	for _, bad := range []int{-1, 1} {
		require.Error(t, ValidateLimit("brute-force", bad), "ValidateLimit(%d)", bad)
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "tables/cumulative-cost-table-25.tsv", false},
		{"absolute", "/tmp/m.json", false},
		{"filename only", "m.tsv", false},

		{"empty", "", true},
		{"blank", "   ", true},
		{"too long", string(make([]byte, 5000)), true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.True(t, Is(err, ErrCodeInvalidPath), "wrong error code: %v", err)
		})
	}
}

func TestValidateFormat(t *testing.T) {
	require.NoError(t, ValidateFormat("svg", "svg", "dot"))
	require.True(t, Is(ValidateFormat("png", "svg", "dot"), ErrCodeInvalidFormat))
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidMatrix,
		ErrCodeInvalidFormat,
		ErrCodeInvalidPath,
		ErrCodeFileNotFound,
		ErrCodeUndefinedEdge,
		ErrCodeOverflow,
		ErrCodeLimitExceeded,
		ErrCodeSolverDisagreement,
		ErrCodeCacheUnavailable,
		ErrCodeCancelled,
		ErrCodeInternal,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		require.False(t, seen[code], "duplicate error code: %s", code)
		seen[code] = true
	}
}
