package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"", 7},
		{"3", 3},
		{"abc", 7},
		{"0", 7},
		{"-2", 7},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseInt(tt.value, 7))
		})
	}
}

func TestParseOptionalInt64(t *testing.T) {
	got, err := ParseOptionalInt64("  ")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseOptionalInt64(" 1500 ")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(1500), *got)

	_, err = ParseOptionalInt64("12.5")
	assert.Error(t, err)
}

func TestParseOptionalBool(t *testing.T) {
	got, err := ParseOptionalBool("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseOptionalBool("true")
	require.NoError(t, err)
	assert.True(t, *got)

	_, err = ParseOptionalBool("yes please")
	assert.Error(t, err)
}

func TestGenerateOrderNumber(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

	number := GenerateOrderNumber(now)
	assert.Regexp(t, regexp.MustCompile(`^VIP-20240309-140507-\d{8}$`), number)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, "secret1", hash)
	assert.True(t, CheckPasswordHash("secret1", hash))
	assert.False(t, CheckPasswordHash("secret2", hash))
}
