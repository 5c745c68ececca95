package utils

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseOptionalInt64 returns nil for an empty value and an error for garbage.
func ParseOptionalInt64(value string) (*int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	result, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", value, err)
	}
	return &result, nil
}

// ParseOptionalBool accepts the usual true/false spellings, empty means unset.
func ParseOptionalBool(value string) (*bool, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	result, err := strconv.ParseBool(value)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", value, err)
	}
	return &result, nil
}

// GenerateOrderNumber creates a human readable VIP order reference.
// Format: VIP-YYYYMMDD-HHMMSS-RANDOM with an 8 digit random suffix.
func GenerateOrderNumber(now time.Time) string {
	return fmt.Sprintf("VIP-%s-%s-%08d",
		now.Format("20060102"),
		now.Format("150405"),
		rand.IntN(100_000_000),
	)
}

func StringPtr(s string) *string {
	return &s
}
