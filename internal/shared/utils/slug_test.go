package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	assert.Equal(t, "test-match", GenerateSlug("Test Match"))
	assert.Equal(t, "test-match", GenerateSlug("  Test   Match!  "))
	assert.Equal(t, "derby-day-2026", GenerateSlug("Derby Day 2026"))
	assert.Equal(t, "", GenerateSlug("!!!"))
}

func TestUniqueSlug(t *testing.T) {
	taken := map[string]bool{}
	assert.Equal(t, "test-match", UniqueSlug("test-match", taken))

	taken["test-match"] = true
	assert.Equal(t, "test-match-1", UniqueSlug("test-match", taken))

	taken["test-match-1"] = true
	assert.Equal(t, "test-match-2", UniqueSlug("test-match", taken))

	assert.Equal(t, "untitled", UniqueSlug("", taken))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 80))
	assert.Equal(t, "ab", Truncate("abc", 2))
	assert.Equal(t, "日本", Truncate("日本語", 2))
}
