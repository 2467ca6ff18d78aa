package util

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^PC-\d{8}-[0-9A-F]{5}$`)

	num := GenerateOrderNumber()
	assert.Regexp(t, pattern, num)
	assert.Contains(t, num, time.Now().Format("20060102"))
}

func TestGenerateOrderNumber_Distinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		seen[GenerateOrderNumber()] = true
	}
	// Random suffixes should essentially never collide in 100 draws.
	assert.Greater(t, len(seen), 95)
}
