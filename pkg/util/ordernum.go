package util

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// GenerateOrderNumber returns a human-readable order number of the form
// PC-20260115-3F9A1. The suffix is random, so callers must still rely on the
// unique index for collision safety.
func GenerateOrderNumber() string {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; fall back to time
		return fmt.Sprintf("PC-%s-%05X", time.Now().Format("20060102"), time.Now().UnixNano()&0xFFFFF)
	}
	suffix := strings.ToUpper(hex.EncodeToString(buf))[:5]
	return fmt.Sprintf("PC-%s-%s", time.Now().Format("20060102"), suffix)
}
