// Package util holds small shared helpers.
package util

import (
	"math/rand/v2"
	"strconv"
	"time"
)

const uidDigits = 10

// GenerateUID produces an application-level numeric identifier from the
// current epoch milliseconds plus a random suffix, truncated to ten
// digits. It matches the uid scheme used across every collection and is
// distinct from any storage-internal id.
func GenerateUID() int64 {
	raw := strconv.FormatInt(time.Now().UnixMilli(), 10) + strconv.FormatInt(rand.Int64N(10000), 10)
	if len(raw) > uidDigits {
		raw = raw[:uidDigits]
	}

	uid, _ := strconv.ParseInt(raw, 10, 64)

	return uid
}
