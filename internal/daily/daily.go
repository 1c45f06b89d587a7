// internal/daily/daily.go
//
// Deterministic "board of the day".
//   - DateKey / ParseDate: the UTC YYYY-MM-DD key a daily board is named by.
//   - Seed: keyed BLAKE2b of the date key, so the grid depends only on
//     date + salt.

package daily

import (
	"encoding/binary"
	"time"

	"golang.org/x/crypto/blake2b"
)

const dateLayout = "2006-01-02"

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// ParseDate parses a YYYY-MM-DD key as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.UTC)
}

// Seed returns a deterministic, non-zero board seed for a date using a keyed
// BLAKE2b-256 of the date key. Salts longer than a BLAKE2b key are folded first.
func Seed(date time.Time, salt string) uint64 {
	key := []byte(salt)
	if len(key) > blake2b.Size {
		sum := blake2b.Sum512(key)
		key = sum[:]
	}
	h, err := blake2b.New256(key)
	if err != nil {
		// unreachable: key is at most blake2b.Size bytes
		panic(err)
	}
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// take first 8 bytes; zero is reserved for "pick a random seed"
	n := binary.BigEndian.Uint64(sum[:8])
	if n == 0 {
		n = 1
	}
	return n
}
