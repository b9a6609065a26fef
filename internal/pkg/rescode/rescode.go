// Package rescode generates human-readable reservation codes.
package rescode

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"time"
)

const (
	prefix       = "RES"
	suffixLength = 5
)

// No 0/O, 1/I/L: codes are read over the phone at the front desk.
const alphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// Pattern matches codes produced by New, e.g. RES-20250601-7KQ2M.
var Pattern = regexp.MustCompile(`^RES-\d{8}-[A-HJKMNP-Z2-9]{5}$`)

// New builds a code for the given reservation day. The random suffix keeps
// collisions unlikely; the unique index on reservations.code plus the retry
// loop in the create path makes them harmless.
func New(day time.Time) (string, error) {
	suffix := make([]byte, suffixLength)
	max := big.NewInt(int64(len(alphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		suffix[i] = alphabet[n.Int64()]
	}

	return fmt.Sprintf("%s-%s-%s", prefix, day.Format("20060102"), suffix), nil
}
