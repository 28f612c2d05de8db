package tracker

import (
	"encoding/binary"

	"github.com/google/uuid"
)

const (
	idLength   = 9
	idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// newID derives a short base-36 id from the random tail of a UUIDv4. The
// tail skips the version nibble so every character is random.
func newID() string {
	u := uuid.New()
	n := binary.BigEndian.Uint64(u[8:])

	b := make([]byte, idLength)
	for i := range b {
		b[i] = idAlphabet[n%36]
		n /= 36
	}
	return string(b)
}
