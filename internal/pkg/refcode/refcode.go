package refcode

import (
	"crypto/rand"
	"math/big"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Length is the number of random characters after the prefix.
const Length = 6

// Generate returns prefix followed by Length characters drawn from [A-Z0-9].
func Generate(prefix string) (string, error) {
	buf := make([]byte, Length)
	limit := big.NewInt(int64(len(alphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		buf[i] = alphabet[n.Int64()]
	}
	return prefix + string(buf), nil
}
