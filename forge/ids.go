package forge

import (
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"
)

const alnum = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// newRuleID generates the UUID identity of a freshly constructed rule.
func newRuleID() string {
	return uuid.NewString()
}

// randAlnum returns a random alphanumeric string of the given length,
// used for generated slugs (10 chars) and test ids (21 chars). Uniqueness
// is probabilistic only.
func randAlnum(length int) string {
	out := make([]byte, length)
	max := big.NewInt(int64(len(alnum)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failure is unrecoverable for id generation
			panic(err)
		}
		out[i] = alnum[n.Int64()]
	}
	return string(out)
}
