package utils

import (
	"crypto/rand"
	"math/big"
)

const codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewBoardingCode generates the short human-displayed confirmation
// code ("RES-" + 6 uppercase alphanumerics). It is a display aid only:
// collisions are tolerated and it must never be used as proof of
// reservation — that is the credential token's job.
func NewBoardingCode() string {
	b := make([]byte, 6)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken
			b[i] = codeAlphabet[0]
			continue
		}
		b[i] = codeAlphabet[n.Int64()]
	}
	return "RES-" + string(b)
}
