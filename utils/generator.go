package utils

import (
	"crypto/rand"
	"math/big"

	"github.com/gosimple/slug"
)

// GenerateSlug derives the immutable URL-safe slug from a human name.
func GenerateSlug(str string) string {
	return slug.Make(str)
}

// DigitID returns a random identifier of the given length built from the
// digits 0-9 (notice ids, brand ids, order ids).
func DigitID(size int) string {
	id := make([]byte, size)
	for i := range id {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken
			panic(err)
		}
		id[i] = byte('0' + n.Int64())
	}
	return string(id)
}
