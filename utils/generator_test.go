package utils

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	assert.Equal(t, "smart-phone", GenerateSlug("Smart Phone"))
	assert.Equal(t, "apple-iphone-15-128-gb-ni-1234567890", GenerateSlug("Apple iPhone 15 128 GB-ni-1234567890"))
}

func TestDigitID(t *testing.T) {
	for _, size := range []int{10, 16, 18} {
		id := DigitID(size)
		assert.Len(t, id, size)
		for _, r := range id {
			assert.True(t, r >= '0' && r <= '9', "unexpected rune %q", r)
		}
	}
}

func TestDigitIDUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := DigitID(16)
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusOf(NotFound("missing")))
	assert.Equal(t, http.StatusBadRequest, StatusOf(BadRequest("bad")))
	assert.Equal(t, http.StatusUnauthorized, StatusOf(Unauthorized("nope")))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(assert.AnError))
}
