package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAnswer(t *testing.T) {
	// Known sha-256 vector.
	assert.Equal(t,
		"2c26b46b68ffc68ff99b453c1d30413413422d706483bfa0f98a5e886266e7ae",
		HashAnswer("foo"))
}

func TestHashAnswerDeterministic(t *testing.T) {
	a := HashAnswer("Grace Hopper")
	b := HashAnswer("Grace Hopper")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestHashAnswerDistinguishesInputs(t *testing.T) {
	assert.NotEqual(t, HashAnswer("Venus"), HashAnswer("Mars"))
	assert.NotEqual(t, HashAnswer("ohm"), HashAnswer("Ohm"))
}
