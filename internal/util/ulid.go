package util

import (
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string, used as the opaque id for
// question rows. A fresh time-seeded entropy source per call is fine
// for the seed job's insert volume.
func NewULID() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
