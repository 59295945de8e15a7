package util

import (
	"fmt"
	"math/rand"
	"time"
)

func init() {
	rand.Seed(time.Now().UnixNano())
}

// GetRandomInt returns a random integer in range [min, max].
func GetRandomInt(min int, max int) int {
	return rand.Intn(max-min+1) + min
}

// GuestName returns a fallback display name for players who decline to
// provide one.
func GuestName() string {
	return fmt.Sprintf("Guest %d", GetRandomInt(0, 999))
}
