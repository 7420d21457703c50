package utils

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

const roomSuffixLength = 7
const roomSuffixBytes = "abcdefghijklmnopqrstuvwxyz0123456789"

var (
	seededRand = rand.New(rand.NewSource(time.Now().UnixNano()))
	randMu     sync.Mutex
)

// GenerateRoomID builds a URL-safe room identifier: a millisecond timestamp
// for ordering plus a random suffix against same-millisecond collisions.
// The sessions.room_id unique constraint is the final backstop; callers
// retry with a fresh id if that write conflicts.
func GenerateRoomID() string {
	randMu.Lock()
	defer randMu.Unlock()

	b := make([]byte, roomSuffixLength)
	for i := range b {
		b[i] = roomSuffixBytes[seededRand.Intn(len(roomSuffixBytes))]
	}

	return fmt.Sprintf("eduai-%d-%s", time.Now().UnixMilli(), string(b))
}
