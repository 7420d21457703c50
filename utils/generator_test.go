package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRoomIDFormat(t *testing.T) {
	id := GenerateRoomID()

	parts := strings.Split(id, "-")
	require.Len(t, parts, 3)
	assert.Equal(t, "eduai", parts[0])
	assert.NotEmpty(t, parts[1])
	assert.Len(t, parts[2], roomSuffixLength)

	for _, r := range parts[2] {
		assert.Contains(t, roomSuffixBytes, string(r))
	}
}

func TestGenerateRoomIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := GenerateRoomID()
		require.False(t, seen[id], "duplicate room id: %s", id)
		seen[id] = true
	}
}
