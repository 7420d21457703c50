package middleware

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPolicyAllows(t *testing.T) {
	owner := uuid.New()
	peer := uuid.New()
	stranger := uuid.New()

	admin := Actor{ID: uuid.New(), Role: "admin"}
	ownerActor := Actor{ID: owner, Role: "tutor"}
	peerActor := Actor{ID: peer, Role: "student"}
	strangerActor := Actor{ID: stranger, Role: "student"}

	t.Run("public allows anyone", func(t *testing.T) {
		assert.True(t, PolicyPublic.Allows(strangerActor))
		assert.True(t, PolicyPublic.Allows(Actor{}))
	})

	t.Run("admin policy", func(t *testing.T) {
		assert.True(t, PolicyAdmin.Allows(admin))
		assert.False(t, PolicyAdmin.Allows(ownerActor))
	})

	t.Run("owner policy", func(t *testing.T) {
		assert.True(t, PolicyOwner.Allows(ownerActor, owner))
		assert.False(t, PolicyOwner.Allows(strangerActor, owner))
		assert.True(t, PolicyOwner.Allows(admin, owner), "admin bypasses ownership")
	})

	t.Run("participant policy", func(t *testing.T) {
		assert.True(t, PolicyParticipant.Allows(ownerActor, owner, peer))
		assert.True(t, PolicyParticipant.Allows(peerActor, owner, peer))
		assert.False(t, PolicyParticipant.Allows(strangerActor, owner, peer))
		assert.True(t, PolicyParticipant.Allows(admin, owner, peer))
	})
}
