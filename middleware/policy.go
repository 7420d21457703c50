package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Actor is the verified caller identity taken from the JWT, never from the
// request payload.
type Actor struct {
	ID   uuid.UUID
	Role string
}

// ActorFromCtx extracts the caller from the token parsed by Protected().
func ActorFromCtx(c *fiber.Ctx) Actor {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)

	id, _ := uuid.Parse(claims["user_id"].(string))
	role, _ := claims["role"].(string)

	return Actor{ID: id, Role: role}
}

// Policy is the closed set of authorization rules applied before mutating
// handler logic. Admin bypasses ownership on every variant except Public,
// which allows anyone.
type Policy int

const (
	PolicyPublic Policy = iota
	PolicyAdmin
	PolicyOwner
	PolicyParticipant
)

// Allows reports whether the actor may act on a resource owned by (or shared
// between) the given principals. PolicyOwner expects one id,
// PolicyParticipant any number.
func (p Policy) Allows(actor Actor, principals ...uuid.UUID) bool {
	switch p {
	case PolicyPublic:
		return true
	case PolicyAdmin:
		return actor.Role == "admin"
	case PolicyOwner, PolicyParticipant:
		if actor.Role == "admin" {
			return true
		}
		for _, id := range principals {
			if actor.ID == id {
				return true
			}
		}
		return false
	}
	return false
}
