package handlers

import (
	"errors"
	"log"

	config "github.com/eduai/eduai_backend/configs"
	"github.com/eduai/eduai_backend/database"
	"github.com/eduai/eduai_backend/models"
	ws "github.com/eduai/eduai_backend/websocket"
	websocketcontrib "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func parseToken(tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.Config("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}

// ServeSessionRoom is the signaling channel for a live session. The first
// frame must authenticate the caller, who must be one of the room's two
// participants; every later frame is relayed verbatim to the other side.
func ServeSessionRoom(c *websocketcontrib.Conn) {
	roomID := c.Params("roomId")

	type AuthMessage struct {
		Type  string `json:"type"`
		Token string `json:"token"`
	}
	var authMsg AuthMessage
	if err := c.ReadJSON(&authMsg); err != nil || authMsg.Type != "auth" {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid or missing auth message"})
		c.Close()
		return
	}

	claims, err := parseToken(authMsg.Token)
	if err != nil {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid token"})
		c.Close()
		return
	}

	userID, err := uuid.Parse(claims["user_id"].(string))
	if err != nil {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid user ID"})
		c.Close()
		return
	}

	var session models.Session
	if err := database.DB.First(&session, "room_id = ?", roomID).Error; err != nil {
		_ = c.WriteJSON(fiber.Map{"error": "Session room not found"})
		c.Close()
		return
	}
	if userID != session.TutorID && userID != session.StudentID {
		_ = c.WriteJSON(fiber.Map{"error": "You are not a participant of this session"})
		c.Close()
		return
	}

	client := &ws.Client{UserID: userID, RoomID: roomID, Conn: c}
	ws.Register <- client
	defer func() {
		ws.Unregister <- client
		c.Close()
	}()

	for {
		var frame ws.SignalPayload
		if err := c.ReadJSON(&frame); err != nil {
			if !websocketcontrib.IsCloseError(err, websocketcontrib.CloseGoingAway, websocketcontrib.CloseNormalClosure) {
				log.Printf("Room %s: read error for client %s: %v", roomID, userID, err)
			}
			break
		}

		frame.From = userID
		ws.RelayToRoom(roomID, c, frame)
	}
}
