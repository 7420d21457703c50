package routes

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The room channel authenticates in-band, so the upgrade request must reach
// the websocket middleware without a token instead of being rejected by the
// JWT gate on the /sessions prefix.
func TestSessionRoomRouteReachableWithoutToken(t *testing.T) {
	app := fiber.New()
	SessionRoutes(app)

	req := httptest.NewRequest("GET", "/api/v1/session-rooms/eduai-123-abcdefg", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	// A plain GET is turned away for not being an upgrade, which proves the
	// request got past header auth and into the room middleware.
	assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
}

func TestSessionEndpointsStillRequireToken(t *testing.T) {
	app := fiber.New()
	SessionRoutes(app)

	for _, method := range []string{"GET", "POST", "PUT"} {
		req := httptest.NewRequest(method, "/api/v1/sessions", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "%s /api/v1/sessions", method)
	}
}
