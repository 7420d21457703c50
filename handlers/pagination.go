package handlers

import (
	"math"

	"github.com/gofiber/fiber/v2"
)

// paginationMeta is the envelope every list endpoint returns next to its
// items: the 1-based page, the applied limit, the total matching rows and
// how many pages those rows span.
func paginationMeta(page, limit int, total int64) fiber.Map {
	return fiber.Map{
		"page":  page,
		"limit": limit,
		"total": total,
		"pages": int(math.Ceil(float64(total) / float64(limit))),
	}
}
