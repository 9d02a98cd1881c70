package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
)

// ============================================================
// Logger Middleware
// ============================================================

// Logger пишет строку на запрос; для генератора виден статус кеша сцен.
func Logger() fiber.Handler {
	return logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path} | Content-Type: ${reqHeader:Content-Type} | scene-cache: ${respHeader:X-Scene-Cache}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	})
}
