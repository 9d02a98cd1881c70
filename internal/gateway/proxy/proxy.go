package proxy

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Proxy Handler
// ============================================================

var client = &http.Client{Timeout: 30 * time.Second}

// ProxyTo проксирует запрос на фиксированный адрес, сохраняя query-строку.
func ProxyTo(targetURL string) fiber.Handler {
	return func(c fiber.Ctx) error {
		return Forward(c, withQuery(c, targetURL))
	}
}

// Prefix проксирует всё под префиксом: /api/v1/configs/x/scene -> base + /configs/x/scene.
func Prefix(baseURL, stripPrefix string) fiber.Handler {
	return func(c fiber.Ctx) error {
		path := c.Path()
		if len(path) >= len(stripPrefix) && path[:len(stripPrefix)] == stripPrefix {
			path = path[len(stripPrefix):]
		}
		return Forward(c, withQuery(c, baseURL+path))
	}
}

// Forward проксирует запрос по переданному URL (для динамических путей).
func Forward(c fiber.Ctx, targetURL string) error {
	log.Printf("[PROXY] Request: %s %s", c.Method(), c.Path())
	log.Printf("[PROXY] Content-Type: %s", c.Get("Content-Type"))
	log.Printf("[PROXY] Forwarding to: %s", targetURL)

	req, err := http.NewRequest(c.Method(), targetURL, bytes.NewReader(c.Body()))
	if err != nil {
		log.Printf("[PROXY] build request error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "proxy failed"})
	}

	if contentType := c.Get("Content-Type"); contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if accept := c.Get("Accept"); accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := client.Do(req)
	if err != nil {
		log.Printf("[PROXY] Error: %v", err)
		return c.Status(502).JSON(fiber.Map{"error": "failed to reach upstream service"})
	}
	defer resp.Body.Close()

	return copyResponse(c, resp)
}

func withQuery(c fiber.Ctx, targetURL string) string {
	if q := c.Request().URI().QueryString(); len(q) > 0 {
		return targetURL + "?" + string(q)
	}
	return targetURL
}

func copyResponse(c fiber.Ctx, resp *http.Response) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[PROXY] Read response error: %v", err)
		return c.Status(502).JSON(fiber.Map{"error": "invalid upstream response"})
	}

	for key, values := range resp.Header {
		if len(values) > 0 {
			c.Set(key, values[0])
		}
	}

	c.Status(resp.StatusCode)
	return c.Send(data)
}
