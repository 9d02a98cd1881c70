package handlers

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// API Docs
// ============================================================

// Docs отдаёт OpenAPI-описание шлюза и страницу Swagger UI над ним.
type Docs struct {
	specPath string
	title    string
}

func NewDocs(specPath, title string) *Docs {
	return &Docs{specPath: specPath, title: title}
}

// Spec читает YAML с диска на каждый запрос, правки видны без рестарта.
func (d *Docs) Spec(c fiber.Ctx) error {
	data, err := os.ReadFile(d.specPath)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "spec not found"})
	}
	c.Type("yaml")
	return c.Send(data)
}

func (d *Docs) UI(c fiber.Ctx) error {
	c.Type("html")
	return c.SendString(fmt.Sprintf(swaggerPage, d.title))
}

const swaggerPage = `<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <title>%s</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist/swagger-ui.css">
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist/swagger-ui-bundle.js"></script>
<script>
  window.onload = () => {
    window.ui = SwaggerUIBundle({
      url: '/docs/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
    });
  };
</script>
</body>
</html>`
