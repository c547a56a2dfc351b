package http

import (
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
)

// ServeSPA sirve el build del frontend desde dir y responde index.html en cualquier otra ruta GET.
// Devuelve false (sin registrar nada) si dir no contiene index.html.
// Debe registrarse después de Router.
func ServeSPA(app *fiber.App, dir string) bool {
	if dir == "" {
		return false
	}
	index := filepath.Join(dir, "index.html")
	if info, err := os.Stat(index); err != nil || info.IsDir() {
		return false
	}
	app.Static("/", dir)
	app.Get("/*", func(c *fiber.Ctx) error {
		return c.SendFile(index)
	})
	return true
}
